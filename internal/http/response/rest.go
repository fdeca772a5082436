package response

import "github.com/gin-gonic/gin"

// RESTError 扩展接口的错误结构，使用真实 HTTP 状态码
type RESTError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Data    RESTErrorData `json:"data"`
}

// RESTErrorData 错误附带数据
type RESTErrorData struct {
	Status int `json:"status"`
}

// REST 成功时直接返回数据对象，不包裹统一结构
func REST(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// RESTFail 返回扩展接口错误
func RESTFail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, RESTError{
		Code:    code,
		Message: message,
		Data:    RESTErrorData{Status: status},
	})
}
