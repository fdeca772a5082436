package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 后台接口统一外层，业务错误也返回 HTTP 200
type Response struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
}

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// NewPagination 根据总数计算总页数
func NewPagination(page, pageSize int, total int64) Pagination {
	p := Pagination{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		p.TotalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return p
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{StatusCode: CodeOK, Msg: "success", Data: data})
}

// Error 业务错误响应，data 中附带 request_id 便于排查
func Error(c *gin.Context, statusCode int, msg string) {
	var data interface{}
	if requestID := c.GetString("request_id"); requestID != "" {
		data = gin.H{"request_id": requestID}
	}
	c.JSON(http.StatusOK, Response{StatusCode: statusCode, Msg: msg, Data: data})
}

// Unauthorized 未登录或令牌失效
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

// Forbidden 无权限
func Forbidden(c *gin.Context, msg string) {
	Error(c, CodeForbidden, msg)
}
