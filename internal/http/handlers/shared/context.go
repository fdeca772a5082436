package shared

import (
	"github.com/dujiao-next/gift-message/internal/authz"
	"github.com/dujiao-next/gift-message/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AdminID 读取鉴权中间件写入的管理员 ID，缺失时返回未登录错误
func AdminID(c *gin.Context) (uint, bool) {
	if id, ok := c.Get("admin_id"); ok {
		if adminID, ok := id.(uint); ok && adminID > 0 {
			return adminID, true
		}
	}
	RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
	return 0, false
}

// AdminViewer 根据鉴权中间件写入的身份构建访问者，未登录时 adminID 为 0
func AdminViewer(c *gin.Context, svc *authz.Service) authz.Viewer {
	var adminID uint
	if value, ok := c.Get("admin_id"); ok {
		if id, ok := value.(uint); ok {
			adminID = id
		}
	}
	isSuper := false
	if value, ok := c.Get("admin_is_super"); ok {
		if flag, ok := value.(bool); ok {
			isSuper = flag
		}
	}
	return authz.NewViewer(svc, adminID, isSuper)
}
