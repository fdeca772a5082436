package admin

import (
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetAdminNotices 后台提示
func (h *Handler) GetAdminNotices(c *gin.Context) {
	notices := h.Registry.AdminNotices.Apply([]hooks.Notice{}, h.viewer(c))
	response.Success(c, notices)
}
