package admin

import (
	"errors"

	"github.com/dujiao-next/gift-message/internal/constants"
	handlershared "github.com/dujiao-next/gift-message/internal/http/handlers/shared"
	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.login_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	requestLog(c).Infow("admin_login_success", "admin_id", admin.ID)
	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":           admin.ID,
			"username":     admin.Username,
			"display_name": admin.Label(),
			"is_super":     admin.IsSuper,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// AuthzMeResponse 当前管理员的角色与能力
type AuthzMeResponse struct {
	AdminID      uint            `json:"admin_id"`
	IsSuper      bool            `json:"is_super"`
	Roles        []string        `json:"roles"`
	Capabilities map[string]bool `json:"capabilities"`
}

// GetAuthzMe 获取当前管理员权限信息
func (h *Handler) GetAuthzMe(c *gin.Context) {
	adminID, ok := handlershared.AdminID(c)
	if !ok {
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	viewer := h.viewer(c)
	isSuper, _ := c.Get("admin_is_super")
	superFlag, _ := isSuper.(bool)
	response.Success(c, AuthzMeResponse{
		AdminID: adminID,
		IsSuper: superFlag,
		Roles:   roles,
		Capabilities: map[string]bool{
			constants.CapabilityManageOrders:  viewer.Can(constants.CapabilityManageOrders),
			constants.CapabilityManageOptions: viewer.Can(constants.CapabilityManageOptions),
		},
	})
}
