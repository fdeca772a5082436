package router

import (
	"errors"
	"strings"

	"github.com/dujiao-next/gift-message/internal/authz"
	"github.com/dujiao-next/gift-message/internal/cache"
	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	adminIDContextKey      = "admin_id"
	adminIsSuperContextKey = "admin_is_super"
	adminUsernameKey       = "username"
)

// bearerToken 取出 Authorization: Bearer 后的令牌
func bearerToken(c *gin.Context) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
	if !ok || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authenticate 返回管理员快照；失败时第二个返回值为错误消息 key
func authenticate(c *gin.Context, auth *service.AuthService) (*cache.AdminAuthState, string) {
	token, ok := bearerToken(c)
	if !ok {
		return nil, "error.unauthorized"
	}
	state, err := auth.Authenticate(c.Request.Context(), token)
	switch {
	case err == nil:
		return state, ""
	case errors.Is(err, service.ErrTokenRevoked):
		return nil, "error.token_revoked"
	case errors.Is(err, service.ErrTokenInvalid):
		return nil, "error.token_invalid"
	default:
		logger.Warnw("admin_auth_state_failed", "path", c.Request.URL.Path, "error", err)
		return nil, "error.token_invalid"
	}
}

func bindAdmin(c *gin.Context, state *cache.AdminAuthState) {
	c.Set(adminIDContextKey, state.AdminID)
	c.Set(adminUsernameKey, state.Username)
	c.Set(adminIsSuperContextKey, state.IsSuper)
}

// JWTAuthMiddleware 要求有效的后台令牌
func JWTAuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, msgKey := authenticate(c, auth)
		if state == nil {
			response.Unauthorized(c, i18n.T(i18n.ResolveLocale(c), msgKey))
			c.Abort()
			return
		}
		bindAdmin(c, state)
		c.Next()
	}
}

// OptionalAdminAuthMiddleware 令牌有效时写入身份，否则按匿名继续
func OptionalAdminAuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := bearerToken(c); !ok {
			c.Next()
			return
		}
		if state, msgKey := authenticate(c, auth); state != nil {
			bindAdmin(c, state)
		} else {
			logger.Debugw("optional_admin_auth_ignored", "reason", msgKey, "path", c.Request.URL.Path)
		}
		c.Next()
	}
}

// AdminRBACMiddleware 按路由模板校验 casbin 权限，超级管理员直接放行
func AdminRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	deny := func(c *gin.Context, forbidden bool) {
		locale := i18n.ResolveLocale(c)
		if forbidden {
			response.Forbidden(c, i18n.T(locale, "error.forbidden"))
		} else {
			response.Unauthorized(c, i18n.T(locale, "error.unauthorized"))
		}
		c.Abort()
	}
	return func(c *gin.Context) {
		if c.GetBool(adminIsSuperContextKey) {
			c.Next()
			return
		}
		adminID := c.GetUint(adminIDContextKey)
		if authzService == nil || adminID == 0 {
			if authzService == nil {
				logger.Errorw("admin_rbac_service_unavailable")
			}
			deny(c, false)
			return
		}

		resource := c.FullPath()
		if resource == "" {
			resource = c.Request.URL.Path
		}
		allowed, err := authzService.EnforceAdmin(adminID, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed", "admin_id", adminID, "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
			deny(c, false)
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied", "admin_id", adminID, "method", c.Request.Method, "resource", authz.NormalizeObject(resource))
			deny(c, true)
			return
		}
		c.Next()
	}
}
