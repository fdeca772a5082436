package storefront

import (
	"net/http"
	"strings"

	"github.com/dujiao-next/gift-message/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionContextKey = "cart_session"

// cartSession 读取购物车会话，不存在时签发新会话
func (h *Handler) cartSession(c *gin.Context) string {
	if value, ok := c.Get(cartSessionContextKey); ok {
		if session, ok := value.(string); ok && session != "" {
			return session
		}
	}
	session := h.resolveCartSession(c)
	c.Set(cartSessionContextKey, session)
	return session
}

func (h *Handler) resolveCartSession(c *gin.Context) string {
	if value, err := c.Cookie(constants.CookieCartSession); err == nil {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	session := uuid.NewString()
	ttlHours := h.Config.Security.CartSessionTTLHours
	if ttlHours <= 0 {
		ttlHours = 720
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieCartSession, session, ttlHours*3600, "/", "", h.Config.Security.SecureCookies, true)
	return session
}
