package admin

import (
	"time"

	"github.com/dujiao-next/gift-message/internal/authz"
	handlershared "github.com/dujiao-next/gift-message/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func (h *Handler) viewer(c *gin.Context) authz.Viewer {
	return handlershared.AdminViewer(c, h.AuthzService)
}

func parseTimeNullable(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
