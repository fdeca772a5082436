package shared

import (
	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 带 request_id 的日志
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c != nil {
		if id := c.GetString("request_id"); id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 按请求语言翻译 key 后返回业务错误；err 非空时记录日志
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	if err != nil {
		RequestLog(c).Errorw("handler_error", "code", code, "key", key, "error", err)
	}
	response.Error(c, code, msg)
}
