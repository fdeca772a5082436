package restapi

import (
	"errors"
	"net/http"

	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/giftmessage"
	handlershared "github.com/dujiao-next/gift-message/internal/http/handlers/shared"
	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/provider"

	"github.com/gin-gonic/gin"
)

// 扩展接口错误码
const (
	codeForbidden   = "rest_forbidden"
	codeNotLoaded   = "wc_not_loaded"
	codeNoOrders    = "no_orders"
	codeInternalErr = "internal_error"
)

// Handler 扩展 REST 接口
type Handler struct {
	*provider.Container
}

// New 创建 REST 处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// GetLatestOrderMessage 返回最近一笔订单的客户名与礼品留言，需 manage_options 能力
func (h *Handler) GetLatestOrderMessage(c *gin.Context) {
	locale := i18n.ResolveLocale(c)
	viewer := handlershared.AdminViewer(c, h.AuthzService)
	if !viewer.IsLoggedIn() {
		response.RESTFail(c, http.StatusUnauthorized, codeForbidden, i18n.T(locale, "rest.forbidden"))
		return
	}
	if !viewer.Can(constants.CapabilityManageOptions) {
		response.RESTFail(c, http.StatusForbidden, codeForbidden, i18n.T(locale, "rest.forbidden"))
		return
	}
	if h.GiftMessage == nil {
		response.RESTFail(c, http.StatusInternalServerError, codeNotLoaded, i18n.T(locale, "rest.wc_not_loaded"))
		return
	}

	summary, err := h.GiftMessage.LatestOrderSummary(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, giftmessage.ErrCommerceUnavailable):
			response.RESTFail(c, http.StatusInternalServerError, codeNotLoaded, i18n.T(locale, "rest.wc_not_loaded"))
		case errors.Is(err, giftmessage.ErrNoOrders):
			response.RESTFail(c, http.StatusNotFound, codeNoOrders, i18n.T(locale, "rest.no_orders"))
		default:
			handlershared.RequestLog(c).Errorw("rest_latest_order_failed", "error", err)
			response.RESTFail(c, http.StatusInternalServerError, codeInternalErr, i18n.T(locale, "error.internal"))
		}
		return
	}
	response.REST(c, http.StatusOK, summary)
}
