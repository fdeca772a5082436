package storefront

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

// checkoutForm 结算表单
type checkoutForm struct {
	BillingFirstName       string `form:"billing_first_name" binding:"required,personname"`
	BillingLastName        string `form:"billing_last_name" binding:"required,personname"`
	BillingEmail           string `form:"billing_email" binding:"required,email,max=254"`
	ShipToDifferentAddress bool   `form:"ship_to_different_address"`
	ShippingFirstName      string `form:"shipping_first_name" binding:"omitempty,personname"`
	ShippingLastName       string `form:"shipping_last_name" binding:"omitempty,personname"`
}

// PostCheckout 下单
func (h *Handler) PostCheckout(c *gin.Context) {
	locale := i18n.ResolveLocale(c)
	session := h.cartSession(c)
	var form checkoutForm
	if err := c.ShouldBind(&form); err != nil {
		requestLog(c).Debugw("storefront_checkout_bind_failed", "error", err)
		h.renderCart(c, http.StatusBadRequest, form, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.checkout_invalid")}})
		return
	}

	order, err := h.CheckoutService.PlaceOrder(service.CheckoutInput{
		SessionID:              session,
		Locale:                 locale,
		ClientIP:               c.ClientIP(),
		Origin:                 constants.OrderOriginStorefront,
		BillingFirstName:       form.BillingFirstName,
		BillingLastName:        form.BillingLastName,
		BillingEmail:           form.BillingEmail,
		ShipToDifferentAddress: form.ShipToDifferentAddress,
		ShippingFirstName:      form.ShippingFirstName,
		ShippingLastName:       form.ShippingLastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			h.renderCart(c, http.StatusBadRequest, form, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.cart_empty")}})
		case errors.Is(err, service.ErrCheckoutInvalid):
			h.renderCart(c, http.StatusBadRequest, form, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.checkout_invalid")}})
		default:
			requestLog(c).Errorw("storefront_checkout_failed", "error", err)
			h.renderCart(c, http.StatusInternalServerError, form, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.internal")}})
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/checkout/order-received/"+url.PathEscape(order.OrderNo))
}

// GetOrderReceived 下单成功页，仅对下单会话可见
func (h *Handler) GetOrderReceived(c *gin.Context) {
	session := h.cartSession(c)
	order, err := h.OrderService.GetByOrderNo(c.Param("order_no"))
	if err != nil {
		if !errors.Is(err, service.ErrOrderNotFound) {
			requestLog(c).Errorw("storefront_order_fetch_failed", "order_no", c.Param("order_no"), "error", err)
		}
		h.renderNotFound(c, "error.order_not_found")
		return
	}
	if order.SessionID != session {
		h.renderNotFound(c, "error.order_not_found")
		return
	}
	view := h.newPage(c, "order-received", "shop.order_received", false)
	view.Order = order
	h.render(c, http.StatusOK, "order_received.html", view)
}
