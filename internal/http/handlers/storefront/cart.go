package storefront

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

// addToCartForm 加入购物车表单，扩展字段由扩展点直接读取原始表单
type addToCartForm struct {
	ProductID   uint `form:"product_id" binding:"required"`
	VariationID uint `form:"variation_id"`
	Quantity    int  `form:"quantity"`
}

// PostAddToCart 加入购物车：失败时回到商品页并回填表单，成功后跳转购物车
func (h *Handler) PostAddToCart(c *gin.Context) {
	locale := i18n.ResolveLocale(c)
	session := h.cartSession(c)
	if err := c.Request.ParseForm(); err != nil {
		h.renderIndex(c, http.StatusBadRequest, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.bad_request")}})
		return
	}
	var form addToCartForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderIndex(c, http.StatusBadRequest, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.bad_request")}})
		return
	}
	postForm := c.Request.PostForm
	if !postForm.Has("quantity") {
		form.Quantity = 1
	}

	result, err := h.CartService.AddToCart(service.AddToCartInput{
		SessionID:   session,
		ProductID:   form.ProductID,
		VariationID: form.VariationID,
		Quantity:    form.Quantity,
		Form:        postForm,
		Locale:      locale,
	})
	if err != nil {
		h.handleAddToCartError(c, form.ProductID, postForm, result, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/cart?added="+url.QueryEscape(result.Item.CartKey))
}

func (h *Handler) handleAddToCartError(c *gin.Context, productID uint, form url.Values, result *service.AddToCartResult, err error) {
	locale := i18n.ResolveLocale(c)
	var notices []hooks.Notice
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		h.renderNotFound(c, "error.product_not_found")
		return
	case errors.Is(err, service.ErrAddToCartRejected):
		if result != nil {
			notices = result.Notices
		}
	case errors.Is(err, service.ErrVariationInvalid):
		notices = []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.variation_invalid")}}
	case errors.Is(err, service.ErrQuantityInvalid):
		notices = []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.quantity_invalid")}}
	default:
		requestLog(c).Errorw("storefront_add_to_cart_failed", "product_id", productID, "error", err)
		h.renderIndex(c, http.StatusInternalServerError, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(locale, "error.internal")}})
		return
	}

	product, fetchErr := h.ProductService.GetPublicByID(productID)
	if fetchErr != nil {
		h.renderNotFound(c, "error.product_not_found")
		return
	}
	h.renderProduct(c, http.StatusOK, product, form, notices)
}

// GetCart 购物车页，包含结算表单
func (h *Handler) GetCart(c *gin.Context) {
	h.renderCart(c, http.StatusOK, checkoutForm{}, nil)
}

func (h *Handler) renderCart(c *gin.Context, status int, form checkoutForm, notices []hooks.Notice) {
	view := h.newPage(c, "cart", "shop.cart", false)
	view.Checkout = form
	session := h.cartSession(c)
	cart, err := h.CartService.GetCart(session, view.Locale)
	if err != nil {
		requestLog(c).Errorw("storefront_cart_fetch_failed", "error", err)
		view.notice(hooks.NoticeError, i18n.T(view.Locale, "error.internal"))
		cart = &service.CartDetail{}
		status = http.StatusInternalServerError
	}
	view.Cart = cart
	if added := strings.TrimSpace(c.Query("added")); added != "" {
		for _, line := range cart.Lines {
			if line.CartKey == added {
				view.notice(hooks.NoticeSuccess, i18n.Sprintf(view.Locale, "cart.added", line.Title))
				break
			}
		}
	}
	view.Notices = append(view.Notices, notices...)
	h.render(c, status, "cart.html", view)
}
