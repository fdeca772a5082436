package storefront

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

const productListPageSize = 50

// GetIndex 商品列表
func (h *Handler) GetIndex(c *gin.Context) {
	h.renderIndex(c, http.StatusOK, nil)
}

func (h *Handler) renderIndex(c *gin.Context, status int, notices []hooks.Notice) {
	view := h.newPage(c, "index", "shop.products", false)
	view.Notices = append(view.Notices, notices...)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	products, _, err := h.ProductService.ListPublic(strings.TrimSpace(c.Query("search")), page, productListPageSize)
	if err != nil {
		requestLog(c).Errorw("storefront_product_list_failed", "error", err)
		view.notice(hooks.NoticeError, i18n.T(view.Locale, "error.internal"))
		status = http.StatusInternalServerError
	}
	view.Products = products
	h.render(c, status, "index.html", view)
}

// GetProduct 商品详情页
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			h.renderNotFound(c, "error.product_not_found")
			return
		}
		requestLog(c).Errorw("storefront_product_fetch_failed", "slug", c.Param("slug"), "error", err)
		h.renderIndex(c, http.StatusInternalServerError, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(i18n.ResolveLocale(c), "error.internal")}})
		return
	}
	h.renderProduct(c, http.StatusOK, product, nil, nil)
}

// renderProduct 渲染商品页；form 为上一次提交的表单，用于回填
func (h *Handler) renderProduct(c *gin.Context, status int, product *models.Product, form url.Values, notices []hooks.Notice) {
	view := h.newPage(c, "product", "shop.product", true)
	view.Product = product
	view.Title = product.TitleJSON.Localized(view.Locale)
	view.Notices = append(view.Notices, notices...)

	renderCtx := &hooks.RenderContext{
		ProductID: product.ID,
		Session:   h.cartSession(c),
		Locale:    view.Locale,
	}
	if form != nil {
		renderCtx.Form = form
		if variationID, err := strconv.ParseUint(form.Get("variation_id"), 10, 64); err == nil {
			view.SelectedVariation = uint(variationID)
		}
		if quantity, err := strconv.Atoi(form.Get("quantity")); err == nil && quantity > 0 {
			view.Quantity = quantity
		}
	}
	h.Registry.BeforeAddToCartButton.Do(renderCtx)
	view.Field = renderCtx.HTML()
	h.render(c, status, "product.html", view)
}

func (h *Handler) renderNotFound(c *gin.Context, key string) {
	h.renderIndex(c, http.StatusNotFound, []hooks.Notice{{Kind: hooks.NoticeError, Message: i18n.T(i18n.ResolveLocale(c), key)}})
}
