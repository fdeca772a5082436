package storefront

import (
	"html/template"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

// pageView 页面渲染数据
type pageView struct {
	Page     string
	Title    string
	SiteName string
	Locale   string
	Currency string
	Assets   *hooks.AssetQueue
	Notices  []hooks.Notice

	Products          []models.Product
	Product           *models.Product
	SelectedVariation uint
	Quantity          int
	Field             template.HTML

	Cart     *service.CartDetail
	Checkout checkoutForm

	Order *models.Order
}

// newPage 创建页面数据并触发资源入队扩展点
func (h *Handler) newPage(c *gin.Context, page, titleKey string, isProduct bool) *pageView {
	locale := i18n.ResolveLocale(c)
	view := &pageView{
		Page:     page,
		Title:    i18n.T(locale, titleKey),
		SiteName: h.Config.App.SiteName,
		Locale:   locale,
		Currency: h.Config.App.Currency,
		Assets:   &hooks.AssetQueue{},
		Quantity: 1,
	}
	h.Registry.EnqueueAssets.Do(&hooks.PageContext{
		Page:      page,
		IsProduct: isProduct,
		Locale:    locale,
		Assets:    view.Assets,
	})
	return view
}

func (v *pageView) notice(kind hooks.NoticeKind, message string) {
	v.Notices = append(v.Notices, hooks.Notice{Kind: kind, Message: message})
}

func (h *Handler) render(c *gin.Context, status int, name string, view *pageView) {
	c.HTML(status, name, view)
}
