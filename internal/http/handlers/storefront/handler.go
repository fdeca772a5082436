package storefront

import (
	"embed"
	"html/template"

	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/provider"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler 店面页面处理器
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// Templates 店面页面模板集，交给 gin 渲染
func Templates() *template.Template {
	return template.Must(template.New("storefront").Funcs(template.FuncMap{
		"t": i18n.T,
		"localized": func(value models.JSON, locale string) string {
			return value.Localized(locale)
		},
		// 仅用于扩展点已转义的片段
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}).ParseFS(templateFS, "templates/*.html"))
}
