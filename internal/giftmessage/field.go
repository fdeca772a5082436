package giftmessage

import (
	"bytes"
	"html/template"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/logger"
)

var fieldTemplate = template.Must(template.New("wcgm-field").Parse(`<div class="wcgm-field">
	<label for="{{.Field}}" class="wcgm-label">{{.Label}}</label>
	<input type="text" class="input-text wcgm-input" id="{{.Field}}" name="{{.Field}}" maxlength="{{.Max}}" value="{{.Value}}" />
	<small class="wcgm-help"><span id="wcgm-counter">0</span> / {{.Max}}</small>
	{{- if .Nonce}}
	<input type="hidden" id="{{.NonceField}}" name="{{.NonceField}}" value="{{.Nonce}}" />
	{{- end}}
</div>
`))

type fieldView struct {
	Field      string
	NonceField string
	Label      string
	Max        int
	Value      string
	Nonce      string
}

// RenderField 在加入购物车按钮前渲染留言输入框，随后触发 AfterGiftMessageField
func (p *Plugin) RenderField(ctx *hooks.RenderContext) {
	if ctx == nil {
		return
	}
	view := fieldView{
		Field:      FieldName,
		NonceField: NonceName,
		Label:      p.Label(),
		Max:        p.MaxLength(),
	}
	if ctx.Form != nil && ctx.Form.Has(FieldName) {
		view.Value = Sanitize(ctx.Form.Get(FieldName))
	}
	if p.nonces != nil {
		token, err := p.nonces.Create(NonceAction, ctx.Session)
		if err != nil {
			logger.Warnw("gift_message_nonce_create_failed", "product_id", ctx.ProductID, "error", err)
		} else {
			view.Nonce = token
		}
	}

	var buf bytes.Buffer
	if err := fieldTemplate.Execute(&buf, view); err != nil {
		logger.Errorw("gift_message_field_render_failed", "product_id", ctx.ProductID, "error", err)
		return
	}
	ctx.Write(buf.String())
	p.registry.AfterGiftMessageField.Do(ctx)
}

// EnqueueAssets 仅在商品详情页加入脚本与样式，并注入最大长度与标签
func (p *Plugin) EnqueueAssets(ctx *hooks.PageContext) {
	if ctx == nil || !ctx.IsProduct || ctx.Assets == nil {
		return
	}
	ctx.Assets.EnqueueStyle(AssetHandle, p.assetBase+"/frontend.css")
	ctx.Assets.EnqueueScript(AssetHandle, p.assetBase+"/frontend.js")
	ctx.Assets.Localize(AssetHandle, ScriptData, map[string]interface{}{
		"maxLen": p.MaxLength(),
		"label":  p.Label(),
	})
}
