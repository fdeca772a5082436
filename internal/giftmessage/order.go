package giftmessage

import (
	"github.com/dujiao-next/gift-message/internal/hooks"
)

// CreateOrderLineItem 下单时把购物车留言复制到订单行：标签 key 与隐藏 key 各写一份，均覆盖写
func (p *Plugin) CreateOrderLineItem(ctx *hooks.OrderLineItemContext) {
	if ctx == nil || ctx.Item == nil {
		return
	}
	value := Normalize(stringValue(ctx.Values, FieldName))
	if value == "" {
		return
	}
	ctx.Item.AddMeta(p.Label(), value, true)
	ctx.Item.AddMeta(HiddenMetaKey, value, true)
}
