package giftmessage

import (
	"fmt"

	"github.com/dujiao-next/gift-message/internal/hooks"

	"github.com/google/uuid"
)

// AddCartItemData 校验通过后把留言与唯一令牌写入购物车行附加数据，空留言不写入
func (p *Plugin) AddCartItemData(data map[string]interface{}, ctx *hooks.AddToCartContext) map[string]interface{} {
	if ctx == nil || ctx.Form == nil || !ctx.Form.Has(FieldName) {
		return data
	}
	value := Normalize(ctx.Form.Get(FieldName))
	if value == "" {
		return data
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	data[FieldName] = value
	data[UniqueKey] = p.uniqueToken(value, ctx.ProductID, ctx.VariationID)
	return data
}

// uniqueToken 由留言、商品、规格与高精度时间派生，令相同提交也不会合并为同一行
func (p *Plugin) uniqueToken(value string, productID, variationID uint) string {
	salt := fmt.Sprintf("%d.%d", p.now().UnixNano(), p.seq.Add(1))
	name := fmt.Sprintf("%s|%d|%d|%s", value, productID, variationID, salt)
	return uuid.NewMD5(uuid.NameSpaceOID, []byte(name)).String()
}

// GetItemData 购物车/结算页展示：有留言时追加一条带标签的展示数据
func (p *Plugin) GetItemData(items []hooks.ItemData, line hooks.CartLine) []hooks.ItemData {
	value := stringValue(line.Extra, FieldName)
	if value == "" {
		return items
	}
	label := p.Label()
	escaped := EscapeHTML(value)
	return append(items, hooks.ItemData{
		Key:     label,
		Name:    label,
		Value:   escaped,
		Display: escaped,
	})
}

func stringValue(values map[string]interface{}, key string) string {
	if values == nil {
		return ""
	}
	raw, ok := values[key]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
