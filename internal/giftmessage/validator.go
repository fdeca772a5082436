package giftmessage

import (
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/logger"
)

// ValidateAddToCart 加入购物车校验。
// 字段缺失直接放行；令牌只在提交了但校验失败时拒绝，未提交令牌不拒绝。
// TODO: 未提交令牌放行是为兼容结账区块，待产品确认后再决定是否收紧。
func (p *Plugin) ValidateAddToCart(passed bool, ctx *hooks.AddToCartContext) bool {
	if ctx == nil || ctx.Form == nil || !ctx.Form.Has(FieldName) {
		return passed
	}
	locale := ctx.Locale
	if locale == "" {
		locale = p.locale
	}

	if ctx.Form.Has(NonceName) && !p.verifyNonce(ctx.Form.Get(NonceName), ctx.Session) {
		ctx.Notices.Add(hooks.NoticeError, i18n.T(locale, "giftmessage.security_failed"))
		logger.Infow("gift_message_nonce_rejected", "product_id", ctx.ProductID)
		return false
	}

	value := Normalize(ctx.Form.Get(FieldName))
	max := p.MaxLength()
	if Length(value) > max {
		ctx.Notices.Add(hooks.NoticeError, i18n.Sprintf(locale, "giftmessage.too_long", max))
		logger.Infow("gift_message_too_long", "product_id", ctx.ProductID, "length", Length(value), "max_length", max)
		return false
	}
	return passed
}

func (p *Plugin) verifyNonce(token, subject string) bool {
	if p.nonces == nil {
		return false
	}
	return p.nonces.Verify(token, NonceAction, subject)
}
