package giftmessage

import (
	"context"

	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/logger"
)

// InjectLegacyColumn 旧版订单表：有订单管理能力时在合计列后插入留言列，无合计列则追加到末尾
func (p *Plugin) InjectLegacyColumn(columns []hooks.Column, ctx hooks.ColumnsContext) []hooks.Column {
	if !canManageOrders(ctx.Viewer) {
		return columns
	}
	column := hooks.Column{Key: ColumnKey, Label: p.Label()}
	injected := make([]hooks.Column, 0, len(columns)+1)
	placed := false
	for _, c := range columns {
		if c.Key == ColumnKey {
			continue
		}
		injected = append(injected, c)
		if c.Key == constants.OrderColumnTotal && !placed {
			injected = append(injected, column)
			placed = true
		}
	}
	if !placed {
		injected = append(injected, column)
	}
	return injected
}

// InjectHPOSColumn 新版订单表：有订单管理能力时追加留言列
func (p *Plugin) InjectHPOSColumn(columns []hooks.Column, ctx hooks.ColumnsContext) []hooks.Column {
	if !canManageOrders(ctx.Viewer) {
		return columns
	}
	out := make([]hooks.Column, 0, len(columns)+1)
	for _, c := range columns {
		if c.Key != ColumnKey {
			out = append(out, c)
		}
	}
	return append(out, hooks.Column{Key: ColumnKey, Label: p.Label()})
}

// RenderLegacyCell 旧版订单表单元格：按订单 ID 解析订单
func (p *Plugin) RenderLegacyCell(html string, ctx hooks.LegacyCellContext) string {
	if ctx.Column != ColumnKey {
		return html
	}
	if !canManageOrders(ctx.Viewer) {
		return Placeholder
	}
	if p.orders == nil {
		return Placeholder
	}
	reqCtx := ctx.Ctx
	if reqCtx == nil {
		reqCtx = context.Background()
	}
	order, err := p.orders.GetOrder(reqCtx, ctx.OrderID)
	if err != nil {
		logger.Warnw("gift_message_order_resolve_failed", "order_id", ctx.OrderID, "error", err)
		return Placeholder
	}
	return p.renderMessages(order)
}

// RenderHPOSCell 新版订单表单元格：直接使用行内订单对象
func (p *Plugin) RenderHPOSCell(html string, ctx hooks.HPOSCellContext) string {
	if ctx.Column != ColumnKey {
		return html
	}
	if !canManageOrders(ctx.Viewer) {
		return Placeholder
	}
	return p.renderMessages(ctx.Order)
}

func (p *Plugin) renderMessages(order hooks.OrderLike) string {
	if isNilOrder(order) {
		return Placeholder
	}
	messages := p.OrderMessages(order)
	if len(messages) == 0 {
		return Placeholder
	}
	return EscapeHTML(JoinMessages(messages))
}

func canManageOrders(viewer hooks.Viewer) bool {
	return viewer != nil && viewer.Can(constants.CapabilityManageOrders)
}
