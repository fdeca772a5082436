package giftmessage

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
)

// OrderDateLayout ISO 8601，带时区偏移
const OrderDateLayout = "2006-01-02T15:04:05-07:00"

// OrderSummary 最新订单留言
type OrderSummary struct {
	OrderID      uint    `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	GiftMessage  string  `json:"gift_message"`
	OrderDate    *string `json:"order_date"`
}

// LatestOrderSummary 返回最近创建订单的客户名、留言与创建时间
func (p *Plugin) LatestOrderSummary(ctx context.Context) (*OrderSummary, error) {
	if p.orders == nil {
		return nil, ErrCommerceUnavailable
	}
	order, err := p.orders.LatestOrder(ctx)
	if err != nil {
		return nil, err
	}
	if isNilOrder(order) {
		return nil, ErrNoOrders
	}
	return &OrderSummary{
		OrderID:      order.GetID(),
		CustomerName: CustomerName(order, p.locale),
		GiftMessage:  JoinMessages(p.OrderMessages(order)),
		OrderDate:    FormatOrderDate(order.GetDateCreated()),
	}, nil
}

// CustomerName 账单姓名 → 收货姓名 → 访客
func CustomerName(order hooks.OrderLike, locale string) string {
	if name := strings.TrimSpace(order.GetBillingFullName()); name != "" {
		return name
	}
	if name := strings.TrimSpace(order.GetShippingFullName()); name != "" {
		return name
	}
	return i18n.T(locale, "giftmessage.guest")
}

// FormatOrderDate 无创建时间时返回 nil
func FormatOrderDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	formatted := t.Format(OrderDateLayout)
	return &formatted
}

func isNilOrder(order hooks.OrderLike) bool {
	if order == nil {
		return true
	}
	v := reflect.ValueOf(order)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
