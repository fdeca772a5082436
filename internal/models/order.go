package models

import (
	"strings"
	"time"

	"github.com/dujiao-next/gift-message/internal/hooks"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo           string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	SessionID         string         `gorm:"type:varchar(64);index" json:"-"`                           // 下单购物车会话
	Status            string         `gorm:"index;not null" json:"status"`                              // 订单状态
	Origin            string         `gorm:"type:varchar(32);not null;default:''" json:"origin"`        // 订单来源
	Currency          string         `gorm:"not null" json:"currency"`                                  // 币种
	TotalAmount       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单金额
	BillingFirstName  string         `gorm:"type:varchar(100)" json:"billing_first_name"`               // 账单名
	BillingLastName   string         `gorm:"type:varchar(100)" json:"billing_last_name"`                // 账单姓
	BillingEmail      string         `gorm:"type:varchar(255);index" json:"billing_email"`              // 账单邮箱
	ShippingFirstName string         `gorm:"type:varchar(100)" json:"shipping_first_name"`              // 收货名
	ShippingLastName  string         `gorm:"type:varchar(100)" json:"shipping_last_name"`               // 收货姓
	Locale            string         `gorm:"type:varchar(20)" json:"locale,omitempty"`                  // 下单语言
	ClientIP          string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`               // 下单客户端IP
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// GetID 订单ID
func (o *Order) GetID() uint {
	return o.ID
}

// GetItems 订单项的元数据视图
func (o *Order) GetItems() []hooks.HasMetadata {
	items := make([]hooks.HasMetadata, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, &o.Items[i])
	}
	return items
}

// GetBillingFullName 账单全名
func (o *Order) GetBillingFullName() string {
	return formatFullName(o.BillingFirstName, o.BillingLastName)
}

// GetShippingFullName 收货全名
func (o *Order) GetShippingFullName() string {
	return formatFullName(o.ShippingFirstName, o.ShippingLastName)
}

// GetDateCreated 创建时间，未持久化时为 nil
func (o *Order) GetDateCreated() *time.Time {
	if o.CreatedAt.IsZero() {
		return nil
	}
	created := o.CreatedAt
	return &created
}

func formatFullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
