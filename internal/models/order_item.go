package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // 主键
	OrderID    uint           `gorm:"index;not null" json:"order_id"`                           // 订单ID
	ProductID  uint           `gorm:"index;not null" json:"product_id"`                         // 商品ID
	SKUID      uint           `gorm:"column:sku_id;not null;default:0" json:"sku_id"`           // 规格ID
	TitleJSON  JSON           `gorm:"type:json;not null" json:"title"`                          // 商品标题快照
	SKUCode    string         `gorm:"column:sku_code;type:varchar(64)" json:"sku_code"`         // 规格编码快照
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // 单价
	Quantity   int            `gorm:"not null" json:"quantity"`                                 // 数量
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 小计
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                  // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	Meta []OrderItemMeta `gorm:"foreignKey:OrderItemID" json:"meta,omitempty"` // 元数据
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// GetMeta 读取首个同名元数据，不存在返回空串
func (i *OrderItem) GetMeta(key string) string {
	for _, m := range i.Meta {
		if m.MetaKey == key {
			return m.MetaValue
		}
	}
	return ""
}

// AddMeta 追加元数据；unique 时先移除同名 key
func (i *OrderItem) AddMeta(key, value string, unique bool) {
	if strings.TrimSpace(key) == "" {
		return
	}
	if unique {
		kept := i.Meta[:0]
		for _, m := range i.Meta {
			if m.MetaKey != key {
				kept = append(kept, m)
			}
		}
		i.Meta = kept
	}
	i.Meta = append(i.Meta, OrderItemMeta{OrderItemID: i.ID, MetaKey: key, MetaValue: value})
}

// VisibleMeta 展示用元数据（隐藏 key 以下划线开头）
func (i *OrderItem) VisibleMeta() []OrderItemMeta {
	visible := make([]OrderItemMeta, 0, len(i.Meta))
	for _, m := range i.Meta {
		if strings.HasPrefix(m.MetaKey, "_") {
			continue
		}
		visible = append(visible, m)
	}
	return visible
}
