package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项：同一会话内 CartKey 相同的加购合并数量
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                                          // 主键
	SessionID string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_key" json:"-"`           // 购物车会话
	CartKey   string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_key" json:"cart_key"`    // 行标识（商品+规格+附加数据）
	ProductID uint           `gorm:"not null;index" json:"product_id"`                                              // 商品ID
	SKUID     uint           `gorm:"column:sku_id;not null;default:0" json:"sku_id"`                                // 规格ID（0 表示无规格）
	Quantity  int            `gorm:"not null" json:"quantity"`                                                      // 数量
	ExtraJSON JSON           `gorm:"type:json" json:"extra"`                                                        // 附加数据（扩展写入）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                                       // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                                       // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                                // 软删除时间

	Product *Product    `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
	SKU     *ProductSKU `gorm:"foreignKey:SKUID" json:"sku,omitempty"`         // 关联规格
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
