package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductSKU 商品规格表，对应购物车与订单中的 variation
type ProductSKU struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                                                       // 主键
	ProductID      uint           `gorm:"not null;index;uniqueIndex:idx_product_sku_code" json:"product_id"`                          // 商品ID
	SKUCode        string         `gorm:"column:sku_code;type:varchar(64);not null;uniqueIndex:idx_product_sku_code" json:"sku_code"` // 规格编码（同商品内唯一）
	SpecValuesJSON JSON           `gorm:"type:json" json:"spec_values"`                                                               // 规格值（如颜色/尺寸）
	PriceAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`                                  // 规格价格
	IsActive       bool           `gorm:"default:true;index" json:"is_active"`                                                        // 是否启用
	SortOrder      int            `gorm:"default:0;index" json:"sort_order"`                                                          // 排序权重
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                                                    // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                                                    // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                                                             // 软删除时间
}

// TableName 指定表名
func (ProductSKU) TableName() string {
	return "product_skus"
}
