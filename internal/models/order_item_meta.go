package models

// OrderItemMeta 订单项元数据表（key/value，同一订单项可有多条）
type OrderItemMeta struct {
	ID          uint   `gorm:"primarykey" json:"id"`                                  // 主键
	OrderItemID uint   `gorm:"index;not null" json:"order_item_id"`                   // 订单项ID
	MetaKey     string `gorm:"type:varchar(255);index;not null" json:"key"`           // 元数据 key
	MetaValue   string `gorm:"type:text" json:"value"`                                // 元数据值
}

// TableName 指定表名
func (OrderItemMeta) TableName() string {
	return "order_item_meta"
}
