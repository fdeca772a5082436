package repository

import (
	"github.com/dujiao-next/gift-message/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListBySession(sessionID string) ([]models.CartItem, error)
	GetBySessionAndKey(sessionID, cartKey string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	ClearSession(sessionID string) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListBySession 获取会话购物车项（按加购顺序）
func (r *GormCartRepository) ListBySession(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if sessionID == "" {
		return items, nil
	}
	err := r.db.Preload("Product").Preload("SKU").
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetBySessionAndKey 根据会话与行标识获取购物车项
func (r *GormCartRepository) GetBySessionAndKey(sessionID, cartKey string) (*models.CartItem, error) {
	return firstOrNil[models.CartItem](r.db.Where("session_id = ? AND cart_key = ?", sessionID, cartKey))
}

// Create 新增购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// UpdateQuantity 更新数量
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

// ClearSession 清空会话购物车（物理删除以释放唯一索引）
func (r *GormCartRepository) ClearSession(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return r.db.Unscoped().Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
