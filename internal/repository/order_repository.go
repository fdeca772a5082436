package repository

import (
	"strings"

	"github.com/dujiao-next/gift-message/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNo(orderNo string) (*models.Order, error)
	Latest() (*models.Order, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func withItemsAndMeta(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Meta", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") })
}

// Create 创建订单、订单项与订单项元数据
func (r *GormOrderRepository) Create(order *models.Order) error {
	if order == nil {
		return nil
	}
	// 关联按 Items -> Meta 级联写入
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Create(order).Error
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	return firstOrNil[models.Order](withItemsAndMeta(r.db), id)
}

// GetByOrderNo 根据订单号获取订单
func (r *GormOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	return firstOrNil[models.Order](withItemsAndMeta(r.db).Where("order_no = ?", orderNo))
}

// Latest 获取最新创建的订单
func (r *GormOrderRepository) Latest() (*models.Order, error) {
	return firstOrNil[models.Order](withItemsAndMeta(r.db).Order("created_at desc").Order("id desc"))
}

// ListAdmin 管理端订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderNo := strings.TrimSpace(filter.OrderNo); orderNo != "" {
		query = query.Where("order_no = ?", orderNo)
	}
	query = query.Scopes(keywordScope(filter.Keyword, []string{
		"order_no", "billing_first_name", "billing_last_name", "billing_email",
	}, nil))
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = withItemsAndMeta(query).Scopes(paginate(filter.Page, filter.PageSize))

	var orders []models.Order
	if err := query.Order("created_at desc").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
