package repository

import (
	"github.com/dujiao-next/gift-message/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	GetByID(id uint, onlyActive bool) (*models.Product, error)
	Create(product *models.Product) error
	CountBySlug(slug string) (int64, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// activeProducts 预加载规格；onlyActive 时商品与规格都只取上架的
func activeProducts(query *gorm.DB, onlyActive bool) *gorm.DB {
	query = query.Preload("SKUs", func(db *gorm.DB) *gorm.DB {
		if onlyActive {
			db = db.Where("is_active = ?", true)
		}
		return db.Order("sort_order DESC, id ASC")
	})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	return query
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := activeProducts(r.db.Model(&models.Product{}), filter.OnlyActive)
	query = query.Scopes(keywordScope(filter.Search, []string{"slug"}, []string{"title_json"}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Scopes(paginate(filter.Page, filter.PageSize))
	if err := query.Order("sort_order DESC, id ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	return firstOrNil[models.Product](activeProducts(r.db, onlyActive).Where("slug = ?", slug))
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint, onlyActive bool) (*models.Product, error) {
	return firstOrNil[models.Product](activeProducts(r.db, onlyActive), id)
}

// Create 创建商品（连同规格）
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
