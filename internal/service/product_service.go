package service

import (
	"strings"

	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ListPublic 获取上架商品列表
func (s *ProductService) ListPublic(search string, page, pageSize int) ([]models.Product, int64, error) {
	return s.repo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(search),
		OnlyActive: true,
	})
}

// GetPublicBySlug 获取上架商品详情
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetPublicByID 根据 ID 获取上架商品
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct 创建商品（用于初始化数据）
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product == nil || strings.TrimSpace(product.Slug) == "" {
		return ErrProductNotFound
	}
	count, err := s.repo.CountBySlug(product.Slug)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.repo.Create(product)
}

// findSKU 在商品规格中查找指定规格
func findSKU(product *models.Product, skuID uint) *models.ProductSKU {
	if product == nil || skuID == 0 {
		return nil
	}
	for i := range product.SKUs {
		if product.SKUs[i].ID == skuID {
			return &product.SKUs[i]
		}
	}
	return nil
}
