package service

import (
	"context"
	"strings"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/repository"
)

// OrderService 订单查询服务
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// GetByID 根据 ID 获取订单
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	if id == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNo 根据订单号获取订单
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Latest 获取最新订单，无订单时返回 nil, nil
func (s *OrderService) Latest() (*models.Order, error) {
	return s.orderRepo.Latest()
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return s.orderRepo.ListAdmin(filter)
}

// Store 返回订单只读视图存储
func (s *OrderService) Store() *OrderStore {
	return &OrderStore{orders: s}
}

// OrderStore 以只读视图暴露订单，找不到时返回无类型 nil
type OrderStore struct {
	orders *OrderService
}

// GetOrder 根据 ID 获取订单视图
func (s *OrderStore) GetOrder(_ context.Context, id uint) (hooks.OrderLike, error) {
	order, err := s.orders.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	return order, nil
}

// LatestOrder 获取最新订单视图
func (s *OrderStore) LatestOrder(_ context.Context) (hooks.OrderLike, error) {
	order, err := s.orders.Latest()
	if err != nil || order == nil {
		return nil, err
	}
	return order, nil
}
