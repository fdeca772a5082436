package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	Status      string
	OrderNo     string
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// firstOrNil 查询单条记录，未找到返回 nil, nil
func firstOrNil[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	var record T
	err := query.First(&record, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
