package giftmessage

import "errors"

var (
	// ErrCommerceUnavailable 订单存储未就绪
	ErrCommerceUnavailable = errors.New("commerce platform not loaded")
	// ErrNoOrders 没有任何订单
	ErrNoOrders = errors.New("no orders found")
)
