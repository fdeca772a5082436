package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/queue"
	"github.com/dujiao-next/gift-message/internal/repository"

	"gorm.io/gorm"
)

// CheckoutInput 结算输入
type CheckoutInput struct {
	SessionID              string
	Locale                 string
	ClientIP               string
	Origin                 string
	BillingFirstName       string
	BillingLastName        string
	BillingEmail           string
	ShipToDifferentAddress bool
	ShippingFirstName      string
	ShippingLastName       string
}

// CheckoutService 结算服务：购物车 → 订单
type CheckoutService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	registry    *hooks.Registry
	queueClient *queue.Client
	currency    string
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, registry *hooks.Registry, queueClient *queue.Client, currency string) *CheckoutService {
	if registry == nil {
		registry = hooks.NewRegistry()
	}
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		registry:    registry,
		queueClient: queueClient,
		currency:    strings.TrimSpace(currency),
	}
}

// PlaceOrder 创建订单：每个行项目触发创建扩展点，订单落库后清空购物车
func (s *CheckoutService) PlaceOrder(input CheckoutInput) (*models.Order, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return nil, ErrCartSessionMissing
	}
	email := strings.TrimSpace(input.BillingEmail)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrCheckoutInvalid
		}
	}
	cartItems, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	origin := strings.TrimSpace(input.Origin)
	if origin == "" {
		origin = constants.OrderOriginStorefront
	}
	order := &models.Order{
		OrderNo:          generateOrderNo(),
		SessionID:        sessionID,
		Status:           constants.OrderStatusProcessing,
		Origin:           origin,
		Currency:         s.currency,
		BillingFirstName: strings.TrimSpace(input.BillingFirstName),
		BillingLastName:  strings.TrimSpace(input.BillingLastName),
		BillingEmail:     email,
		Locale:           input.Locale,
		ClientIP:         input.ClientIP,
	}
	if input.ShipToDifferentAddress {
		order.ShippingFirstName = strings.TrimSpace(input.ShippingFirstName)
		order.ShippingLastName = strings.TrimSpace(input.ShippingLastName)
	} else {
		order.ShippingFirstName = order.BillingFirstName
		order.ShippingLastName = order.BillingLastName
	}

	total := models.MustMoney("0")
	order.Items = make([]models.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		if cartItem.Product == nil {
			continue
		}
		price := unitPrice(cartItem.Product, cartItem.SKU)
		item := models.OrderItem{
			ProductID:  cartItem.ProductID,
			SKUID:      cartItem.SKUID,
			TitleJSON:  cartItem.Product.TitleJSON,
			UnitPrice:  price,
			Quantity:   cartItem.Quantity,
			TotalPrice: price.Times(cartItem.Quantity),
		}
		if cartItem.SKU != nil {
			item.SKUCode = cartItem.SKU.SKUCode
		}
		total = total.Plus(item.TotalPrice)
		order.Items = append(order.Items, item)
	}
	if len(order.Items) == 0 {
		return nil, ErrCartEmpty
	}
	order.TotalAmount = total

	// 切片已定长，行项目指针在扩展点回调期间保持有效
	itemIndex := 0
	for _, cartItem := range cartItems {
		if cartItem.Product == nil {
			continue
		}
		s.registry.CreateOrderLineItem.Do(&hooks.OrderLineItemContext{
			Item:        &order.Items[itemIndex],
			CartItemKey: cartItem.CartKey,
			Values:      cartItem.ExtraJSON,
			Order:       order,
			Locale:      input.Locale,
		})
		itemIndex++
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearSession(sessionID)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order_placed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"items", len(order.Items),
		"total", order.TotalAmount.String(),
	)

	if email != "" && s.queueClient != nil {
		if err := s.queueClient.EnqueueOrderReceivedEmail(context.Background(), queue.OrderReceivedEmailPayload{
			OrderID: order.ID,
			Locale:  input.Locale,
		}); err != nil {
			logger.Warnw("order_received_email_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("GM%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
