package worker

import (
	"context"
	"errors"

	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/queue"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/hibiken/asynq"
)

// OrderLoader 按 ID 读取订单
type OrderLoader interface {
	GetByID(id uint) (*models.Order, error)
}

// OrderMailer 发送下单邮件
type OrderMailer interface {
	SendOrderReceivedEmail(order *models.Order, locale string) error
}

// Consumer 异步任务消费者
type Consumer struct {
	Orders OrderLoader
	Mailer OrderMailer
}

// NewConsumer 创建消费者
func NewConsumer(orders OrderLoader, mailer OrderMailer) *Consumer {
	return &Consumer{
		Orders: orders,
		Mailer: mailer,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderReceivedEmail, c.handleOrderReceivedEmail)
}

func (c *Consumer) handleOrderReceivedEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_received_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.DecodeOrderReceivedEmail(task)
	if err != nil {
		logger.Warnw("worker_order_received_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_received_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.Orders.GetByID(payload.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			logger.Debugw("worker_order_received_email_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		}
		logger.Warnw("worker_order_received_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order.BillingEmail == "" {
		logger.Debugw("worker_order_received_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.Mailer == nil {
		logger.Warnw("worker_order_received_email_skip_mailer_nil", "order_id", order.ID)
		return nil
	}
	locale := payload.Locale
	if locale == "" {
		locale = order.Locale
	}
	if err := c.Mailer.SendOrderReceivedEmail(order, locale); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailServiceDisabled),
			errors.Is(err, service.ErrEmailServiceNotConfigured),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrEmailRecipientRejected):
			// 不可重试的错误直接丢弃任务
			logger.Infow("worker_order_received_email_dropped", "order_id", order.ID, "reason", err.Error())
			return nil
		}
		logger.Warnw("worker_order_received_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_order_received_email_sent", "order_id", order.ID, "order_no", order.OrderNo)
	return nil
}
