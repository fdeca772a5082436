package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/queue"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/hibiken/asynq"
)

type stubOrders struct {
	order *models.Order
	err   error
}

func (s *stubOrders) GetByID(uint) (*models.Order, error) {
	return s.order, s.err
}

type stubMailer struct {
	calls  int
	locale string
	err    error
}

func (m *stubMailer) SendOrderReceivedEmail(_ *models.Order, locale string) error {
	m.calls++
	m.locale = locale
	return m.err
}

func newTask(t *testing.T, payload queue.OrderReceivedEmailPayload) *asynq.Task {
	t.Helper()
	task, err := payload.Task()
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	return task
}

func TestHandleOrderReceivedEmailSends(t *testing.T) {
	mailer := &stubMailer{}
	consumer := NewConsumer(&stubOrders{order: &models.Order{ID: 1, BillingEmail: "a@example.com", Locale: "zh-CN"}}, mailer)

	if err := consumer.handleOrderReceivedEmail(context.Background(), newTask(t, queue.OrderReceivedEmailPayload{OrderID: 1})); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if mailer.calls != 1 {
		t.Fatalf("mailer should be called once, got %d", mailer.calls)
	}
	if mailer.locale != "zh-CN" {
		t.Fatalf("locale should fall back to order locale, got %s", mailer.locale)
	}
}

func TestHandleOrderReceivedEmailSkips(t *testing.T) {
	mailer := &stubMailer{}

	missing := NewConsumer(&stubOrders{err: service.ErrOrderNotFound}, mailer)
	if err := missing.handleOrderReceivedEmail(context.Background(), newTask(t, queue.OrderReceivedEmailPayload{OrderID: 9})); err != nil {
		t.Fatalf("missing order should be skipped, got %v", err)
	}

	noEmail := NewConsumer(&stubOrders{order: &models.Order{ID: 2}}, mailer)
	if err := noEmail.handleOrderReceivedEmail(context.Background(), newTask(t, queue.OrderReceivedEmailPayload{OrderID: 2})); err != nil {
		t.Fatalf("empty receiver should be skipped, got %v", err)
	}

	if err := noEmail.handleOrderReceivedEmail(context.Background(), newTask(t, queue.OrderReceivedEmailPayload{})); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
	if mailer.calls != 0 {
		t.Fatalf("mailer should not be called, got %d", mailer.calls)
	}
}

func TestHandleOrderReceivedEmailRetryPolicy(t *testing.T) {
	order := &models.Order{ID: 3, BillingEmail: "a@example.com"}

	disabled := NewConsumer(&stubOrders{order: order}, &stubMailer{err: service.ErrEmailServiceDisabled})
	if err := disabled.handleOrderReceivedEmail(context.Background(), newTask(t, queue.OrderReceivedEmailPayload{OrderID: 3})); err != nil {
		t.Fatalf("disabled email should drop the task, got %v", err)
	}

	transient := errors.New("dial tcp timeout")
	flaky := NewConsumer(&stubOrders{order: order}, &stubMailer{err: transient})
	if err := flaky.handleOrderReceivedEmail(context.Background(), newTask(t, queue.OrderReceivedEmailPayload{OrderID: 3})); !errors.Is(err, transient) {
		t.Fatalf("transient error should be returned for retry, got %v", err)
	}
}
