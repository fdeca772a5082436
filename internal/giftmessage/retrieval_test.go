package giftmessage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dujiao-next/gift-message/internal/hooks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestOrderSummaryWithoutStore(t *testing.T) {
	p := New(hooks.NewRegistry(), Options{Locale: "en-US"})
	_, err := p.LatestOrderSummary(context.Background())
	assert.ErrorIs(t, err, ErrCommerceUnavailable)
}

func TestLatestOrderSummaryNoOrders(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{})
	_, err := p.LatestOrderSummary(context.Background())
	assert.ErrorIs(t, err, ErrNoOrders)
}

func TestLatestOrderSummaryStoreError(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{err: errors.New("db down")})
	_, err := p.LatestOrderSummary(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoOrders)
}

func TestLatestOrderSummary(t *testing.T) {
	created := time.Date(2026, 3, 8, 14, 30, 0, 0, time.FixedZone("CST", 8*3600))
	latest := &fakeOrder{
		id:      42,
		billing: "Ada Lovelace",
		created: &created,
		items: []*fakeItem{
			itemWith(HiddenMetaKey, "A"),
			itemWith(HiddenMetaKey, "B"),
			itemWith(HiddenMetaKey, "A"),
		},
	}
	p, _ := newTestPlugin(&fakeStore{latest: latest})

	summary, err := p.LatestOrderSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(42), summary.OrderID)
	assert.Equal(t, "Ada Lovelace", summary.CustomerName)
	assert.Equal(t, "A; B", summary.GiftMessage)
	require.NotNil(t, summary.OrderDate)
	assert.Equal(t, "2026-03-08T14:30:00+08:00", *summary.OrderDate)
}

func TestLatestOrderSummaryWithoutMessagesOrDate(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{latest: &fakeOrder{id: 7, items: []*fakeItem{{}}}})

	summary, err := p.LatestOrderSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Guest", summary.CustomerName)
	assert.Equal(t, "", summary.GiftMessage)
	assert.Nil(t, summary.OrderDate)
}

func TestCustomerNameFallback(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", CustomerName(&fakeOrder{billing: "Ada Lovelace", shipping: "Charles Babbage"}, "en-US"))
	assert.Equal(t, "Charles Babbage", CustomerName(&fakeOrder{billing: "  ", shipping: "Charles Babbage"}, "en-US"))
	assert.Equal(t, "Guest", CustomerName(&fakeOrder{}, "en-US"))
	assert.Equal(t, "访客", CustomerName(&fakeOrder{}, "zh-CN"))
}

func TestFormatOrderDate(t *testing.T) {
	assert.Nil(t, FormatOrderDate(nil))
	zero := time.Time{}
	assert.Nil(t, FormatOrderDate(&zero))

	utc := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-01-02T03:04:05+00:00", *FormatOrderDate(&utc))
}
