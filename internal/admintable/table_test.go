package admintable

import (
	"context"
	"testing"
	"time"

	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/giftmessage"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	orders map[uint]*models.Order
}

func (s *memoryStore) GetOrder(_ context.Context, id uint) (hooks.OrderLike, error) {
	if order, ok := s.orders[id]; ok {
		return order, nil
	}
	return nil, nil
}

func (s *memoryStore) LatestOrder(_ context.Context) (hooks.OrderLike, error) {
	return nil, nil
}

type capViewer map[string]bool

func (v capViewer) IsLoggedIn() bool           { return true }
func (v capViewer) Can(capability string) bool { return v[capability] }

func sampleOrders() []models.Order {
	gift := models.OrderItem{ID: 1}
	gift.AddMeta(giftmessage.HiddenMetaKey, "<b>Love</b>", true)
	return []models.Order{
		{
			ID:               1,
			OrderNo:          "GM1",
			Status:           constants.OrderStatusProcessing,
			Origin:           constants.OrderOriginStorefront,
			Currency:         "CNY",
			TotalAmount:      models.MustMoney("9.9"),
			BillingFirstName: "Ada",
			BillingEmail:     "ada@example.com",
			CreatedAt:        time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
			Items:            []models.OrderItem{gift},
		},
		{
			ID:          2,
			OrderNo:     "GM2<x>",
			Status:      constants.OrderStatusCompleted,
			Currency:    "CNY",
			TotalAmount: models.MustMoney("1"),
			Items:       []models.OrderItem{{ID: 2}},
		},
	}
}

func newPluginBuilder(t *testing.T, orders []models.Order) *Builder {
	t.Helper()
	store := &memoryStore{orders: map[uint]*models.Order{}}
	for i := range orders {
		store.orders[orders[i].ID] = &orders[i]
	}
	registry := hooks.NewRegistry()
	plugin := giftmessage.New(registry, giftmessage.Options{Locale: "en-US", Orders: store})
	require.True(t, plugin.Load())
	return NewBuilder(registry)
}

func columnKeys(columns []hooks.Column) []string {
	keys := make([]string, 0, len(columns))
	for _, c := range columns {
		keys = append(keys, c.Key)
	}
	return keys
}

func TestLegacyTableInjectsColumnAfterTotal(t *testing.T) {
	orders := sampleOrders()
	builder := newPluginBuilder(t, orders)
	manager := capViewer{constants.CapabilityManageOrders: true}

	table := builder.Legacy(context.Background(), orders, manager, "en-US")

	assert.Equal(t, []string{
		constants.OrderColumnNumber,
		constants.OrderColumnDate,
		constants.OrderColumnStatus,
		constants.OrderColumnBilling,
		constants.OrderColumnTotal,
		giftmessage.ColumnKey,
	}, columnKeys(table.Columns))
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "&lt;b&gt;Love&lt;/b&gt;", table.Rows[0].Cells[giftmessage.ColumnKey])
	assert.Equal(t, giftmessage.Placeholder, table.Rows[1].Cells[giftmessage.ColumnKey])
	assert.Equal(t, "#GM2&lt;x&gt;", table.Rows[1].Cells[constants.OrderColumnNumber])
	assert.Equal(t, "Ada<br>ada@example.com", table.Rows[0].Cells[constants.OrderColumnBilling])
	assert.Equal(t, "2024-05-01 08:30", table.Rows[0].Cells[constants.OrderColumnDate])
	assert.Equal(t, "9.90 CNY", table.Rows[0].Cells[constants.OrderColumnTotal])
}

func TestHPOSTableAppendsColumn(t *testing.T) {
	orders := sampleOrders()
	builder := newPluginBuilder(t, orders)

	table := builder.HPOS(orders, capViewer{constants.CapabilityManageOrders: true}, "en-US")

	keys := columnKeys(table.Columns)
	require.Len(t, keys, 7)
	assert.Equal(t, constants.OrderColumnOrigin, keys[5])
	assert.Equal(t, giftmessage.ColumnKey, keys[6])
	assert.Equal(t, "Gift Message", table.Columns[6].Label)
	assert.Equal(t, "&lt;b&gt;Love&lt;/b&gt;", table.Rows[0].Cells[giftmessage.ColumnKey])
	assert.Equal(t, "storefront", table.Rows[0].Cells[constants.OrderColumnOrigin])
}

func TestTablesHideColumnWithoutCapability(t *testing.T) {
	orders := sampleOrders()
	builder := newPluginBuilder(t, orders)

	legacy := builder.Legacy(context.Background(), orders, capViewer{}, "en-US")
	assert.NotContains(t, columnKeys(legacy.Columns), giftmessage.ColumnKey)

	hpos := builder.HPOS(orders, nil, "en-US")
	assert.NotContains(t, columnKeys(hpos.Columns), giftmessage.ColumnKey)
	_, ok := hpos.Rows[0].Cells[giftmessage.ColumnKey]
	assert.False(t, ok)
}

func TestBuiltinCellUnknownColumnIsEmpty(t *testing.T) {
	order := sampleOrders()[1]
	assert.Equal(t, "", builtinCell(&order, "unknown", "en-US"))
	assert.Equal(t, "Guest", builtinCell(&order, constants.OrderColumnBilling, "en-US"))
	assert.Equal(t, "", builtinCell(&models.Order{}, constants.OrderColumnDate, "en-US"))
}
