package giftmessage

import (
	"context"
	"errors"
	"testing"

	"github.com/dujiao-next/gift-message/internal/hooks"

	"github.com/stretchr/testify/assert"
)

func columnKeys(columns []hooks.Column) []string {
	keys := make([]string, 0, len(columns))
	for _, c := range columns {
		keys = append(keys, c.Key)
	}
	return keys
}

func TestInjectLegacyColumnAfterTotal(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{})
	base := []hooks.Column{
		{Key: "order_number"}, {Key: "order_date"}, {Key: "order_total"}, {Key: "actions"},
	}

	got := p.InjectLegacyColumn(base, hooks.ColumnsContext{Viewer: orderManager})
	assert.Equal(t, []string{"order_number", "order_date", "order_total", ColumnKey, "actions"}, columnKeys(got))
	assert.Equal(t, "Gift Message", got[3].Label)
}

func TestInjectLegacyColumnAppendsWithoutTotal(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{})
	got := p.InjectLegacyColumn([]hooks.Column{{Key: "order_number"}}, hooks.ColumnsContext{Viewer: orderManager})
	assert.Equal(t, []string{"order_number", ColumnKey}, columnKeys(got))
}

func TestInjectColumnsRequireCapability(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{})
	base := []hooks.Column{{Key: "order_number"}, {Key: "order_total"}}

	assert.Equal(t, base, p.InjectLegacyColumn(base, hooks.ColumnsContext{Viewer: auditor}))
	assert.Equal(t, base, p.InjectHPOSColumn(base, hooks.ColumnsContext{Viewer: auditor}))
	assert.Equal(t, base, p.InjectHPOSColumn(base, hooks.ColumnsContext{}))
}

func TestInjectHPOSColumnAppends(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{})
	base := []hooks.Column{{Key: "order_number"}, {Key: "order_total"}, {Key: "origin"}}
	got := p.InjectHPOSColumn(base, hooks.ColumnsContext{Viewer: orderManager})
	assert.Equal(t, []string{"order_number", "order_total", "origin", ColumnKey}, columnKeys(got))
}

func TestRenderCellsHideContentWithoutCapability(t *testing.T) {
	order := &fakeOrder{id: 1, items: []*fakeItem{itemWith(HiddenMetaKey, "secret")}}
	p, _ := newTestPlugin(&fakeStore{orders: map[uint]*fakeOrder{1: order}})

	assert.Equal(t, Placeholder, p.RenderLegacyCell("", hooks.LegacyCellContext{Column: ColumnKey, OrderID: 1, Viewer: auditor}))
	assert.Equal(t, Placeholder, p.RenderHPOSCell("", hooks.HPOSCellContext{Column: ColumnKey, Order: order, Viewer: auditor}))
	assert.Equal(t, Placeholder, p.RenderHPOSCell("", hooks.HPOSCellContext{Column: ColumnKey, Order: order}))
}

func TestRenderCellsShareOutput(t *testing.T) {
	order := &fakeOrder{id: 1, items: []*fakeItem{
		itemWith(HiddenMetaKey, "Tom & Jerry"),
		itemWith(HiddenMetaKey, "B"),
	}}
	p, _ := newTestPlugin(&fakeStore{orders: map[uint]*fakeOrder{1: order}})

	legacy := p.RenderLegacyCell("", hooks.LegacyCellContext{Ctx: context.Background(), Column: ColumnKey, OrderID: 1, Viewer: orderManager})
	hpos := p.RenderHPOSCell("", hooks.HPOSCellContext{Column: ColumnKey, Order: order, Viewer: orderManager})
	assert.Equal(t, "Tom &amp; Jerry; B", legacy)
	assert.Equal(t, legacy, hpos)
}

func TestRenderCellsPlaceholders(t *testing.T) {
	empty := &fakeOrder{id: 2, items: []*fakeItem{{}}}
	p, _ := newTestPlugin(&fakeStore{orders: map[uint]*fakeOrder{2: empty}})

	assert.Equal(t, Placeholder, p.RenderLegacyCell("", hooks.LegacyCellContext{Column: ColumnKey, OrderID: 2, Viewer: orderManager}))
	assert.Equal(t, Placeholder, p.RenderLegacyCell("", hooks.LegacyCellContext{Column: ColumnKey, OrderID: 404, Viewer: orderManager}))
	assert.Equal(t, Placeholder, p.RenderHPOSCell("", hooks.HPOSCellContext{Column: ColumnKey, Viewer: orderManager}))

	var missing *fakeOrder
	assert.Equal(t, Placeholder, p.RenderHPOSCell("", hooks.HPOSCellContext{Column: ColumnKey, Order: missing, Viewer: orderManager}))

	broken, _ := newTestPlugin(&fakeStore{err: errors.New("db down")})
	assert.Equal(t, Placeholder, broken.RenderLegacyCell("", hooks.LegacyCellContext{Column: ColumnKey, OrderID: 2, Viewer: orderManager}))
}

func TestRenderCellsIgnoreOtherColumns(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{})
	assert.Equal(t, "$10.00", p.RenderLegacyCell("$10.00", hooks.LegacyCellContext{Column: "order_total", Viewer: orderManager}))
	assert.Equal(t, "web", p.RenderHPOSCell("web", hooks.HPOSCellContext{Column: "origin", Viewer: orderManager}))
}
