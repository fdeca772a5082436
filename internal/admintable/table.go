package admintable

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/models"
)

const dateLayout = "2006-01-02 15:04"

// Row 表格行，cells 为列 key → HTML 片段
type Row struct {
	OrderID uint              `json:"order_id"`
	Cells   map[string]string `json:"cells"`
}

// Table 订单列表表格
type Table struct {
	Columns []hooks.Column `json:"columns"`
	Rows    []Row          `json:"rows"`
}

// Builder 订单列表构建器，列与单元格均经扩展点过滤
type Builder struct {
	registry *hooks.Registry
}

// NewBuilder 创建表格构建器
func NewBuilder(registry *hooks.Registry) *Builder {
	if registry == nil {
		registry = hooks.NewRegistry()
	}
	return &Builder{registry: registry}
}

var legacyColumnKeys = []string{
	constants.OrderColumnNumber,
	constants.OrderColumnDate,
	constants.OrderColumnStatus,
	constants.OrderColumnBilling,
	constants.OrderColumnTotal,
}

var hposColumnKeys = append(append([]string(nil), legacyColumnKeys...), constants.OrderColumnOrigin)

// Legacy 旧版订单表：单元格扩展只拿到订单 ID
func (b *Builder) Legacy(ctx context.Context, orders []models.Order, viewer hooks.Viewer, locale string) Table {
	viewer = ensureViewer(viewer)
	columns := b.registry.LegacyOrderColumns.Apply(baseColumns(legacyColumnKeys, locale), hooks.ColumnsContext{Viewer: viewer, Locale: locale})
	table := Table{Columns: columns, Rows: make([]Row, 0, len(orders))}
	for i := range orders {
		order := &orders[i]
		row := Row{OrderID: order.ID, Cells: make(map[string]string, len(columns))}
		for _, column := range columns {
			row.Cells[column.Key] = b.registry.LegacyOrderColumnCell.Apply(builtinCell(order, column.Key, locale), hooks.LegacyCellContext{
				Ctx:     ctx,
				Column:  column.Key,
				OrderID: order.ID,
				Viewer:  viewer,
				Locale:  locale,
			})
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// HPOS 新版订单表：单元格扩展直接拿到订单对象
func (b *Builder) HPOS(orders []models.Order, viewer hooks.Viewer, locale string) Table {
	viewer = ensureViewer(viewer)
	columns := b.registry.HPOSOrderColumns.Apply(baseColumns(hposColumnKeys, locale), hooks.ColumnsContext{Viewer: viewer, Locale: locale})
	table := Table{Columns: columns, Rows: make([]Row, 0, len(orders))}
	for i := range orders {
		order := &orders[i]
		row := Row{OrderID: order.ID, Cells: make(map[string]string, len(columns))}
		for _, column := range columns {
			row.Cells[column.Key] = b.registry.HPOSOrderColumnCell.Apply(builtinCell(order, column.Key, locale), hooks.HPOSCellContext{
				Column: column.Key,
				Order:  order,
				Viewer: viewer,
				Locale: locale,
			})
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func ensureViewer(viewer hooks.Viewer) hooks.Viewer {
	if viewer == nil {
		return hooks.Anonymous{}
	}
	return viewer
}

func baseColumns(keys []string, locale string) []hooks.Column {
	columns := make([]hooks.Column, 0, len(keys))
	for _, key := range keys {
		columns = append(columns, hooks.Column{Key: key, Label: i18n.T(locale, "admin.column."+key)})
	}
	return columns
}

// builtinCell 内置列的转义内容，未知列为空
func builtinCell(order *models.Order, key, locale string) string {
	switch key {
	case constants.OrderColumnNumber:
		return html.EscapeString("#" + order.OrderNo)
	case constants.OrderColumnDate:
		if created := order.GetDateCreated(); created != nil {
			return created.Format(dateLayout)
		}
		return ""
	case constants.OrderColumnStatus:
		return html.EscapeString(order.Status)
	case constants.OrderColumnBilling:
		name := order.GetBillingFullName()
		if name == "" {
			name = i18n.T(locale, "giftmessage.guest")
		}
		parts := []string{html.EscapeString(name)}
		if email := strings.TrimSpace(order.BillingEmail); email != "" {
			parts = append(parts, html.EscapeString(email))
		}
		return strings.Join(parts, "<br>")
	case constants.OrderColumnTotal:
		return html.EscapeString(fmt.Sprintf("%s %s", order.TotalAmount.String(), order.Currency))
	case constants.OrderColumnOrigin:
		return html.EscapeString(order.Origin)
	default:
		return ""
	}
}
