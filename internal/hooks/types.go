package hooks

import (
	"context"
	"encoding/json"
	"html/template"
	"strings"
	"time"
)

// FormValues 请求表单读取接口（url.Values 即满足）
type FormValues interface {
	Has(key string) bool
	Get(key string) string
}

// HasMetadata 可读写元数据的行项目
type HasMetadata interface {
	GetMeta(key string) string
	// AddMeta 写入元数据；unique 为 true 时覆盖同名 key
	AddMeta(key, value string, unique bool)
}

// OrderLike 订单只读视图
type OrderLike interface {
	GetID() uint
	GetItems() []HasMetadata
	GetBillingFullName() string
	GetShippingFullName() string
	// GetDateCreated 无创建时间时返回 nil
	GetDateCreated() *time.Time
}

// Viewer 当前访问者
type Viewer interface {
	IsLoggedIn() bool
	Can(capability string) bool
}

// Anonymous 未登录访问者
type Anonymous struct{}

// IsLoggedIn 未登录
func (Anonymous) IsLoggedIn() bool { return false }

// Can 无任何能力
func (Anonymous) Can(string) bool { return false }

// NoticeKind 提示类型
type NoticeKind string

const (
	NoticeError   NoticeKind = "error"
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "notice"
)

// Notice 用户可见提示
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Notices 单次请求内收集的提示
type Notices struct {
	items []Notice
}

// Add 追加提示
func (n *Notices) Add(kind NoticeKind, message string) {
	if n == nil || strings.TrimSpace(message) == "" {
		return
	}
	n.items = append(n.items, Notice{Kind: kind, Message: message})
}

// All 返回全部提示
func (n *Notices) All() []Notice {
	if n == nil {
		return nil
	}
	return append([]Notice(nil), n.items...)
}

// HasErrors 是否包含错误提示
func (n *Notices) HasErrors() bool {
	if n == nil {
		return false
	}
	for _, item := range n.items {
		if item.Kind == NoticeError {
			return true
		}
	}
	return false
}

// Asset 静态资源
type Asset struct {
	Handle string
	URL    string
}

type localizedData struct {
	object string
	data   interface{}
}

// AssetQueue 页面资源队列
type AssetQueue struct {
	styles    []Asset
	scripts   []Asset
	localized map[string]localizedData
}

// EnqueueStyle 加入样式表，同 handle 只加入一次
func (q *AssetQueue) EnqueueStyle(handle, url string) {
	if q.hasHandle(q.styles, handle) {
		return
	}
	q.styles = append(q.styles, Asset{Handle: handle, URL: url})
}

// EnqueueScript 加入脚本，同 handle 只加入一次
func (q *AssetQueue) EnqueueScript(handle, url string) {
	if q.hasHandle(q.scripts, handle) {
		return
	}
	q.scripts = append(q.scripts, Asset{Handle: handle, URL: url})
}

// Localize 为脚本注入数据对象
func (q *AssetQueue) Localize(handle, object string, data interface{}) {
	if q.localized == nil {
		q.localized = make(map[string]localizedData)
	}
	q.localized[handle] = localizedData{object: object, data: data}
}

// Styles 已加入的样式表
func (q *AssetQueue) Styles() []Asset {
	return append([]Asset(nil), q.styles...)
}

// Scripts 已加入的脚本
func (q *AssetQueue) Scripts() []Asset {
	return append([]Asset(nil), q.scripts...)
}

// InlineData 返回脚本的注入数据，形如 var WCGM = {...};
func (q *AssetQueue) InlineData(handle string) template.JS {
	item, ok := q.localized[handle]
	if !ok {
		return ""
	}
	raw, err := json.Marshal(item.data)
	if err != nil {
		return ""
	}
	return template.JS("var " + item.object + " = " + string(raw) + ";")
}

func (q *AssetQueue) hasHandle(list []Asset, handle string) bool {
	for _, item := range list {
		if item.Handle == handle {
			return true
		}
	}
	return false
}

// PageContext 店面页面渲染上下文
type PageContext struct {
	Page      string
	IsProduct bool
	Locale    string
	Assets    *AssetQueue
}

// RenderContext 商品表单片段渲染上下文
type RenderContext struct {
	ProductID uint
	Form      FormValues // 上一次提交的表单，可能为 nil
	Session   string
	Locale    string
	out       strings.Builder
}

// Write 追加 HTML 片段（调用方负责转义）
func (r *RenderContext) Write(fragment string) {
	r.out.WriteString(fragment)
}

// HTML 返回已渲染片段
func (r *RenderContext) HTML() template.HTML {
	return template.HTML(r.out.String())
}

// AddToCartContext 加入购物车上下文
type AddToCartContext struct {
	ProductID   uint
	VariationID uint
	Quantity    int
	Form        FormValues
	Session     string
	Locale      string
	Notices     *Notices
}

// ItemData 购物车行展示数据
type ItemData struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// CartLine 购物车行只读视图
type CartLine struct {
	ProductID   uint
	VariationID uint
	Quantity    int
	Extra       map[string]interface{}
	Locale      string
}

// OrderLineItemContext 下单时每个行项目的创建上下文
type OrderLineItemContext struct {
	Item        HasMetadata
	CartItemKey string
	Values      map[string]interface{}
	Order       OrderLike
	Locale      string
}

// Column 后台订单列表列
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ColumnsContext 列定义上下文
type ColumnsContext struct {
	Viewer Viewer
	Locale string
}

// LegacyCellContext 旧版订单表单元格上下文，只携带订单 ID
type LegacyCellContext struct {
	Ctx     context.Context
	Column  string
	OrderID uint
	Viewer  Viewer
	Locale  string
}

// HPOSCellContext 新版订单表单元格上下文，携带订单对象
type HPOSCellContext struct {
	Column string
	Order  OrderLike
	Viewer Viewer
	Locale string
}
