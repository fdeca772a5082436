package giftmessage

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/logger"
)

// NonceIssuer 表单防伪令牌签发与校验
type NonceIssuer interface {
	Create(action, subject string) (string, error)
	Verify(token, action, subject string) bool
}

// OrderStore 订单读取接口，找不到时返回 nil, nil
type OrderStore interface {
	GetOrder(ctx context.Context, id uint) (hooks.OrderLike, error)
	LatestOrder(ctx context.Context) (hooks.OrderLike, error)
}

// Options 插件配置
type Options struct {
	MaxLength int    // 配置的最大长度，<=0 不覆盖
	Label     string // 配置的标签，为空不覆盖
	Locale    string // 站点语言
	AssetBase string // 静态资源 URL 前缀
	Nonces    NonceIssuer
	Orders    OrderStore
	Now       func() time.Time
}

// Plugin 礼品留言：进程内构造一次，向扩展点注册表登记全部回调
type Plugin struct {
	registry  *hooks.Registry
	nonces    NonceIssuer
	orders    OrderStore
	locale    string
	assetBase string
	now       func() time.Time
	seq       atomic.Uint64

	mu      sync.RWMutex
	loaded  bool
	notices []hooks.Notice
}

// New 创建插件实例
func New(registry *hooks.Registry, opts Options) *Plugin {
	if registry == nil {
		registry = hooks.NewRegistry()
	}
	p := &Plugin{
		registry:  registry,
		nonces:    opts.Nonces,
		orders:    opts.Orders,
		locale:    strings.TrimSpace(opts.Locale),
		assetBase: strings.TrimRight(strings.TrimSpace(opts.AssetBase), "/"),
		now:       opts.Now,
	}
	if p.locale == "" {
		p.locale = i18n.DefaultLocale()
	}
	if p.assetBase == "" {
		p.assetBase = "/assets/giftmessage"
	}
	if p.now == nil {
		p.now = time.Now
	}
	if opts.MaxLength > 0 {
		configured := opts.MaxLength
		registry.GiftMessageMaxLength.Add(1, func(int, struct{}) int { return configured })
	}
	if label := strings.TrimSpace(opts.Label); label != "" {
		registry.GiftMessageLabel.Add(1, func(string, string) string { return label })
	}
	return p
}

// Activate 启用前的依赖检查，订单存储缺失时拒绝启用
func (p *Plugin) Activate() error {
	if p.orders == nil {
		return ErrCommerceUnavailable
	}
	return nil
}

// Load 加载插件：依赖缺失时只登记后台提示，不挂载任何回调
func (p *Plugin) Load() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return true
	}
	if p.orders == nil {
		notice := hooks.Notice{Kind: hooks.NoticeError, Message: i18n.T(p.locale, "giftmessage.requires_store")}
		p.registry.AdminNotices.Add(hooks.DefaultPriority, func(list []hooks.Notice, viewer hooks.Viewer) []hooks.Notice {
			if viewer == nil || !viewer.IsLoggedIn() {
				return list
			}
			return append(list, notice)
		})
		p.notices = append(p.notices, notice)
		logger.Warnw("gift_message_dependency_missing", "dependency", "order_store")
		return false
	}

	r := p.registry
	r.EnqueueAssets.Add(hooks.DefaultPriority, p.EnqueueAssets)
	r.BeforeAddToCartButton.Add(hooks.DefaultPriority, p.RenderField)
	r.AddToCartValidation.Add(hooks.DefaultPriority, p.ValidateAddToCart)
	r.AddCartItemData.Add(hooks.DefaultPriority, p.AddCartItemData)
	r.GetItemData.Add(hooks.DefaultPriority, p.GetItemData)
	r.CreateOrderLineItem.Add(hooks.DefaultPriority, p.CreateOrderLineItem)
	r.LegacyOrderColumns.Add(20, p.InjectLegacyColumn)
	r.LegacyOrderColumnCell.Add(hooks.DefaultPriority, p.RenderLegacyCell)
	r.HPOSOrderColumns.Add(20, p.InjectHPOSColumn)
	r.HPOSOrderColumnCell.Add(hooks.DefaultPriority, p.RenderHPOSCell)
	p.loaded = true
	logger.Infow("gift_message_loaded", "locale", p.locale, "max_length", p.MaxLength())
	return true
}

// Loaded 是否已挂载回调
func (p *Plugin) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Available 订单存储是否就绪
func (p *Plugin) Available() bool {
	return p.orders != nil
}

// Notices 加载阶段产生的后台提示
func (p *Plugin) Notices() []hooks.Notice {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]hooks.Notice(nil), p.notices...)
}

// MaxLength 当前最大长度，过滤结果非正数时回退默认值
func (p *Plugin) MaxLength() int {
	v := p.registry.GiftMessageMaxLength.Apply(DefaultMaxLength, struct{}{})
	if v <= 0 {
		return DefaultMaxLength
	}
	return v
}

// Label 当前展示标签
func (p *Plugin) Label() string {
	return p.registry.GiftMessageLabel.Apply(i18n.T(p.locale, "giftmessage.label"), p.locale)
}

// Locale 站点语言
func (p *Plugin) Locale() string {
	return p.locale
}
