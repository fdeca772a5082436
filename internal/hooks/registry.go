package hooks

// Registry 扩展点注册表，进程内唯一，启动时创建
type Registry struct {
	// 店面
	EnqueueAssets         Action[*PageContext]
	BeforeAddToCartButton Action[*RenderContext]
	AfterGiftMessageField Action[*RenderContext]

	// 购物车与下单
	AddToCartValidation Filter[bool, *AddToCartContext]
	AddCartItemData     Filter[map[string]interface{}, *AddToCartContext]
	GetItemData         Filter[[]ItemData, CartLine]
	CreateOrderLineItem Action[*OrderLineItemContext]

	// 后台订单列表
	LegacyOrderColumns    Filter[[]Column, ColumnsContext]
	LegacyOrderColumnCell Filter[string, LegacyCellContext]
	HPOSOrderColumns      Filter[[]Column, ColumnsContext]
	HPOSOrderColumnCell   Filter[string, HPOSCellContext]
	AdminNotices          Filter[[]Notice, Viewer]

	// 礼品留言配置
	GiftMessageMaxLength Filter[int, struct{}]
	GiftMessageLabel     Filter[string, string]
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{}
}
