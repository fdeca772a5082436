package constants

// 订单状态常量
const (
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCanceled   = "canceled"
)

// 订单来源常量
const (
	OrderOriginStorefront = "storefront"
	OrderOriginAdmin      = "admin"
)

// 后台能力常量
const (
	CapabilityManageOrders  = "manage_woocommerce"
	CapabilityManageOptions = "manage_options"
)

// 异步任务类型
const (
	TaskOrderReceivedEmail = "order:received_email"
)

// 队列名称
const (
	QueueDefault = "default"
)

// 设置项 key
const (
	SettingKeyGiftMessageConfig = "gift_message_config"
	SettingFieldMaxLength       = "max_length"
	SettingFieldLabel           = "label"
)

// 店面 cookie
const (
	CookieCartSession = "cart_session"
)

// 后台订单列表内置列
const (
	OrderColumnNumber  = "order_number"
	OrderColumnDate    = "order_date"
	OrderColumnStatus  = "order_status"
	OrderColumnBilling = "billing_address"
	OrderColumnTotal   = "order_total"
	OrderColumnOrigin  = "origin"
)
