package i18n

var catalog = map[string]map[string]string{
	LocaleEN: {
		"error.rate_limit_unavailable":  "Rate limiting is temporarily unavailable",
		"error.token_revoked":           "Your session has been revoked, please sign in again",
		"error.bad_request":             "Invalid request parameters",
		"error.unauthorized":            "Please sign in first",
		"error.forbidden":               "Permission denied",
		"error.not_found":               "Resource not found",
		"error.internal":                "Internal server error",
		"error.rate_limited":            "Too many requests, please retry in %d seconds",
		"error.login_invalid":           "Invalid username or password",
		"error.token_invalid":           "Session expired, please sign in again",
		"error.product_not_found":       "Product not found",
		"error.variation_invalid":       "Please choose a valid product option",
		"error.quantity_invalid":        "Quantity must be at least 1",
		"error.cart_empty":              "Your cart is empty",
		"error.order_not_found":         "Order not found",
		"error.checkout_invalid":        "Please check the billing details",
		"error.settings_invalid":        "Invalid settings",
		"rest.forbidden":                "Sorry, you are not allowed to do that.",
		"rest.wc_not_loaded":            "The commerce platform is not loaded.",
		"rest.no_orders":                "No orders found.",
		"giftmessage.label":             "Gift Message",
		"giftmessage.security_failed":   "Security check failed for Gift Message.",
		"giftmessage.too_long":          "Gift Message must be %d characters or fewer.",
		"giftmessage.guest":             "Guest",
		"giftmessage.requires_store":    "Gift Message requires the order store to be available.",
		"admin.column.order_number":     "Order",
		"admin.column.order_date":       "Date",
		"admin.column.order_status":     "Status",
		"admin.column.billing_address":  "Billing",
		"admin.column.order_total":      "Total",
		"admin.column.origin":           "Origin",
		"shop.products":                 "Products",
		"shop.add_to_cart":              "Add to cart",
		"shop.quantity":                 "Quantity",
		"shop.option":                   "Option",
		"shop.cart":                     "Cart",
		"shop.cart_empty":               "Your cart is currently empty.",
		"shop.continue_shopping":        "Continue shopping",
		"shop.product":                  "Product",
		"shop.price":                    "Price",
		"shop.subtotal":                 "Subtotal",
		"shop.total":                    "Total",
		"shop.checkout":                 "Checkout",
		"shop.first_name":               "First name",
		"shop.last_name":                "Last name",
		"shop.email":                    "Email address",
		"shop.ship_to_different":        "Ship to a different address?",
		"shop.shipping_first_name":      "Shipping first name",
		"shop.shipping_last_name":       "Shipping last name",
		"shop.place_order":              "Place order",
		"shop.order_received":           "Order received",
		"shop.order_thanks":             "Thank you. Your order has been received.",
		"shop.order_number":             "Order number",
		"shop.order_date":               "Date",
		"cart.added":                    "\u201c%s\u201d has been added to your cart.",
		"email.order_received.subject":  "Your order %s has been received",
		"email.order_received.greeting": "Hi %s,",
		"email.order_received.intro":    "Thanks for your order. Here is a summary:",
		"email.order_received.total":    "Total: %s %s",
	},
	LocaleZH: {
		"error.rate_limit_unavailable":  "限流服务暂不可用",
		"error.token_revoked":           "登录状态已失效，请重新登录",
		"error.bad_request":             "请求参数错误",
		"error.unauthorized":            "请先登录",
		"error.forbidden":               "无权限访问",
		"error.not_found":               "资源不存在",
		"error.internal":                "服务器内部错误",
		"error.rate_limited":            "请求过于频繁，请 %d 秒后重试",
		"error.login_invalid":           "用户名或密码错误",
		"error.token_invalid":           "登录已失效，请重新登录",
		"error.product_not_found":       "商品不存在",
		"error.variation_invalid":       "请选择有效的商品规格",
		"error.quantity_invalid":        "购买数量至少为 1",
		"error.cart_empty":              "购物车为空",
		"error.order_not_found":         "订单不存在",
		"error.checkout_invalid":        "请检查账单信息",
		"error.settings_invalid":        "配置无效",
		"rest.forbidden":                "抱歉，您无权执行此操作。",
		"rest.wc_not_loaded":            "商城服务未加载。",
		"rest.no_orders":                "暂无订单。",
		"giftmessage.label":             "礼品留言",
		"giftmessage.security_failed":   "礼品留言安全校验失败。",
		"giftmessage.too_long":          "礼品留言不能超过 %d 个字符。",
		"giftmessage.guest":             "访客",
		"giftmessage.requires_store":    "礼品留言需要订单存储可用。",
		"admin.column.order_number":     "订单",
		"admin.column.order_date":       "日期",
		"admin.column.order_status":     "状态",
		"admin.column.billing_address":  "账单信息",
		"admin.column.order_total":      "合计",
		"admin.column.origin":           "来源",
		"shop.products":                 "商品",
		"shop.add_to_cart":              "加入购物车",
		"shop.quantity":                 "数量",
		"shop.option":                   "规格",
		"shop.cart":                     "购物车",
		"shop.cart_empty":               "购物车还是空的。",
		"shop.continue_shopping":        "继续购物",
		"shop.product":                  "商品",
		"shop.price":                    "单价",
		"shop.subtotal":                 "小计",
		"shop.total":                    "合计",
		"shop.checkout":                 "结算",
		"shop.first_name":               "名",
		"shop.last_name":                "姓",
		"shop.email":                    "邮箱地址",
		"shop.ship_to_different":        "寄送到其他地址？",
		"shop.shipping_first_name":      "收货人名",
		"shop.shipping_last_name":       "收货人姓",
		"shop.place_order":              "提交订单",
		"shop.order_received":           "订单已收到",
		"shop.order_thanks":             "谢谢，您的订单已收到。",
		"shop.order_number":             "订单号",
		"shop.order_date":               "日期",
		"cart.added":                    "“%s”已加入购物车。",
		"email.order_received.subject":  "您的订单 %s 已收到",
		"email.order_received.greeting": "%s，您好：",
		"email.order_received.intro":    "感谢您的订购，订单概要如下：",
		"email.order_received.total":    "合计：%s %s",
	},
	LocaleTW: {
		"error.rate_limit_unavailable":  "限流服務暫不可用",
		"error.token_revoked":           "登入狀態已失效，請重新登入",
		"error.bad_request":             "請求參數錯誤",
		"error.unauthorized":            "請先登入",
		"error.forbidden":               "無權限訪問",
		"error.not_found":               "資源不存在",
		"error.internal":                "伺服器內部錯誤",
		"error.rate_limited":            "請求過於頻繁，請 %d 秒後重試",
		"error.login_invalid":           "使用者名稱或密碼錯誤",
		"error.token_invalid":           "登入已失效，請重新登入",
		"error.product_not_found":       "商品不存在",
		"error.variation_invalid":       "請選擇有效的商品規格",
		"error.quantity_invalid":        "購買數量至少為 1",
		"error.cart_empty":              "購物車為空",
		"error.order_not_found":         "訂單不存在",
		"error.checkout_invalid":        "請檢查帳單資訊",
		"error.settings_invalid":        "設定無效",
		"rest.forbidden":                "抱歉，您無權執行此操作。",
		"rest.wc_not_loaded":            "商城服務未載入。",
		"rest.no_orders":                "暫無訂單。",
		"giftmessage.label":             "禮品留言",
		"giftmessage.security_failed":   "禮品留言安全校驗失敗。",
		"giftmessage.too_long":          "禮品留言不能超過 %d 個字元。",
		"giftmessage.guest":             "訪客",
		"giftmessage.requires_store":    "禮品留言需要訂單儲存可用。",
		"admin.column.order_number":     "訂單",
		"admin.column.order_date":       "日期",
		"admin.column.order_status":     "狀態",
		"admin.column.billing_address":  "帳單資訊",
		"admin.column.order_total":      "合計",
		"admin.column.origin":           "來源",
		"shop.products":                 "商品",
		"shop.add_to_cart":              "加入購物車",
		"shop.quantity":                 "數量",
		"shop.option":                   "規格",
		"shop.cart":                     "購物車",
		"shop.cart_empty":               "購物車還是空的。",
		"shop.continue_shopping":        "繼續購物",
		"shop.product":                  "商品",
		"shop.price":                    "單價",
		"shop.subtotal":                 "小計",
		"shop.total":                    "合計",
		"shop.checkout":                 "結帳",
		"shop.first_name":               "名",
		"shop.last_name":                "姓",
		"shop.email":                    "電子郵件",
		"shop.ship_to_different":        "寄送到其他地址？",
		"shop.shipping_first_name":      "收件人名",
		"shop.shipping_last_name":       "收件人姓",
		"shop.place_order":              "送出訂單",
		"shop.order_received":           "訂單已收到",
		"shop.order_thanks":             "謝謝，您的訂單已收到。",
		"shop.order_number":             "訂單號",
		"shop.order_date":               "日期",
		"cart.added":                    "「%s」已加入購物車。",
		"email.order_received.subject":  "您的訂單 %s 已收到",
		"email.order_received.greeting": "%s，您好：",
		"email.order_received.intro":    "感謝您的訂購，訂單概要如下：",
		"email.order_received.total":    "合計：%s %s",
	},
}
