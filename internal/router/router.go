package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/dujiao-next/gift-message/internal/authz"
	"github.com/dujiao-next/gift-message/internal/cache"
	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/giftmessage"
	adminhandlers "github.com/dujiao-next/gift-message/internal/http/handlers/admin"
	resthandlers "github.com/dujiao-next/gift-message/internal/http/handlers/restapi"
	storefronthandlers "github.com/dujiao-next/gift-message/internal/http/handlers/storefront"
	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	r := gin.New()

	if err := storefronthandlers.RegisterValidators(); err != nil {
		logger.Warnw("router_register_validators_failed", "error", err)
	}
	r.SetHTMLTemplate(storefronthandlers.Templates())

	// 初始化 Handler（店面 / 后台 / 扩展接口）
	storefrontHandler := storefronthandlers.New(c)
	adminHandler := adminhandlers.New(c)
	restHandler := resthandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "gm"
	}
	redisClient := cache.Client()
	loginLimiter := newLimiter(redisClient, redisPrefix+":rate:admin_login", cfg.Security.LoginRateLimit)
	addToCartLimiter := newLimiter(redisClient, redisPrefix+":rate:add_to_cart", cfg.Security.AddToCartRateLimit)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))

	// 店面脚本与样式
	r.StaticFS("/assets/giftmessage", http.FS(giftmessage.Assets()))

	// 店面页面
	r.GET("/", storefrontHandler.GetIndex)
	r.GET("/products/:slug", storefrontHandler.GetProduct)
	r.POST("/cart/add", addToCartLimiter.middleware(keyByCartSession), storefrontHandler.PostAddToCart)
	r.GET("/cart", storefrontHandler.GetCart)
	r.POST("/checkout", storefrontHandler.PostCheckout)
	r.GET("/checkout/order-received/:order_no", storefrontHandler.GetOrderReceived)

	// 扩展接口：未加载时不注册路由
	if c.GiftMessage != nil && c.GiftMessage.Loaded() {
		ext := r.Group("/giftmessages/v1")
		ext.Use(OptionalAdminAuthMiddleware(c.AuthService))
		ext.GET("/orders", restHandler.GetLatestOrderMessage)
	}

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", loginLimiter.middleware(keyByJSONFieldAndIP("username")), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(c.AuthService), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/authz/me", adminHandler.GetAuthzMe)
				authorized.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})
				authorized.GET("/notices", adminHandler.GetAdminNotices)

				// 订单管理
				authorized.GET("/orders/legacy-table", adminHandler.GetLegacyOrderTable)
				authorized.GET("/orders/hpos-table", adminHandler.GetHPOSOrderTable)
				authorized.GET("/orders/:id", adminHandler.GetAdminOrder)

				// 礼品留言设置
				authorized.GET("/settings/gift-message", adminHandler.GetGiftMessageSettings)
				authorized.PUT("/settings/gift-message", adminHandler.UpdateGiftMessageSettings)
			}
		}
	}

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	if segments[1] == "authz" {
		return "authz"
	}
	return segments[1]
}
