package provider

import (
	"time"

	"github.com/dujiao-next/gift-message/internal/admintable"
	"github.com/dujiao-next/gift-message/internal/authz"
	"github.com/dujiao-next/gift-message/internal/cache"
	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/giftmessage"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/nonce"
	"github.com/dujiao-next/gift-message/internal/queue"
	"github.com/dujiao-next/gift-message/internal/repository"
	"github.com/dujiao-next/gift-message/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Registry    *hooks.Registry
	Nonces      *nonce.Manager

	// Repositories
	AdminRepo   repository.AdminRepository
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	SettingRepo repository.SettingRepository

	// Services
	AuthzService    *authz.Service
	AuthService     *service.AuthService
	EmailService    *service.EmailService
	ProductService  *service.ProductService
	SettingService  *service.SettingService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	OrderTables     *admintable.Builder

	// GiftMessage 礼品留言扩展，配置关闭时为 nil
	GiftMessage *giftmessage.Plugin
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	i18n.SetDefaultLocale(cfg.I18n.DefaultLocale)

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Registry:    hooks.NewRegistry(),
		Nonces:      nonce.NewManager(cfg.Security.NonceSecret, time.Duration(cfg.Security.NonceTTLHours)*time.Hour),
	}

	// 1. 初始化 Repositories
	c.initRepositories(models.DB)

	// 2. 初始化 Services
	c.initServices(models.DB)

	// 3. 初始化扩展
	c.initGiftMessage()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.AdminRepo = repository.NewAdminRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices(db *gorm.DB) {
	authzService, err := authz.NewService(db)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	currency := c.Config.App.Currency
	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.Registry, currency)
	c.CheckoutService = service.NewCheckoutService(c.OrderRepo, c.CartRepo, c.Registry, c.QueueClient, currency)
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.OrderTables = admintable.NewBuilder(c.Registry)
}

func (c *Container) initGiftMessage() {
	if !c.Config.GiftMessage.Enabled {
		logger.Infow("gift_message_disabled")
		return
	}
	c.GiftMessage = giftmessage.New(c.Registry, giftmessage.Options{
		MaxLength: c.Config.GiftMessage.MaxLength,
		Label:     c.Config.GiftMessage.Label,
		Locale:    i18n.DefaultLocale(),
		Nonces:    c.Nonces,
		Orders:    c.OrderService.Store(),
	})
	// 后台设置优先于配置文件
	c.SettingService.RegisterGiftMessageFilters(c.Registry)
}
