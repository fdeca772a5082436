package main

import (
	"os"

	"github.com/dujiao-next/gift-message/internal/authz"
	"github.com/dujiao-next/gift-message/internal/config"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/repository"
	"github.com/dujiao-next/gift-message/internal/service"

	"golang.org/x/crypto/bcrypt"
)

// seedAdmin 演示后台账号
type seedAdmin struct {
	Username    string
	DisplayName string
	Password    string
	Role        string
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, false); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 超级管理员
	if _, err := models.EnsureSuperAdmin(models.DB, os.Getenv("GM_DEFAULT_ADMIN_USERNAME"), os.Getenv("GM_DEFAULT_ADMIN_PASSWORD")); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	// 预置角色
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		stdLog.Fatalf("Failed to init authz: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		stdLog.Fatalf("Failed to bootstrap roles: %v", err)
	}

	// 演示账号：店长可在订单列表看到礼品留言，审计员只能看到订单
	adminRepo := repository.NewAdminRepository(models.DB)
	admins := []seedAdmin{
		{Username: "manager", DisplayName: "Shop Manager", Password: "manager123", Role: "shop_manager"},
		{Username: "auditor", DisplayName: "Auditor", Password: "auditor123", Role: "readonly_auditor"},
		{Username: "operator", DisplayName: "Administrator", Password: "operator123", Role: "administrator"},
	}
	for _, item := range admins {
		existing, err := adminRepo.GetByUsername(item.Username)
		if err != nil {
			stdLog.Printf("Failed to load admin %s: %v", item.Username, err)
			continue
		}
		if existing == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcrypt.DefaultCost)
			if err != nil {
				stdLog.Printf("Failed to hash password for %s: %v", item.Username, err)
				continue
			}
			existing = &models.Admin{
				Username:     item.Username,
				DisplayName:  item.DisplayName,
				PasswordHash: string(hash),
			}
			if err := adminRepo.Create(existing); err != nil {
				stdLog.Printf("Failed to create admin %s: %v", item.Username, err)
				continue
			}
			stdLog.Printf("Created admin: %s", item.Username)
		} else {
			stdLog.Printf("Admin already exists: %s", item.Username)
		}
		if err := authzService.SetAdminRoles(existing.ID, []string{item.Role}); err != nil {
			stdLog.Printf("Failed to assign role %s to %s: %v", item.Role, item.Username, err)
		}
	}

	// 商品
	productService := service.NewProductService(repository.NewProductRepository(models.DB))
	for _, product := range seedProducts() {
		product := product
		if err := productService.CreateProduct(&product); err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			continue
		}
		stdLog.Printf("Product ready: %s", product.Slug)
	}

	stdLog.Println("Seed completed")
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			Slug: "rose-bouquet",
			TitleJSON: models.JSON{
				"zh-CN": "玫瑰花束",
				"zh-TW": "玫瑰花束",
				"en-US": "Rose Bouquet",
			},
			DescriptionJSON: models.JSON{
				"zh-CN": "十二枝红玫瑰，可附赠手写卡片。",
				"zh-TW": "十二枝紅玫瑰，可附贈手寫卡片。",
				"en-US": "Twelve red roses with an optional handwritten card.",
			},
			PriceAmount: models.MustMoney("39.90"),
			IsActive:    true,
			SortOrder:   30,
		},
		{
			Slug: "chocolate-box",
			TitleJSON: models.JSON{
				"zh-CN": "巧克力礼盒",
				"zh-TW": "巧克力禮盒",
				"en-US": "Chocolate Box",
			},
			DescriptionJSON: models.JSON{
				"zh-CN": "多种口味可选。",
				"zh-TW": "多種口味可選。",
				"en-US": "Available in several flavours.",
			},
			PriceAmount: models.MustMoney("19.90"),
			IsActive:    true,
			SortOrder:   20,
			SKUs: []models.ProductSKU{
				{SKUCode: "dark", SpecValuesJSON: models.JSON{"en-US": "Dark"}, PriceAmount: models.MustMoney("19.90"), IsActive: true, SortOrder: 2},
				{SKUCode: "milk", SpecValuesJSON: models.JSON{"en-US": "Milk"}, PriceAmount: models.MustMoney("17.90"), IsActive: true, SortOrder: 1},
			},
		},
		{
			Slug: "greeting-card",
			TitleJSON: models.JSON{
				"zh-CN": "贺卡",
				"zh-TW": "賀卡",
				"en-US": "Greeting Card",
			},
			PriceAmount: models.MustMoney("4.50"),
			IsActive:    true,
			SortOrder:   10,
		},
	}
}
