package service

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dujiao-next/gift-message/internal/giftmessage"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/nonce"
	"github.com/dujiao-next/gift-message/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testShop struct {
	db       *gorm.DB
	registry *hooks.Registry
	nonces   *nonce.Manager
	plugin   *giftmessage.Plugin
	products *ProductService
	cart     *CartService
	checkout *CheckoutService
	orders   *OrderService
	settings *SettingService
}

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.MigrateAll(db))
	return db
}

func newTestShop(t *testing.T) *testShop {
	t.Helper()
	db := openServiceTestDB(t)
	registry := hooks.NewRegistry()

	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)

	shop := &testShop{
		db:       db,
		registry: registry,
		nonces:   nonce.NewManager("test-secret", time.Hour),
		products: NewProductService(productRepo),
		cart:     NewCartService(cartRepo, productRepo, registry, "CNY"),
		checkout: NewCheckoutService(orderRepo, cartRepo, registry, nil, "CNY"),
		orders:   NewOrderService(orderRepo),
		settings: NewSettingService(repository.NewSettingRepository(db)),
	}
	shop.settings.RegisterGiftMessageFilters(registry)
	shop.plugin = giftmessage.New(registry, giftmessage.Options{
		Locale: "en-US",
		Nonces: shop.nonces,
		Orders: shop.orders.Store(),
	})
	require.True(t, shop.plugin.Load())
	return shop
}

func (s *testShop) seedProduct(t *testing.T, slug string, skuCodes ...string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:        slug,
		TitleJSON:   models.JSON{"en-US": "Gift " + slug},
		PriceAmount: models.MustMoney("10.00"),
		IsActive:    true,
	}
	for _, code := range skuCodes {
		product.SKUs = append(product.SKUs, models.ProductSKU{
			SKUCode:     code,
			PriceAmount: models.MustMoney("12.50"),
			IsActive:    true,
		})
	}
	require.NoError(t, s.products.CreateProduct(product))
	return product
}

func (s *testShop) giftForm(t *testing.T, session, message string) url.Values {
	t.Helper()
	token, err := s.nonces.Create(giftmessage.NonceAction, session)
	require.NoError(t, err)
	return url.Values{
		giftmessage.FieldName: {message},
		giftmessage.NonceName: {token},
	}
}
