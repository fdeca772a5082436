package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dujiao-next/gift-message/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, slug string, skuCodes ...string) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:        slug,
		TitleJSON:   models.JSON{"en-US": "Product " + slug, "zh-CN": "商品" + slug},
		PriceAmount: models.MustMoney("12.50"),
		IsActive:    true,
	}
	for i, code := range skuCodes {
		product.SKUs = append(product.SKUs, models.ProductSKU{
			SKUCode:     code,
			PriceAmount: models.MustMoney("15.00"),
			IsActive:    true,
			SortOrder:   len(skuCodes) - i,
		})
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}
