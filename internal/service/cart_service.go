package service

import (
	"encoding/json"
	"strings"

	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/i18n"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/repository"

	"github.com/google/uuid"
)

// AddToCartInput 加入购物车输入
type AddToCartInput struct {
	SessionID   string
	ProductID   uint
	VariationID uint
	Quantity    int
	Form        hooks.FormValues
	Locale      string
}

// AddToCartResult 加入购物车结果；被拒绝时 Item 为空，Notices 携带原因
type AddToCartResult struct {
	Item    *models.CartItem `json:"item,omitempty"`
	Merged  bool             `json:"merged"`
	Notices []hooks.Notice   `json:"notices"`
}

// CartLineDetail 购物车行详情（用于页面展示）
type CartLineDetail struct {
	ID          uint             `json:"id"`
	CartKey     string           `json:"cart_key"`
	ProductID   uint             `json:"product_id"`
	VariationID uint             `json:"variation_id"`
	Title       string           `json:"title"`
	SKUCode     string           `json:"sku_code,omitempty"`
	Quantity    int              `json:"quantity"`
	UnitPrice   models.Money     `json:"unit_price"`
	LineTotal   models.Money     `json:"line_total"`
	ItemData    []hooks.ItemData `json:"item_data"`
}

// CartDetail 购物车详情
type CartDetail struct {
	Lines    []CartLineDetail `json:"lines"`
	Total    models.Money     `json:"total"`
	Currency string           `json:"currency"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	registry    *hooks.Registry
	currency    string
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, registry *hooks.Registry, currency string) *CartService {
	if registry == nil {
		registry = hooks.NewRegistry()
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		registry:    registry,
		currency:    strings.TrimSpace(currency),
	}
}

// AddToCart 加入购物车：校验扩展 → 收集附加数据 → 按行标识合并或新增
func (s *CartService) AddToCart(input AddToCartInput) (*AddToCartResult, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return nil, ErrCartSessionMissing
	}
	if input.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}
	product, err := s.productRepo.GetByID(input.ProductID, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	var sku *models.ProductSKU
	if product.HasVariations() {
		sku = findSKU(product, input.VariationID)
		if sku == nil {
			return nil, ErrVariationInvalid
		}
	} else if input.VariationID != 0 {
		return nil, ErrVariationInvalid
	}

	notices := &hooks.Notices{}
	ctx := &hooks.AddToCartContext{
		ProductID:   product.ID,
		VariationID: input.VariationID,
		Quantity:    input.Quantity,
		Form:        input.Form,
		Session:     sessionID,
		Locale:      input.Locale,
		Notices:     notices,
	}
	if passed := s.registry.AddToCartValidation.Apply(true, ctx); !passed {
		return &AddToCartResult{Notices: notices.All()}, ErrAddToCartRejected
	}

	extra := s.registry.AddCartItemData.Apply(map[string]interface{}{}, ctx)
	cartKey, err := buildCartKey(product.ID, input.VariationID, extra)
	if err != nil {
		return nil, err
	}

	result := &AddToCartResult{}
	existing, err := s.cartRepo.GetBySessionAndKey(sessionID, cartKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += input.Quantity
		if err := s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		result.Item = existing
		result.Merged = true
	} else {
		item := &models.CartItem{
			SessionID: sessionID,
			CartKey:   cartKey,
			ProductID: product.ID,
			Quantity:  input.Quantity,
			ExtraJSON: models.JSON(extra),
		}
		if sku != nil {
			item.SKUID = sku.ID
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
		result.Item = item
	}

	notices.Add(hooks.NoticeSuccess, i18n.Sprintf(input.Locale, "cart.added", product.TitleJSON.Localized(input.Locale)))
	result.Notices = notices.All()
	logger.Debugw("cart_item_added",
		"product_id", product.ID,
		"variation_id", input.VariationID,
		"quantity", input.Quantity,
		"merged", result.Merged,
	)
	return result, nil
}

// GetCart 获取会话购物车，展示数据经扩展点补充
func (s *CartService) GetCart(sessionID, locale string) (*CartDetail, error) {
	detail := &CartDetail{
		Lines:    make([]CartLineDetail, 0),
		Total:    models.MustMoney("0"),
		Currency: s.currency,
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return detail, nil
	}
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		line := CartLineDetail{
			ID:          item.ID,
			CartKey:     item.CartKey,
			ProductID:   item.ProductID,
			VariationID: item.SKUID,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice(item.Product, item.SKU),
		}
		if item.Product != nil {
			line.Title = item.Product.TitleJSON.Localized(locale)
		}
		if item.SKU != nil {
			line.SKUCode = item.SKU.SKUCode
		}
		line.LineTotal = line.UnitPrice.Times(item.Quantity)
		line.ItemData = s.registry.GetItemData.Apply(make([]hooks.ItemData, 0), hooks.CartLine{
			ProductID:   item.ProductID,
			VariationID: item.SKUID,
			Quantity:    item.Quantity,
			Extra:       item.ExtraJSON,
			Locale:      locale,
		})
		detail.Total = detail.Total.Plus(line.LineTotal)
		detail.Lines = append(detail.Lines, line)
	}
	return detail, nil
}

// buildCartKey 商品、规格与附加数据相同的加购得到相同行标识
func buildCartKey(productID, variationID uint, extra map[string]interface{}) (string, error) {
	raw, err := json.Marshal(struct {
		ProductID   uint                   `json:"p"`
		VariationID uint                   `json:"v"`
		Extra       map[string]interface{} `json:"e"`
	}{productID, variationID, extra})
	if err != nil {
		return "", err
	}
	return uuid.NewMD5(uuid.NameSpaceURL, raw).String(), nil
}

func unitPrice(product *models.Product, sku *models.ProductSKU) models.Money {
	if sku != nil {
		return sku.PriceAmount
	}
	if product != nil {
		return product.PriceAmount
	}
	return models.MustMoney("0")
}
