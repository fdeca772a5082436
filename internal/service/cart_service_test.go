package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/dujiao-next/gift-message/internal/giftmessage"
	"github.com/dujiao-next/gift-message/internal/hooks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartWithoutMessageMergesLines(t *testing.T) {
	shop := newTestShop(t)
	product := shop.seedProduct(t, "mug")

	first, err := shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: product.ID, Quantity: 1, Locale: "en-US"})
	require.NoError(t, err)
	assert.False(t, first.Merged)

	second, err := shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: product.ID, Quantity: 2, Locale: "en-US"})
	require.NoError(t, err)
	assert.True(t, second.Merged)

	cart, err := shop.cart.GetCart("s1", "en-US")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, "30.00", cart.Total.String())
	assert.Empty(t, cart.Lines[0].ItemData)
}

func TestAddToCartSameMessageKeepsSeparateLines(t *testing.T) {
	shop := newTestShop(t)
	product := shop.seedProduct(t, "mug")

	for i := 0; i < 2; i++ {
		res, err := shop.cart.AddToCart(AddToCartInput{
			SessionID: "s1",
			ProductID: product.ID,
			Quantity:  1,
			Form:      shop.giftForm(t, "s1", "Happy Birthday"),
			Locale:    "en-US",
		})
		require.NoError(t, err)
		assert.False(t, res.Merged)
	}

	cart, err := shop.cart.GetCart("s1", "en-US")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.NotEqual(t, cart.Lines[0].CartKey, cart.Lines[1].CartKey)
	require.Len(t, cart.Lines[0].ItemData, 1)
	assert.Equal(t, "Gift Message", cart.Lines[0].ItemData[0].Name)
	assert.Equal(t, "Happy Birthday", cart.Lines[0].ItemData[0].Display)
}

func TestAddToCartEmptyMessageIsNotStored(t *testing.T) {
	shop := newTestShop(t)
	product := shop.seedProduct(t, "mug")

	res, err := shop.cart.AddToCart(AddToCartInput{
		SessionID: "s1",
		ProductID: product.ID,
		Quantity:  1,
		Form:      shop.giftForm(t, "s1", "   "),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Item)
	_, ok := res.Item.ExtraJSON[giftmessage.FieldName]
	assert.False(t, ok)
}

func TestAddToCartRejectsTooLongMessage(t *testing.T) {
	shop := newTestShop(t)
	product := shop.seedProduct(t, "mug")

	res, err := shop.cart.AddToCart(AddToCartInput{
		SessionID: "s1",
		ProductID: product.ID,
		Quantity:  1,
		Form:      shop.giftForm(t, "s1", strings.Repeat("a", 151)),
		Locale:    "en-US",
	})
	require.ErrorIs(t, err, ErrAddToCartRejected)
	require.NotNil(t, res)
	require.Len(t, res.Notices, 1)
	assert.Equal(t, hooks.NoticeError, res.Notices[0].Kind)
	assert.Contains(t, res.Notices[0].Message, "150")

	cart, err := shop.cart.GetCart("s1", "en-US")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestAddToCartRejectsForgedNonce(t *testing.T) {
	shop := newTestShop(t)
	product := shop.seedProduct(t, "mug")

	form := url.Values{
		giftmessage.FieldName: {"hi"},
		giftmessage.NonceName: {"forged"},
	}
	_, err := shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: product.ID, Quantity: 1, Form: form})
	require.ErrorIs(t, err, ErrAddToCartRejected)

	// 令牌绑定会话
	form = shop.giftForm(t, "other-session", "hi")
	_, err = shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: product.ID, Quantity: 1, Form: form})
	require.ErrorIs(t, err, ErrAddToCartRejected)
}

func TestAddToCartMissingNonceIsAccepted(t *testing.T) {
	shop := newTestShop(t)
	product := shop.seedProduct(t, "mug")

	res, err := shop.cart.AddToCart(AddToCartInput{
		SessionID: "s1",
		ProductID: product.ID,
		Quantity:  1,
		Form:      url.Values{giftmessage.FieldName: {"no token"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "no token", res.Item.ExtraJSON[giftmessage.FieldName])
}

func TestAddToCartVariationRules(t *testing.T) {
	shop := newTestShop(t)
	variable := shop.seedProduct(t, "shirt", "s", "m")
	simple := shop.seedProduct(t, "card")

	_, err := shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: variable.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrVariationInvalid)

	_, err = shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: simple.ID, VariationID: variable.SKUs[0].ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrVariationInvalid)

	_, err = shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: simple.ID, Quantity: 0})
	assert.ErrorIs(t, err, ErrQuantityInvalid)

	_, err = shop.cart.AddToCart(AddToCartInput{SessionID: "", ProductID: simple.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrCartSessionMissing)

	_, err = shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: 9999, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	res, err := shop.cart.AddToCart(AddToCartInput{SessionID: "s1", ProductID: variable.ID, VariationID: variable.SKUs[1].ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, variable.SKUs[1].ID, res.Item.SKUID)

	cart, err := shop.cart.GetCart("s1", "en-US")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "m", cart.Lines[0].SKUCode)
	assert.Equal(t, "25.00", cart.Lines[0].LineTotal.String())
}

func TestBuildCartKeyIsDeterministic(t *testing.T) {
	a, err := buildCartKey(1, 2, map[string]interface{}{"x": "1", "y": "2"})
	require.NoError(t, err)
	b, err := buildCartKey(1, 2, map[string]interface{}{"y": "2", "x": "1"})
	require.NoError(t, err)
	c, err := buildCartKey(1, 3, map[string]interface{}{"x": "1", "y": "2"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
