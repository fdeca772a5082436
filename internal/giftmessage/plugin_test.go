package giftmessage

import (
	"io/fs"
	"net/url"
	"strings"
	"testing"

	"github.com/dujiao-next/gift-message/internal/hooks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateRequiresOrderStore(t *testing.T) {
	p := New(hooks.NewRegistry(), Options{})
	assert.ErrorIs(t, p.Activate(), ErrCommerceUnavailable)

	ok, _ := newTestPlugin(&fakeStore{})
	assert.NoError(t, ok.Activate())
}

func TestLoadWithoutStoreOnlyRegistersNotice(t *testing.T) {
	registry := hooks.NewRegistry()
	p := New(registry, Options{Locale: "en-US"})

	assert.False(t, p.Load())
	assert.False(t, p.Loaded())
	assert.Equal(t, 0, registry.AddToCartValidation.Len())
	assert.Equal(t, 0, registry.CreateOrderLineItem.Len())
	require.Len(t, p.Notices(), 1)

	shown := registry.AdminNotices.Apply(nil, orderManager)
	require.Len(t, shown, 1)
	assert.Equal(t, hooks.NoticeError, shown[0].Kind)
	assert.Empty(t, registry.AdminNotices.Apply(nil, hooks.Anonymous{}))
}

func TestLoadWiresEveryHookOnce(t *testing.T) {
	p, registry := newTestPlugin(&fakeStore{})
	assert.True(t, p.Load())
	assert.True(t, p.Load())

	assert.Equal(t, 1, registry.EnqueueAssets.Len())
	assert.Equal(t, 1, registry.BeforeAddToCartButton.Len())
	assert.Equal(t, 1, registry.AddToCartValidation.Len())
	assert.Equal(t, 1, registry.AddCartItemData.Len())
	assert.Equal(t, 1, registry.GetItemData.Len())
	assert.Equal(t, 1, registry.CreateOrderLineItem.Len())
	assert.Equal(t, 1, registry.LegacyOrderColumns.Len())
	assert.Equal(t, 1, registry.LegacyOrderColumnCell.Len())
	assert.Equal(t, 1, registry.HPOSOrderColumns.Len())
	assert.Equal(t, 1, registry.HPOSOrderColumnCell.Len())
}

func TestLabelFilterAndConfig(t *testing.T) {
	p, registry := newTestPlugin(&fakeStore{})
	assert.Equal(t, "Gift Message", p.Label())

	zh := New(hooks.NewRegistry(), Options{Locale: "zh-CN", Orders: &fakeStore{}})
	assert.Equal(t, "礼品留言", zh.Label())

	configured := New(hooks.NewRegistry(), Options{Label: "Card Note", Orders: &fakeStore{}})
	assert.Equal(t, "Card Note", configured.Label())

	registry.GiftMessageLabel.Add(hooks.DefaultPriority, func(label, locale string) string {
		return label + " (" + locale + ")"
	})
	assert.Equal(t, "Gift Message (en-US)", p.Label())
}

func TestEnqueueAssetsOnlyOnProductPages(t *testing.T) {
	p, _ := newTestPlugin(&fakeStore{})

	cart := &hooks.PageContext{Page: "cart", Assets: &hooks.AssetQueue{}}
	p.EnqueueAssets(cart)
	assert.Empty(t, cart.Assets.Scripts())
	assert.Empty(t, cart.Assets.Styles())

	product := &hooks.PageContext{Page: "product", IsProduct: true, Assets: &hooks.AssetQueue{}}
	p.EnqueueAssets(product)
	require.Len(t, product.Assets.Scripts(), 1)
	require.Len(t, product.Assets.Styles(), 1)
	assert.Equal(t, "/assets/giftmessage/frontend.js", product.Assets.Scripts()[0].URL)
	assert.Equal(t, `var WCGM = {"label":"Gift Message","maxLen":150};`, string(product.Assets.InlineData(AssetHandle)))
}

func TestRenderFieldPrefillsAndSignsNonce(t *testing.T) {
	p, registry := newTestPlugin(&fakeStore{})
	registry.AfterGiftMessageField.Add(hooks.DefaultPriority, func(ctx *hooks.RenderContext) {
		ctx.Write(`<p class="after">extra</p>`)
	})

	ctx := &hooks.RenderContext{
		ProductID: 3,
		Session:   "session-9",
		Form:      url.Values{FieldName: {`"Quoted" <b>bold</b>`}},
	}
	p.RenderField(ctx)
	html := string(ctx.HTML())

	assert.Contains(t, html, `name="wcgm_gift_message"`)
	assert.Contains(t, html, `maxlength="150"`)
	assert.Contains(t, html, `value="&#34;Quoted&#34; bold"`)
	assert.Contains(t, html, `<span id="wcgm-counter">0</span> / 150`)
	assert.Contains(t, html, `name="wcgm_gift_message_nonce" value="nonce:wcgm_add_gift_message:session-9"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(html), `<p class="after">extra</p>`))
}

func TestRenderFieldWithoutNonceOnSigningFailure(t *testing.T) {
	p := New(hooks.NewRegistry(), Options{Locale: "en-US", Nonces: failingNonces{}, Orders: &fakeStore{}})
	ctx := &hooks.RenderContext{}
	p.RenderField(ctx)
	html := string(ctx.HTML())
	assert.Contains(t, html, `id="wcgm_gift_message"`)
	assert.NotContains(t, html, NonceName)
}

func TestAssetsEmbedded(t *testing.T) {
	js, err := fs.ReadFile(Assets(), "frontend.js")
	require.NoError(t, err)
	assert.Contains(t, string(js), "wcgm-too-long")

	css, err := fs.ReadFile(Assets(), "frontend.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), ".wcgm-field")
}
