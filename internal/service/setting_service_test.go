package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftMessageSettingsOverridePlugin(t *testing.T) {
	shop := newTestShop(t)
	ctx := context.Background()

	assert.Equal(t, 150, shop.plugin.MaxLength())
	assert.Equal(t, "Gift Message", shop.plugin.Label())

	saved, err := shop.settings.UpdateGiftMessageSettings(ctx, GiftMessageSettings{MaxLength: 20, Label: "  Card Note "})
	require.NoError(t, err)
	assert.Equal(t, "Card Note", saved.Label)

	assert.Equal(t, 20, shop.plugin.MaxLength())
	assert.Equal(t, "Card Note", shop.plugin.Label())

	_, err = shop.settings.UpdateGiftMessageSettings(ctx, GiftMessageSettings{})
	require.NoError(t, err)
	assert.Equal(t, 150, shop.plugin.MaxLength())
	assert.Equal(t, "Gift Message", shop.plugin.Label())
}

func TestGiftMessageSettingsValidation(t *testing.T) {
	shop := newTestShop(t)
	ctx := context.Background()

	_, err := shop.settings.UpdateGiftMessageSettings(ctx, GiftMessageSettings{MaxLength: -1})
	assert.ErrorIs(t, err, ErrSettingsInvalid)

	_, err = shop.settings.UpdateGiftMessageSettings(ctx, GiftMessageSettings{MaxLength: 1001})
	assert.ErrorIs(t, err, ErrSettingsInvalid)

	_, err = shop.settings.UpdateGiftMessageSettings(ctx, GiftMessageSettings{Label: strings.Repeat("x", 101)})
	assert.ErrorIs(t, err, ErrSettingsInvalid)
}

func TestParseSettingInt(t *testing.T) {
	cases := map[string]struct {
		in   interface{}
		want int
		ok   bool
	}{
		"int":     {in: 5, want: 5, ok: true},
		"float":   {in: float64(80), want: 80, ok: true},
		"string":  {in: " 42 ", want: 42, ok: true},
		"empty":   {in: "", ok: false},
		"garbage": {in: []int{1}, ok: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := parseSettingInt(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
