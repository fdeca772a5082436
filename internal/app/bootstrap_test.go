package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dujiao-next/gift-message/internal/giftmessage"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/provider"
)

type emptyOrderStore struct{}

func (emptyOrderStore) GetOrder(context.Context, uint) (hooks.OrderLike, error) { return nil, nil }
func (emptyOrderStore) LatestOrder(context.Context) (hooks.OrderLike, error)    { return nil, nil }

func TestLoadExtensionsWithoutPlugin(t *testing.T) {
	if err := LoadExtensions(&provider.Container{}); err != nil {
		t.Fatalf("container without plugin should load, got %v", err)
	}
	if err := LoadExtensions(nil); err != nil {
		t.Fatalf("nil container should be ignored, got %v", err)
	}
}

func TestLoadExtensionsActivationFailure(t *testing.T) {
	container := &provider.Container{GiftMessage: giftmessage.New(hooks.NewRegistry(), giftmessage.Options{})}
	err := LoadExtensions(container)
	if !errors.Is(err, giftmessage.ErrCommerceUnavailable) {
		t.Fatalf("activation without order store should fail, got %v", err)
	}
	if container.GiftMessage.Loaded() {
		t.Fatalf("plugin must not load after failed activation")
	}
}

func TestLoadExtensionsRegistersHooks(t *testing.T) {
	registry := hooks.NewRegistry()
	container := &provider.Container{
		Registry:    registry,
		GiftMessage: giftmessage.New(registry, giftmessage.Options{Orders: emptyOrderStore{}}),
	}
	if err := LoadExtensions(container); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !container.GiftMessage.Loaded() {
		t.Fatalf("plugin should be loaded")
	}
	if registry.AddToCartValidation.Len() != 1 {
		t.Fatalf("validation hook should be registered once, got %d", registry.AddToCartValidation.Len())
	}
}
