package giftmessage

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/dujiao-next/gift-message/internal/hooks"
)

type fakeItem struct {
	meta []metaEntry
}

type metaEntry struct {
	key   string
	value string
}

func (f *fakeItem) GetMeta(key string) string {
	for _, m := range f.meta {
		if m.key == key {
			return m.value
		}
	}
	return ""
}

func (f *fakeItem) AddMeta(key, value string, unique bool) {
	if unique {
		kept := f.meta[:0]
		for _, m := range f.meta {
			if m.key != key {
				kept = append(kept, m)
			}
		}
		f.meta = kept
	}
	f.meta = append(f.meta, metaEntry{key: key, value: value})
}

func itemWith(kv ...string) *fakeItem {
	item := &fakeItem{}
	for i := 0; i+1 < len(kv); i += 2 {
		item.meta = append(item.meta, metaEntry{key: kv[i], value: kv[i+1]})
	}
	return item
}

type fakeOrder struct {
	id       uint
	items    []*fakeItem
	billing  string
	shipping string
	created  *time.Time
}

func (o *fakeOrder) GetID() uint { return o.id }

func (o *fakeOrder) GetItems() []hooks.HasMetadata {
	out := make([]hooks.HasMetadata, 0, len(o.items))
	for _, item := range o.items {
		out = append(out, item)
	}
	return out
}

func (o *fakeOrder) GetBillingFullName() string  { return o.billing }
func (o *fakeOrder) GetShippingFullName() string { return o.shipping }
func (o *fakeOrder) GetDateCreated() *time.Time  { return o.created }

type fakeStore struct {
	orders map[uint]*fakeOrder
	latest *fakeOrder
	err    error
}

func (s *fakeStore) GetOrder(_ context.Context, id uint) (hooks.OrderLike, error) {
	if s.err != nil {
		return nil, s.err
	}
	if order, ok := s.orders[id]; ok {
		return order, nil
	}
	return nil, nil
}

func (s *fakeStore) LatestOrder(context.Context) (hooks.OrderLike, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.latest == nil {
		return nil, nil
	}
	return s.latest, nil
}

type fakeNonces struct{}

func (fakeNonces) Create(action, subject string) (string, error) {
	return "nonce:" + action + ":" + subject, nil
}

func (fakeNonces) Verify(token, action, subject string) bool {
	return token == "nonce:"+action+":"+subject
}

type failingNonces struct{ fakeNonces }

func (failingNonces) Create(string, string) (string, error) {
	return "", errors.New("signing failed")
}

type fakeViewer struct {
	caps map[string]bool
}

func (v fakeViewer) IsLoggedIn() bool       { return true }
func (v fakeViewer) Can(capability string) bool { return v.caps[capability] }

var (
	orderManager = fakeViewer{caps: map[string]bool{"manage_woocommerce": true}}
	auditor      = fakeViewer{}
)

func newTestPlugin(store OrderStore) (*Plugin, *hooks.Registry) {
	registry := hooks.NewRegistry()
	p := New(registry, Options{
		Locale: "en-US",
		Nonces: fakeNonces{},
		Orders: store,
	})
	return p, registry
}

func addToCart(form url.Values) *hooks.AddToCartContext {
	return &hooks.AddToCartContext{
		ProductID:   11,
		VariationID: 0,
		Quantity:    1,
		Form:        form,
		Session:     "session-1",
		Locale:      "en-US",
		Notices:     &hooks.Notices{},
	}
}
