package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mwalali_homes/internal/catalog"
	"mwalali_homes/internal/domain"
)

// ---- fakes ----

type fakeAssistant struct {
	ids     []string
	reply   string
	err     error
	ranks   int
	chats   int
	history []domain.ChatMessage
	system  string
}

func (f *fakeAssistant) RankProperties(ctx context.Context, q string, s []domain.PropertySummary) ([]string, error) {
	f.ranks++
	return f.ids, f.err
}

func (f *fakeAssistant) Chat(ctx context.Context, system string, h []domain.ChatMessage, msg string) (string, error) {
	f.chats++
	f.system = system
	f.history = h
	return f.reply, f.err
}

// fakeCache round-trips through JSON like the redis adapter does.
type fakeCache struct {
	store  map[string][]byte
	getErr error
	dels   int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	c.store[key] = b
	return err
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels++
	delete(c.store, key)
	return nil
}

// blockingAssistant hangs until the caller gives up, like a stalled model.
type blockingAssistant struct{}

func (blockingAssistant) RankProperties(ctx context.Context, _ string, _ []domain.PropertySummary) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingAssistant) Chat(ctx context.Context, _ string, _ []domain.ChatMessage, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

var errBoom = errors.New("boom")

func fixture(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.Property{
		{ID: "brookside-oak", Title: "Brookside Oak", City: "Westlands", State: "Nairobi", Address: "Near Safaricom HQ & Sarit Centre",
			Category: domain.CategorySale, Type: domain.TypeApartment, ImageURL: "bo.jpg", PriceLabel: "From KES 8.8M", Beds: 1,
			Description: "Luxury living in the heart of Westlands.", Features: []string{"Gym", "Borehole"}},
		{ID: "oak-breeze", Title: "Oak Breeze", City: "Kilimani", State: "Nairobi", Address: "Kilimani, Near Yaya Center",
			Category: domain.CategorySale, Type: domain.TypeApartment, ImageURL: "ob.jpg", Price: 5650000,
			Description: "Skyline living with a ROOFTOP pool."},
		{ID: "rental-1", Title: "Modern 2BR Apartment", City: "Kileleshwa", State: "Nairobi", Address: "Othaya Road",
			Category: domain.CategoryRent, Type: domain.TypeApartment, ImageURL: "r1.jpg", PriceLabel: "KES 85,000/mo",
			Description: "Quiet compound with swimming pool."},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return c
}

func ids(ps []domain.Property) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func eq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
