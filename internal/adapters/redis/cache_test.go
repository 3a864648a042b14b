package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "mwalali_homes/internal/adapters/redis"
)

type ranking struct {
	IDs []string `json:"ids"`
}

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var got ranking
	if ok, err := c.Get(ctx, "search:x", &got); ok || err != nil {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "search:x", ranking{IDs: []string{"oak-breeze"}}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("mwalali:search:x") {
		t.Fatalf("expected prefixed key in redis, keys=%v", mr.Keys())
	}
	if ttl := mr.TTL("mwalali:search:x"); ttl != 60*time.Second {
		t.Fatalf("ttl = %v", ttl)
	}

	ok, err := c.Get(ctx, "search:x", &got)
	if !ok || err != nil || len(got.IDs) != 1 || got.IDs[0] != "oak-breeze" {
		t.Fatalf("unexpected get: ok=%v err=%v got=%+v", ok, err, got)
	}

	if err := c.Del(ctx, "search:x"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "search:x", &got); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_Expires(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()
	_ = c.Set(ctx, "k", ranking{IDs: []string{"a"}}, 1)
	mr.FastForward(2 * time.Second)
	var got ranking
	if ok, _ := c.Get(ctx, "k", &got); ok {
		t.Fatalf("expected expiry")
	}
}

func TestCache_CorruptValueIsMiss(t *testing.T) {
	c, mr := newCache(t)
	_ = mr.Set("mwalali:k", "{not json")
	var got ranking
	ok, err := c.Get(context.Background(), "k", &got)
	if ok || err == nil {
		t.Fatalf("expected decode error reported as miss, ok=%v err=%v", ok, err)
	}
}

func TestCache_Unreachable(t *testing.T) {
	c, mr := newCache(t)
	mr.Close()
	var got ranking
	if ok, err := c.Get(context.Background(), "k", &got); ok || err == nil {
		t.Fatalf("expected error from closed server, ok=%v err=%v", ok, err)
	}
}
