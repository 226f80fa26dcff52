//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("PLOTSVG_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, RedisOptions{Addr: addr})
	if err != nil {
		t.Skipf("redis unavailable at %s: %v", addr, err)
	}
	defer c.Close()

	key := NewScopedKeyer(nil, "plotsvg-test:").DocumentKey("plot_line", Hash([]byte(t.Name())))
	if err := c.Set(ctx, key, []byte("<svg/>"), time.Minute); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(got) != "<svg/>" {
		t.Fatalf("Get() = (%q, %v, %v)", got, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("key survived Delete")
	}
}
