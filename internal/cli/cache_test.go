package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/plotsvg/pkg/cache"
)

func TestDefaultCacheDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
		dir, err := defaultCacheDir()
		if err != nil {
			t.Fatalf("defaultCacheDir() error: %v", err)
		}
		if want := filepath.Join("/tmp/xdg", "plotsvg"); dir != want {
			t.Errorf("defaultCacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		dir, err := defaultCacheDir()
		if err != nil {
			t.Fatalf("defaultCacheDir() error: %v", err)
		}
		if want := filepath.Join(home, ".cache", "plotsvg"); dir != want {
			t.Errorf("defaultCacheDir() = %q, want %q", dir, want)
		}
	})
}

func TestCacheDirFromConfig(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.cfg.Cache.Dir = "/var/cache/charts"
	dir, err := c.cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/var/cache/charts" {
		t.Errorf("cacheDir() = %q, want configured dir", dir)
	}
}

func TestNewCacheBackends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		noCache bool
		want    string
	}{
		{"file", backendFile, false, "*cache.FileCache"},
		{"none", backendNone, false, "cache.NullCache"},
		{"no-cache flag", backendFile, true, "cache.NullCache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(os.Stderr, LogInfo)
			c.cfg.Cache.Backend = tt.backend
			c.cfg.Cache.Dir = t.TempDir()

			got, _, err := c.newCache(context.Background(), tt.noCache)
			if err != nil {
				t.Fatalf("newCache() error: %v", err)
			}
			defer got.Close()

			var kind string
			switch got.(type) {
			case *cache.FileCache:
				kind = "*cache.FileCache"
			case cache.NullCache:
				kind = "cache.NullCache"
			}
			if kind != tt.want {
				t.Errorf("newCache() = %T, want %s", got, tt.want)
			}
		})
	}
}

func TestNewCacheScopedKeyer(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.cfg.Cache.Backend = backendNone

	_, keyer, err := c.newCache(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if keyer != nil {
		t.Errorf("keyer = %T, want nil without a prefix", keyer)
	}

	c.cfg.Cache.Prefix = "staging"
	_, keyer, err = c.newCache(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := keyer.(*cache.ScopedKeyer); !ok {
		t.Errorf("keyer = %T, want *cache.ScopedKeyer", keyer)
	}
}
