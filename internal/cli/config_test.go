package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plotsvg.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output_dir = "charts"
transport = "http"
port = 9090

[cache]
backend = "redis"
redis_addr = "cache:6379"
ttl = "36h"
prefix = "ci:"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.OutputDir != "charts" || cfg.Transport != transportHTTP || cfg.Port != 9090 {
		t.Errorf("top level = %+v", cfg)
	}
	if cfg.Cache.Backend != backendRedis || cfg.Cache.RedisAddr != "cache:6379" || cfg.Cache.Prefix != "ci:" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 36*time.Hour {
		t.Errorf("ttl = %v, want 36h", cfg.Cache.TTL.Duration)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "port = 8123\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8123 {
		t.Errorf("port = %d, want 8123", cfg.Port)
	}
	if cfg.Transport != transportStdio || cfg.Cache.Backend != backendFile {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown key", "colour = \"red\"\n", "unknown key"},
		{"bad transport", "transport = \"grpc\"\n", "transport"},
		{"bad port", "port = 70000\n", "port"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", "backend"},
		{"bad ttl", "[cache]\nttl = \"soon\"\n", "invalid duration"},
		{"negative ttl", "[cache]\nttl = \"-1h\"\n", "ttl"},
		{"syntax", "port = \n", "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("loadConfig() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing explicit config should fail")
	}
}
