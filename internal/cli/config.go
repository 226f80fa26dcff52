package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	transportStdio = "stdio"
	transportHTTP  = "http"

	backendNone  = "none"
	backendFile  = "file"
	backendRedis = "redis"

	defaultPort = 8000
)

// Config is the process configuration read from plotsvg.toml.
//
//	output_dir = "charts"
//	transport = "http"
//	port = 8080
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "72h"
type Config struct {
	OutputDir string      `toml:"output_dir"`
	Transport string      `toml:"transport"`
	Port      int         `toml:"port"`
	Cache     CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the render cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	TTL       duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
	// Prefix namespaces keys when several deployments share one store.
	Prefix string `toml:"prefix"`
}

// duration decodes TOML strings such as "24h".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func defaultConfig() Config {
	return Config{
		Transport: transportStdio,
		Port:      defaultPort,
		Cache:     CacheConfig{Backend: backendFile, RedisAddr: "localhost:6379"},
	}
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file is not an error; a missing explicit file is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Transport {
	case transportStdio, transportHTTP:
	default:
		return fmt.Errorf("transport must be %q or %q, got %q", transportStdio, transportHTTP, c.Transport)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	switch c.Cache.Backend {
	case backendNone, backendFile, backendRedis:
	default:
		return fmt.Errorf("cache backend must be none, file or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	return nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/plotsvg/plotsvg.toml, falling
// back to ~/.config.
func defaultConfigPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, appName+".toml"), nil
}
