// Package cli implements the plotsvg command-line interface.
//
// Commands:
//   - render: render one chart (or a batch) from JSON parameters
//   - serve: expose the tools over stdio or HTTP
//   - tools: list the tools and their options
//   - demo: render a bundled example, picked interactively
//   - cache: inspect or clear the local render cache
//
// All commands accept --verbose (-v) for debug logging and --config for an
// alternate plotsvg.toml. Loggers travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsvg/pkg/buildinfo"
	"github.com/matzehuels/plotsvg/pkg/cache"
	"github.com/matzehuels/plotsvg/pkg/output"
	"github.com/matzehuels/plotsvg/pkg/pipeline"
	"github.com/matzehuels/plotsvg/pkg/tools"
)

// appName names the config and cache directories.
const appName = "plotsvg"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	cfg        Config
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: defaultConfig()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "plotsvg renders numeric data as deterministic SVG charts",
		Long:         `plotsvg turns JSON datasets into static SVG charts: line, scatter, bar, area, histogram, box, heatmap, contour and pie. It runs as a CLI or serves the chart tools over stdio and HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/plotsvg/plotsvg.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.toolsCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	return root
}

// newRunner builds a runner from the loaded config. outputDir overrides
// the configured output directory when non-empty.
func (c *CLI) newRunner(ctx context.Context, outputDir string, noCache bool) (*pipeline.Runner, error) {
	store, keyer, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(tools.NewRegistry(), store, keyer, loggerFromContext(ctx))
	r.TTL = c.cfg.Cache.TTL.Duration
	if outputDir == "" {
		outputDir = c.cfg.OutputDir
	}
	if outputDir != "" {
		abs, err := filepath.Abs(outputDir)
		if err != nil {
			return nil, fmt.Errorf("output directory: %w", err)
		}
		r.Formatter = output.Formatter{Dir: abs}
	}
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer, error) {
	var keyer cache.Keyer
	if c.cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, c.cfg.Cache.Prefix)
	}
	if noCache {
		return cache.NewNullCache(), keyer, nil
	}

	switch c.cfg.Cache.Backend {
	case backendNone:
		return cache.NewNullCache(), keyer, nil
	case backendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.cfg.Cache.RedisAddr,
			Password: os.Getenv("PLOTSVG_REDIS_PASSWORD"),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", c.cfg.Cache.RedisAddr, err)
		}
		return rc, keyer, nil
	default:
		dir, err := c.cacheDir()
		if err != nil {
			loggerFromContext(ctx).Debug("cache disabled", "err", err)
			return cache.NewNullCache(), keyer, nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, nil, err
		}
		return fc, keyer, nil
	}
}

// cacheDir returns the configured cache directory or the XDG default
// (~/.cache/plotsvg/).
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return defaultCacheDir()
}

func defaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
