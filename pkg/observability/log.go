package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports render, cache and HTTP events to a structured logger at
// debug level. Failures are logged as warnings.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnRenderStart(_ context.Context, tool string) {
	h.Logger.Debug("render start", "tool", tool)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, tool string, bytes int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "tool", tool, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render done", "tool", tool, "bytes", bytes, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, tool string) {
	h.Logger.Debug("cache hit", "tool", tool)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, tool string) {
	h.Logger.Debug("cache miss", "tool", tool)
}

func (h *LogHooks) OnCacheSet(_ context.Context, tool string, size int) {
	h.Logger.Debug("cache set", "tool", tool, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	if status >= 500 {
		h.Logger.Warn("response", "method", method, "path", path, "status", status, "duration", d)
		return
	}
	h.Logger.Info("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ HTTPHooks   = (*LogHooks)(nil)
)
