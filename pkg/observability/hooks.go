// Package observability provides hooks for metrics, tracing and logging.
//
// Hooks let a binary attach instrumentation without the library packages
// depending on any particular backend. Register implementations at startup:
//
//	func main() {
//	    observability.SetRenderHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries emit events through the accessors:
//
//	observability.Render().OnRenderStart(ctx, tool)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, tool, len(svg), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from tool executions.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, tool string)
	OnRenderComplete(ctx context.Context, tool string, bytes int, duration time.Duration, err error)
}

// CacheHooks receives events from render cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, tool string)
	OnCacheMiss(ctx context.Context, tool string)
	OnCacheSet(ctx context.Context, tool string, size int)
}

// HTTPHooks receives events from the HTTP transport.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)
	// OnResponse records the status written for a request.
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)
}

// NoopRenderHooks ignores all render events.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks ignores all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores all HTTP events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers render hooks. Nil is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
