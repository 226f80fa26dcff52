package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/plotsvg/pkg/cache"
	"github.com/matzehuels/plotsvg/pkg/chart"
	"github.com/matzehuels/plotsvg/pkg/observability"
	"github.com/matzehuels/plotsvg/pkg/output"
	"github.com/matzehuels/plotsvg/pkg/tools"
)

// Runner executes requests with caching. It holds no per-request state and
// is safe for concurrent use.
type Runner struct {
	Registry  *tools.Registry
	Cache     cache.Cache
	Keyer     cache.Keyer
	Formatter output.Formatter
	Logger    *log.Logger
	// TTL is the cache lifetime of documents; zero means TTLDocument.
	TTL time.Duration
	// Parallelism bounds RenderBatch; zero means GOMAXPROCS.
	Parallelism int
}

// NewRunner creates a runner. Nil arguments fall back to the full tool
// registry, a NullCache, the DefaultKeyer and the default logger.
func NewRunner(reg *tools.Registry, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if reg == nil {
		reg = tools.NewRegistry()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Registry: reg, Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs one request.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	call, err := r.Registry.Decode(req.Tool, req.Params)
	if err != nil {
		return nil, err
	}

	canon, err := call.Canonical()
	if err != nil {
		return nil, fmt.Errorf("encode %s parameters: %w", call.Tool, err)
	}
	key := r.Keyer.DocumentKey(call.Tool, cache.Hash(canon))

	res := &Result{Tool: call.Tool, Kind: call.Kind}
	doc, hit := r.lookup(ctx, call.Tool, key)
	if hit {
		res.CacheHit = true
	} else {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		observability.Render().OnRenderStart(ctx, call.Tool)
		doc, err = chart.Render(call.Kind, call.Dataset, call.Config)
		res.Stats.RenderTime = time.Since(start)
		observability.Render().OnRenderComplete(ctx, call.Tool, len(doc.SVG), res.Stats.RenderTime, err)
		if err != nil {
			return nil, err
		}
		r.store(ctx, call.Tool, key, doc)
	}
	res.Document = doc
	res.Stats.Bytes = len(doc.SVG)

	res.Output, err = r.Formatter.Format(call.Kind, call.Config.Title, doc)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered chart",
		"tool", call.Tool,
		"bytes", res.Stats.Bytes,
		"duration", res.Stats.RenderTime,
		"cached", res.CacheHit)
	return res, nil
}

// RenderBatch executes reqs in parallel. Results are in request order. The
// first failure cancels the remaining requests and is returned.
func (r *Runner) RenderBatch(ctx context.Context, reqs []Request) ([]*Result, error) {
	limit := r.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := r.Execute(ctx, req)
			if err != nil {
				return fmt.Errorf("request %d (%s): %w", i, req.Tool, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup returns a cached document. Cache failures degrade to a miss.
func (r *Runner) lookup(ctx context.Context, tool, key string) (chart.Document, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "tool", tool, "err", err)
		return chart.Document{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, tool)
		return chart.Document{}, false
	}
	var doc chart.Document
	if err := json.Unmarshal(data, &doc); err != nil || len(doc.SVG) == 0 {
		r.Logger.Debug("discarding unreadable cache entry", "tool", tool)
		observability.Cache().OnCacheMiss(ctx, tool)
		return chart.Document{}, false
	}
	observability.Cache().OnCacheHit(ctx, tool)
	return doc, true
}

func (r *Runner) store(ctx context.Context, tool, key string, doc chart.Document) {
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLDocument
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "tool", tool, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, tool, len(data))
}
