// Package pipeline executes tool calls: decode, cache lookup, render and
// response formatting.
//
// The CLI and both server transports share one [Runner] so that caching,
// logging and output naming behave the same everywhere:
//
//	runner := pipeline.NewRunner(tools.NewRegistry(), c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Request{
//	    Tool:   "plot_bar",
//	    Params: json.RawMessage(`{"data":{"categories":["a"],"values":[1]}}`),
//	})
//	fmt.Println(res.Output.ViewBox)
//
// Independent requests can be rendered in parallel with
// [Runner.RenderBatch]; results keep the order of the requests.
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/matzehuels/plotsvg/pkg/chart"
	"github.com/matzehuels/plotsvg/pkg/output"
)

// Request is one tool call.
type Request struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params"`
}

// Result is the outcome of a successful request.
type Result struct {
	Tool     string         `json:"tool"`
	Kind     chart.Kind     `json:"kind"`
	Document chart.Document `json:"-"`
	Output   output.Output  `json:"output"`
	Stats    Stats          `json:"stats"`
	CacheHit bool           `json:"cache_hit"`
}

// Stats describes the work done for a request.
type Stats struct {
	RenderTime time.Duration `json:"render_time"`
	Bytes      int           `json:"bytes"`
}
