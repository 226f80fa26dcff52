// Package chart renders numeric datasets into deterministic SVG documents.
//
// A render is a pure function of (kind, dataset, config):
//
//	doc, err := chart.Render(chart.KindLine, chart.LineData{
//	    Series: []chart.Series{{Name: "squares", X: []float64{0, 1, 2, 3}, Y: []float64{0, 1, 4, 9}}},
//	}, chart.Config{Width: chart.Int(400), Height: chart.Int(300)})
//
// The pipeline resolves the configuration, builds one scale per axis from
// the data domain, computes the plot rectangle, generates the chart
// geometry and axes, and serializes everything with the sink package. Two
// renders of the same input produce identical bytes.
//
// Failures carry an [errors.Code]: INVALID_CONFIG, INVALID_SCALE,
// EMPTY_DATASET, MISMATCHED_LENGTHS or INVALID_DATA. No partial document is
// ever returned.
package chart

import (
	"fmt"

	"github.com/matzehuels/plotsvg/pkg/chart/axis"
	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
	"github.com/matzehuels/plotsvg/pkg/chart/sink"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
	"github.com/matzehuels/plotsvg/pkg/chart/ticks"
	"github.com/matzehuels/plotsvg/pkg/errors"
)

// Document is a rendered chart.
type Document struct {
	SVG     []byte `json:"svg"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	ViewBox string `json:"viewBox"`
}

// ViewBox returns the view box string for a width×height canvas.
func ViewBox(width, height int) string {
	return fmt.Sprintf("0 0 %d %d", width, height)
}

// frame is the per-request state shared by the kind renderers.
type frame struct {
	cfg  Resolved
	rect layout.Rect
}

// Render draws ds as a chart of the given kind.
func Render(kind Kind, ds Dataset, c Config) (Document, error) {
	if ds == nil {
		return Document{}, errors.New(errors.ErrCodeInvalidData, "no dataset for %s chart", kind)
	}
	if ds.Kind() != kind {
		return Document{}, errors.New(errors.ErrCodeInvalidData,
			"%s dataset cannot be drawn as a %s chart", ds.Kind(), kind)
	}
	cfg, err := Resolve(c)
	if err != nil {
		return Document{}, err
	}
	if err := ds.validate(); err != nil {
		return Document{}, err
	}
	rect, err := layout.Compute(cfg.Width, cfg.Height, cfg.Margin, cfg.Labels())
	if err != nil {
		return Document{}, err
	}
	f := frame{cfg: cfg, rect: rect}

	var layers []sink.SVGOption
	switch d := ds.(type) {
	case LineData:
		layers, err = f.line(d)
	case ScatterData:
		layers, err = f.scatter(d)
	case AreaData:
		layers, err = f.area(d)
	case BarData:
		layers, err = f.bar(d)
	case HistogramData:
		layers, err = f.histogram(d)
	case BoxData:
		layers, err = f.box(d)
	case HeatmapData:
		layers, err = f.heatmap(d)
	case ContourData:
		layers, err = f.contour(d)
	case PieData:
		layers, err = f.pie(d)
	default:
		return Document{}, errors.New(errors.ErrCodeUnsupported, "unsupported dataset type %T", ds)
	}
	if err != nil {
		return Document{}, err
	}

	opts := []sink.SVGOption{
		sink.WithTitle(cfg.Title),
		sink.WithBackground(cfg.Background),
		sink.WithClip(rect),
	}
	opts = append(opts, layers...)
	return Document{
		SVG:     sink.RenderSVG(cfg.Width, cfg.Height, opts...),
		Width:   cfg.Width,
		Height:  cfg.Height,
		ViewBox: ViewBox(cfg.Width, cfg.Height),
	}, nil
}

// domain returns the axis domain for values after applying configured
// bounds. includeZero extends linear and symlog domains to cover 0.
func domain(a Axis, values []float64, includeZero bool) (lo, hi float64, err error) {
	lo, hi = stats.Bounds(values)
	if a.Scale == scale.Log && lo <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidScale,
			"log scale needs positive data, got min %g", lo)
	}
	if includeZero && a.Scale != scale.Log {
		lo, hi = min(lo, 0), max(hi, 0)
	}
	if a.Min != nil {
		lo = *a.Min
	}
	if a.Max != nil {
		hi = *a.Max
	}
	if lo > hi {
		return 0, 0, errors.New(errors.ErrCodeInvalidConfig,
			"axis bounds [%g, %g] exclude all data", lo, hi)
	}
	return lo, hi, nil
}

// xScale and yScale bind an axis to the plot rectangle; y grows upward.
func (f frame) xScale(a Axis, lo, hi float64) (scale.Transform, error) {
	return scale.New(a.Scale, lo, hi, f.rect.X, f.rect.Right(), a.Threshold)
}

func (f frame) yScale(a Axis, lo, hi float64) (scale.Transform, error) {
	return scale.New(a.Scale, lo, hi, f.rect.Bottom(), f.rect.Y, a.Threshold)
}

// axes renders the standard frame for numeric or categorical ticks.
func (f frame) axes(xt, yt []ticks.Tick, gridX, gridY bool) axis.Layers {
	return axis.Render(f.rect, xt, yt, axis.Options{
		Title:  f.cfg.Title,
		XLabel: f.cfg.X.Label,
		YLabel: f.cfg.Y.Label,
		GridX:  gridX,
		GridY:  gridY,
	})
}

func concat(parts ...[]float64) []float64 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func orColor(c, def string) string {
	if c == "" {
		return def
	}
	return c
}
