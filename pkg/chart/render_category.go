package chart

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/plotsvg/pkg/chart/axis"
	"github.com/matzehuels/plotsvg/pkg/chart/geom"
	"github.com/matzehuels/plotsvg/pkg/chart/sink"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
	"github.com/matzehuels/plotsvg/pkg/chart/ticks"
	"github.com/matzehuels/plotsvg/pkg/errors"
)

const defaultBoxColor = "black"

// bar draws categories along one axis and values along the other. The
// value axis takes its scale from x_axis when horizontal, y_axis otherwise.
func (f frame) bar(d BarData) ([]sink.SVGOption, error) {
	occ := orDefault(d.BarWidth, geom.DefaultOccupancy)
	style := geom.Style{Fill: orColor(d.Color, defaultColor)}

	var bars []geom.Primitive
	var ax axis.Layers
	if d.Orientation == geom.Horizontal {
		lo, hi, err := domain(f.cfg.X, d.Values, true)
		if err != nil {
			return nil, err
		}
		sx, err := f.xScale(f.cfg.X, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("x axis: %w", err)
		}
		bars = geom.Bars(d.Values, f.rect, sx, geom.Horizontal, occ, style)
		ax = f.axes(ticks.Plan(sx, 0), ticks.Categories(d.Categories, f.rect.Y, f.rect.Bottom()), true, false)
	} else {
		lo, hi, err := domain(f.cfg.Y, d.Values, true)
		if err != nil {
			return nil, err
		}
		sy, err := f.yScale(f.cfg.Y, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("y axis: %w", err)
		}
		bars = geom.Bars(d.Values, f.rect, sy, geom.Vertical, occ, style)
		ax = f.axes(ticks.Categories(d.Categories, f.rect.X, f.rect.Right()), ticks.Plan(sy, 0), false, true)
	}

	return []sink.SVGOption{
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", geom.Group{Class: "bars", Clip: true, Items: bars}),
		sink.WithLayer("labels", ax.Front),
	}, nil
}

func (f frame) box(d BoxData) ([]sink.SVGOption, error) {
	summaries := make([]stats.Summary, len(d.Groups))
	names := make([]string, len(d.Groups))
	var all [][]float64
	for i, g := range d.Groups {
		s, err := stats.Box(g.Values)
		if err != nil {
			return nil, err
		}
		summaries[i], names[i] = s, g.Name
		all = append(all, g.Values)
	}

	lo, hi, err := domain(f.cfg.Y, concat(all...), false)
	if err != nil {
		return nil, err
	}
	sy, err := f.yScale(f.cfg.Y, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	boxes := geom.Boxes(summaries, f.rect, sy, orDefault(d.BoxWidth, geom.DefaultBoxWidth), orColor(d.Color, defaultBoxColor))

	ax := f.axes(ticks.Categories(names, f.rect.X, f.rect.Right()), ticks.Plan(sy, 0), false, true)
	return []sink.SVGOption{
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", geom.Group{Class: "boxes", Clip: true, Items: boxes}),
		sink.WithLayer("labels", ax.Front),
	}, nil
}

// heatmap gives up ColorbarWidth pixels on the right for the color bar.
func (f frame) heatmap(d HeatmapData) ([]sink.SVGOption, error) {
	hf := f
	hf.rect.W -= geom.ColorbarWidth
	if hf.rect.W <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas too narrow for a heatmap with color bar (plot width %g)", f.rect.W)
	}

	p, err := geom.NewPalette(d.ColorScale)
	if err != nil {
		return nil, err
	}
	lo, hi := stats.Bounds(concat(d.Matrix...))
	cells := geom.Heatmap(d.Matrix, hf.rect, p, lo, hi, d.ShowValues)
	bar, grad := geom.Colorbar(hf.rect, p, lo, hi)

	xl := d.XLabels
	if xl == nil {
		xl = indexLabels(len(d.Matrix[0]))
	}
	yl := d.YLabels
	if yl == nil {
		yl = indexLabels(len(d.Matrix))
	}
	ax := hf.axes(ticks.Categories(xl, hf.rect.X, hf.rect.Right()), ticks.Categories(yl, hf.rect.Y, hf.rect.Bottom()), false, false)

	return []sink.SVGOption{
		sink.WithGradient(grad),
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", cells...),
		sink.WithLayer("labels", ax.Front),
		sink.WithLayer("legend", bar),
	}, nil
}

func indexLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
