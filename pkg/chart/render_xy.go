package chart

import (
	"fmt"

	"github.com/matzehuels/plotsvg/pkg/chart/geom"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
	"github.com/matzehuels/plotsvg/pkg/chart/sink"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
	"github.com/matzehuels/plotsvg/pkg/chart/ticks"
)

const (
	defaultColor       = "steelblue"
	defaultStrokeWidth = 2.0
	defaultPointRadius = 4.0
	defaultAreaOpacity = 0.6
	defaultContourLine = 1.0
)

// xyScales builds both scales from paired data.
func (f frame) xyScales(xs, ys []float64, yZero bool) (sx, sy scale.Transform, err error) {
	xlo, xhi, err := domain(f.cfg.X, xs, false)
	if err != nil {
		return sx, sy, err
	}
	ylo, yhi, err := domain(f.cfg.Y, ys, yZero)
	if err != nil {
		return sx, sy, err
	}
	if sx, err = f.xScale(f.cfg.X, xlo, xhi); err != nil {
		return sx, sy, fmt.Errorf("x axis: %w", err)
	}
	if sy, err = f.yScale(f.cfg.Y, ylo, yhi); err != nil {
		return sx, sy, fmt.Errorf("y axis: %w", err)
	}
	return sx, sy, nil
}

func (f frame) line(d LineData) ([]sink.SVGOption, error) {
	var xs, ys [][]float64
	for _, s := range d.Series {
		xs, ys = append(xs, s.X), append(ys, s.Y)
	}
	sx, sy, err := f.xyScales(concat(xs...), concat(ys...), false)
	if err != nil {
		return nil, err
	}

	width := orDefault(d.StrokeWidth, defaultStrokeWidth)
	dash := geom.DashArray(d.LineStyle)
	var data []geom.Primitive
	var legend []geom.LegendEntry
	for i, s := range d.Series {
		color := geom.SeriesColor(i)
		items := []geom.Primitive{geom.Polyline(s.X, s.Y, sx, sy, geom.Style{
			Fill: "none", Stroke: color, StrokeWidth: width, StrokeDash: dash,
		})}
		if d.ShowMarkers {
			items = append(items, geom.Markers(s.X, s.Y, sx, sy, width+1.5, geom.Style{Fill: color})...)
		}
		data = append(data, geom.Group{Class: "series", Items: items})

		name := s.Name
		if name == "" {
			name = fmt.Sprintf("series %d", i+1)
		}
		legend = append(legend, geom.LegendEntry{Label: name, Color: color, Dash: dash})
	}

	ax := f.axes(ticks.Plan(sx, 0), ticks.Plan(sy, 0), true, true)
	opts := []sink.SVGOption{
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", geom.Group{Class: "lines", Clip: true, Items: data}),
		sink.WithLayer("labels", ax.Front),
	}
	if len(d.Series) > 1 {
		opts = append(opts, sink.WithLayer("legend", geom.Legend(legend, f.rect)))
	}
	return opts, nil
}

func (f frame) scatter(d ScatterData) ([]sink.SVGOption, error) {
	sx, sy, err := f.xyScales(d.X, d.Y, false)
	if err != nil {
		return nil, err
	}
	style := geom.Style{Fill: orColor(d.Color, defaultColor)}
	switch op := orDefault(d.Opacity, 1); {
	case op == 0:
		style.Fill = "none"
	case op < 1:
		style.FillOpacity = op
	}
	points := geom.Markers(d.X, d.Y, sx, sy, orDefault(d.PointRadius, defaultPointRadius), style)

	ax := f.axes(ticks.Plan(sx, 0), ticks.Plan(sy, 0), true, true)
	return []sink.SVGOption{
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", geom.Group{Class: "points", Clip: true, Items: points}),
		sink.WithLayer("labels", ax.Front),
	}, nil
}

func (f frame) area(d AreaData) ([]sink.SVGOption, error) {
	sx, sy, err := f.xyScales(d.X, d.Y, false)
	if err != nil {
		return nil, err
	}
	color := orColor(d.FillColor, defaultColor)
	style := geom.Style{Fill: color, FillOpacity: orDefault(d.Opacity, defaultAreaOpacity), Stroke: color, StrokeWidth: 1.5}
	if style.FillOpacity == 0 {
		style.Fill = "none"
	}
	path := geom.Area(d.X, d.Y, sx, sy, f.rect, style)

	ax := f.axes(ticks.Plan(sx, 0), ticks.Plan(sy, 0), true, true)
	return []sink.SVGOption{
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", geom.Group{Class: "area", Clip: true, Items: []geom.Primitive{path}}),
		sink.WithLayer("labels", ax.Front),
	}, nil
}

func (f frame) contour(d ContourData) ([]sink.SVGOption, error) {
	sx, sy, err := f.xyScales(d.X, d.Y, false)
	if err != nil {
		return nil, err
	}
	zlo, zhi := stats.Bounds(concat(d.Z...))
	n := geom.DefaultLevels
	if d.Levels != nil {
		n = *d.Levels
	}
	p, _ := geom.NewPalette(geom.Viridis)
	lines := geom.Contours(d.X, d.Y, d.Z, geom.ContourLevels(zlo, zhi, n), sx, sy, p,
		orDefault(d.StrokeWidth, defaultContourLine))

	ax := f.axes(ticks.Plan(sx, 0), ticks.Plan(sy, 0), true, true)
	return []sink.SVGOption{
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", geom.Group{Class: "contours", Clip: true, Items: lines}),
		sink.WithLayer("labels", ax.Front),
	}, nil
}
