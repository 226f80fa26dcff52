package chart

import (
	"fmt"

	"github.com/matzehuels/plotsvg/pkg/chart/axis"
	"github.com/matzehuels/plotsvg/pkg/chart/geom"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
	"github.com/matzehuels/plotsvg/pkg/chart/sink"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
	"github.com/matzehuels/plotsvg/pkg/chart/ticks"
)

func (f frame) histogram(d HistogramData) ([]sink.SVGOption, error) {
	n := stats.DefaultBins
	if d.Bins != nil {
		n = *d.Bins
	}
	b, err := stats.Histogram(d.Values, n)
	if err != nil {
		return nil, err
	}

	heights := make([]float64, len(b.Counts))
	if d.Density {
		heights = b.Density()
	} else {
		for i, c := range b.Counts {
			heights[i] = float64(c)
		}
	}

	xlo, xhi, err := domain(f.cfg.X, b.Edges, false)
	if err != nil {
		return nil, err
	}
	sx, err := f.xScale(f.cfg.X, xlo, xhi)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}

	yvals := heights
	if f.cfg.Y.Scale == scale.Log {
		// Empty bins have no place on a log axis; they collapse onto
		// the baseline.
		yvals = nil
		for _, h := range heights {
			if h > 0 {
				yvals = append(yvals, h)
			}
		}
	}
	ylo, yhi, err := domain(f.cfg.Y, yvals, true)
	if err != nil {
		return nil, err
	}
	sy, err := f.yScale(f.cfg.Y, ylo, yhi)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	style := geom.Style{Fill: orColor(d.Color, defaultColor), Stroke: "#ffffff", StrokeWidth: 1}
	bars := geom.HistogramBars(b, heights, sx, sy, f.rect, style)

	ax := f.axes(ticks.Plan(sx, 0), ticks.Plan(sy, 0), false, true)
	return []sink.SVGOption{
		sink.WithLayer("axes", ax.Back),
		sink.WithLayer("data", geom.Group{Class: "bins", Clip: true, Items: bars}),
		sink.WithLayer("labels", ax.Front),
	}, nil
}

// pie has no axes; only the title is drawn around it.
func (f frame) pie(d PieData) ([]sink.SVGOption, error) {
	sectors := geom.SectorAngles(d.Values, d.StartAngle)
	opts := []sink.SVGOption{
		sink.WithLayer("data", geom.Pie(sectors, d.Labels, f.rect, d.InnerRadiusRatio)...),
	}
	if f.cfg.Title != "" {
		opts = append(opts, sink.WithLayer("labels", axis.Title(f.rect, f.cfg.Title)))
	}
	return opts, nil
}
