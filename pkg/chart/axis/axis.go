// Package axis draws the frame around a plot: gridlines, border, tick
// marks, tick labels, axis labels and the title.
//
// Render only appends new primitives. It never touches the data layer.
package axis

import (
	"github.com/matzehuels/plotsvg/pkg/chart/geom"
	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/ticks"
)

const (
	tickLen    = 5.0
	labelPad   = 3.0
	axisGap    = 6.0
	titleGap   = 10.0
	gridColor  = "#e6e6e6"
	frameColor = "#333333"
	textColor  = "#333333"
)

// Options controls which decorations are drawn.
type Options struct {
	Title  string
	XLabel string
	YLabel string

	// GridX draws vertical gridlines at x ticks, GridY horizontal ones at
	// y ticks. Category axes usually turn these off.
	GridX, GridY bool
}

// Layers is the axis output split by paint order: Back goes under the
// data, Front over it.
type Layers struct {
	Back  geom.Group
	Front geom.Group
}

// Render draws axes for rect with the given ticks.
func Render(rect layout.Rect, xt, yt []ticks.Tick, o Options) Layers {
	var grid, frame, labels []geom.Primitive
	gridStyle := geom.Style{Stroke: gridColor, StrokeWidth: 1, ShapeRendering: "crispEdges"}
	markStyle := geom.Style{Stroke: frameColor, StrokeWidth: 1}

	for _, t := range xt {
		if o.GridX {
			grid = append(grid, geom.Line{X1: t.Pos, Y1: rect.Y, X2: t.Pos, Y2: rect.Bottom(), Style: gridStyle})
		}
		frame = append(frame, geom.Line{X1: t.Pos, Y1: rect.Bottom(), X2: t.Pos, Y2: rect.Bottom() + tickLen, Style: markStyle})
		labels = append(labels, geom.Text{
			X: t.Pos, Y: rect.Bottom() + tickLen + labelPad,
			Content: t.Label, Size: layout.TickFontSize,
			Anchor: geom.AnchorMiddle, Baseline: "hanging", Fill: textColor,
		})
	}

	maxYLabel := 0.0
	for _, t := range yt {
		if o.GridY {
			grid = append(grid, geom.Line{X1: rect.X, Y1: t.Pos, X2: rect.Right(), Y2: t.Pos, Style: gridStyle})
		}
		frame = append(frame, geom.Line{X1: rect.X - tickLen, Y1: t.Pos, X2: rect.X, Y2: t.Pos, Style: markStyle})
		labels = append(labels, geom.Text{
			X: rect.X - tickLen - labelPad, Y: t.Pos,
			Content: t.Label, Size: layout.TickFontSize,
			Anchor: geom.AnchorEnd, Baseline: "middle", Fill: textColor,
		})
		maxYLabel = max(maxYLabel, layout.TextWidth(t.Label, layout.TickFontSize))
	}

	frame = append(frame, geom.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H,
		Style: geom.Style{Fill: "none", Stroke: frameColor, StrokeWidth: 1, ShapeRendering: "crispEdges"}})

	if o.XLabel != "" {
		labels = append(labels, geom.Text{
			X: rect.CenterX(), Y: rect.Bottom() + tickLen + labelPad + layout.LineHeight(layout.TickFontSize) + axisGap,
			Content: o.XLabel, Size: layout.LabelFontSize,
			Anchor: geom.AnchorMiddle, Baseline: "hanging", Fill: textColor,
		})
	}
	if o.YLabel != "" {
		labels = append(labels, geom.Text{
			X: rect.X - tickLen - labelPad - maxYLabel - axisGap, Y: rect.CenterY(),
			Content: o.YLabel, Size: layout.LabelFontSize,
			Anchor: geom.AnchorMiddle, Fill: textColor, Rotate: -90,
		})
	}
	if o.Title != "" {
		labels = append(labels, Title(rect, o.Title))
	}

	return Layers{
		Back:  geom.Group{Class: "axes", Items: append(grid, frame...)},
		Front: geom.Group{Class: "axis-labels", Items: labels},
	}
}

// Title returns the chart title centered above rect.
func Title(rect layout.Rect, title string) geom.Text {
	return geom.Text{
		X: rect.CenterX(), Y: rect.Y - titleGap,
		Content: title, Size: layout.TitleFontSize,
		Anchor: geom.AnchorMiddle, Fill: "#111111", Weight: "bold",
	}
}
