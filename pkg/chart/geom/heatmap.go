package geom

import (
	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/ticks"
)

// Heatmap draws one cell per matrix entry, row 0 at the top of rect.
// Colors span [lo, hi]; when showValues is set each cell is labelled
// with its value to two decimals.
func Heatmap(matrix [][]float64, rect layout.Rect, p Palette, lo, hi float64, showValues bool) []Primitive {
	rows := len(matrix)
	if rows == 0 || len(matrix[0]) == 0 {
		return nil
	}
	cols := len(matrix[0])
	cw, ch := rect.W/float64(cols), rect.H/float64(rows)

	cells := make([]Primitive, 0, rows*cols)
	var labels []Primitive
	for i, row := range matrix {
		for j, v := range row {
			t := Normalize(v, lo, hi)
			x, y := rect.X+float64(j)*cw, rect.Y+float64(i)*ch
			cells = append(cells, Rect{X: x, Y: y, W: cw, H: ch,
				Style: Style{Fill: p.At(t), ShapeRendering: "crispEdges"}})
			if showValues {
				labels = append(labels, Text{
					X: x + cw/2, Y: y + ch/2,
					Content:  ticks.Format(v, 2),
					Size:     layout.TickFontSize,
					Anchor:   AnchorMiddle,
					Baseline: "middle",
					Fill:     p.TextColor(t),
				})
			}
		}
	}
	out := []Primitive{Group{Class: "cells", Items: cells}}
	if len(labels) > 0 {
		out = append(out, Group{Class: "cell-values", Items: labels})
	}
	return out
}

// ColorbarWidth is the horizontal space a colorbar claims to the right of
// the plot, including its tick labels.
const ColorbarWidth = 70.0

// Colorbar draws a vertical gradient bar right of rect with tick labels
// for lo and hi. It returns the gradient definition it references.
func Colorbar(rect layout.Rect, p Palette, lo, hi float64) (Group, Gradient) {
	const barW = 14.0
	g := p.Gradient()
	x := rect.Right() + 16
	items := []Primitive{
		Rect{X: x, Y: rect.Y, W: barW, H: rect.H, Style: Style{Fill: g.URL(), Stroke: "#333333", StrokeWidth: 0.5}},
	}

	var marks []float64
	if lo == hi {
		marks = []float64{lo}
	} else {
		marks = []float64{lo, (lo + hi) / 2, hi}
	}
	prec := 2
	if lo != hi {
		step := ticks.LinearStep(lo, hi, ticks.DefaultTarget+2)
		if step >= 1 {
			prec = 0
		}
	}
	for _, m := range marks {
		y := rect.Bottom() - Normalize(m, lo, hi)*rect.H
		items = append(items,
			Line{X1: x + barW, Y1: y, X2: x + barW + 4, Y2: y, Style: Style{Stroke: "#333333", StrokeWidth: 1}},
			Text{X: x + barW + 6, Y: y, Content: ticks.Format(m, prec), Size: layout.TickFontSize,
				Anchor: AnchorStart, Baseline: "middle", Fill: "#333333"},
		)
	}
	return Group{Class: "colorbar", Items: items}, g
}
