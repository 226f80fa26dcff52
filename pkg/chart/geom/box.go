package geom

import (
	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
)

// DefaultBoxWidth is the share of a group slot covered by its box.
const DefaultBoxWidth = 0.6

const outlierRadius = 3.0

// Boxes draws one box-and-whisker glyph per summary in evenly spaced
// slots across rect, mapping values through sy.
func Boxes(groups []stats.Summary, rect layout.Rect, sy scale.Scale, boxWidth float64, color string) []Primitive {
	n := len(groups)
	if n == 0 {
		return nil
	}
	slot := rect.W / float64(n)
	bw := slot * boxWidth
	stroke := Style{Stroke: color, StrokeWidth: 1.5}

	var out []Primitive
	for i, s := range groups {
		cx := rect.X + (float64(i)+0.5)*slot
		left, right := cx-bw/2, cx+bw/2
		capL, capR := cx-bw/4, cx+bw/4

		yQ1, yQ3 := sy.Forward(s.Q1), sy.Forward(s.Q3)
		yLo, yHi := sy.Forward(s.WhiskerLow), sy.Forward(s.WhiskerHigh)
		yMed := sy.Forward(s.Median)

		items := []Primitive{
			Line{X1: cx, Y1: yLo, X2: cx, Y2: yQ1, Style: stroke},
			Line{X1: cx, Y1: yQ3, X2: cx, Y2: yHi, Style: stroke},
			Line{X1: capL, Y1: yLo, X2: capR, Y2: yLo, Style: stroke},
			Line{X1: capL, Y1: yHi, X2: capR, Y2: yHi, Style: stroke},
			Rect{X: left, Y: min(yQ1, yQ3), W: bw, H: max(yQ1, yQ3) - min(yQ1, yQ3),
				Style: Style{Fill: "#ffffff", Stroke: color, StrokeWidth: 1.5}},
			Line{X1: left, Y1: yMed, X2: right, Y2: yMed, Style: Style{Stroke: color, StrokeWidth: 2.5}},
		}
		for _, o := range s.Outliers {
			items = append(items, Circle{CX: cx, CY: sy.Forward(o), R: outlierRadius,
				Style: Style{Fill: "none", Stroke: color, StrokeWidth: 1}})
		}
		out = append(out, Group{Class: "box", Items: items})
	}
	return out
}
