package geom

import (
	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
)

// Line dash styles.
const (
	DashSolid  = "solid"
	DashDashed = "dashed"
	DashDotted = "dotted"
)

// DashArray returns the stroke-dasharray for a line style name.
func DashArray(style string) string {
	switch style {
	case DashDashed:
		return "6,4"
	case DashDotted:
		return "2,3"
	}
	return ""
}

// Polyline maps (xs[i], ys[i]) through the scales in input order.
func Polyline(xs, ys []float64, sx, sy scale.Scale, style Style) Path {
	var b PathBuilder
	for i := range xs {
		x, y := sx.Forward(xs[i]), sy.Forward(ys[i])
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Path(style)
}

// Markers returns one circle per point, in input order.
func Markers(xs, ys []float64, sx, sy scale.Scale, r float64, style Style) []Primitive {
	out := make([]Primitive, len(xs))
	for i := range xs {
		out[i] = Circle{CX: sx.Forward(xs[i]), CY: sy.Forward(ys[i]), R: r, Style: style}
	}
	return out
}

// Baseline returns the pixel position of data value 0 on s, clamped to
// [lo, hi]. Log scales have no zero, so their baseline is the domain
// minimum.
func Baseline(s scale.Scale, lo, hi float64) float64 {
	v := 0.0
	if s.Kind() == scale.Log {
		v, _ = s.Domain()
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(s.Forward(v), lo, hi)
}

// Area returns a filled path through the points, closed along the y = 0
// baseline.
func Area(xs, ys []float64, sx, sy scale.Scale, rect layout.Rect, style Style) Path {
	base := Baseline(sy, rect.Y, rect.Bottom())
	var b PathBuilder
	if len(xs) == 0 {
		return b.Path(style)
	}
	b.MoveTo(sx.Forward(xs[0]), base)
	for i := range xs {
		b.LineTo(sx.Forward(xs[i]), sy.Forward(ys[i]))
	}
	b.LineTo(sx.Forward(xs[len(xs)-1]), base)
	b.Close()
	return b.Path(style)
}

// LegendEntry is one labelled swatch.
type LegendEntry struct {
	Label string
	Color string
	Dash  string
}

// Legend draws entries in a box anchored to the top-right corner of rect.
func Legend(entries []LegendEntry, rect layout.Rect) Group {
	const (
		pad      = 8.0
		swatch   = 18.0
		gap      = 6.0
		fontSize = layout.TickFontSize
	)
	if len(entries) == 0 {
		return Group{Class: "legend"}
	}
	textW := 0.0
	for _, e := range entries {
		textW = max(textW, layout.TextWidth(e.Label, fontSize))
	}
	rowH := layout.LineHeight(fontSize) + 2
	w := pad*2 + swatch + gap + textW
	h := pad*2 + rowH*float64(len(entries))
	x := rect.Right() - w - pad
	y := rect.Y + pad

	items := []Primitive{Rect{X: x, Y: y, W: w, H: h, Style: Style{
		Fill: "#ffffff", FillOpacity: 0.85, Stroke: "#cccccc", StrokeWidth: 1,
	}}}
	for i, e := range entries {
		cy := y + pad + rowH*(float64(i)+0.5)
		items = append(items,
			Line{X1: x + pad, Y1: cy, X2: x + pad + swatch, Y2: cy,
				Style: Style{Stroke: e.Color, StrokeWidth: 2, StrokeDash: e.Dash}},
			Text{X: x + pad + swatch + gap, Y: cy, Content: e.Label, Size: fontSize,
				Anchor: AnchorStart, Baseline: "middle", Fill: "#333333"},
		)
	}
	return Group{Class: "legend", Items: items}
}
