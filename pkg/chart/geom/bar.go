package geom

import (
	"math"

	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
)

// Bar orientations.
const (
	Vertical   = "vertical"
	Horizontal = "horizontal"
)

// DefaultOccupancy is the share of a category slot covered by its bar.
const DefaultOccupancy = 0.8

// Bars draws one rectangle per value in evenly spaced category slots.
// Vertical bars run left to right along the x axis with value scale vs
// mapping to y; horizontal bars run top to bottom with vs mapping to x.
func Bars(values []float64, rect layout.Rect, vs scale.Scale, orientation string, occupancy float64, style Style) []Primitive {
	n := len(values)
	if n == 0 {
		return nil
	}
	out := make([]Primitive, n)
	if orientation == Horizontal {
		slot := rect.H / float64(n)
		bh := slot * occupancy
		base := Baseline(vs, rect.X, rect.Right())
		for i, v := range values {
			x := vs.Forward(v)
			out[i] = Rect{
				X:     math.Min(base, x),
				Y:     rect.Y + float64(i)*slot + (slot-bh)/2,
				W:     math.Abs(x - base),
				H:     bh,
				Style: style,
			}
		}
		return out
	}

	slot := rect.W / float64(n)
	bw := slot * occupancy
	base := Baseline(vs, rect.Y, rect.Bottom())
	for i, v := range values {
		y := vs.Forward(v)
		out[i] = Rect{
			X:     rect.X + float64(i)*slot + (slot-bw)/2,
			Y:     math.Min(base, y),
			W:     bw,
			H:     math.Abs(y - base),
			Style: style,
		}
	}
	return out
}

// HistogramBars draws one rectangle per bin spanning its edges. heights
// holds the per-bin y values (counts or densities).
func HistogramBars(b stats.Bins, heights []float64, sx, sy scale.Scale, rect layout.Rect, style Style) []Primitive {
	base := Baseline(sy, rect.Y, rect.Bottom())
	out := make([]Primitive, len(heights))
	for i, h := range heights {
		x0, x1 := sx.Forward(b.Edges[i]), sx.Forward(b.Edges[i+1])
		y := sy.Forward(h)
		out[i] = Rect{
			X:     math.Min(x0, x1),
			Y:     math.Min(base, y),
			W:     math.Abs(x1 - x0),
			H:     math.Abs(base - y),
			Style: style,
		}
	}
	return out
}
