package geom

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/matzehuels/plotsvg/pkg/chart/layout"
)

// Sector is one pie slice. Angles are in degrees, measured clockwise from
// 12 o'clock.
type Sector struct {
	Start, Sweep float64
}

// SectorAngles splits 360° proportionally to values, starting at start
// and proceeding clockwise. values must be non-negative with a positive
// sum. Values are scaled by their maximum first so that sums of large
// finite values do not overflow.
func SectorAngles(values []float64, start float64) []Sector {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v / peak
	}
	total := vec.Sum(scaled)
	out := make([]Sector, len(values))
	a := start
	for i, v := range scaled {
		sweep := 360 * v / total
		out[i] = Sector{Start: a, Sweep: sweep}
		a += sweep
	}
	return out
}

// polar returns the point at angle deg (clockwise from 12 o'clock) and
// radius r around (cx, cy).
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// pieRadiusRatio leaves room around the pie for slice labels.
const pieRadiusRatio = 0.75

// Pie draws the sectors inside rect. innerRatio in [0, 1) cuts a donut
// hole of innerRatio×radius. Slices with zero sweep are skipped; labels
// sit just outside the rim at each slice's mid-angle.
func Pie(sectors []Sector, labels []string, rect layout.Rect, innerRatio float64) []Primitive {
	cx, cy := rect.CenterX(), rect.CenterY()
	r := math.Min(rect.W, rect.H) / 2 * pieRadiusRatio
	ri := r * innerRatio

	var slices, texts []Primitive
	for i, s := range sectors {
		if s.Sweep <= 0 {
			continue
		}
		style := Style{Fill: SeriesColor(i), Stroke: "#ffffff", StrokeWidth: 1}
		slices = append(slices, sectorPath(cx, cy, r, ri, s).Path(style))

		if i < len(labels) && labels[i] != "" {
			mid := s.Start + s.Sweep/2
			lx, ly := polar(cx, cy, r+10, mid)
			anchor := AnchorStart
			switch sin := math.Sin(mid * math.Pi / 180); {
			case math.Abs(sin) < 1e-9:
				anchor = AnchorMiddle
			case sin < 0:
				anchor = AnchorEnd
			}
			texts = append(texts, Text{X: lx, Y: ly, Content: labels[i], Size: layout.TickFontSize,
				Anchor: anchor, Baseline: "middle", Fill: "#333333"})
		}
	}
	return []Primitive{Group{Class: "slices", Items: slices}, Group{Class: "slice-labels", Items: texts}}
}

func sectorPath(cx, cy, r, ri float64, s Sector) *PathBuilder {
	var b PathBuilder
	end := s.Start + s.Sweep

	// A single arc cannot describe a full circle, so a slice of 360°
	// is drawn as two half-turn arcs.
	if s.Sweep >= 360-1e-9 {
		half := s.Start + 180
		x0, y0 := polar(cx, cy, r, s.Start)
		x1, y1 := polar(cx, cy, r, half)
		b.MoveTo(x0, y0).ArcTo(r, r, false, true, x1, y1).ArcTo(r, r, false, true, x0, y0).Close()
		if ri > 0 {
			x0, y0 = polar(cx, cy, ri, s.Start)
			x1, y1 = polar(cx, cy, ri, half)
			b.MoveTo(x0, y0).ArcTo(ri, ri, false, false, x1, y1).ArcTo(ri, ri, false, false, x0, y0).Close()
		}
		return &b
	}

	large := s.Sweep > 180
	x0, y0 := polar(cx, cy, r, s.Start)
	x1, y1 := polar(cx, cy, r, end)
	if ri > 0 {
		ix0, iy0 := polar(cx, cy, ri, s.Start)
		ix1, iy1 := polar(cx, cy, ri, end)
		b.MoveTo(x0, y0).ArcTo(r, r, large, true, x1, y1).
			LineTo(ix1, iy1).ArcTo(ri, ri, large, false, ix0, iy0).Close()
		return &b
	}
	b.MoveTo(cx, cy).LineTo(x0, y0).ArcTo(r, r, large, true, x1, y1).Close()
	return &b
}
