package geom

import (
	"github.com/aclements/go-moremath/vec"

	"github.com/matzehuels/plotsvg/pkg/chart/scale"
)

// DefaultLevels is the number of iso-lines drawn when none is configured.
const DefaultLevels = 10

// ContourLevels returns n levels evenly spaced strictly inside (lo, hi).
// A flat field has no levels.
func ContourLevels(lo, hi float64, n int) []float64 {
	if n <= 0 || lo == hi {
		return nil
	}
	return vec.Linspace(lo, hi, n+2)[1 : n+1]
}

// Segment is one iso-line piece inside a grid cell.
type Segment struct {
	A, B Point
}

// edge ids: top (c0-c1), right (c1-c2), bottom (c3-c2), left (c0-c3),
// with corners c0 = (i, j), c1 = (i, j+1), c2 = (i+1, j+1), c3 = (i+1, j).
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// segmentTable lists edge pairs per case index (c0=8, c1=4, c2=2, c3=1,
// bit set when the corner is at or above the level). Saddles 5 and 10 are
// resolved separately.
var segmentTable = [16][][2]int{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeLeft, edgeTop}},
	8:  {{edgeLeft, edgeTop}},
	9:  {{edgeTop, edgeBottom}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

// MarchingSquares extracts the segments of the level iso-line from grid
// z (rows × cols, z[i][j] at (xs[j], ys[i])) in data coordinates. Cells
// are visited row-major; saddle cells are disambiguated by the mean of
// their four corners.
func MarchingSquares(xs, ys []float64, z [][]float64, level float64) []Segment {
	var segs []Segment
	for i := 0; i+1 < len(z); i++ {
		for j := 0; j+1 < len(z[i]); j++ {
			v := [4]float64{z[i][j], z[i][j+1], z[i+1][j+1], z[i+1][j]}
			p := [4]Point{{xs[j], ys[i]}, {xs[j+1], ys[i]}, {xs[j+1], ys[i+1]}, {xs[j], ys[i+1]}}

			idx := 0
			for k, bit := range [4]int{8, 4, 2, 1} {
				if v[k] >= level {
					idx |= bit
				}
			}

			pairs := segmentTable[idx]
			if idx == 5 || idx == 10 {
				centerAbove := (v[0]+v[1]+v[2]+v[3])/4 >= level
				// Case 5 has c1 and c3 above; case 10 has c0 and c2.
				// A center on the above side joins the above corners, so
				// the lines cut off the below corners instead.
				if (idx == 5) == centerAbove {
					pairs = [][2]int{{edgeLeft, edgeTop}, {edgeBottom, edgeRight}}
				} else {
					pairs = [][2]int{{edgeLeft, edgeBottom}, {edgeTop, edgeRight}}
				}
			}
			for _, pr := range pairs {
				segs = append(segs, Segment{
					A: crossing(pr[0], v, p, level),
					B: crossing(pr[1], v, p, level),
				})
			}
		}
	}
	return segs
}

var edgeCorners = [4][2]int{
	edgeTop:    {0, 1},
	edgeRight:  {1, 2},
	edgeBottom: {3, 2},
	edgeLeft:   {0, 3},
}

func crossing(edge int, v [4]float64, p [4]Point, level float64) Point {
	a, b := edgeCorners[edge][0], edgeCorners[edge][1]
	t := 0.5
	if v[b] != v[a] {
		t = (level - v[a]) / (v[b] - v[a])
	}
	return Point{
		X: p[a].X + t*(p[b].X-p[a].X),
		Y: p[a].Y + t*(p[b].Y-p[a].Y),
	}
}

// Contours draws one path per level, ascending, colored along p. Levels
// without any crossing produce no path.
func Contours(xs, ys []float64, z [][]float64, levels []float64, sx, sy scale.Scale, p Palette, strokeWidth float64) []Primitive {
	var out []Primitive
	for k, level := range levels {
		segs := MarchingSquares(xs, ys, z, level)
		if len(segs) == 0 {
			continue
		}
		var b PathBuilder
		for _, s := range segs {
			b.MoveTo(sx.Forward(s.A.X), sy.Forward(s.A.Y))
			b.LineTo(sx.Forward(s.B.X), sy.Forward(s.B.Y))
		}
		t := 0.5
		if len(levels) > 1 {
			t = float64(k) / float64(len(levels)-1)
		}
		out = append(out, b.Path(Style{Fill: "none", Stroke: p.At(t), StrokeWidth: strokeWidth}))
	}
	return out
}
