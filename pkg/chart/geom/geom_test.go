package geom

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
)

var testRect = layout.Rect{X: 50, Y: 20, W: 400, H: 200}

func linear(t *testing.T, lo, hi, r0, r1 float64) scale.Transform {
	t.Helper()
	s, err := scale.New(scale.Linear, lo, hi, r0, r1, 0)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-0.004, "0"},
		{1, "1"},
		{1.5, "1.5"},
		{1.005000001, "1.01"},
		{123.456, "123.46"},
		{-7.1, "-7.1"},
		{100, "100"},
	}
	for _, tt := range tests {
		if got := Num(tt.v); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPathD(t *testing.T) {
	var b PathBuilder
	b.MoveTo(0, 10).LineTo(5.25, -0.001).ArcTo(3, 3, true, false, 1, 2).Close()
	got := b.Path(Style{}).D()
	want := "M0,10 L5.25,0 A3,3 0 1,0 1,2 Z"
	if got != want {
		t.Errorf("D() = %q, want %q", got, want)
	}
}

func TestPolyline(t *testing.T) {
	sx := linear(t, 0, 3, testRect.X, testRect.Right())
	sy := linear(t, 0, 9, testRect.Bottom(), testRect.Y)
	p := Polyline([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, sx, sy, Style{})
	if len(p.Cmds) != 4 || p.Cmds[0].Op != MoveTo {
		t.Fatalf("cmds = %+v", p.Cmds)
	}
	for i := 1; i < len(p.Cmds); i++ {
		if p.Cmds[i].X <= p.Cmds[i-1].X {
			t.Errorf("x not increasing at %d", i)
		}
		if p.Cmds[i].Y >= p.Cmds[i-1].Y {
			t.Errorf("y pixel not decreasing at %d", i)
		}
	}
	if p.Cmds[3].X != testRect.Right() || p.Cmds[3].Y != testRect.Y {
		t.Errorf("last point = (%g, %g), want top-right corner", p.Cmds[3].X, p.Cmds[3].Y)
	}
}

func TestAreaBaseline(t *testing.T) {
	sx := linear(t, 0, 2, testRect.X, testRect.Right())

	t.Run("zero inside domain", func(t *testing.T) {
		sy := linear(t, -10, 10, testRect.Bottom(), testRect.Y)
		p := Area([]float64{0, 1, 2}, []float64{5, -5, 5}, sx, sy, testRect, Style{})
		if got := p.Cmds[0].Y; got != testRect.CenterY() {
			t.Errorf("baseline y = %g, want %g", got, testRect.CenterY())
		}
		if p.Cmds[len(p.Cmds)-1].Op != Close {
			t.Error("area path not closed")
		}
	})

	t.Run("zero below domain", func(t *testing.T) {
		sy := linear(t, 5, 10, testRect.Bottom(), testRect.Y)
		p := Area([]float64{0, 2}, []float64{6, 9}, sx, sy, testRect, Style{})
		if got := p.Cmds[0].Y; got != testRect.Bottom() {
			t.Errorf("baseline y = %g, want clamp to %g", got, testRect.Bottom())
		}
	})
}

func TestBarsVertical(t *testing.T) {
	sy := linear(t, 0, 10, testRect.Bottom(), testRect.Y)
	bars := Bars([]float64{5, 10}, testRect, sy, Vertical, 0.8, Style{})
	if len(bars) != 2 {
		t.Fatalf("got %d bars", len(bars))
	}
	r0 := bars[0].(Rect)
	// slot 200, bar 160, centered
	if r0.X != 70 || r0.W != 160 {
		t.Errorf("bar0 x/w = %g/%g, want 70/160", r0.X, r0.W)
	}
	if r0.Y != 120 || r0.H != 100 {
		t.Errorf("bar0 y/h = %g/%g, want 120/100", r0.Y, r0.H)
	}
	r1 := bars[1].(Rect)
	if r1.X != 270 || r1.Y != testRect.Y || r1.H != 200 {
		t.Errorf("bar1 = %+v", r1)
	}
}

func TestBarsHorizontalNegative(t *testing.T) {
	sx := linear(t, -10, 10, testRect.X, testRect.Right())
	bars := Bars([]float64{-5}, testRect, sx, Horizontal, 1, Style{})
	r := bars[0].(Rect)
	if r.X != 150 || r.W != 100 || r.H != 200 {
		t.Errorf("bar = %+v, want x=150 w=100 h=200", r)
	}
}

func TestHistogramBars(t *testing.T) {
	b, err := stats.Histogram([]float64{1, 1, 2, 2, 2, 3}, 3)
	if err != nil {
		t.Fatal(err)
	}
	sx := linear(t, 1, 3, testRect.X, testRect.Right())
	sy := linear(t, 0, 3, testRect.Bottom(), testRect.Y)
	heights := []float64{2, 3, 1}
	rects := HistogramBars(b, heights, sx, sy, testRect, Style{})
	total := 0.0
	for i, p := range rects {
		r := p.(Rect)
		total += r.W
		wantH := heights[i] / 3 * testRect.H
		if math.Abs(r.H-wantH) > 1e-9 {
			t.Errorf("bin %d height = %g, want %g", i, r.H, wantH)
		}
	}
	if math.Abs(total-testRect.W) > 1e-9 {
		t.Errorf("bins cover %g px, want %g", total, testRect.W)
	}
}

func TestBoxes(t *testing.T) {
	s, err := stats.Box([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}
	sy := linear(t, 0, 10, testRect.Bottom(), testRect.Y)
	out := Boxes([]stats.Summary{s}, testRect, sy, DefaultBoxWidth, "black")
	g := out[0].(Group)
	var circles, rects int
	for _, it := range g.Items {
		switch it.(type) {
		case Circle:
			circles++
		case Rect:
			rects++
		}
	}
	if circles != 1 || rects != 1 {
		t.Errorf("circles/rects = %d/%d, want 1/1", circles, rects)
	}
	box := g.Items[4].(Rect)
	if math.Abs(box.W-240) > 1e-9 {
		t.Errorf("box width = %g, want 240", box.W)
	}
	if math.Abs(box.H-30) > 1e-9 {
		t.Errorf("box height = %g, want IQR 1.5 => 30px", box.H)
	}
}

func TestPaletteEndpoints(t *testing.T) {
	p, err := NewPalette("")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.At(0); got != "#440154" {
		t.Errorf("At(0) = %s, want #440154", got)
	}
	if got := p.At(1); got != "#fde725" {
		t.Errorf("At(1) = %s, want #fde725", got)
	}
	if got := p.At(2); got != "#fde725" {
		t.Errorf("At(2) = %s, want clamp to #fde725", got)
	}
	gray, _ := NewPalette(Gray)
	if got := gray.At(0.5); got != "#808080" {
		t.Errorf("gray.At(0.5) = %s, want #808080", got)
	}
	if gray.TextColor(0) != "#ffffff" || gray.TextColor(1) != "#000000" {
		t.Error("TextColor does not contrast with gray endpoints")
	}
	if _, err := NewPalette("jet"); err == nil {
		t.Error("NewPalette(jet) succeeded")
	}
}

func TestGradientDeterministic(t *testing.T) {
	p, _ := NewPalette(Plasma)
	g := p.Gradient()
	if g.ID != "grad-plasma" {
		t.Errorf("ID = %q", g.ID)
	}
	if g.Stops[0].Offset != 0 || g.Stops[len(g.Stops)-1].Offset != 100 {
		t.Errorf("stops span %d..%d, want 0..100", g.Stops[0].Offset, g.Stops[len(g.Stops)-1].Offset)
	}
}

func TestHeatmapCells(t *testing.T) {
	p, _ := NewPalette(Viridis)
	m := [][]float64{{1, 2, 3}, {4, 5, 6}}
	out := Heatmap(m, testRect, p, 1, 6, true)
	if len(out) != 2 {
		t.Fatalf("got %d groups, want cells and values", len(out))
	}
	cells := out[0].(Group).Items
	if len(cells) != 6 {
		t.Fatalf("got %d cells, want 6", len(cells))
	}
	first := cells[0].(Rect)
	if first.Y != testRect.Y || first.Style.Fill != "#440154" {
		t.Errorf("row 0 col 0 = %+v, want top row with min color", first)
	}
	last := cells[5].(Rect)
	if last.Style.Fill != "#fde725" {
		t.Errorf("max cell fill = %s", last.Style.Fill)
	}
	if got := out[1].(Group).Items[0].(Text).Content; got != "1.00" {
		t.Errorf("value label = %q, want 1.00", got)
	}
}

func TestHeatmapFlat(t *testing.T) {
	p, _ := NewPalette(Viridis)
	out := Heatmap([][]float64{{3, 3}}, testRect, p, 3, 3, false)
	cells := out[0].(Group).Items
	if cells[0].(Rect).Style.Fill != p.At(0.5) {
		t.Errorf("flat heatmap fill = %s, want mid color", cells[0].(Rect).Style.Fill)
	}
}

func TestContourLevels(t *testing.T) {
	got := ContourLevels(0, 10, 4)
	want := []float64{2, 4, 6, 8}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("levels = %v, want %v", got, want)
			break
		}
	}
	if ContourLevels(1, 1, 5) != nil {
		t.Error("flat field has levels")
	}
}

func TestMarchingSquaresSingleCell(t *testing.T) {
	xs, ys := []float64{0, 1}, []float64{0, 1}
	z := [][]float64{{0, 0}, {1, 1}}
	segs := MarchingSquares(xs, ys, z, 0.5)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if s.A != (Point{0, 0.5}) || s.B != (Point{1, 0.5}) {
		t.Errorf("segment = %+v, want (0,0.5)-(1,0.5)", s)
	}
}

func TestMarchingSquaresSaddle(t *testing.T) {
	xs, ys := []float64{0, 1}, []float64{0, 1}
	z := [][]float64{{1, 0}, {0, 1}}

	high := MarchingSquares(xs, ys, z, 0.4)
	low := MarchingSquares(xs, ys, z, 0.6)
	if len(high) != 2 || len(low) != 2 {
		t.Fatalf("saddle segments = %d/%d, want 2/2", len(high), len(low))
	}
	// center 0.5 >= 0.4: the above corners connect, cutting off (1,0) and (0,1)
	if high[0].A.X != 0 || high[0].B.Y != 1 {
		t.Errorf("center-above saddle first segment = %+v", high[0])
	}
	// center 0.5 < 0.6: the above corners are isolated
	if low[0].A.X != 0 || low[0].B.Y != 0 {
		t.Errorf("center-below saddle first segment = %+v", low[0])
	}
}

func TestMarchingSquaresDeterministic(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 2}
	z := [][]float64{{0, 1, 2, 1}, {1, 3, 4, 2}, {0, 2, 1, 0}}
	a := MarchingSquares(xs, ys, z, 1.5)
	b := MarchingSquares(xs, ys, z, 1.5)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("segment counts %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("segment %d differs", i)
		}
	}
}

func TestSectorAngles(t *testing.T) {
	sectors := SectorAngles([]float64{1, 1, 2}, 0)
	want := []Sector{{0, 90}, {90, 90}, {180, 180}}
	for i, s := range sectors {
		if s != want[i] {
			t.Errorf("sector %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestSectorAnglesConservation(t *testing.T) {
	inputs := [][]float64{
		{1},
		{3, 7},
		{0.1, 0.2, 0.3, 0.4, 5, 17.25},
		{1e-6, 1e6, 42},
		{1e308, 1e308},
		{math.MaxFloat64, 1, math.MaxFloat64 / 3},
	}
	for _, values := range inputs {
		sum := 0.0
		for _, s := range SectorAngles(values, 30) {
			sum += s.Sweep
		}
		if math.Abs(sum-360) > 1e-9 {
			t.Errorf("values %v: sweeps sum to %g, want 360", values, sum)
		}
	}
}

func TestPieFullCircle(t *testing.T) {
	out := Pie(SectorAngles([]float64{5}, 0), []string{"all"}, testRect, 0)
	slices := out[0].(Group).Items
	if len(slices) != 1 {
		t.Fatalf("got %d slices", len(slices))
	}
	d := slices[0].(Path).D()
	if strings.Count(d, "A") != 2 {
		t.Errorf("full circle path %q should use two arcs", d)
	}
}

func TestPieDonut(t *testing.T) {
	out := Pie(SectorAngles([]float64{1, 3}, 0), nil, testRect, 0.5)
	for _, it := range out[0].(Group).Items {
		d := it.(Path).D()
		if strings.Count(d, "A") != 2 {
			t.Errorf("donut slice %q should have outer and inner arcs", d)
		}
	}
}

func TestLegend(t *testing.T) {
	g := Legend([]LegendEntry{{"a", "#1f77b4", ""}, {"bb", "#ff7f0e", "6,4"}}, testRect)
	frame := g.Items[0].(Rect)
	if frame.X+frame.W > testRect.Right() {
		t.Errorf("legend overflows plot area: %+v", frame)
	}
	if len(g.Items) != 5 {
		t.Errorf("got %d legend items, want frame + 2×(swatch, label)", len(g.Items))
	}
}
