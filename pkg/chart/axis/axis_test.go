package axis

import (
	"testing"

	"github.com/matzehuels/plotsvg/pkg/chart/geom"
	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/ticks"
)

var rect = layout.Rect{X: 70, Y: 40, W: 400, H: 200}

func sampleTicks() (xt, yt []ticks.Tick) {
	xt = []ticks.Tick{{Value: 0, Pos: 70, Label: "0"}, {Value: 1, Pos: 270, Label: "1"}, {Value: 2, Pos: 470, Label: "2"}}
	yt = []ticks.Tick{{Value: 0, Pos: 240, Label: "0"}, {Value: 10, Pos: 40, Label: "10"}}
	return xt, yt
}

func count[T geom.Primitive](items []geom.Primitive) int {
	n := 0
	for _, it := range items {
		if _, ok := it.(T); ok {
			n++
		}
	}
	return n
}

func TestRender(t *testing.T) {
	xt, yt := sampleTicks()
	l := Render(rect, xt, yt, Options{Title: "T", XLabel: "x", YLabel: "y", GridX: true, GridY: true})

	// 5 gridlines + 5 tick marks
	if got := count[geom.Line](l.Back.Items); got != 10 {
		t.Errorf("back lines = %d, want 10", got)
	}
	if got := count[geom.Rect](l.Back.Items); got != 1 {
		t.Errorf("border rects = %d, want 1", got)
	}
	// 5 tick labels + x label + y label + title
	if got := count[geom.Text](l.Front.Items); got != 8 {
		t.Errorf("front texts = %d, want 8", got)
	}
}

func TestRenderNoGrid(t *testing.T) {
	xt, yt := sampleTicks()
	l := Render(rect, xt, yt, Options{})
	if got := count[geom.Line](l.Back.Items); got != 5 {
		t.Errorf("back lines = %d, want only 5 tick marks", got)
	}
	for _, it := range l.Front.Items {
		if txt := it.(geom.Text); txt.Size != layout.TickFontSize {
			t.Errorf("unexpected non-tick text %q", txt.Content)
		}
	}
}

func TestYLabelRotated(t *testing.T) {
	xt, yt := sampleTicks()
	l := Render(rect, xt, yt, Options{YLabel: "count"})
	last := l.Front.Items[len(l.Front.Items)-1].(geom.Text)
	if last.Content != "count" || last.Rotate != -90 {
		t.Errorf("y label = %+v", last)
	}
	if last.X >= rect.X-layout.TextWidth("10", layout.TickFontSize) {
		t.Errorf("y label at x=%g overlaps tick labels", last.X)
	}
}

func TestTitle(t *testing.T) {
	title := Title(rect, "Sales")
	if title.X != rect.CenterX() || title.Y >= rect.Y {
		t.Errorf("title at (%g, %g), want centered above plot", title.X, title.Y)
	}
}
