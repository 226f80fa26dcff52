// Package layout computes the inner plot rectangle of a chart.
//
// Text extents come from a fixed model rather than font metrics: every
// glyph is CharWidthRatio×size wide and a line is LineHeightRatio×size tall.
// The same inputs therefore always produce the same rectangle.
package layout

import (
	"github.com/matzehuels/plotsvg/pkg/errors"
)

// Text metrics.
const (
	CharWidthRatio  = 0.6
	LineHeightRatio = 1.2

	TitleFontSize = 16.0
	LabelFontSize = 13.0
	TickFontSize  = 11.0

	titleGap = 8.0
	labelGap = 6.0
)

// Margin is the space between the canvas edge and the plot rectangle,
// before any title or axis-label reservation.
type Margin struct {
	Top    int `json:"top" toml:"top"`
	Right  int `json:"right" toml:"right"`
	Bottom int `json:"bottom" toml:"bottom"`
	Left   int `json:"left" toml:"left"`
}

// DefaultMargin leaves room for tick labels on the left and bottom axes.
var DefaultMargin = Margin{Top: 40, Right: 30, Bottom: 50, Left: 70}

// Labels lists the text that claims extra space around the plot.
type Labels struct {
	Title  string
	XLabel string
	YLabel string
}

// Rect is the inner drawable area in pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// TextWidth is the modelled width of s at the given font size.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * CharWidthRatio * size
}

// LineHeight is the modelled height of one text line at the given font size.
func LineHeight(size float64) float64 {
	return LineHeightRatio * size
}

// Reserve returns the extra top, bottom and left space claimed by labels.
func Reserve(l Labels) (top, bottom, left float64) {
	if l.Title != "" {
		top = LineHeight(TitleFontSize) + titleGap
	}
	if l.XLabel != "" {
		bottom = LineHeight(LabelFontSize) + labelGap
	}
	if l.YLabel != "" {
		left = LineHeight(LabelFontSize) + labelGap
	}
	return top, bottom, left
}

// Compute derives the plot rectangle for a width×height canvas. It fails
// with INVALID_CONFIG when the margins and reservations leave no room.
func Compute(width, height int, m Margin, l Labels) (Rect, error) {
	top, bottom, left := Reserve(l)
	r := Rect{
		X: float64(m.Left) + left,
		Y: float64(m.Top) + top,
	}
	r.W = float64(width) - r.X - float64(m.Right)
	r.H = float64(height) - r.Y - float64(m.Bottom) - bottom
	if r.W <= 0 || r.H <= 0 {
		return Rect{}, errors.New(errors.ErrCodeInvalidConfig,
			"margins leave no drawable area on a %dx%d canvas (inner %gx%g)", width, height, r.W, r.H)
	}
	return r, nil
}
