// Package geom turns scaled chart data into drawable primitives.
//
// Generators receive already-resolved scales and the plot rectangle and
// return immutable primitive values in a fixed, input-derived order. They
// never write markup; the sink package serializes what they return.
package geom

import (
	"math"
	"strconv"
	"strings"
)

// Primitive is a drawable element. The set of implementations is closed.
type Primitive interface {
	primitive()
}

// Style holds presentation attributes shared by shape primitives. Zero
// values are omitted from the output.
type Style struct {
	Fill           string
	FillOpacity    float64
	Stroke         string
	StrokeWidth    float64
	StrokeDash     string
	Opacity        float64
	ShapeRendering string
}

// Point is a pixel coordinate.
type Point struct{ X, Y float64 }

// PathOp is a path command letter.
type PathOp byte

const (
	MoveTo PathOp = 'M'
	LineTo PathOp = 'L'
	ArcTo  PathOp = 'A'
	Close  PathOp = 'Z'
)

// PathCmd is one path command. Arc fields are used only by ArcTo.
type PathCmd struct {
	Op           PathOp
	X, Y         float64
	RX, RY       float64
	Large, Sweep bool
}

// Path is an SVG path.
type Path struct {
	Cmds  []PathCmd
	Style Style
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Style      Style
}

// Circle is a filled or stroked circle.
type Circle struct {
	CX, CY, R float64
	Style     Style
}

// Line is a single straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Style          Style
}

// Anchor values for Text.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Text is a single line of text. Rotate is in degrees around (X, Y).
type Text struct {
	X, Y     float64
	Content  string
	Size     float64
	Anchor   string
	Baseline string
	Fill     string
	Rotate   float64
	Weight   string
}

// Group collects primitives under a class. Clip restricts the contents
// to the plot rectangle.
type Group struct {
	Class string
	Clip  bool
	Items []Primitive
}

func (Path) primitive()   {}
func (Rect) primitive()   {}
func (Circle) primitive() {}
func (Line) primitive()   {}
func (Text) primitive()   {}
func (Group) primitive()  {}

// GradientStop is one color stop of a gradient definition, Offset in
// percent.
type GradientStop struct {
	Offset uint8
	Color  string
}

// Gradient is a reusable vertical linear gradient running bottom to top.
// Its ID is derived from its palette name so equal content gets equal ids.
type Gradient struct {
	ID    string
	Stops []GradientStop
}

// URL returns the paint reference for g.
func (g Gradient) URL() string { return "url(#" + g.ID + ")" }

// PathBuilder accumulates path commands.
type PathBuilder struct {
	cmds []PathCmd
}

func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.cmds = append(b.cmds, PathCmd{Op: MoveTo, X: x, Y: y})
	return b
}

func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.cmds = append(b.cmds, PathCmd{Op: LineTo, X: x, Y: y})
	return b
}

func (b *PathBuilder) ArcTo(rx, ry float64, large, sweep bool, x, y float64) *PathBuilder {
	b.cmds = append(b.cmds, PathCmd{Op: ArcTo, X: x, Y: y, RX: rx, RY: ry, Large: large, Sweep: sweep})
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.cmds = append(b.cmds, PathCmd{Op: Close})
	return b
}

// Len returns the number of commands so far.
func (b *PathBuilder) Len() int { return len(b.cmds) }

// Path returns the accumulated path with the given style.
func (b *PathBuilder) Path(s Style) Path {
	return Path{Cmds: append([]PathCmd(nil), b.cmds...), Style: s}
}

// Num formats a coordinate with at most two decimals, trailing zeros
// trimmed and negative zero printed as "0".
func Num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// D renders path commands as path data.
func (p Path) D() string {
	var sb strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(c.Op))
		switch c.Op {
		case MoveTo, LineTo:
			sb.WriteString(Num(c.X))
			sb.WriteByte(',')
			sb.WriteString(Num(c.Y))
		case ArcTo:
			sb.WriteString(Num(c.RX))
			sb.WriteByte(',')
			sb.WriteString(Num(c.RY))
			sb.WriteString(" 0 ")
			sb.WriteString(flag(c.Large))
			sb.WriteByte(',')
			sb.WriteString(flag(c.Sweep))
			sb.WriteByte(' ')
			sb.WriteString(Num(c.X))
			sb.WriteByte(',')
			sb.WriteString(Num(c.Y))
		}
	}
	return sb.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
