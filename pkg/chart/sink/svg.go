// Package sink serializes chart primitives into an SVG document.
//
// The envelope, defs and groups are written with svgo; shapes are written
// with fixed two-decimal coordinates so that the bytes depend only on the
// primitives. Layers are emitted in the order they are added.
package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/plotsvg/pkg/chart/geom"
	"github.com/matzehuels/plotsvg/pkg/chart/layout"
)

// ClipID is the id of the clip path covering the plot rectangle.
const ClipID = "plot-clip"

const fontFamily = "Helvetica, Arial, sans-serif"

type SVGOption func(*svgRenderer)

type layer struct {
	class string
	items []geom.Primitive
}

type svgRenderer struct {
	title      string
	background string
	clip       *layout.Rect
	gradients  []geom.Gradient
	layers     []layer
}

// WithTitle sets the document <title>.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithBackground fills the canvas; "" and "transparent" leave it empty.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithClip defines the plot clip path used by clipped groups.
func WithClip(rect layout.Rect) SVGOption { return func(r *svgRenderer) { r.clip = &rect } }

// WithGradient adds a gradient definition. Duplicate ids are written once.
func WithGradient(g geom.Gradient) SVGOption {
	return func(r *svgRenderer) {
		for _, have := range r.gradients {
			if have.ID == g.ID {
				return
			}
		}
		r.gradients = append(r.gradients, g)
	}
}

// WithLayer appends a layer group. Empty layers are skipped.
func WithLayer(class string, items ...geom.Primitive) SVGOption {
	return func(r *svgRenderer) {
		if len(items) > 0 {
			r.layers = append(r.layers, layer{class: class, items: items})
		}
	}
}

// RenderSVG writes a width×height document with viewBox "0 0 width height".
func RenderSVG(width, height int, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(width, height, 0, 0, width, height)
	if r.title != "" {
		canvas.Title(r.title)
	}
	r.renderDefs(canvas)

	if r.background != "" && r.background != "transparent" {
		canvas.Rect(0, 0, width, height, attr("class", "background"), attr("fill", r.background))
	}

	canvas.Group(attr("font-family", fontFamily))
	for _, l := range r.layers {
		canvas.Group(attr("class", l.class))
		for _, p := range l.items {
			writePrimitive(canvas, p)
		}
		canvas.Gend()
	}
	canvas.Gend()
	canvas.End()
	return buf.Bytes()
}

func (r *svgRenderer) renderDefs(canvas *svg.SVG) {
	if r.clip == nil && len(r.gradients) == 0 {
		return
	}
	canvas.Def()
	if r.clip != nil {
		canvas.ClipPath(attr("id", ClipID))
		writeRect(canvas.Writer, geom.Rect{X: r.clip.X, Y: r.clip.Y, W: r.clip.W, H: r.clip.H})
		canvas.ClipEnd()
	}
	for _, g := range r.gradients {
		stops := make([]svg.Offcolor, len(g.Stops))
		for i, s := range g.Stops {
			stops[i] = svg.Offcolor{Offset: s.Offset, Color: s.Color, Opacity: 1}
		}
		canvas.LinearGradient(g.ID, 0, 100, 0, 0, stops)
	}
	canvas.DefEnd()
}

func writePrimitive(canvas *svg.SVG, p geom.Primitive) {
	w := canvas.Writer
	switch v := p.(type) {
	case geom.Group:
		attrs := []string{}
		if v.Class != "" {
			attrs = append(attrs, attr("class", v.Class))
		}
		if v.Clip {
			attrs = append(attrs, attr("clip-path", "url(#"+ClipID+")"))
		}
		canvas.Group(attrs...)
		for _, it := range v.Items {
			writePrimitive(canvas, it)
		}
		canvas.Gend()
	case geom.Path:
		if len(v.Cmds) == 0 {
			return
		}
		canvas.Path(v.D(), styleAttrs(v.Style)...)
	case geom.Rect:
		writeRect(w, v)
	case geom.Circle:
		fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			geom.Num(v.CX), geom.Num(v.CY), geom.Num(v.R), joinAttrs(styleAttrs(v.Style)))
	case geom.Line:
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
			geom.Num(v.X1), geom.Num(v.Y1), geom.Num(v.X2), geom.Num(v.Y2), joinAttrs(styleAttrs(v.Style)))
	case geom.Text:
		writeText(w, v)
	}
}

func writeRect(w io.Writer, v geom.Rect) {
	fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		geom.Num(v.X), geom.Num(v.Y), geom.Num(v.W), geom.Num(v.H), joinAttrs(styleAttrs(v.Style)))
}

func writeText(w io.Writer, t geom.Text) {
	attrs := []string{attr("font-size", geom.Num(t.Size))}
	if t.Anchor != "" {
		attrs = append(attrs, attr("text-anchor", t.Anchor))
	}
	if t.Baseline != "" {
		attrs = append(attrs, attr("dominant-baseline", t.Baseline))
	}
	if t.Weight != "" {
		attrs = append(attrs, attr("font-weight", t.Weight))
	}
	if t.Fill != "" {
		attrs = append(attrs, attr("fill", t.Fill))
	}
	if t.Rotate != 0 {
		attrs = append(attrs, attr("transform",
			fmt.Sprintf("rotate(%s %s %s)", geom.Num(t.Rotate), geom.Num(t.X), geom.Num(t.Y))))
	}
	fmt.Fprintf(w, `<text x="%s" y="%s"%s>%s</text>`+"\n",
		geom.Num(t.X), geom.Num(t.Y), joinAttrs(attrs), EscapeXML(t.Content))
}

// styleAttrs renders non-zero style fields in a fixed order.
func styleAttrs(s geom.Style) []string {
	var out []string
	if s.Fill != "" {
		out = append(out, attr("fill", s.Fill))
	}
	if s.FillOpacity != 0 {
		out = append(out, attr("fill-opacity", geom.Num(s.FillOpacity)))
	}
	if s.Stroke != "" {
		out = append(out, attr("stroke", s.Stroke))
	}
	if s.StrokeWidth != 0 {
		out = append(out, attr("stroke-width", geom.Num(s.StrokeWidth)))
	}
	if s.StrokeDash != "" {
		out = append(out, attr("stroke-dasharray", s.StrokeDash))
	}
	if s.Opacity != 0 {
		out = append(out, attr("opacity", geom.Num(s.Opacity)))
	}
	if s.ShapeRendering != "" {
		out = append(out, attr("shape-rendering", s.ShapeRendering))
	}
	return out
}

func attr(name, value string) string {
	return name + `="` + EscapeXML(value) + `"`
}

func joinAttrs(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

// EscapeXML escapes text for use in element content or attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
