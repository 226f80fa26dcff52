package geom

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/plotsvg/pkg/errors"
)

// Categorical is the series color cycle used by line, bar and pie charts.
var Categorical = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// SeriesColor returns the i-th categorical color, cycling.
func SeriesColor(i int) string {
	return Categorical[i%len(Categorical)]
}

// Continuous palette names.
const (
	Viridis = "viridis"
	Plasma  = "plasma"
	Gray    = "gray"
)

var paletteStops = map[string][]string{
	Viridis: {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	Plasma:  {"#0d0887", "#47039f", "#7301a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fa9e3b", "#fdc926", "#f0f921"},
	Gray:    {"#000000", "#ffffff"},
}

// Palette maps t in [0, 1] to a color by linear RGB interpolation between
// evenly spaced stops.
type Palette struct {
	Name   string
	colors []colorful.Color
}

// NewPalette looks up a continuous palette by name. The empty name
// selects viridis.
func NewPalette(name string) (Palette, error) {
	if name == "" {
		name = Viridis
	}
	hexes, ok := paletteStops[name]
	if !ok {
		return Palette{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown color scale %q (want viridis, plasma or gray)", name)
	}
	p := Palette{Name: name, colors: make([]colorful.Color, len(hexes))}
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("geom: bad palette color %q: %v", h, err))
		}
		p.colors[i] = c
	}
	return p, nil
}

func (p Palette) at(t float64) colorful.Color {
	if math.IsNaN(t) {
		t = 0.5
	}
	t = clamp(t, 0, 1)
	seg := t * float64(len(p.colors)-1)
	i := int(seg)
	if i >= len(p.colors)-1 {
		return p.colors[len(p.colors)-1]
	}
	return p.colors[i].BlendRgb(p.colors[i+1], seg-float64(i)).Clamped()
}

// At returns the hex color for t in [0, 1]; t is clamped.
func (p Palette) At(t float64) string {
	return p.at(t).Hex()
}

// TextColor returns black or white, whichever reads better on At(t).
func (p Palette) TextColor(t float64) string {
	l, _, _ := p.at(t).Lab()
	if l < 0.5 {
		return "#ffffff"
	}
	return "#000000"
}

// Gradient returns the palette as a bottom-to-top gradient definition.
func (p Palette) Gradient() Gradient {
	g := Gradient{ID: "grad-" + p.Name, Stops: make([]GradientStop, len(p.colors))}
	n := len(p.colors) - 1
	for i, c := range p.colors {
		g.Stops[i] = GradientStop{Offset: uint8(math.Round(float64(i) * 100 / float64(n))), Color: c.Hex()}
	}
	return g
}

// Normalize maps v from [lo, hi] to [0, 1]. A degenerate range maps to 0.5.
func Normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}
