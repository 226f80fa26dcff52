package chart

import (
	"math"

	"github.com/matzehuels/plotsvg/pkg/chart/layout"
	"github.com/matzehuels/plotsvg/pkg/chart/scale"
	"github.com/matzehuels/plotsvg/pkg/errors"
)

// Canvas defaults and limits, in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
	MaxDimension  = 10000

	DefaultBackground = "white"
)

// AxisConfig is the raw per-axis configuration.
type AxisConfig struct {
	Label string `json:"label,omitempty"`
	// Scale is "linear", "log" or "symlog"; empty means linear.
	Scale string   `json:"scale,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	// Threshold bounds the linear region of a symlog scale. Nil picks
	// a tenth of the data range.
	Threshold *float64 `json:"threshold,omitempty"`
}

// Config is the raw chart configuration. Nil pointers and empty strings
// mean "use the default".
type Config struct {
	Title      string         `json:"title,omitempty"`
	Width      *int           `json:"width,omitempty"`
	Height     *int           `json:"height,omitempty"`
	Margin     *layout.Margin `json:"margin,omitempty"`
	XAxis      AxisConfig     `json:"x_axis"`
	YAxis      AxisConfig     `json:"y_axis"`
	Background *string        `json:"background,omitempty"`
}

// Axis is a validated axis configuration.
type Axis struct {
	Label     string
	Scale     scale.Kind
	Min, Max  *float64
	Threshold float64
}

// Resolved is a fully populated configuration.
type Resolved struct {
	Title      string
	Width      int
	Height     int
	Margin     layout.Margin
	X, Y       Axis
	Background string
}

// Labels returns the text that reserves layout space.
func (r Resolved) Labels() layout.Labels {
	return layout.Labels{Title: r.Title, XLabel: r.X.Label, YLabel: r.Y.Label}
}

// Resolve validates c and fills in defaults. It has no side effects.
func Resolve(c Config) (Resolved, error) {
	r := Resolved{
		Title:      c.Title,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Margin:     layout.DefaultMargin,
		Background: DefaultBackground,
	}

	if c.Width != nil {
		r.Width = *c.Width
	}
	if c.Height != nil {
		r.Height = *c.Height
	}
	if r.Width <= 0 || r.Height <= 0 {
		return Resolved{}, errors.New(errors.ErrCodeInvalidConfig,
			"width and height must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.Width > MaxDimension || r.Height > MaxDimension {
		return Resolved{}, errors.New(errors.ErrCodeInvalidConfig,
			"width and height must not exceed %d, got %dx%d", MaxDimension, r.Width, r.Height)
	}

	if c.Margin != nil {
		m := *c.Margin
		if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
			return Resolved{}, errors.New(errors.ErrCodeInvalidConfig, "margins must be non-negative, got %+v", m)
		}
		r.Margin = m
	}

	if c.Background != nil {
		r.Background = *c.Background
		if r.Background != "transparent" {
			if err := errors.ValidateColor(r.Background); err != nil {
				return Resolved{}, err
			}
		}
	}

	var err error
	if r.X, err = resolveAxis("x_axis", c.XAxis); err != nil {
		return Resolved{}, err
	}
	if r.Y, err = resolveAxis("y_axis", c.YAxis); err != nil {
		return Resolved{}, err
	}

	if _, err := layout.Compute(r.Width, r.Height, r.Margin, r.Labels()); err != nil {
		return Resolved{}, err
	}
	return r, nil
}

func resolveAxis(name string, c AxisConfig) (Axis, error) {
	kind, err := scale.ParseKind(c.Scale)
	if err != nil {
		return Axis{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", name)
	}
	a := Axis{Label: c.Label, Scale: kind, Min: c.Min, Max: c.Max}

	for _, v := range []*float64{c.Min, c.Max} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return Axis{}, errors.New(errors.ErrCodeInvalidConfig, "%s bounds must be finite", name)
		}
	}
	if c.Min != nil && c.Max != nil && *c.Min >= *c.Max {
		return Axis{}, errors.New(errors.ErrCodeInvalidConfig,
			"%s min %g must be less than max %g", name, *c.Min, *c.Max)
	}
	if kind == scale.Log {
		if (c.Min != nil && *c.Min <= 0) || (c.Max != nil && *c.Max <= 0) {
			return Axis{}, errors.New(errors.ErrCodeInvalidScale, "%s log scale bounds must be positive", name)
		}
	}

	if t := c.Threshold; t != nil {
		if math.IsNaN(*t) || math.IsInf(*t, 0) || *t <= 0 {
			return Axis{}, errors.New(errors.ErrCodeInvalidScale,
				"%s symlog threshold must be positive, got %g", name, *t)
		}
		if kind == scale.Symlog {
			a.Threshold = *t
		}
	}
	return a, nil
}

// Int returns a pointer to v, for optional config fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for optional config fields.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v, for optional config fields.
func String(v string) *string { return &v }
