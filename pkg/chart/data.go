package chart

import (
	"math"
	"strconv"

	"github.com/matzehuels/plotsvg/pkg/chart/geom"
	"github.com/matzehuels/plotsvg/pkg/chart/stats"
	"github.com/matzehuels/plotsvg/pkg/errors"
)

// Kind identifies one of the supported chart types.
type Kind string

const (
	KindLine      Kind = "line"
	KindScatter   Kind = "scatter"
	KindBar       Kind = "bar"
	KindArea      Kind = "area"
	KindHistogram Kind = "histogram"
	KindBox       Kind = "box"
	KindHeatmap   Kind = "heatmap"
	KindContour   Kind = "contour"
	KindPie       Kind = "pie"
)

// Upper bounds for histogram bins and contour levels.
const (
	MaxBins   = 10000
	MaxLevels = 10000
)

// Kinds lists every chart kind in a stable order.
var Kinds = []Kind{
	KindLine, KindScatter, KindBar, KindArea, KindHistogram,
	KindBox, KindHeatmap, KindContour, KindPie,
}

// ParseKind resolves a chart kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown chart kind %q", s)
}

// Dataset is the chart-specific input of a render. The implementations in
// this package form a closed set, one per Kind.
type Dataset interface {
	Kind() Kind
	validate() error
}

// Series is one named line.
type Series struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// LineData draws one polyline per series.
type LineData struct {
	Series      []Series `json:"series"`
	LineStyle   string   `json:"line_style,omitempty"` // solid, dashed or dotted
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
	ShowMarkers bool     `json:"show_markers,omitempty"`
}

// ScatterData draws one circle per (x, y) point.
type ScatterData struct {
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	PointRadius *float64  `json:"point_radius,omitempty"`
	Color       string    `json:"color,omitempty"`
	Opacity     *float64  `json:"opacity,omitempty"`
}

// BarData draws one bar per category.
type BarData struct {
	Categories  []string  `json:"categories"`
	Values      []float64 `json:"values"`
	Orientation string    `json:"orientation,omitempty"` // vertical or horizontal
	BarWidth    *float64  `json:"bar_width,omitempty"`   // share of the slot, (0, 1]
	Color       string    `json:"color,omitempty"`
}

// AreaData fills the region between the curve and y = 0.
type AreaData struct {
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	FillColor string    `json:"fill_color,omitempty"`
	Opacity   *float64  `json:"opacity,omitempty"`
}

// HistogramData bins raw samples.
type HistogramData struct {
	Values  []float64 `json:"values"`
	Bins    *int      `json:"bins,omitempty"`
	Density bool      `json:"density,omitempty"`
	Color   string    `json:"color,omitempty"`
}

// BoxGroup is one named sample.
type BoxGroup struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// BoxData draws one box-and-whisker glyph per group.
type BoxData struct {
	Groups   []BoxGroup `json:"groups"`
	BoxWidth *float64   `json:"box_width,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// HeatmapData colors a rows×cols matrix. Row 0 is drawn at the top.
type HeatmapData struct {
	Matrix     [][]float64 `json:"matrix"`
	XLabels    []string    `json:"x_labels,omitempty"`
	YLabels    []string    `json:"y_labels,omitempty"`
	ColorScale string      `json:"color_scale,omitempty"` // viridis, plasma or gray
	ShowValues bool        `json:"show_values,omitempty"`
}

// ContourData traces iso-lines of Z, where Z[i][j] is the value at
// (X[j], Y[i]).
type ContourData struct {
	X           []float64   `json:"x"`
	Y           []float64   `json:"y"`
	Z           [][]float64 `json:"z"`
	Levels      *int        `json:"levels,omitempty"`
	StrokeWidth *float64    `json:"stroke_width,omitempty"`
}

// PieData splits a circle proportionally to Values.
type PieData struct {
	Labels           []string  `json:"labels,omitempty"`
	Values           []float64 `json:"values"`
	InnerRadiusRatio float64   `json:"inner_radius_ratio,omitempty"` // [0, 1)
	StartAngle       float64   `json:"start_angle,omitempty"`        // degrees clockwise from 12 o'clock
}

func (LineData) Kind() Kind      { return KindLine }
func (ScatterData) Kind() Kind   { return KindScatter }
func (BarData) Kind() Kind       { return KindBar }
func (AreaData) Kind() Kind      { return KindArea }
func (HistogramData) Kind() Kind { return KindHistogram }
func (BoxData) Kind() Kind       { return KindBox }
func (HeatmapData) Kind() Kind   { return KindHeatmap }
func (ContourData) Kind() Kind   { return KindContour }
func (PieData) Kind() Kind       { return KindPie }

// ==========================================================================
// Validation
// ==========================================================================

func (d LineData) validate() error {
	if len(d.Series) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "line chart has no series")
	}
	for i, s := range d.Series {
		if err := checkPairs("series["+strconv.Itoa(i)+"]", s.X, s.Y); err != nil {
			return err
		}
	}
	switch d.LineStyle {
	case "", geom.DashSolid, geom.DashDashed, geom.DashDotted:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown line style %q (want solid, dashed or dotted)", d.LineStyle)
	}
	return checkPositive("stroke_width", d.StrokeWidth)
}

func (d ScatterData) validate() error {
	if err := checkPairs("points", d.X, d.Y); err != nil {
		return err
	}
	if err := checkPositive("point_radius", d.PointRadius); err != nil {
		return err
	}
	if err := checkUnit("opacity", d.Opacity); err != nil {
		return err
	}
	return checkColor(d.Color)
}

func (d BarData) validate() error {
	if len(d.Values) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "bar chart has no values")
	}
	if len(d.Categories) != len(d.Values) {
		return errors.New(errors.ErrCodeMismatchedLengths,
			"bar chart has %d categories but %d values", len(d.Categories), len(d.Values))
	}
	if err := stats.CheckFinite("values", d.Values); err != nil {
		return err
	}
	switch d.Orientation {
	case "", geom.Vertical, geom.Horizontal:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown orientation %q (want vertical or horizontal)", d.Orientation)
	}
	if d.BarWidth != nil && (*d.BarWidth <= 0 || *d.BarWidth > 1) {
		return errors.New(errors.ErrCodeInvalidData, "bar_width must be in (0, 1], got %g", *d.BarWidth)
	}
	return checkColor(d.Color)
}

func (d AreaData) validate() error {
	if err := checkPairs("points", d.X, d.Y); err != nil {
		return err
	}
	if err := checkUnit("opacity", d.Opacity); err != nil {
		return err
	}
	return checkColor(d.FillColor)
}

func (d HistogramData) validate() error {
	if d.Bins != nil && (*d.Bins <= 0 || *d.Bins > MaxBins) {
		return errors.New(errors.ErrCodeInvalidData, "histogram bin count must be in [1, %d], got %d", MaxBins, *d.Bins)
	}
	if len(d.Values) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "histogram has no values")
	}
	if err := stats.CheckFinite("values", d.Values); err != nil {
		return err
	}
	return checkColor(d.Color)
}

func (d BoxData) validate() error {
	if len(d.Groups) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "box plot has no groups")
	}
	for i, g := range d.Groups {
		if len(g.Values) == 0 {
			return errors.New(errors.ErrCodeEmptyDataset, "box group %d (%q) has no values", i, g.Name)
		}
		if err := stats.CheckFinite("groups["+strconv.Itoa(i)+"].values", g.Values); err != nil {
			return err
		}
	}
	if d.BoxWidth != nil && (*d.BoxWidth <= 0 || *d.BoxWidth > 1) {
		return errors.New(errors.ErrCodeInvalidData, "box_width must be in (0, 1], got %g", *d.BoxWidth)
	}
	return checkColor(d.Color)
}

func (d HeatmapData) validate() error {
	rows, cols, err := checkGrid("matrix", d.Matrix)
	if err != nil {
		return err
	}
	if d.XLabels != nil && len(d.XLabels) != cols {
		return errors.New(errors.ErrCodeMismatchedLengths, "heatmap has %d columns but %d x_labels", cols, len(d.XLabels))
	}
	if d.YLabels != nil && len(d.YLabels) != rows {
		return errors.New(errors.ErrCodeMismatchedLengths, "heatmap has %d rows but %d y_labels", rows, len(d.YLabels))
	}
	_, err = geom.NewPalette(d.ColorScale)
	return err
}

func (d ContourData) validate() error {
	rows, cols, err := checkGrid("z", d.Z)
	if err != nil {
		return err
	}
	if rows < 2 || cols < 2 {
		return errors.New(errors.ErrCodeInvalidData, "contour grid must be at least 2x2, got %dx%d", rows, cols)
	}
	if len(d.X) != cols {
		return errors.New(errors.ErrCodeMismatchedLengths, "contour grid has %d columns but %d x values", cols, len(d.X))
	}
	if len(d.Y) != rows {
		return errors.New(errors.ErrCodeMismatchedLengths, "contour grid has %d rows but %d y values", rows, len(d.Y))
	}
	for _, c := range []struct {
		name string
		v    []float64
	}{{"x", d.X}, {"y", d.Y}} {
		if err := stats.CheckFinite(c.name, c.v); err != nil {
			return err
		}
		if !strictlyMonotonic(c.v) {
			return errors.New(errors.ErrCodeInvalidData, "contour %s coordinates must be strictly monotonic", c.name)
		}
	}
	if d.Levels != nil && (*d.Levels <= 0 || *d.Levels > MaxLevels) {
		return errors.New(errors.ErrCodeInvalidData, "contour levels must be in [1, %d], got %d", MaxLevels, *d.Levels)
	}
	return checkPositive("stroke_width", d.StrokeWidth)
}

func (d PieData) validate() error {
	if len(d.Values) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "pie chart has no values")
	}
	if d.Labels != nil && len(d.Labels) != len(d.Values) {
		return errors.New(errors.ErrCodeMismatchedLengths,
			"pie chart has %d labels but %d values", len(d.Labels), len(d.Values))
	}
	if err := stats.CheckFinite("values", d.Values); err != nil {
		return err
	}
	total := 0.0
	for i, v := range d.Values {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidData, "pie value %d is negative (%g)", i, v)
		}
		total += v
	}
	if total <= 0 {
		return errors.New(errors.ErrCodeInvalidData, "pie values sum to zero")
	}
	if math.IsNaN(d.InnerRadiusRatio) || d.InnerRadiusRatio < 0 || d.InnerRadiusRatio >= 1 {
		return errors.New(errors.ErrCodeInvalidData, "inner_radius_ratio must be in [0, 1), got %g", d.InnerRadiusRatio)
	}
	if math.IsNaN(d.StartAngle) || math.IsInf(d.StartAngle, 0) {
		return errors.New(errors.ErrCodeInvalidData, "start_angle must be finite")
	}
	return nil
}

// ==========================================================================
// Helpers
// ==========================================================================

func checkPairs(what string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errors.New(errors.ErrCodeMismatchedLengths, "%s: x has %d values but y has %d", what, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "%s: no data points", what)
	}
	if err := stats.CheckFinite(what+".x", xs); err != nil {
		return err
	}
	return stats.CheckFinite(what+".y", ys)
}

// checkGrid verifies a non-empty rectangular grid of finite values.
func checkGrid(what string, g [][]float64) (rows, cols int, err error) {
	if len(g) == 0 || len(g[0]) == 0 {
		return 0, 0, errors.New(errors.ErrCodeEmptyDataset, "%s has no cells", what)
	}
	cols = len(g[0])
	for i, row := range g {
		if len(row) != cols {
			return 0, 0, errors.New(errors.ErrCodeInvalidData,
				"%s is jagged: row %d has %d values, row 0 has %d", what, i, len(row), cols)
		}
		if err := stats.CheckFinite(what+"["+strconv.Itoa(i)+"]", row); err != nil {
			return 0, 0, err
		}
	}
	return len(g), cols, nil
}

func checkPositive(name string, v *float64) error {
	if v != nil && !(*v > 0 && !math.IsInf(*v, 0)) {
		return errors.New(errors.ErrCodeInvalidData, "%s must be positive, got %g", name, *v)
	}
	return nil
}

func checkUnit(name string, v *float64) error {
	if v != nil && !(*v >= 0 && *v <= 1) {
		return errors.New(errors.ErrCodeInvalidData, "%s must be in [0, 1], got %g", name, *v)
	}
	return nil
}

func checkColor(c string) error {
	if c == "" {
		return nil
	}
	return errors.ValidateColor(c)
}

func strictlyMonotonic(v []float64) bool {
	if len(v) < 2 {
		return true
	}
	up := v[1] > v[0]
	for i := 1; i < len(v); i++ {
		if (up && v[i] <= v[i-1]) || (!up && v[i] >= v[i-1]) {
			return false
		}
	}
	return true
}
