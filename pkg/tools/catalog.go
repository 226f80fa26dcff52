package tools

import "github.com/matzehuels/plotsvg/pkg/chart"

type (
	lineData struct {
		Series []chart.Series `json:"series"`
	}
	lineOptions struct {
		chart.Config
		LineStyle   string   `json:"line_style"`
		StrokeWidth *float64 `json:"stroke_width"`
		ShowMarkers bool     `json:"show_markers"`
	}

	xyData struct {
		X []float64 `json:"x"`
		Y []float64 `json:"y"`
	}
	scatterOptions struct {
		chart.Config
		PointRadius *float64 `json:"point_radius"`
		Color       string   `json:"color"`
		Opacity     *float64 `json:"opacity"`
	}
	areaOptions struct {
		chart.Config
		FillColor string   `json:"fill_color"`
		Opacity   *float64 `json:"opacity"`
	}

	barData struct {
		Categories []string  `json:"categories"`
		Values     []float64 `json:"values"`
	}
	barOptions struct {
		chart.Config
		Orientation string   `json:"orientation"`
		BarWidth    *float64 `json:"bar_width"`
		Color       string   `json:"color"`
	}

	histogramData struct {
		Values []float64 `json:"values"`
	}
	histogramOptions struct {
		chart.Config
		Bins    *int   `json:"bins"`
		Density bool   `json:"density"`
		Color   string `json:"color"`
	}

	boxData struct {
		Groups []chart.BoxGroup `json:"groups"`
	}
	boxOptions struct {
		chart.Config
		BoxWidth *float64 `json:"box_width"`
		Color    string   `json:"color"`
	}

	heatmapData struct {
		Matrix  [][]float64 `json:"matrix"`
		XLabels []string    `json:"x_labels"`
		YLabels []string    `json:"y_labels"`
	}
	heatmapOptions struct {
		chart.Config
		ColorScale string `json:"color_scale"`
		ShowValues bool   `json:"show_values"`
	}

	contourData struct {
		X []float64   `json:"x"`
		Y []float64   `json:"y"`
		Z [][]float64 `json:"z"`
	}
	contourOptions struct {
		chart.Config
		Levels      *int     `json:"levels"`
		StrokeWidth *float64 `json:"stroke_width"`
	}

	pieData struct {
		Labels []string  `json:"labels"`
		Values []float64 `json:"values"`
	}
	pieOptions struct {
		chart.Config
		InnerRadiusRatio float64 `json:"inner_radius_ratio"`
		StartAngle       float64 `json:"start_angle"`
	}
)

// builtin is the tool catalog in listing order.
var builtin = []Tool{
	define(Tool{
		Name:        "plot_line",
		Kind:        chart.KindLine,
		Description: "Render one or more continuous 2D lines.",
		Data: []Param{
			{Name: "series", Type: "[{name, x, y}]", Description: "named series with equal-length x and y"},
		},
		Options: []Param{
			{Name: "line_style", Type: "string", Default: "solid", Description: "solid, dashed or dotted"},
			{Name: "stroke_width", Type: "number", Default: "2", Description: "line width in pixels"},
			{Name: "show_markers", Type: "bool", Default: "false", Description: "draw a circle at every point"},
		},
		example: `{"data":{"series":[{"name":"squares","x":[0,1,2,3,4],"y":[0,1,4,9,16]},{"name":"linear","x":[0,1,2,3,4],"y":[0,2,4,6,8]}]},"config":{"title":"Growth","x_axis":{"label":"n"},"y_axis":{"label":"value"},"show_markers":true}}`,
	}, func(d lineData, o lineOptions) (chart.Dataset, chart.Config) {
		return chart.LineData{
			Series:      d.Series,
			LineStyle:   o.LineStyle,
			StrokeWidth: o.StrokeWidth,
			ShowMarkers: o.ShowMarkers,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_scatter",
		Kind:        chart.KindScatter,
		Description: "Render discrete 2D points.",
		Data: []Param{
			{Name: "x", Type: "[number]", Description: "x coordinates"},
			{Name: "y", Type: "[number]", Description: "y coordinates, same length as x"},
		},
		Options: []Param{
			{Name: "point_radius", Type: "number", Default: "4", Description: "marker radius in pixels"},
			{Name: "color", Type: "string", Default: "steelblue", Description: "marker fill"},
			{Name: "opacity", Type: "number", Default: "1", Description: "marker opacity in [0, 1]"},
		},
		example: `{"data":{"x":[1,2,3,4,5,6,7,8],"y":[2.1,3.9,6.2,7.8,10.1,12.2,13.8,16.1]},"config":{"title":"Measurements","opacity":0.8}}`,
	}, func(d xyData, o scatterOptions) (chart.Dataset, chart.Config) {
		return chart.ScatterData{
			X:           d.X,
			Y:           d.Y,
			PointRadius: o.PointRadius,
			Color:       o.Color,
			Opacity:     o.Opacity,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_bar",
		Kind:        chart.KindBar,
		Description: "Render a categorical bar chart.",
		Data: []Param{
			{Name: "categories", Type: "[string]", Description: "bar labels"},
			{Name: "values", Type: "[number]", Description: "bar heights, same length as categories"},
		},
		Options: []Param{
			{Name: "orientation", Type: "string", Default: "vertical", Description: "vertical or horizontal"},
			{Name: "bar_width", Type: "number", Default: "0.8", Description: "share of each slot covered by its bar"},
			{Name: "color", Type: "string", Default: "steelblue", Description: "bar fill"},
		},
		example: `{"data":{"categories":["Go","Rust","Python","Java"],"values":[42,35,58,27]},"config":{"title":"Survey"}}`,
	}, func(d barData, o barOptions) (chart.Dataset, chart.Config) {
		return chart.BarData{
			Categories:  d.Categories,
			Values:      d.Values,
			Orientation: o.Orientation,
			BarWidth:    o.BarWidth,
			Color:       o.Color,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_area",
		Kind:        chart.KindArea,
		Description: "Render the filled area under a curve.",
		Data: []Param{
			{Name: "x", Type: "[number]", Description: "x coordinates"},
			{Name: "y", Type: "[number]", Description: "y coordinates, same length as x"},
		},
		Options: []Param{
			{Name: "fill_color", Type: "string", Default: "steelblue", Description: "area fill"},
			{Name: "opacity", Type: "number", Default: "0.6", Description: "fill opacity in [0, 1]"},
		},
		example: `{"data":{"x":[0,1,2,3,4,5,6],"y":[1,3,2,5,4,6,5]},"config":{"title":"Load"}}`,
	}, func(d xyData, o areaOptions) (chart.Dataset, chart.Config) {
		return chart.AreaData{
			X:         d.X,
			Y:         d.Y,
			FillColor: o.FillColor,
			Opacity:   o.Opacity,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_histogram",
		Kind:        chart.KindHistogram,
		Description: "Render a 1D histogram of raw samples.",
		Data: []Param{
			{Name: "values", Type: "[number]", Description: "samples"},
		},
		Options: []Param{
			{Name: "bins", Type: "int", Default: "10", Description: "number of equal-width bins, at most 10000"},
			{Name: "density", Type: "bool", Default: "false", Description: "normalize so the bars integrate to 1"},
			{Name: "color", Type: "string", Default: "steelblue", Description: "bar fill"},
		},
		example: `{"data":{"values":[1.2,2.3,2.1,3.4,3.3,3.5,4.1,4.4,4.2,4.8,5.5,5.1,6.2,6.9,7.4]},"config":{"title":"Latency","bins":6}}`,
	}, func(d histogramData, o histogramOptions) (chart.Dataset, chart.Config) {
		return chart.HistogramData{
			Values:  d.Values,
			Bins:    o.Bins,
			Density: o.Density,
			Color:   o.Color,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_box",
		Kind:        chart.KindBox,
		Description: "Render box plots from raw values.",
		Data: []Param{
			{Name: "groups", Type: "[{name, values}]", Description: "one box per group"},
		},
		Options: []Param{
			{Name: "box_width", Type: "number", Default: "0.6", Description: "share of each slot covered by its box"},
			{Name: "color", Type: "string", Default: "black", Description: "box stroke"},
		},
		example: `{"data":{"groups":[{"name":"A","values":[2,4,4,4,5,5,7,9]},{"name":"B","values":[1,3,3,6,7,8,8,15]}]},"config":{"title":"Groups"}}`,
	}, func(d boxData, o boxOptions) (chart.Dataset, chart.Config) {
		return chart.BoxData{
			Groups:   d.Groups,
			BoxWidth: o.BoxWidth,
			Color:    o.Color,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_heatmap",
		Kind:        chart.KindHeatmap,
		Description: "Render a 2D matrix as a color grid.",
		Data: []Param{
			{Name: "matrix", Type: "[[number]]", Description: "rectangular matrix, row 0 on top"},
			{Name: "x_labels", Type: "[string]", Description: "column labels (optional)"},
			{Name: "y_labels", Type: "[string]", Description: "row labels (optional)"},
		},
		Options: []Param{
			{Name: "color_scale", Type: "string", Default: "viridis", Description: "viridis, plasma or gray"},
			{Name: "show_values", Type: "bool", Default: "false", Description: "print the value in each cell"},
		},
		example: `{"data":{"matrix":[[1,2,3],[4,5,6],[7,8,9]],"x_labels":["a","b","c"],"y_labels":["r1","r2","r3"]},"config":{"title":"Grid","show_values":true}}`,
	}, func(d heatmapData, o heatmapOptions) (chart.Dataset, chart.Config) {
		return chart.HeatmapData{
			Matrix:     d.Matrix,
			XLabels:    d.XLabels,
			YLabels:    d.YLabels,
			ColorScale: o.ColorScale,
			ShowValues: o.ShowValues,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_contour",
		Kind:        chart.KindContour,
		Description: "Render contour lines of gridded data.",
		Data: []Param{
			{Name: "x", Type: "[number]", Description: "strictly increasing column coordinates"},
			{Name: "y", Type: "[number]", Description: "strictly increasing row coordinates"},
			{Name: "z", Type: "[[number]]", Description: "values, z[i][j] at (x[j], y[i])"},
		},
		Options: []Param{
			{Name: "levels", Type: "int", Default: "10", Description: "number of iso-levels, at most 10000"},
			{Name: "stroke_width", Type: "number", Default: "1", Description: "line width in pixels"},
		},
		example: `{"data":{"x":[-2,-1,0,1,2],"y":[-2,-1,0,1,2],"z":[[8,5,4,5,8],[5,2,1,2,5],[4,1,0,1,4],[5,2,1,2,5],[8,5,4,5,8]]},"config":{"title":"Bowl","levels":5}}`,
	}, func(d contourData, o contourOptions) (chart.Dataset, chart.Config) {
		return chart.ContourData{
			X:           d.X,
			Y:           d.Y,
			Z:           d.Z,
			Levels:      o.Levels,
			StrokeWidth: o.StrokeWidth,
		}, o.Config
	}),

	define(Tool{
		Name:        "plot_pie",
		Kind:        chart.KindPie,
		Description: "Render a pie or donut chart.",
		Data: []Param{
			{Name: "labels", Type: "[string]", Description: "slice labels (optional)"},
			{Name: "values", Type: "[number]", Description: "non-negative slice sizes"},
		},
		Options: []Param{
			{Name: "inner_radius_ratio", Type: "number", Default: "0", Description: "donut hole as a share of the radius, [0, 1)"},
			{Name: "start_angle", Type: "number", Default: "0", Description: "degrees clockwise from 12 o'clock"},
		},
		example: `{"data":{"labels":["Go","Rust","Zig"],"values":[50,30,20]},"config":{"title":"Share","inner_radius_ratio":0.4}}`,
	}, func(d pieData, o pieOptions) (chart.Dataset, chart.Config) {
		return chart.PieData{
			Labels:           d.Labels,
			Values:           d.Values,
			InnerRadiusRatio: o.InnerRadiusRatio,
			StartAngle:       o.StartAngle,
		}, o.Config
	}),
}
