package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/matzehuels/plotsvg/pkg/chart"
	"github.com/matzehuels/plotsvg/pkg/errors"
)

func TestRegistryOrder(t *testing.T) {
	want := []string{
		"plot_line", "plot_scatter", "plot_bar", "plot_area", "plot_histogram",
		"plot_box", "plot_heatmap", "plot_contour", "plot_pie",
	}
	got := NewRegistry().List()
	if len(got) != len(want) {
		t.Fatalf("List() has %d tools, want %d", len(got), len(want))
	}
	for i, tool := range got {
		if tool.Name != want[i] {
			t.Errorf("tool %d = %s, want %s", i, tool.Name, want[i])
		}
		if "plot_"+string(tool.Kind) != tool.Name {
			t.Errorf("%s bound to kind %s", tool.Name, tool.Kind)
		}
	}
}

func TestExamplesRender(t *testing.T) {
	r := NewRegistry()
	for _, tool := range r.List() {
		t.Run(tool.Name, func(t *testing.T) {
			params, err := r.Example(tool.Name)
			if err != nil {
				t.Fatal(err)
			}
			doc, err := r.Call(context.Background(), tool.Name, params)
			if err != nil {
				t.Fatalf("Call() error = %v", err)
			}
			if !bytes.Contains(doc.SVG, []byte("<svg")) {
				t.Error("example did not produce an SVG document")
			}
		})
	}
}

func TestDecodeOptions(t *testing.T) {
	r := NewRegistry()
	c, err := r.Decode("plot_line", json.RawMessage(`{
		"data": {"series": [{"name": "a", "x": [0, 1], "y": [1, 2]}]},
		"config": {"title": "T", "width": 640, "line_style": "dotted", "stroke_width": 3, "y_axis": {"scale": "log"}}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	ld, ok := c.Dataset.(chart.LineData)
	if !ok {
		t.Fatalf("Dataset is %T, want chart.LineData", c.Dataset)
	}
	if ld.LineStyle != "dotted" || ld.StrokeWidth == nil || *ld.StrokeWidth != 3 {
		t.Errorf("line options = %+v", ld)
	}
	if c.Config.Title != "T" || c.Config.Width == nil || *c.Config.Width != 640 || c.Config.YAxis.Scale != "log" {
		t.Errorf("common config = %+v", c.Config)
	}
	if c.Kind != chart.KindLine || c.Tool != "plot_line" {
		t.Errorf("Call = %s/%s", c.Tool, c.Kind)
	}
}

func TestDecodeWithoutConfig(t *testing.T) {
	c, err := NewRegistry().Decode("plot_pie", json.RawMessage(`{"data": {"values": [1, 2]}}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Config.Width != nil || c.Config.Title != "" {
		t.Errorf("missing config should decode to zero value, got %+v", c.Config)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		tool   string
		params string
		code   errors.Code
	}{
		{"unknown tool", "plot_radar", `{"data":{}}`, errors.ErrCodeUnknownTool},
		{"bad tool name", "Plot Line", `{"data":{}}`, errors.ErrCodeInvalidInput},
		{"not json", "plot_bar", `{data:`, errors.ErrCodeInvalidInput},
		{"empty", "plot_bar", ``, errors.ErrCodeInvalidInput},
		{"missing data", "plot_bar", `{"config":{}}`, errors.ErrCodeInvalidInput},
		{"null data", "plot_bar", `{"data":null}`, errors.ErrCodeInvalidInput},
		{"unknown top field", "plot_bar", `{"data":{},"extra":1}`, errors.ErrCodeInvalidInput},
		{"unknown data field", "plot_bar", `{"data":{"categories":[],"values":[],"colour":"red"}}`, errors.ErrCodeInvalidInput},
		{"unknown config field", "plot_bar", `{"data":{"categories":["a"],"values":[1]},"config":{"bins":3}}`, errors.ErrCodeInvalidInput},
		{"wrong type", "plot_scatter", `{"data":{"x":"1,2","y":[1,2]}}`, errors.ErrCodeInvalidInput},
		{"trailing data", "plot_pie", `{"data":{"values":[1]}} {}`, errors.ErrCodeInvalidInput},
	}
	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Decode(tt.tool, json.RawMessage(tt.params))
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCallPropagatesRenderErrors(t *testing.T) {
	r := NewRegistry()
	_, err := r.Call(context.Background(), "plot_scatter",
		json.RawMessage(`{"data":{"x":[0,1],"y":[1,2]},"config":{"x_axis":{"scale":"log"}}}`))
	if !errors.Is(err, errors.ErrCodeInvalidScale) {
		t.Errorf("Call() error = %v, want INVALID_SCALE", err)
	}
}

func TestCallCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	params, _ := NewRegistry().Example("plot_bar")
	if _, err := NewRegistry().Call(ctx, "plot_bar", params); err != context.Canceled {
		t.Errorf("Call() error = %v, want context.Canceled", err)
	}
}

func TestCanonical(t *testing.T) {
	r := NewRegistry()
	a, err := r.Decode("plot_bar", json.RawMessage(`{"data":{"categories":["a"],"values":[1]},"config":{"title":"t","color":"red"}}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Decode("plot_bar", json.RawMessage(`{ "config": {"color": "red", "title": "t"}, "data": {"values": [1.0], "categories": ["a"]} }`))
	if err != nil {
		t.Fatal(err)
	}
	ca, _ := a.Canonical()
	cb, _ := b.Canonical()
	if !bytes.Equal(ca, cb) {
		t.Errorf("canonical forms differ:\n%s\n%s", ca, cb)
	}

	c, _ := r.Decode("plot_bar", json.RawMessage(`{"data":{"categories":["a"],"values":[2]}}`))
	cc, _ := c.Canonical()
	if bytes.Equal(ca, cc) {
		t.Error("different data produced the same canonical form")
	}
}
