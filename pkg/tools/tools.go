// Package tools exposes the chart kinds as named tools that accept JSON
// parameters of the form {"data": {...}, "config": {...}}.
//
// The registry is shared by every transport: the CLI, the HTTP server and
// the stdio loop all resolve a tool by name and hand its raw parameters to
// [Registry.Call]. Decoding is strict; unknown fields are rejected.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/plotsvg/pkg/chart"
	"github.com/matzehuels/plotsvg/pkg/errors"
)

// Param documents one tool-specific config field.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
}

// Tool is one registered chart tool.
type Tool struct {
	Name        string     `json:"name"`
	Kind        chart.Kind `json:"kind"`
	Description string     `json:"description"`
	Data        []Param    `json:"data"`
	Options     []Param    `json:"options"`

	example string
	decode  func(data, config json.RawMessage) (chart.Dataset, chart.Config, error)
}

// Params is the wire shape of a tool call.
type Params struct {
	Data   json.RawMessage `json:"data"`
	Config json.RawMessage `json:"config,omitempty"`
}

// Call is a decoded tool invocation.
type Call struct {
	Tool    string
	Kind    chart.Kind
	Dataset chart.Dataset
	Config  chart.Config
}

// Canonical returns a stable encoding of the call, suitable for hashing.
// Semantically equal parameters that differ only in field order or
// whitespace encode identically.
func (c Call) Canonical() ([]byte, error) {
	return json.Marshal(struct {
		Tool    string        `json:"tool"`
		Dataset chart.Dataset `json:"data"`
		Config  chart.Config  `json:"config"`
	}{c.Tool, c.Dataset, c.Config})
}

// Registry resolves tool names.
type Registry struct {
	tools  []Tool
	byName map[string]int
}

// NewRegistry returns a registry holding every chart tool.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]int, len(builtin))}
	for _, t := range builtin {
		r.byName[t.Name] = len(r.tools)
		r.tools = append(r.tools, t)
	}
	return r
}

// List returns the tools in registration order.
func (r *Registry) List() []Tool {
	return append([]Tool(nil), r.tools...)
}

// Lookup returns the named tool.
func (r *Registry) Lookup(name string) (Tool, error) {
	if err := errors.ValidateToolName(name); err != nil {
		return Tool{}, err
	}
	i, ok := r.byName[name]
	if !ok {
		return Tool{}, errors.New(errors.ErrCodeUnknownTool, "unknown tool %q", name)
	}
	return r.tools[i], nil
}

// Decode parses raw parameters for the named tool.
func (r *Registry) Decode(name string, raw json.RawMessage) (Call, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return Call{}, err
	}
	var p Params
	if err := strict(raw, &p); err != nil {
		return Call{}, errors.New(errors.ErrCodeInvalidInput, "%s: malformed parameters: %v", name, err)
	}
	if isNull(p.Data) {
		return Call{}, errors.New(errors.ErrCodeInvalidInput, "%s: missing \"data\"", name)
	}
	ds, cfg, err := t.decode(p.Data, p.Config)
	if err != nil {
		return Call{}, errors.New(errors.ErrCodeInvalidInput, "%s: malformed parameters: %v", name, err)
	}
	return Call{Tool: name, Kind: t.Kind, Dataset: ds, Config: cfg}, nil
}

// Call decodes and renders in one step.
func (r *Registry) Call(ctx context.Context, name string, raw json.RawMessage) (chart.Document, error) {
	c, err := r.Decode(name, raw)
	if err != nil {
		return chart.Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return chart.Document{}, err
	}
	return chart.Render(c.Kind, c.Dataset, c.Config)
}

// Example returns sample parameters for the named tool.
func (r *Registry) Example(name string) (json.RawMessage, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(t.example), nil
}

// strict decodes one JSON value, rejecting unknown fields and trailing data.
func strict(raw json.RawMessage, v any) error {
	if isNull(raw) {
		return fmt.Errorf("empty document")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// define binds a data shape D and an options shape O to a chart kind.
// O embeds chart.Config so the common fields sit next to the kind options.
func define[D, O any](t Tool, build func(D, O) (chart.Dataset, chart.Config)) Tool {
	t.decode = func(data, config json.RawMessage) (chart.Dataset, chart.Config, error) {
		var d D
		if err := strict(data, &d); err != nil {
			return nil, chart.Config{}, fmt.Errorf("data: %w", err)
		}
		var o O
		if !isNull(config) {
			if err := strict(config, &o); err != nil {
				return nil, chart.Config{}, fmt.Errorf("config: %w", err)
			}
		}
		ds, cfg := build(d, o)
		return ds, cfg, nil
	}
	return t
}
