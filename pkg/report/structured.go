package report

import (
	"bytes"
	"context"
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-opamp/pkg/amplifier"
)

// document is the machine-readable shape shared by the json and yaml
// renderers. Components keep the circuit's declaration order.
type document struct {
	Topology   amplifier.Topology `json:"topology" yaml:"topology"`
	Strategy   amplifier.Strategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Gain       any                `json:"gain" yaml:"gain"`
	Offset     any                `json:"offset" yaml:"offset"`
	Inputs     amplifier.Inputs   `json:"inputs" yaml:"inputs"`
	Components []component        `json:"components" yaml:"components"`
}

type component struct {
	Name  string         `json:"name" yaml:"name"`
	Value any            `json:"value" yaml:"value"`
	Unit  amplifier.Unit `json:"unit" yaml:"unit"`
}

func newDocument(summary Summary, number func(float64) any) (document, error) {
	if summary.Circuit == nil {
		return document{}, ErrNoCircuit
	}
	doc := document{
		Topology: summary.Circuit.Topology(),
		Strategy: summary.Strategy,
		Gain:     number(summary.Gain),
		Offset:   number(summary.Offset),
		Inputs:   summary.Inputs,
	}
	for _, f := range summary.Circuit.Fields() {
		doc.Components = append(doc.Components, component{
			Name:  f.Name,
			Value: number(f.Value),
			Unit:  f.Unit,
		})
	}
	return doc, nil
}

// jsonNumber keeps finite values numeric and spells out NaN and infinities,
// which encoding/json cannot represent.
func jsonNumber(v float64) any {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return v
	}
}

func yamlNumber(v float64) any {
	return v
}

type jsonRenderer struct{}

// NewJSON returns a renderer emitting an indented JSON document.
func NewJSON() Renderer {
	return jsonRenderer{}
}

func (jsonRenderer) Name() string        { return "json" }
func (jsonRenderer) ContentType() string { return "application/json" }

func (jsonRenderer) Render(ctx context.Context, summary Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := newDocument(summary, jsonNumber)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type yamlRenderer struct{}

// NewYAML returns a renderer emitting a YAML document. Non-finite values use
// YAML's .nan and .inf forms.
func NewYAML() Renderer {
	return yamlRenderer{}
}

func (yamlRenderer) Name() string        { return "yaml" }
func (yamlRenderer) ContentType() string { return "application/yaml" }

func (yamlRenderer) Render(ctx context.Context, summary Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := newDocument(summary, yamlNumber)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
