package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-opamp/pkg/amplifier"
	"github.com/goliatone/go-opamp/pkg/report"
)

func summaryA() report.Summary {
	in := amplifier.Inputs{VRef: 1, VoFS: 3, VoZS: 1, ViFS: 1, ViZS: 0}
	return report.NewSummary(in, amplifier.StrategyStandard, amplifier.TopologyA{R1: 1000, R2: 2000, RF: 1000, RG: 500})
}

func TestDebug_MatchesComponentListing(t *testing.T) {
	out, err := report.NewDebug().Render(context.Background(), summaryA())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "\ncomponent values:\nTopologyA { r_1: 1000.0, r_2: 2000.0, r_f: 1000.0, r_g: 500.0 }\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("debug output mismatch (-want +got):\n%s", diff)
	}
}

func TestDebug_TopologyBFields(t *testing.T) {
	c := amplifier.TopologyB{RF: 1000, RG: 1000, RG1: 900, RG2: 100, VRefPrime: -9, R1: 1000.0 / -9.0}
	want := "TopologyB { r_f: 1000.0, r_g: 1000.0, r_g1: 900.0, r_g2: 100.0, vref_prime: -9.0, r_1: -111.11111111111111 }"
	if got := report.Debug(c); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		1000:                 "1000.0",
		0.5:                  "0.5",
		math.Copysign(0, -1): "-0.0",
		1e-5:                 "1e-5",
		1e21:                 "1e21",
		math.NaN():           "NaN",
		math.Inf(1):          "inf",
		math.Inf(-1):         "-inf",
	}
	for v, want := range cases {
		if got := report.FormatFloat(v); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestFormatSI(t *testing.T) {
	cases := []struct {
		v    float64
		unit amplifier.Unit
		want string
	}{
		{4700, amplifier.UnitOhm, "4.7 kohm"},
		{2.2e6, amplifier.UnitOhm, "2.2 Mohm"},
		{500, amplifier.UnitOhm, "500 ohm"},
		{0.5, amplifier.UnitVolt, "500 mV"},
		{-9, amplifier.UnitVolt, "-9 V"},
		{0, amplifier.UnitOhm, "0 ohm"},
	}
	for _, tc := range cases {
		if got := report.FormatSI(tc.v, tc.unit); got != tc.want {
			t.Errorf("FormatSI(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestJSON_KeepsComponentOrderAndNonFinite(t *testing.T) {
	in := amplifier.Inputs{VRef: 1, VoFS: 1, VoZS: 1, ViFS: 0, ViZS: 1}
	summary := report.NewSummary(in, amplifier.StrategyStandard, amplifier.TopologyC{RF: 1000, RG: math.Inf(1), R2: 1000, R1: math.NaN()})

	out, err := report.NewJSON().Render(context.Background(), summary)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc struct {
		Topology   string `json:"topology"`
		Components []struct {
			Name  string `json:"name"`
			Value any    `json:"value"`
			Unit  string `json:"unit"`
		} `json:"components"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if doc.Topology != "TopologyC" {
		t.Fatalf("topology = %q", doc.Topology)
	}
	var names []string
	var values []any
	for _, c := range doc.Components {
		names = append(names, c.Name)
		values = append(values, c.Value)
	}
	if diff := cmp.Diff([]string{"r_f", "r_g", "r_2", "r_1"}, names); diff != "" {
		t.Fatalf("component order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{1000.0, "+Inf", 1000.0, "NaN"}, values); diff != "" {
		t.Fatalf("component values mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_Document(t *testing.T) {
	out, err := report.NewYAML().Render(context.Background(), summaryA())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc struct {
		Topology   string            `yaml:"topology"`
		Strategy   string            `yaml:"strategy"`
		Gain       float64           `yaml:"gain"`
		Offset     float64           `yaml:"offset"`
		Inputs     amplifier.Inputs  `yaml:"inputs"`
		Components []amplifier.Field `yaml:"components"`
	}
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if doc.Topology != "TopologyA" || doc.Strategy != "standard" || doc.Gain != 2 || doc.Offset != 1 {
		t.Fatalf("unexpected header fields: %+v", doc)
	}
	if diff := cmp.Diff(summaryA().Circuit.Fields(), doc.Components); diff != "" {
		t.Fatalf("components mismatch (-want +got):\n%s", diff)
	}
	if doc.Inputs.VoFS != 3 {
		t.Fatalf("inputs not round-tripped: %+v", doc.Inputs)
	}
}

func TestText_RendersSummary(t *testing.T) {
	r, err := report.NewText()
	if err != nil {
		t.Fatalf("new text: %v", err)
	}
	out, err := r.Render(context.Background(), summaryA())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(out)
	for _, want := range []string{
		"topology:   TopologyA",
		"gain:       2",
		"v_ref=1",
		"vi_zs=0",
		report.Header,
		"r_2",
		"2 kohm",
		"500 ohm",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("text output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "strategy)") {
		t.Errorf("strategy note should only appear for the enhanced topology:\n%s", got)
	}
}

func TestText_CustomTemplate(t *testing.T) {
	files := fstest.MapFS{
		"short.tpl": {Data: []byte("{{ topology }}:{% for c in components %} {{ c.name }}{% endfor %}")},
	}
	r, err := report.NewTextFromFS(files, "short.tpl")
	if err != nil {
		t.Fatalf("new text: %v", err)
	}
	out, err := r.Render(context.Background(), summaryA())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := string(out), "TopologyA: r_1 r_2 r_f r_g"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderers_RequireCircuit(t *testing.T) {
	registry, err := report.DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	for _, name := range registry.List() {
		r, err := registry.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		if _, err := r.Render(context.Background(), report.Summary{}); !errors.Is(err, report.ErrNoCircuit) {
			t.Errorf("%s: expected ErrNoCircuit, got %v", name, err)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry, err := report.DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{"debug", "json", "text", "yaml"}, registry.List()); diff != "" {
		t.Fatalf("formats mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(report.NewDebug()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Get("xml"); err == nil || !strings.Contains(err.Error(), "debug") {
		t.Fatalf("expected not found error listing formats, got %v", err)
	}
}
