package report

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"math"
	"strconv"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-opamp/pkg/amplifier"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

// TemplatesFS exposes the embedded report templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return templateFiles
	}
	return sub
}

const defaultTemplate = "report.tpl"

type textRenderer struct {
	tpl *pongo2.Template
}

// NewText parses the embedded report template. Pass a different fs.FS and
// name to override it.
func NewText() (Renderer, error) {
	return NewTextFromFS(TemplatesFS(), defaultTemplate)
}

// NewTextFromFS loads name from files as a pongo2 template.
func NewTextFromFS(files fs.FS, name string) (Renderer, error) {
	set := pongo2.NewSet("report", pongo2.NewFSLoader(files))
	tpl, err := set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("report: parse template %q: %w", name, err)
	}
	return &textRenderer{tpl: tpl}, nil
}

func (r *textRenderer) Name() string        { return "text" }
func (r *textRenderer) ContentType() string { return "text/plain" }

func (r *textRenderer) Render(ctx context.Context, summary Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if summary.Circuit == nil {
		return nil, ErrNoCircuit
	}

	inputs := make([]pongo2.Context, 0, len(amplifier.InputNames))
	for i, v := range summary.Inputs.Values() {
		inputs = append(inputs, pongo2.Context{
			"name":  amplifier.InputNames[i],
			"value": strconv.FormatFloat(v, 'g', -1, 64),
		})
	}
	components := make([]pongo2.Context, 0, 6)
	for _, f := range summary.Circuit.Fields() {
		components = append(components, pongo2.Context{
			"name":  f.Name,
			"value": FormatSI(f.Value, f.Unit),
		})
	}

	strategy := ""
	if summary.Circuit.Topology() == amplifier.TopologyNameBEnhanced {
		strategy = string(summary.Strategy)
	}

	out, err := r.tpl.Execute(pongo2.Context{
		"topology":   string(summary.Circuit.Topology()),
		"strategy":   strategy,
		"gain":       strconv.FormatFloat(summary.Gain, 'g', 6, 64),
		"offset":     strconv.FormatFloat(summary.Offset, 'g', 6, 64),
		"inputs":     inputs,
		"header":     Header,
		"components": components,
	})
	if err != nil {
		return nil, fmt.Errorf("report: execute template: %w", err)
	}
	return []byte(out), nil
}

var siPrefixes = []struct {
	scale  float64
	prefix string
}{
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "u"},
}

// FormatSI renders v with an SI prefix and unit, e.g. 4700 ohm -> "4.7 kohm".
// Zero and non-finite values are printed without a prefix.
func FormatSI(v float64, unit amplifier.Unit) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%v %s", v, unit)
	}
	abs := math.Abs(v)
	for _, p := range siPrefixes {
		if abs >= p.scale {
			return strconv.FormatFloat(v/p.scale, 'g', 4, 64) + " " + p.prefix + string(unit)
		}
	}
	last := siPrefixes[len(siPrefixes)-1]
	return strconv.FormatFloat(v/last.scale, 'g', 4, 64) + " " + last.prefix + string(unit)
}
