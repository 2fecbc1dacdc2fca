package report

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-opamp/pkg/amplifier"
)

// Header precedes the component listing in debug output.
const Header = "component values:"

type debugRenderer struct{}

// NewDebug returns the default renderer:
//
//	component values:
//	TopologyA { r_1: 1000.0, r_2: 2000.0, r_f: 1000.0, r_g: 500.0 }
func NewDebug() Renderer {
	return debugRenderer{}
}

func (debugRenderer) Name() string        { return "debug" }
func (debugRenderer) ContentType() string { return "text/plain" }

func (debugRenderer) Render(ctx context.Context, summary Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if summary.Circuit == nil {
		return nil, ErrNoCircuit
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Header)
	b.WriteString("\n")
	b.WriteString(Debug(summary.Circuit))
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// Debug renders the topology name followed by its fields in braces.
func Debug(c amplifier.Circuit) string {
	var b strings.Builder
	b.WriteString(string(c.Topology()))
	b.WriteString(" { ")
	for i, f := range c.Fields() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(FormatFloat(f.Value))
	}
	b.WriteString(" }")
	return b.String()
}

// FormatFloat prints the shortest representation of v, keeping a trailing
// ".0" on integral values and switching to exponent form outside
// [1e-4, 1e16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		n, err := strconv.Atoi(exp)
		if err != nil {
			return s
		}
		return mantissa + "e" + strconv.Itoa(n)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
