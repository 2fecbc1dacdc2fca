package report

import (
	"context"

	"github.com/goliatone/go-opamp/pkg/amplifier"
)

// Renderer converts a Summary into bytes for the console or a file.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, summary Summary) ([]byte, error)
}

// Summary is everything a renderer may show about one design run.
type Summary struct {
	Inputs   amplifier.Inputs
	Gain     float64
	Offset   float64
	Strategy amplifier.Strategy
	Circuit  amplifier.Circuit
}

// NewSummary derives gain and offset from in and pairs them with circuit.
func NewSummary(in amplifier.Inputs, strategy amplifier.Strategy, circuit amplifier.Circuit) Summary {
	return Summary{
		Inputs:   in,
		Gain:     in.Gain(),
		Offset:   in.Offset(),
		Strategy: strategy,
		Circuit:  circuit,
	}
}
