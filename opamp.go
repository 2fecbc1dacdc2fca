// Package opamp is the entry point for designing single op-amp gain and
// offset stages. It aliases the amplifier types and offers one-call helpers
// for scripted and interactive runs.
package opamp

import (
	"context"

	"github.com/goliatone/go-opamp/pkg/amplifier"
	"github.com/goliatone/go-opamp/pkg/prompt"
)

// Inputs aliases amplifier.Inputs.
type Inputs = amplifier.Inputs

// Circuit aliases amplifier.Circuit.
type Circuit = amplifier.Circuit

// SeedProvider aliases amplifier.SeedProvider.
type SeedProvider = amplifier.SeedProvider

// NewDesigner exposes the designer constructor from the top-level module.
func NewDesigner(options ...amplifier.Option) *amplifier.Designer {
	return amplifier.New(options...)
}

// Design solves in using seeds for the freely chosen resistors.
func Design(ctx context.Context, in Inputs, seeds SeedProvider, options ...amplifier.Option) (Circuit, error) {
	return amplifier.New(options...).Design(ctx, in, seeds)
}

// DesignWithValues solves in, answering the prompts in order from values.
func DesignWithValues(ctx context.Context, in Inputs, values []float64, options ...amplifier.Option) (Circuit, error) {
	return Design(ctx, in, amplifier.NewScriptedSeeds(values...), options...)
}

// DesignInteractive solves in, asking for seeds on the process console.
func DesignInteractive(ctx context.Context, in Inputs, options ...amplifier.Option) (Circuit, error) {
	return Design(ctx, in, prompt.New(), options...)
}
