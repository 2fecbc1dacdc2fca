package amplifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
)

// Designer solves the component values for a desired gain and offset.
type Designer struct {
	strategy Strategy
	strict   bool
	logger   *log.Logger
}

// New constructs a Designer using StrategyStandard, permissive arithmetic and
// a discarding logger unless overridden.
func New(options ...Option) *Designer {
	d := &Designer{
		strategy: StrategyStandard,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Strategy reports the configured derivation strategy.
func (d *Designer) Strategy() Strategy {
	return d.strategy
}

// Design validates the inputs, classifies the transfer function and asks
// seeds for the free component values in a fixed order before solving for
// the rest. Provider errors are returned wrapped with the component name.
func (d *Designer) Design(ctx context.Context, in Inputs, seeds SeedProvider) (Circuit, error) {
	if ctx == nil {
		return nil, errors.New("amplifier: context is required")
	}
	if seeds == nil {
		return nil, errors.New("amplifier: seed provider is required")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	gain, offset := in.Gain(), in.Offset()
	topology := classify(gain, offset, d.strategy)
	d.logger.Printf("gain=%v offset=%v topology=%s", gain, offset, topology)

	var (
		circuit Circuit
		err     error
	)
	switch topology {
	case TopologyNameA:
		circuit, err = d.designA(ctx, in.VRef, gain, offset, seeds)
	case TopologyNameB:
		circuit, err = d.designB(ctx, in.VRef, gain, offset, seeds)
	case TopologyNameBEnhanced:
		circuit, err = d.designBEnhanced(ctx, in.VRef, gain, offset, seeds)
	case TopologyNameC:
		circuit, err = d.designC(ctx, in.VRef, gain, offset, seeds)
	default:
		circuit, err = d.designD(ctx, in.VRef, gain, offset, seeds)
	}
	if err != nil {
		return nil, err
	}

	if d.strict {
		if err := checkFinite(circuit); err != nil {
			return nil, err
		}
	}
	return circuit, nil
}

func (d *Designer) designA(ctx context.Context, vref, gain, offset float64, seeds SeedProvider) (Circuit, error) {
	r1, err := ask(ctx, seeds, promptR1)
	if err != nil {
		return nil, err
	}
	r2 := vref * r1 * gain / offset
	rf, err := ask(ctx, seeds, promptRF)
	if err != nil {
		return nil, err
	}
	rg := r2 * rf / (gain*(r1+r2) - r2)
	return TopologyA{R1: r1, R2: r2, RF: rf, RG: rg}, nil
}

// gainSplitRatio fixes r_g2 at a tenth of r_g.
const gainSplitRatio = 10.0

func (d *Designer) designB(ctx context.Context, vref, gain, offset float64, seeds SeedProvider) (Circuit, error) {
	rf, err := ask(ctx, seeds, promptRF)
	if err != nil {
		return nil, err
	}
	rg := rf / (gain - 1)
	rg2 := rg / gainSplitRatio
	rg1 := rg - rg2
	vrefPrime := math.Abs(offset) * rg1 / (rg1 - rf)
	r1 := rg2 * (vref - vrefPrime) / vrefPrime
	return TopologyB{RF: rf, RG: rg, RG1: rg1, RG2: rg2, VRefPrime: vrefPrime, R1: r1}, nil
}

func (d *Designer) designBEnhanced(ctx context.Context, vref, gain, offset float64, seeds SeedProvider) (Circuit, error) {
	rf, err := ask(ctx, seeds, promptRF)
	if err != nil {
		return nil, err
	}
	rg := rf / (gain - 1)
	vrefPrime := math.Abs(offset) / gain
	r1, err := ask(ctx, seeds, promptR1)
	if err != nil {
		return nil, err
	}
	r2 := vrefPrime * r1 / (vref - vrefPrime)
	return TopologyBEnhanced{RF: rf, RG: rg, VRefPrime: vrefPrime, R1: r1, R2: r2}, nil
}

func (d *Designer) designC(ctx context.Context, vref, gain, offset float64, seeds SeedProvider) (Circuit, error) {
	rf, err := ask(ctx, seeds, promptRF)
	if err != nil {
		return nil, err
	}
	rg := rf / math.Abs(gain)
	r2, err := ask(ctx, seeds, promptR2)
	if err != nil {
		return nil, err
	}
	r1 := offset * r2 * rg / (vref*(rf+rg) - offset*rg)
	return TopologyC{RF: rf, RG: rg, R2: r2, R1: r1}, nil
}

func (d *Designer) designD(ctx context.Context, vref, gain, offset float64, seeds SeedProvider) (Circuit, error) {
	rf, err := ask(ctx, seeds, promptRFBare)
	if err != nil {
		return nil, err
	}
	rg1 := rf / math.Abs(gain)
	rg2 := vref * (rf / math.Abs(offset))
	return TopologyD{RF: rf, RG1: rg1, RG2: rg2}, nil
}

func ask(ctx context.Context, seeds SeedProvider, prompt Prompt) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	v, err := seeds.Seed(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("amplifier: seed %s: %w", prompt.Name, err)
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: %s=%v", ErrNonFinite, prompt.Name, v)
	}
	return v, nil
}

func checkFinite(c Circuit) error {
	for _, f := range c.Fields() {
		if !isFinite(f.Value) {
			return fmt.Errorf("%w: %s %s=%v", ErrDegenerate, c.Topology(), f.Name, f.Value)
		}
	}
	return nil
}
