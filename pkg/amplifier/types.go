package amplifier

import (
	"fmt"
	"math"
)

// Inputs carries the five calibration voltages that describe the desired
// transfer function. Output full/zero scale map onto input full/zero scale.
type Inputs struct {
	VRef float64 `json:"v_ref" yaml:"v_ref"`
	VoFS float64 `json:"vo_fs" yaml:"vo_fs"`
	VoZS float64 `json:"vo_zs" yaml:"vo_zs"`
	ViFS float64 `json:"vi_fs" yaml:"vi_fs"`
	ViZS float64 `json:"vi_zs" yaml:"vi_zs"`
}

// InputNames lists the voltages in positional order.
var InputNames = [5]string{"v_ref", "vo_fs", "vo_zs", "vi_fs", "vi_zs"}

// InputsFromSlice builds Inputs from values ordered as InputNames.
func InputsFromSlice(values []float64) (Inputs, error) {
	if len(values) != len(InputNames) {
		return Inputs{}, fmt.Errorf("amplifier: expected %d input values, got %d", len(InputNames), len(values))
	}
	return Inputs{
		VRef: values[0],
		VoFS: values[1],
		VoZS: values[2],
		ViFS: values[3],
		ViZS: values[4],
	}, nil
}

// Values returns the voltages ordered as InputNames.
func (in Inputs) Values() [5]float64 {
	return [5]float64{in.VRef, in.VoFS, in.VoZS, in.ViFS, in.ViZS}
}

// Validate rejects non-finite voltages and a zero input span.
func (in Inputs) Validate() error {
	for i, v := range in.Values() {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s=%v", ErrNonFinite, InputNames[i], v)
		}
	}
	if in.ViFS == in.ViZS {
		return fmt.Errorf("%w: vi_fs=%v vi_zs=%v", ErrZeroInputSpan, in.ViFS, in.ViZS)
	}
	return nil
}

// Gain is the slope of the transfer function.
func (in Inputs) Gain() float64 {
	return (in.VoFS - in.VoZS) / (in.ViFS - in.ViZS)
}

// Offset is the output voltage at zero input.
func (in Inputs) Offset() float64 {
	return in.VoZS - in.Gain()*in.ViZS
}

// Topology names one of the circuit families.
type Topology string

const (
	// TopologyNameA is positive gain with positive offset.
	TopologyNameA Topology = "TopologyA"
	// TopologyNameB is positive gain with negative offset.
	TopologyNameB Topology = "TopologyB"
	// TopologyNameBEnhanced is the alternate derivation for positive gain with
	// negative offset. Only built under StrategyEnhanced.
	TopologyNameBEnhanced Topology = "TopologyBEnhanced"
	// TopologyNameC is negative gain with positive offset.
	TopologyNameC Topology = "TopologyC"
	// TopologyNameD is negative gain with negative offset.
	TopologyNameD Topology = "TopologyD"
)

// Classify selects the topology from the sign bits of gain and offset, so a
// negative zero counts as negative. The standard strategy is assumed.
func Classify(gain, offset float64) Topology {
	return classify(gain, offset, StrategyStandard)
}

func classify(gain, offset float64, strategy Strategy) Topology {
	gainNegative, offsetNegative := math.Signbit(gain), math.Signbit(offset)
	switch {
	case !gainNegative && !offsetNegative:
		return TopologyNameA
	case !gainNegative && offsetNegative:
		if strategy == StrategyEnhanced {
			return TopologyNameBEnhanced
		}
		return TopologyNameB
	case gainNegative && !offsetNegative:
		return TopologyNameC
	default:
		return TopologyNameD
	}
}

// Unit is the physical unit of a component value.
type Unit string

const (
	UnitOhm  Unit = "ohm"
	UnitVolt Unit = "V"
)

// Field is one named value of a circuit, in declaration order.
type Field struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Unit  Unit    `json:"unit" yaml:"unit"`
}

// Strategy picks the derivation used for positive gain with negative offset.
type Strategy string

const (
	// StrategyStandard builds TopologyB with the fixed 10:1 gain resistor split.
	StrategyStandard Strategy = "standard"
	// StrategyEnhanced builds TopologyBEnhanced, asking for r_1 instead of
	// splitting the gain resistor.
	StrategyEnhanced Strategy = "enhanced"
)

// ParseStrategy resolves a strategy name. Empty selects StrategyStandard.
func ParseStrategy(raw string) (Strategy, error) {
	switch Strategy(raw) {
	case "", StrategyStandard:
		return StrategyStandard, nil
	case StrategyEnhanced:
		return StrategyEnhanced, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, raw)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
