package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-opamp/pkg/amplifier"
)

// DefaultFormat is the report format used when nothing selects one.
const DefaultFormat = "debug"

// Settings is the resolved configuration of one run.
type Settings struct {
	Inputs   amplifier.Inputs
	Seeds    map[string]float64
	Format   string
	Strategy amplifier.Strategy
	Strict   bool
}

// Overrides carries flag values; empty strings and nil pointers leave the
// file's setting in place.
type Overrides struct {
	Format   string
	Strategy string
	Strict   *bool
}

// ParseArgs parses exactly five positional voltages in InputNames order.
func ParseArgs(args []string) (amplifier.Inputs, error) {
	if len(args) != len(amplifier.InputNames) {
		return amplifier.Inputs{}, fmt.Errorf("%w: got %d, want %d\n%s", ErrUsage, len(args), len(amplifier.InputNames), Usage)
	}
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return amplifier.Inputs{}, fmt.Errorf("%w: %s=%q: %v\n%s", ErrParse, amplifier.InputNames[i], arg, err, Usage)
		}
		values[i] = v
	}
	return amplifier.InputsFromSlice(values)
}

// Resolve merges file (may be nil), positional args and flag overrides.
// Without a file exactly five args are required; with one, args are either
// absent or a full replacement of the file's inputs.
func Resolve(file *File, args []string, overrides Overrides) (Settings, error) {
	settings := Settings{Format: DefaultFormat}

	switch {
	case len(args) > 0 || file == nil:
		in, err := ParseArgs(args)
		if err != nil {
			return Settings{}, err
		}
		settings.Inputs = in
	default:
		in, err := file.inputs()
		if err != nil {
			return Settings{}, err
		}
		settings.Inputs = in
	}

	strategy := ""
	if file != nil {
		if len(file.Seeds) > 0 {
			settings.Seeds = make(map[string]float64, len(file.Seeds))
			for k, v := range file.Seeds {
				settings.Seeds[k] = v
			}
		}
		if f := strings.TrimSpace(file.Format); f != "" {
			settings.Format = f
		}
		strategy = strings.TrimSpace(file.Strategy)
		if file.Strict != nil {
			settings.Strict = *file.Strict
		}
	}

	if f := strings.TrimSpace(overrides.Format); f != "" {
		settings.Format = f
	}
	if s := strings.TrimSpace(overrides.Strategy); s != "" {
		strategy = s
	}
	if overrides.Strict != nil {
		settings.Strict = *overrides.Strict
	}

	parsed, err := amplifier.ParseStrategy(strategy)
	if err != nil {
		return Settings{}, err
	}
	settings.Strategy = parsed
	return settings, nil
}
