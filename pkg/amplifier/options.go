package amplifier

import (
	"io"
	"log"
)

// Option configures a Designer.
type Option func(*Designer)

// WithStrategy selects the derivation for positive gain with negative offset.
func WithStrategy(strategy Strategy) Option {
	return func(d *Designer) {
		if strategy != "" {
			d.strategy = strategy
		}
	}
}

// WithStrict makes Design fail with ErrDegenerate instead of returning NaN or
// infinite component values.
func WithStrict(strict bool) Option {
	return func(d *Designer) {
		d.strict = strict
	}
}

// WithLogger traces gain, offset and topology selection. Nil discards.
func WithLogger(logger *log.Logger) Option {
	return func(d *Designer) {
		if logger == nil {
			logger = log.New(io.Discard, "", 0)
		}
		d.logger = logger
	}
}
