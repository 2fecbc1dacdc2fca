package amplifier

import "errors"

var (
	// ErrZeroInputSpan signals vi_fs == vi_zs, which leaves the gain undefined.
	ErrZeroInputSpan = errors.New("amplifier: input full scale equals input zero scale")
	// ErrNonFinite is returned when an input voltage or a seed is NaN or infinite.
	ErrNonFinite = errors.New("amplifier: value is not finite")
	// ErrDegenerate is returned in strict mode when a computed component value
	// is NaN or infinite.
	ErrDegenerate = errors.New("amplifier: degenerate component value")
	// ErrSeedsExhausted is returned by scripted providers with nothing left to
	// answer.
	ErrSeedsExhausted = errors.New("amplifier: no seed value scripted")
	// ErrUnknownStrategy is returned for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("amplifier: unknown strategy")
)
