package config

import "errors"

var (
	// ErrUsage signals a wrong number of positional arguments.
	ErrUsage = errors.New("config: wrong number of values")
	// ErrParse signals a positional argument that is not a float.
	ErrParse = errors.New("config: could not parse input as floats")
	// ErrInvalidFile signals a malformed design file.
	ErrInvalidFile = errors.New("config: invalid design file")
)

// Usage describes the expected positional arguments.
const Usage = "Please type 5 values (as floats) separated by a space in the following order\nv_ref vo_fs vo_zs vi_fs vi_zs."
