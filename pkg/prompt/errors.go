package prompt

import "errors"

var (
	// ErrAborted signals the operator aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNotANumber is returned when a reply does not parse as a float.
	ErrNotANumber = errors.New("prompt: Please type a number!")
	// ErrNoInput is returned when the input stream closes before a reply.
	ErrNoInput = errors.New("prompt: input closed")
)
