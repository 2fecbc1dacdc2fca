// Package prompt asks an operator for component values on the console. It
// implements amplifier.SeedProvider on top of a PromptDriver: survey/v2 when
// attached to a terminal, a plain line reader otherwise. A reply that is not
// a number is fatal; there is no retry loop.
package prompt
