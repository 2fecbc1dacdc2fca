// Package amplifier derives resistor values for single op-amp gain and
// offset stages, following TI application report SLOA097 ("Designing Gain and
// Offset in Thirty Seconds").
//
// Inputs describe the desired transfer function through five voltages. The
// gain and offset they imply select one of four topologies by sign; the
// Designer then asks a SeedProvider for the one or two resistor values the
// operator is free to choose and solves for the rest. The arithmetic never
// touches the console: callers inject the provider (see package prompt for a
// terminal-backed one, or ScriptedSeeds/NamedSeeds for tests and batch runs).
//
// Computed values are not sanity checked unless WithStrict is set, so
// negative or non-finite resistances from degenerate seeds reach the result
// as-is.
package amplifier
