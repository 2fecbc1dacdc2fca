// Package cli wires the opamp-designer command: flags and positional voltages,
// the optional design file, console prompts and the report renderer.
package cli
