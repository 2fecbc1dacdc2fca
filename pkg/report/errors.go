package report

import "errors"

// ErrNoCircuit is returned when a Summary carries no circuit.
var ErrNoCircuit = errors.New("report: summary has no circuit")
