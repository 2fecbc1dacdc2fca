// Package config resolves a run's inputs from positional arguments, an
// optional YAML design file and flag overrides.
package config
