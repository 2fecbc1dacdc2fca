package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-opamp/pkg/amplifier"
)

// File is the YAML design file. Every section is optional; positional
// arguments and flags override what it sets.
//
//	inputs:
//	  v_ref: 2.5
//	  vo_fs: 4.5
//	  vo_zs: 0.5
//	  vi_fs: 0.2
//	  vi_zs: -0.1
//	seeds:
//	  r_1: 10000
//	  r_f: 100000
//	format: yaml
//	strategy: standard
//	strict: false
type File struct {
	Inputs   *InputsSection     `yaml:"inputs"`
	Seeds    map[string]float64 `yaml:"seeds"`
	Format   string             `yaml:"format"`
	Strategy string             `yaml:"strategy"`
	Strict   *bool              `yaml:"strict"`
}

// InputsSection mirrors amplifier.Inputs with presence tracking.
type InputsSection struct {
	VRef *float64 `yaml:"v_ref"`
	VoFS *float64 `yaml:"vo_fs"`
	VoZS *float64 `yaml:"vo_zs"`
	ViFS *float64 `yaml:"vi_fs"`
	ViZS *float64 `yaml:"vi_zs"`
}

// SeedNames lists the component names a design file may pre-seed.
var SeedNames = []string{"r_1", "r_2", "r_f"}

// LoadFile reads and parses a design file from disk.
func LoadFile(path string) (*File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("config: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return file, nil
}

// Parse decodes a design file, rejecting unknown keys and seed names.
func Parse(data []byte) (*File, error) {
	file := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	for name := range file.Seeds {
		if !isSeedName(name) {
			return nil, fmt.Errorf("%w: unknown seed %q (expected one of %s)", ErrInvalidFile, name, strings.Join(SeedNames, ", "))
		}
	}
	return file, nil
}

// inputs returns the voltages, failing if any is missing.
func (f *File) inputs() (amplifier.Inputs, error) {
	if f == nil || f.Inputs == nil {
		return amplifier.Inputs{}, fmt.Errorf("%w: no inputs section", ErrInvalidFile)
	}
	s := f.Inputs
	values := []*float64{s.VRef, s.VoFS, s.VoZS, s.ViFS, s.ViZS}
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			return amplifier.Inputs{}, fmt.Errorf("%w: inputs.%s is missing", ErrInvalidFile, amplifier.InputNames[i])
		}
		out[i] = *v
	}
	return amplifier.InputsFromSlice(out)
}

func isSeedName(name string) bool {
	for _, n := range SeedNames {
		if n == name {
			return true
		}
	}
	return false
}
