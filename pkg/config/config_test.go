package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-opamp/pkg/amplifier"
	"github.com/goliatone/go-opamp/pkg/config"
)

const designYAML = `
inputs:
  v_ref: 1
  vo_fs: 3
  vo_zs: 1
  vi_fs: 1
  vi_zs: 0
seeds:
  r_1: 1000
  r_f: 1000
format: yaml
strategy: enhanced
strict: true
`

func TestParseArgs(t *testing.T) {
	in, err := config.ParseArgs([]string{"2.5", "4.5", "-0.5", "0.2", "-0.1"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	want := amplifier.Inputs{VRef: 2.5, VoFS: 4.5, VoZS: -0.5, ViFS: 0.2, ViZS: -0.1}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	if _, err := config.ParseArgs([]string{"1", "2", "3"}); !errors.Is(err, config.ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	if _, err := config.ParseArgs([]string{"1", "2", "3", "4", "5", "6"}); !errors.Is(err, config.ErrUsage) {
		t.Fatalf("expected ErrUsage for extra value, got %v", err)
	}
	_, err := config.ParseArgs([]string{"1", "abc", "3", "4", "5"})
	if !errors.Is(err, config.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, `vo_fs="abc"`) || !strings.Contains(msg, "v_ref vo_fs vo_zs vi_fs vi_zs") {
		t.Fatalf("error should name the value and the expected order, got %q", msg)
	}
}

func TestParse_DesignFile(t *testing.T) {
	file, err := config.Parse([]byte(designYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	settings, err := config.Resolve(file, nil, config.Overrides{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := config.Settings{
		Inputs:   amplifier.Inputs{VRef: 1, VoFS: 3, VoZS: 1, ViFS: 1, ViZS: 0},
		Seeds:    map[string]float64{"r_1": 1000, "r_f": 1000},
		Format:   "yaml",
		Strategy: amplifier.StrategyEnhanced,
		Strict:   true,
	}
	if diff := cmp.Diff(want, settings); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ArgsAndFlagsOverrideFile(t *testing.T) {
	file, err := config.Parse([]byte(designYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	strict := false
	settings, err := config.Resolve(file, []string{"5", "1", "0", "1", "0"}, config.Overrides{
		Format:   "json",
		Strategy: "standard",
		Strict:   &strict,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if settings.Inputs.VRef != 5 || settings.Format != "json" || settings.Strategy != amplifier.StrategyStandard || settings.Strict {
		t.Fatalf("overrides not applied: %+v", settings)
	}
	if settings.Seeds["r_f"] != 1000 {
		t.Fatalf("seeds should still come from the file: %+v", settings.Seeds)
	}
}

func TestResolve_Defaults(t *testing.T) {
	settings, err := config.Resolve(nil, []string{"1", "2", "3", "4", "5"}, config.Overrides{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if settings.Format != config.DefaultFormat || settings.Strategy != amplifier.StrategyStandard || settings.Seeds != nil {
		t.Fatalf("unexpected defaults: %+v", settings)
	}
	if _, err := config.Resolve(nil, nil, config.Overrides{}); !errors.Is(err, config.ErrUsage) {
		t.Fatalf("expected ErrUsage without file or args, got %v", err)
	}
	if _, err := config.Resolve(nil, []string{"1", "2", "3", "4", "5"}, config.Overrides{Strategy: "odd"}); !errors.Is(err, amplifier.ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "inputs:\n  v_ref: 1\ncolour: red\n",
		"unknown seed": "seeds:\n  r_9: 10\n",
		"bad number":   "inputs:\n  v_ref: abc\n",
	}
	for name, doc := range cases {
		if _, err := config.Parse([]byte(doc)); !errors.Is(err, config.ErrInvalidFile) {
			t.Errorf("%s: expected ErrInvalidFile, got %v", name, err)
		}
	}

	file, err := config.Parse([]byte("inputs:\n  v_ref: 1\n  vo_fs: 2\n"))
	if err != nil {
		t.Fatalf("parse partial: %v", err)
	}
	if _, err := config.Resolve(file, nil, config.Overrides{}); !errors.Is(err, config.ErrInvalidFile) {
		t.Fatalf("expected ErrInvalidFile for missing inputs, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	if err := os.WriteFile(path, []byte(designYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	file, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if file.Format != "yaml" {
		t.Fatalf("format = %q", file.Format)
	}
	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
