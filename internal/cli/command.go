package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-opamp/pkg/amplifier"
	"github.com/goliatone/go-opamp/pkg/config"
	"github.com/goliatone/go-opamp/pkg/prompt"
	"github.com/goliatone/go-opamp/pkg/report"
)

// Streams are the console handles the command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process stdio.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

type options struct {
	configPath string
	format     string
	strategy   string
	strict     bool
	plain      bool
	verbose    bool
	output     string
}

// NewCommand builds the root command. Streams replace stdio so tests can
// script the prompts.
func NewCommand(streams Streams) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "opamp-designer [flags] v_ref vo_fs vo_zs vi_fs vi_zs",
		Short: "Compute resistor values for an op-amp gain and offset stage",
		Long: "opamp-designer derives gain and offset from five calibration voltages,\n" +
			"selects a circuit topology from their signs, asks for the freely chosen\n" +
			"resistors and prints the remaining component values.\n\n" +
			config.Usage,
		Example: "  opamp-designer 2.5 4.5 0.5 0.2 -0.1\n" +
			"  opamp-designer --format yaml 2.5 -0.5 4.5 0.2 -0.1\n" +
			"  opamp-designer --config design.yaml",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides config.Overrides
			overrides.Format = opts.format
			overrides.Strategy = opts.strategy
			if cmd.Flags().Changed("strict") {
				overrides.Strict = &opts.strict
			}
			return run(cmd.Context(), streams, opts, args, overrides)
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML design file with inputs, seeds and output settings")
	flags.StringVarP(&opts.format, "format", "f", "", "Report format: debug, json, yaml or text (default debug)")
	flags.StringVar(&opts.strategy, "strategy", "", "Derivation for positive gain with negative offset: standard or enhanced")
	flags.BoolVar(&opts.strict, "strict", false, "Fail instead of reporting NaN or infinite component values")
	flags.BoolVar(&opts.plain, "plain", false, "Use plain line prompts even on a terminal")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log gain, offset and topology selection to stderr")
	flags.StringVarP(&opts.output, "output", "o", "", "Write the report to a file instead of stdout")
	return cmd
}

// Execute runs the command against args (without the program name).
func Execute(ctx context.Context, streams Streams, args []string) error {
	cmd := NewCommand(streams)
	cmd.SetArgs(normalizeArgs(cmd.Flags(), args))
	return cmd.ExecuteContext(ctx)
}

func run(ctx context.Context, streams Streams, opts *options, args []string, overrides config.Overrides) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var file *config.File
	if opts.configPath != "" {
		var err error
		file, err = config.LoadFile(opts.configPath)
		if err != nil {
			return err
		}
	}

	settings, err := config.Resolve(file, args, overrides)
	if err != nil {
		return err
	}

	registry, err := report.DefaultRegistry()
	if err != nil {
		return err
	}
	renderer, err := registry.Get(settings.Format)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(streams.Err, "opamp: ", 0)
	}

	designer := amplifier.New(
		amplifier.WithStrategy(settings.Strategy),
		amplifier.WithStrict(settings.Strict),
		amplifier.WithLogger(logger),
	)

	var seeds amplifier.SeedProvider = prompt.New(
		prompt.WithStdio(streams.In, streams.Out),
		prompt.WithPlain(opts.plain),
	)
	var named *amplifier.NamedSeeds
	if len(settings.Seeds) > 0 {
		named = &amplifier.NamedSeeds{Values: settings.Seeds, Fallback: seeds}
		seeds = named
	}

	circuit, err := designer.Design(ctx, settings.Inputs, seeds)
	if err != nil {
		return err
	}
	if named != nil {
		for _, name := range named.Unused() {
			logger.Printf("seed %s unused by %s", name, circuit.Topology())
		}
	}

	out, err := renderer.Render(ctx, report.NewSummary(settings.Inputs, settings.Strategy, circuit))
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := streams.Out.Write(out)
		return err
	}
	if err := writeFile(opts.output, out); err != nil {
		return err
	}
	logger.Printf("wrote %d bytes to %s", len(out), opts.output)
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
