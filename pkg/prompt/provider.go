package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-opamp/pkg/amplifier"
)

// Provider implements amplifier.SeedProvider by asking a PromptDriver.
type Provider struct {
	driver PromptDriver
	in     io.Reader
	out    io.Writer
	plain  bool
}

var _ amplifier.SeedProvider = (*Provider)(nil)

// New constructs a console provider reading stdin and writing stdout. The
// driver is chosen by NewDriver unless WithDriver is given.
func New(options ...Option) *Provider {
	p := &Provider{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.driver == nil {
		p.driver = NewDriver(p.in, p.out, p.plain)
	}
	return p
}

// Seed asks for one value and parses the trimmed reply as a float64.
func (p *Provider) Seed(ctx context.Context, prompt amplifier.Prompt) (float64, error) {
	if ctx == nil {
		return 0, errors.New("prompt: context is required")
	}
	raw, err := p.driver.Input(ctx, InputConfig{
		Message: prompt.Message,
		Help:    prompt.Hint,
	})
	if err != nil {
		return 0, err
	}
	return ParseNumber(raw)
}

// ParseNumber parses a reply after trimming surrounding whitespace.
func ParseNumber(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrNotANumber, trimmed)
	}
	return v, nil
}
