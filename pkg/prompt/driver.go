package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// InputConfig configures a single text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// Label joins message and help the way the line driver prints them.
func (c InputConfig) Label() string {
	if c.Help == "" {
		return c.Message
	}
	return c.Message + "\n" + c.Help
}

// PromptDriver abstracts the console so the provider can be tested without a
// real terminal and callers can swap implementations.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

// NewDriver returns a survey driver when in and out are both terminals and
// plain is false, and a line driver over in/out otherwise.
func NewDriver(in io.Reader, out io.Writer, plain bool) PromptDriver {
	if !plain && isTerminal(in) && isTerminal(out) {
		return &surveyDriver{in: in.(terminal.FileReader), out: out.(terminal.FileWriter)}
	}
	return NewLineDriver(in, out)
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type surveyDriver struct {
	in  terminal.FileReader
	out terminal.FileWriter
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(surveyInput(cfg), &out, survey.WithStdio(d.in, d.out, os.Stderr)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// surveyInput shows the hint inline; survey's "?" help toggle stays unused.
func surveyInput(cfg InputConfig) *survey.Input {
	message := cfg.Message
	if cfg.Help != "" {
		message += " " + cfg.Help
	}
	return &survey.Input{Message: message, Default: cfg.Default}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// LineDriver prints the label on its own line and reads one line back.
type LineDriver struct {
	reader *bufio.Reader
	out    io.Writer
	// pending holds a read abandoned by a cancelled Input; the next call
	// picks its line up instead of starting a second reader.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLineDriver wraps in and out. Nil streams default to stdin/stdout.
func NewLineDriver(in io.Reader, out io.Writer) *LineDriver {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &LineDriver{reader: bufio.NewReader(in), out: out}
}

// Input blocks until a full line (or a final unterminated line) is read or
// ctx is done, in which case ctx.Err() is returned.
func (d *LineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintln(d.out, cfg.Label()); err != nil {
		return "", err
	}
	if d.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := d.reader.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		d.pending = ch
	}

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-d.pending:
		d.pending = nil
	}

	line, err := res.line, res.err
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("prompt: read line: %w", err)
	}
	return strings.TrimSpace(line), nil
}
