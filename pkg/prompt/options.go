package prompt

import "io"

// Option configures a Provider.
type Option func(*Provider)

// WithDriver overrides the prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(p *Provider) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithStdio replaces the streams the default driver is built on.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(p *Provider) {
		if in != nil {
			p.in = in
		}
		if out != nil {
			p.out = out
		}
	}
}

// WithPlain forces the line driver even on a terminal.
func WithPlain(plain bool) Option {
	return func(p *Provider) {
		p.plain = plain
	}
}
