package parseopt

import (
	"io"

	"github.com/parseopt/parseopt/internal/dress"
	"github.com/parseopt/parseopt/internal/scan"
)

// Option configures a Parse/ParseArgs call.
type Option func(*config)

// config gathers the per-invocation settings. Each call starts from the
// defaults; there is no shared state between invocations.
type config struct {
	quiet    bool
	progname string
	stderr   io.Writer
	strict   bool
	rules    dress.Rules
}

func defaults() *config {
	return &config{
		progname: scan.DefaultProgname,
	}
}

func (c *config) apply(options ...Option) *config {
	for _, opt := range options {
		opt(c)
	}

	return c
}

// WithQuiet suppresses diagnostics, exactly as a leading ':' in the
// optstring does. The output line is unaffected.
func WithQuiet() Option { return func(c *config) { c.quiet = true } }

// WithProgname sets the name prefixing diagnostic lines.
func WithProgname(name string) Option { return func(c *config) { c.progname = name } }

// WithStderr directs diagnostics to the given writer. Without it,
// diagnostics are discarded.
func WithStderr(w io.Writer) Option { return func(c *config) { c.stderr = w } }

// WithStrict makes grammar problems fatal: optstring fragments that compile
// tolerantly by default are reported as errors instead.
func WithStrict() Option { return func(c *config) { c.strict = true } }

// WithGlobQuoting additionally quotes output tokens containing glob
// metacharacters, so the consuming shell does not expand them.
func WithGlobQuoting() Option { return func(c *config) { c.rules.Glob = true } }

// WithBraceQuoting additionally quotes output tokens containing brace
// characters.
func WithBraceQuoting() Option { return func(c *config) { c.rules.Brace = true } }
