// Package parseopt resolves a flat argument vector against a declarative
// option grammar, emulating and extending POSIX getopt / GNU getopt_long
// semantics as a reusable library.
//
// The grammar string ("optstring") declares every recognized option and its
// value arity; see the internal/optstring package documentation for the
// exact EBNF. Matching resolves short options, long options, unambiguous
// abbreviations, negated booleans, bundled short flags, inline =value
// syntax and variadic value quantifiers, recovering from malformed input
// with in-band error markers instead of aborting.
//
// The primary entry point is Parse, which returns the reparsable one-line
// token stream the parseopt binary prints on stdout. Go callers wanting the
// structured form use ParseArgs.
package parseopt

import (
	"fmt"

	"github.com/parseopt/parseopt/internal/optstring"
	"github.com/parseopt/parseopt/internal/scan"
	"github.com/parseopt/parseopt/internal/validation"
)

// Parse compiles the optstring, matches args against it and returns the
// normalized output line: resolved options first, then the literal "--"
// separator, then the positional arguments, whitespace-holding values
// quoted. Matching failures never surface as errors; they are embedded in
// the line as "-?" markers. The returned error is reserved for structural
// problems: a blank optstring, or strict-mode grammar violations.
func Parse(optstr string, args []string, options ...Option) (string, error) {
	res, err := ParseArgs(optstr, args, options...)
	if err != nil {
		return "", err
	}

	return res.String(), nil
}

// ParseArgs is Parse returning the structured result instead of the
// assembled line.
func ParseArgs(optstr string, args []string, options ...Option) (*Result, error) {
	conf := defaults().apply(options...)

	table, err := optstring.Compile(optstr)
	if err != nil {
		return nil, err
	}

	if conf.strict {
		if err := validation.Check(table); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadOptstring, err)
		}
	}

	res := scan.Match(table, args, scan.Options{
		Quiet:    conf.quiet,
		Progname: conf.progname,
		Stderr:   conf.stderr,
		Dress:    conf.rules,
	})

	return res, nil
}

// Result is the structured outcome of one match: the resolved options in
// match order, then the positionals in their original order.
type Result = scan.Result

// Resolved is one entry of the resolved-options sequence.
type Resolved = scan.Resolved
