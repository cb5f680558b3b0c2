// Package scan matches an argument vector against a compiled option table.
//
// Matching is one left-to-right pass with a single token of lookahead for
// value consumption, and a pending-token queue used to re-inject the
// remainder of bundled short-flag clusters. Every malformed situation is
// recovered inline as an error-marker entry; the scan never aborts.
package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/parseopt/parseopt/internal/dress"
	"github.com/parseopt/parseopt/internal/optstring"
)

// Diagnostic wordings, stable because callers pattern-match stderr.
const (
	msgIllegal      = "illegal option"
	msgNeedsParam   = "option requires a parameter"
	msgNeedsBoolean = "option requires a boolean parameter"
)

// DefaultProgname prefixes diagnostics when the caller does not set one.
const DefaultProgname = "parseopt"

// Options configures one scan. The zero value matches with diagnostics
// disabled.
type Options struct {
	// Quiet suppresses diagnostics, like a leading ':' in the optstring.
	Quiet bool

	// Progname prefixes every diagnostic line.
	Progname string

	// Stderr receives diagnostics; nil disables them entirely.
	Stderr io.Writer

	// Dress carries the quoting rules applied to the output line.
	Dress dress.Rules
}

// scanner is the matcher context: scan position, pending synthetic tokens
// and accumulators, owned exclusively by one Match call.
type scanner struct {
	table    *optstring.Table
	args     []string
	pos      int
	pending  []string
	quiet    bool
	progname string
	stderr   io.Writer
	res      *Result
}

// Match scans args against the table and returns the resolved options and
// positional arguments. It always terminates and never fails: malformed
// input surfaces as error-marker entries in the result.
func Match(table *optstring.Table, args []string, opts Options) *Result {
	s := &scanner{
		table:    table,
		args:     args,
		quiet:    opts.Quiet || table.SilentErrors,
		progname: opts.Progname,
		stderr:   opts.Stderr,
		res:      &Result{Dress: opts.Dress},
	}
	if s.progname == "" {
		s.progname = DefaultProgname
	}

	for {
		tok, ok := s.next()
		if !ok {
			break
		}

		switch {
		case tok == "--" || tok == "-":
			// Permanent termination: the token itself is discarded and
			// everything left is positional, options included.
			s.drainRest()

			return s.res
		case strings.HasPrefix(tok, "--"):
			s.long(tok[2:])
		case strings.HasPrefix(tok, "-"):
			s.short(tok)
		default:
			s.res.Positionals = append(s.res.Positionals, tok)
		}
	}

	return s.res
}

//
// Token stream ----------------------------------------------------------- //
//

// next pops the pending queue first, so re-injected cluster remainders are
// processed before the argument pointer advances.
func (s *scanner) next() (string, bool) {
	if n := len(s.pending); n > 0 {
		tok := s.pending[n-1]
		s.pending = s.pending[:n-1]

		return tok, true
	}

	if s.pos < len(s.args) {
		tok := s.args[s.pos]
		s.pos++

		return tok, true
	}

	return "", false
}

func (s *scanner) peek() (string, bool) {
	if n := len(s.pending); n > 0 {
		return s.pending[n-1], true
	}
	if s.pos < len(s.args) {
		return s.args[s.pos], true
	}

	return "", false
}

func (s *scanner) drainRest() {
	s.res.Positionals = append(s.res.Positionals, s.args[s.pos:]...)
	s.pos = len(s.args)
	s.pending = nil
}

// isOptionLike reports whether a lookahead token must not be consumed as a
// value. Anything dash-prefixed qualifies, the lone "-" included.
func isOptionLike(tok string) bool {
	return strings.HasPrefix(tok, "-")
}

//
// Long options ----------------------------------------------------------- //
//

func (s *scanner) long(rest string) {
	name, inline, hasInline := strings.Cut(rest, "=")

	negated := false
	spec, status := s.table.Lookup(name)

	// Negation slots between exact and prefix resolution, and only applies
	// to a bare token: an explicit =value keeps the name as typed.
	if status != optstring.MatchExact && !hasInline {
		if nspec, ok := s.negation(name); ok {
			spec, status, negated = nspec, optstring.MatchExact, true
		}
	}

	if status == optstring.MatchNone || status == optstring.MatchAmbiguous {
		kind := ErrIllegalOption
		if status == optstring.MatchAmbiguous {
			kind = ErrAmbiguousAbbreviation
		}
		s.record(Resolved{Display: ErrorSentinel, Value: "--" + name, HasValue: true, Err: kind})
		s.diag(msgIllegal, name)

		return
	}

	switch spec.Kind {
	case optstring.KindFlag:
		// A flag takes no value; a stray inline one is dropped.
		s.record(Resolved{Display: spec.Display()})
	case optstring.KindBoolean:
		literal := "true"
		switch {
		case negated:
			literal = "false"
		case hasInline:
			literal = inline
		}
		s.boolean(spec, literal, name, false)
	case optstring.KindValued:
		s.valued(spec, inline, hasInline, name)
	}
}

// negation resolves --no-<name> and --no<name> forms against boolean
// options, abbreviations included.
func (s *scanner) negation(name string) (*optstring.Spec, bool) {
	for _, prefix := range []string{"no-", "no"} {
		bare := strings.TrimPrefix(name, prefix)
		if bare == name || bare == "" {
			continue
		}

		spec, status := s.table.Lookup(bare)
		if spec != nil && spec.Kind == optstring.KindBoolean &&
			(status == optstring.MatchExact || status == optstring.MatchPrefix) {
			return spec, true
		}
	}

	return nil, false
}

//
// Short options ---------------------------------------------------------- //
//

func (s *scanner) short(tok string) {
	runes := []rune(tok[1:])
	char := string(runes[0])
	remainder := string(runes[1:])

	spec, ok := s.table.Short(char)
	if !ok {
		// The whole cluster is dropped along with the unknown character.
		s.record(Resolved{Display: ErrorSentinel, Value: "-" + char, HasValue: true, Err: ErrIllegalOption})
		s.diag(msgIllegal, char)

		return
	}

	switch spec.Kind {
	case optstring.KindFlag:
		s.record(Resolved{Display: spec.Display()})
		if remainder != "" {
			// Bundled flags: re-inject the rest of the cluster as a
			// synthetic token and keep scanning without advancing.
			s.pending = append(s.pending, "-"+remainder)
		}
	case optstring.KindBoolean:
		literal := "true"
		if remainder != "" {
			literal = strings.TrimPrefix(remainder, "=")
		}
		s.boolean(spec, literal, char, true)
	case optstring.KindValued:
		if remainder == "" {
			s.valued(spec, "", false, char)

			return
		}

		inline := strings.TrimPrefix(remainder, "=")
		if inline == "" {
			s.record(Resolved{Display: spec.Display(), Value: ValueSentinel, HasValue: true})

			return
		}
		s.valued(spec, inline, true, char)
	}
}

//
// Kind dispatch ---------------------------------------------------------- //
//

func (s *scanner) boolean(spec *optstring.Spec, literal, token string, shorthand bool) {
	norm, ok := parseBool(literal, shorthand)
	if !ok {
		s.record(Resolved{Display: ErrorSentinel, Value: spec.Display(), HasValue: true, Err: ErrInvalidBooleanLiteral})
		s.diag(msgNeedsBoolean, token)

		return
	}

	s.record(Resolved{Display: spec.Display(), Value: norm, HasValue: true})
}

// valued consumes the option's value tokens: the inline value when present,
// otherwise one token of lookahead, then for the variadic quantifiers every
// following non-option token, space-joined into a single value.
func (s *scanner) valued(spec *optstring.Spec, inline string, hasInline bool, token string) {
	var vals []string

	if hasInline {
		vals = append(vals, inline)
	} else if tok, ok := s.peek(); ok && !isOptionLike(tok) {
		s.next()
		vals = append(vals, tok)
	}

	if spec.Quantifier == optstring.ZeroOrMore || spec.Quantifier == optstring.OneOrMore {
		for {
			tok, ok := s.peek()
			if !ok || isOptionLike(tok) {
				break
			}
			s.next()
			vals = append(vals, tok)
		}
	}

	if len(vals) == 0 {
		if spec.Quantifier == optstring.RequiredSingle || spec.Quantifier == optstring.OneOrMore {
			s.record(Resolved{Display: ErrorSentinel, Value: spec.Display(), HasValue: true, Err: ErrMissingRequiredValue})
			s.diag(msgNeedsParam, token)
		}
		// Recorded with the sentinel value either way, so the scan and the
		// output stream stay well-formed.
		s.record(Resolved{Display: spec.Display(), Value: ValueSentinel, HasValue: true})

		return
	}

	s.record(Resolved{Display: spec.Display(), Value: strings.Join(vals, " "), HasValue: true})
}

//
// Bookkeeping ------------------------------------------------------------ //
//

func (s *scanner) record(opt Resolved) {
	s.res.Options = append(s.res.Options, opt)
}

func (s *scanner) diag(msg, token string) {
	if s.quiet || s.stderr == nil {
		return
	}

	fmt.Fprintf(s.stderr, "%s: %s -- %s\n", s.progname, msg, token)
}
