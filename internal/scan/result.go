package scan

import (
	"strings"

	"github.com/parseopt/parseopt/internal/dress"
)

// ErrorSentinel is the display form of a resolved-option entry standing in
// for a malformed token.
const ErrorSentinel = "-?"

// ValueSentinel is the placeholder recorded when an optional or variadic
// option's value is omitted.
const ValueSentinel = "-"

// ErrorKind classifies the recoverable matching failures. Every kind is
// recovered inline: the scan records an error marker and keeps going.
type ErrorKind uint

const (
	// ErrNone marks an entry that resolved cleanly.
	ErrNone ErrorKind = iota

	// ErrIllegalOption marks a token that resolves to no table entry.
	ErrIllegalOption

	// ErrAmbiguousAbbreviation marks a long-option prefix shared by more
	// than one declared long name.
	ErrAmbiguousAbbreviation

	// ErrMissingRequiredValue marks a required-value option with no
	// following value and no inline value.
	ErrMissingRequiredValue

	// ErrInvalidBooleanLiteral marks a boolean option whose value is not
	// in the recognized truthy/falsy vocabulary.
	ErrInvalidBooleanLiteral
)

func (e ErrorKind) String() string {
	kinds := [...]string{
		"none",                    // ErrNone
		"illegal option",          // ErrIllegalOption
		"ambiguous abbreviation",  // ErrAmbiguousAbbreviation
		"missing required value",  // ErrMissingRequiredValue
		"invalid boolean literal", // ErrInvalidBooleanLiteral
	}
	if int(e) >= len(kinds) {
		return "unknown"
	}

	return kinds[e]
}

func (e ErrorKind) Error() string {
	return e.String()
}

// Resolved is one matched entry of the output stream: a canonical option
// display (or the error sentinel) and its optional value.
type Resolved struct {
	// Display is the canonical option form (-x or --name), or ErrorSentinel.
	Display string

	// Value is the recorded value; meaningful only when HasValue is set.
	Value string

	// HasValue tells whether the entry carries a value token.
	HasValue bool

	// Err is non-zero on error-marker entries.
	Err ErrorKind
}

// Result is the outcome of one scan: the resolved options in match order,
// then the positional arguments in their original order. It is built fresh
// per invocation and carries no state beyond its own accumulators.
type Result struct {
	// Options is the resolved-options sequence, error markers included.
	Options []Resolved

	// Positionals are the non-option arguments, never reordered.
	Positionals []string

	// Dress holds the quoting rules applied when assembling the line.
	Dress dress.Rules
}

// Errs returns the error kinds recorded during the scan, in match order.
func (r *Result) Errs() []ErrorKind {
	var errs []ErrorKind
	for _, opt := range r.Options {
		if opt.Err != ErrNone {
			errs = append(errs, opt.Err)
		}
	}

	return errs
}

// String assembles the single-line output stream: resolved options, the
// literal "--" separator, then the positional arguments, every value and
// positional dressed per the quoting rules.
func (r *Result) String() string {
	var sb strings.Builder

	for _, opt := range r.Options {
		sb.WriteString(opt.Display)
		sb.WriteString(" ")
		if opt.HasValue {
			sb.WriteString(r.Dress.Quote(opt.Value))
			sb.WriteString(" ")
		}
	}

	sb.WriteString("-- ")

	for i, pos := range r.Positionals {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(r.Dress.Quote(pos))
	}

	return sb.String()
}
