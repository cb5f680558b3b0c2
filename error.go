package parseopt

import (
	"errors"

	"github.com/parseopt/parseopt/internal/optstring"
	"github.com/parseopt/parseopt/internal/scan"
)

// ErrBadOptstring wraps every strict-mode grammar violation.
var ErrBadOptstring = errors.New("invalid optstring")

// ErrEmptyOptstring indicates a blank optstring. This is the one structural
// precondition of the matcher and is expected to be caught by the CLI
// wrapper before Parse is ever called.
var ErrEmptyOptstring = optstring.ErrEmpty

// ErrorKind classifies the recoverable matching failures recorded in the
// result's error-marker entries. None of them aborts a scan: callers detect
// failure by checking Result.Errs or looking for "-?" tokens in the line.
type ErrorKind = scan.ErrorKind

const (
	// IllegalOption: the token resolves to no table entry.
	IllegalOption = scan.ErrIllegalOption

	// AmbiguousAbbreviation: a long-option prefix matches more than one
	// declared long name, so no canonical name can be chosen.
	AmbiguousAbbreviation = scan.ErrAmbiguousAbbreviation

	// MissingRequiredValue: a required-value option has neither a
	// following value nor an inline one.
	MissingRequiredValue = scan.ErrMissingRequiredValue

	// InvalidBooleanLiteral: a boolean option's value is outside the
	// recognized truthy/falsy vocabulary.
	InvalidBooleanLiteral = scan.ErrInvalidBooleanLiteral
)
