// Package validation implements the optional strict check of a compiled
// option table. The default compile is tolerant and skips malformed
// optstring fragments; strict mode turns those skips, and any spec that
// escapes the compiler's own invariants, into errors.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/parseopt/parseopt/internal/optstring"
)

var (
	// ErrNoOptions indicates that the optstring declared no valid option.
	ErrNoOptions = errors.New("optstring declares no options")

	// ErrBadFragment indicates an optstring fragment that matches no
	// grammar production.
	ErrBadFragment = errors.New("unrecognized optstring fragment")

	// ErrBadSpec indicates a compiled spec violating the table invariants.
	ErrBadSpec = errors.New("invalid option specification")
)

var validate = validator.New()

// Check verifies a compiled table under strict rules: every fragment of the
// source optstring must have compiled, and every spec must satisfy the
// declared field constraints. All violations are reported, joined.
func Check(table *optstring.Table) error {
	var errs []error

	if len(table.Specs) == 0 {
		errs = append(errs, ErrNoOptions)
	}

	for _, fragment := range table.Rejected {
		errs = append(errs, fmt.Errorf("%w: %q", ErrBadFragment, fragment))
	}

	for _, spec := range table.Specs {
		if err := validate.Struct(spec); err != nil {
			errs = append(errs, fmt.Errorf("%w %s: %w", ErrBadSpec, spec.Display(), err))
		}
	}

	return errors.Join(errs...)
}
