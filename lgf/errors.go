// File: errors.go
// Role: LGF-specific error type (spec §7: "includes line number and
// offending fragment").
package lgf

import (
	"fmt"

	"github.com/nodeweave/nodeweave/nwerrors"
)

// ParseError carries the line number and offending text fragment for an
// LGF syntax violation. It wraps nwerrors.ErrParse so callers can still
// branch with errors.Is(err, nwerrors.ErrParse), and recover the detail via
// errors.As into a *lgf.ParseError variable (var pe *lgf.ParseError;
// errors.As(err, &pe)).
type ParseError struct {
	Line     int
	Fragment string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lgf: line %d: %s: %q", e.Line, e.Reason, e.Fragment)
}

func (e *ParseError) Unwrap() error { return nwerrors.ErrParse }

func newParseError(line int, fragment, reason string) error {
	return &ParseError{Line: line, Fragment: fragment, Reason: reason}
}
