package pft

import (
	"errors"
	"fmt"
)

// ErrNoTransactions is returned when reading a ledger file that does not exist yet.
// It is a normal empty state, not a failure.
var ErrNoTransactions = errors.New("no transactions found")

// ErrMalformedRow is returned, wrapped in a *RowError, when a ledger row cannot be decoded.
var ErrMalformedRow = errors.New("malformed row")

// ValidationError reports a rejected user input. Nothing has been written
// to the ledger when it is returned.
type ValidationError struct {
	Field  string // "type", "amount" or "date"
	Value  string // the raw input
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// RowError locates a decoding failure in the ledger file.
type RowError struct {
	Line int // 1-based line in the ledger file
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%v at line %d: %v", ErrMalformedRow, e.Line, e.Err)
}

// Unwrap makes both ErrMalformedRow and the underlying cause visible to errors.Is and errors.As.
func (e *RowError) Unwrap() []error { return []error{ErrMalformedRow, e.Err} }
