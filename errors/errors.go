// Package errors provides error handling for tension.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "use a sample count of at least 1")
//
//	// Check errors
//	if errors.Is(err, errors.ErrDegenerateInput) {
//	    // handle bad sample count
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors. Use with errors.Is(); wrap with errors.Wrap() to add
// context while preserving the type.
var (
	// ErrInvalidRequest indicates malformed input: a bad catalog, an
	// unparsable tension, an unknown output format or an invalid config.
	ErrInvalidRequest = New("invalid request")

	// ErrDegenerateInput indicates a sweep was asked for zero or fewer samples.
	ErrDegenerateInput = New("degenerate input")

	// ErrInvariantViolation indicates the band table failed to match a tension.
	// This is a programming error and is never recoverable.
	ErrInvariantViolation = New("invariant violation")
)

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsDegenerateInput checks if an error is or wraps ErrDegenerateInput
func IsDegenerateInput(err error) bool {
	return err != nil && Is(err, ErrDegenerateInput)
}

// IsInvariantViolation checks if an error is or wraps ErrInvariantViolation
func IsInvariantViolation(err error) bool {
	return err != nil && Is(err, ErrInvariantViolation)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}

// NewDegenerateInputError creates a degenerate-input error with a formatted message
func NewDegenerateInputError(format string, args ...interface{}) error {
	return Wrap(ErrDegenerateInput, Newf(format, args...).Error())
}

// NewInvariantViolation reports a broken internal invariant. The result is an
// assertion failure that also matches ErrInvariantViolation.
func NewInvariantViolation(format string, args ...interface{}) error {
	return Mark(AssertionFailedf(format, args...), ErrInvariantViolation)
}
