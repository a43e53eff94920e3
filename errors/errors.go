// Package errors provides error handling for propdrift.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
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
//	return errors.WithHint(err, "check that the scan root exists")
//
//	// Check errors
//	if errors.Is(err, os.ErrNotExist) {
//	    // handle missing path
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
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap

	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Multi-error combination
var (
	CombineErrors = crdb.CombineErrors
	Join          = crdb.Join
)

// Common sentinel errors for use across propdrift.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrSourceParse indicates a source file could not be parsed into a tree.
	// Scans recover from this locally by skipping the file.
	ErrSourceParse = New("source parse failure")

	// ErrMissingInput indicates a required source root does not exist.
	// Fatal: processing does not start.
	ErrMissingInput = New("missing input location")
)

// IsSourceParseError checks if an error is or wraps ErrSourceParse
func IsSourceParseError(err error) bool {
	return err != nil && Is(err, ErrSourceParse)
}

// IsMissingInputError checks if an error is or wraps ErrMissingInput
func IsMissingInputError(err error) bool {
	return err != nil && Is(err, ErrMissingInput)
}

// WrapSourceParse wraps an error as a parse failure with context
func WrapSourceParse(err error, context string) error {
	return Wrap(Wrap(ErrSourceParse, err.Error()), context)
}

// NewMissingInputError creates a missing-input error with a formatted message
func NewMissingInputError(format string, args ...interface{}) error {
	return Wrap(ErrMissingInput, Newf(format, args...).Error())
}
