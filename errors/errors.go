// Package errors provides error handling for the realms engine.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
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
//	// Check errors against the package sentinels
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle missing region
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the engine. Use these with errors.Is() for
// type-safe checking; wrap them with errors.Wrap()/Wrapf() to add
// context while preserving the category.
var (
	// ErrNotFound indicates the referenced region id does not exist.
	// Mutations report it; queries return empty results instead.
	ErrNotFound = New("not found")

	// ErrInvalidTag indicates a tag failed syntactic or semantic validation.
	ErrInvalidTag = New("invalid tag")

	// ErrUnknownFormat indicates an import document carries an unrecognized
	// format tag. The import aborts with zero side effects.
	ErrUnknownFormat = New("unknown document format")

	// ErrBadRecord indicates a single region record inside an otherwise
	// valid document is malformed. Such records are skipped, never fatal.
	ErrBadRecord = New("bad region record")
)

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsValidation checks if an error is or wraps ErrInvalidTag.
func IsValidation(err error) bool {
	return err != nil && Is(err, ErrInvalidTag)
}

// IsUnknownFormat checks if an error is or wraps ErrUnknownFormat.
func IsUnknownFormat(err error) bool {
	return err != nil && Is(err, ErrUnknownFormat)
}

// IsBadRecord checks if an error is or wraps ErrBadRecord.
func IsBadRecord(err error) bool {
	return err != nil && Is(err, ErrBadRecord)
}

// NewNotFoundError creates a not-found error with a formatted message.
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewBadRecordError creates a bad-record error with a formatted message.
func NewBadRecordError(format string, args ...interface{}) error {
	return Wrap(ErrBadRecord, Newf(format, args...).Error())
}
