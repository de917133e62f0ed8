// Package errors provides structured error types for the padring application.
//
// Every failure surfaced to a user carries a machine-readable Code next to
// its human-readable message, so the CLI can color and explain errors and
// the API can map them to HTTP statuses without string matching.
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_*: Lookup failures against known vocabularies
//   - Structural codes (CORNER_COUNT, SIDE_COUNT_MISMATCH, ...): ring
//     integrity violations detected before or after placement
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPosition, "cannot parse position: %s", pos)
//	if errors.Is(err, errors.ErrCodeInvalidPosition) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidSpec, origErr, "failed to decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidSpec     Code = "INVALID_SPEC"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPosition Code = "INVALID_POSITION"
	ErrCodeInvalidName     Code = "INVALID_NAME"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Lookup errors
	ErrCodeUnknownSide    Code = "UNKNOWN_SIDE"
	ErrCodeUnknownProcess Code = "UNKNOWN_PROCESS"
	ErrCodeUnknownDevice  Code = "UNKNOWN_DEVICE"
	ErrCodeNotFound       Code = "NOT_FOUND"

	// Ring structure errors
	ErrCodePositionConflict   Code = "POSITION_CONFLICT"
	ErrCodeCornerCount        Code = "CORNER_COUNT"
	ErrCodeSideCountMismatch  Code = "SIDE_COUNT_MISMATCH"
	ErrCodeSideOverflow       Code = "SIDE_OVERFLOW"
	ErrCodeInvalidReference   Code = "INVALID_REFERENCE"
	ErrCodeMissingOrientation Code = "MISSING_ORIENTATION"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a code with a message and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error renders "CODE: message" with the cause appended when present.
func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error that records cause as the underlying error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether some error in err's chain is an *Error carrying code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the code from err's chain, or "" for plain errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error
// values, and the plain error string for everything else.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
