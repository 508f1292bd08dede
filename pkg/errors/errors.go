// Package errors defines the coded errors returned by logogif.
//
// Every failure a user can fix carries a [Code] and a message meant for the
// terminal. Errors raised before rendering, such as a missing font file, may
// also carry a remediation hint that the CLI prints below the message.
//
// Codes by stage:
//   - INVALID_INPUT, INVALID_CONFIG, INVALID_COLOR, INVALID_PATH: option
//     and configuration validation
//   - MISSING_ASSET, INVALID_ASSET: font pre-flight and parsing
//   - DIMENSION_MISMATCH: a rendered frame disagrees with the layout; fatal
//   - INTERNAL_ERROR: encoder failures
//
// Example:
//
//	err := errors.Wrap(errors.ErrCodeMissingAsset, statErr, "font file not found: %s", path).
//		WithRemediation("download the font to %s", path)
//	if errors.Is(err, errors.ErrCodeMissingAsset) {
//		fmt.Println(errors.Remediation(err))
//	}
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Pre-flight errors
	ErrCodeMissingAsset Code = "MISSING_ASSET"
	ErrCodeInvalidAsset Code = "INVALID_ASSET"

	// Invariant violations
	ErrCodeDimensionMismatch Code = "DIMENSION_MISMATCH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code        Code
	Message     string // shown to the user
	Remediation string // optional hint, e.g. where to put a missing font
	Cause       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithRemediation attaches a remediation hint and returns e.
func (e *Error) WithRemediation(format string, args ...any) *Error {
	e.Remediation = fmt.Sprintf(format, args...)
	return e
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Remediation returns the remediation hint attached to err, if any.
func Remediation(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Remediation
	}
	return ""
}
