// Package errors provides structured error types for plotsvg.
//
// Every failure surfaced by the renderer or its transports carries a
// machine-readable [Code], so the CLI, the HTTP server and the stdio
// transport can report the same error kind for the same bad input.
//
// # Error Codes
//
// Chart codes describe why a render request was rejected:
//   - INVALID_CONFIG: bad dimensions, margins or option values
//   - INVALID_SCALE: a scale that cannot be built for its domain
//   - EMPTY_DATASET: no data where at least one point is required
//   - MISMATCHED_LENGTHS: paired sequences of different length
//   - INVALID_DATA: NaN/Inf values, jagged grids, negative pie slices
//
// Boundary codes (INVALID_INPUT, UNKNOWN_TOOL, INVALID_PATH, ...) come from
// the tool dispatch and output layers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidScale, "log scale domain must be positive, got min %g", lo)
//	if errors.Is(err, errors.ErrCodeInvalidScale) {
//	    // Handle scale error
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Render request errors
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidScale      Code = "INVALID_SCALE"
	ErrCodeEmptyDataset      Code = "EMPTY_DATASET"
	ErrCodeMismatchedLengths Code = "MISMATCHED_LENGTHS"
	ErrCodeInvalidData       Code = "INVALID_DATA"

	// Boundary input errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"
	ErrCodeUnknownTool  Code = "UNKNOWN_TOOL"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
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

// HTTPStatus maps an error code to the HTTP status used by the server.
// Request errors are client errors; everything else is a server error.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidConfig, ErrCodeInvalidScale, ErrCodeEmptyDataset,
		ErrCodeMismatchedLengths, ErrCodeInvalidData, ErrCodeInvalidInput,
		ErrCodeInvalidPath:
		return http.StatusBadRequest
	case ErrCodeUnknownTool, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
