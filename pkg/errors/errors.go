// Package errors provides structured error types for the kitplan application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP surfaces
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes fall into four families, matching the places a kit run can fail:
//   - PARSE_*: malformed measurement or scale specs
//   - TYPE_*: reference-frame or operand-kind violations in arithmetic
//   - SHAPE_*: malformed transform matrices
//   - LAYOUT_*: pieces that cannot be placed on any page
//
// # Usage
//
//	err := errors.New(errors.ErrCodeParse, "unrecognized unit %q", unit)
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // Handle parse error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeLayout, origErr, "packing page %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Measurement and scale parsing errors
	ErrCodeParse        Code = "PARSE_ERROR"
	ErrCodeUnknownUnit  Code = "PARSE_UNKNOWN_UNIT"
	ErrCodeInvalidScale Code = "PARSE_INVALID_SCALE"

	// Dimensional type errors
	ErrCodeFrameMismatch  Code = "TYPE_FRAME_MISMATCH"
	ErrCodeKindMismatch   Code = "TYPE_KIND_MISMATCH"
	ErrCodeInvalidOperand Code = "TYPE_INVALID_OPERAND"

	// Transform matrix errors
	ErrCodeInvalidMatrix Code = "SHAPE_INVALID_MATRIX"
	ErrCodeInvalidAngle  Code = "SHAPE_INVALID_ANGLE"

	// Page layout errors
	ErrCodePieceTooLarge Code = "LAYOUT_PIECE_TOO_LARGE"
	ErrCodeNotBuilt      Code = "LAYOUT_NOT_BUILT"

	// Everything else
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
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

// IsParse reports whether err belongs to the parse-error family.
func IsParse(err error) bool {
	switch GetCode(err) {
	case ErrCodeParse, ErrCodeUnknownUnit, ErrCodeInvalidScale:
		return true
	}
	return false
}

// IsType reports whether err belongs to the dimensional-type-error family.
func IsType(err error) bool {
	switch GetCode(err) {
	case ErrCodeFrameMismatch, ErrCodeKindMismatch, ErrCodeInvalidOperand:
		return true
	}
	return false
}
