// Package errors provides structured error types for stringart.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Option and configuration validation failures
//   - *_INPUT, DOMAIN_*, POSITION_*: Puzzle input that the engine cannot use
//   - INTERNAL_*: Unexpected internal errors
//
// None of these errors is retryable: every computation in stringart is a
// pure function of its input.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDomainTooSmall, "endpoint %d exceeds domain %d", p, d)
//	if errors.Is(err, errors.ErrCodeDomainTooSmall) {
//	    // Handle an undersized domain
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedInput, origErr, "position %d", i)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInsufficientInput  Code = "INSUFFICIENT_INPUT"
	ErrCodeMalformedInput     Code = "MALFORMED_INPUT"
	ErrCodeDomainTooSmall     Code = "DOMAIN_TOO_SMALL"
	ErrCodePositionOutOfRange Code = "POSITION_OUT_OF_RANGE"

	// Option and configuration errors
	ErrCodeInvalidModulus Code = "INVALID_MODULUS"
	ErrCodeInvalidOption  Code = "INVALID_OPTION"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"
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
