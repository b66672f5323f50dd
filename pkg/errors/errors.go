// Package errors provides structured error types for acficons.
//
// Every failure the resolver can report carries a machine-readable [Code] so
// that template collaborators can decide how to degrade (usually by rendering
// no icon) without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: malformed input (references, icon names, config)
//   - UNKNOWN_*: input that parses but is not in a lookup table
//   - *_NOT_FOUND: bundled assets that are missing
//   - CACHE_WRITE_FAILURE: the sprite cache could not be populated
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidReference, "expected 3 fields, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidReference) {
//	    // Handle malformed stored value
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCacheWrite, origErr, "write %s", path)
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
	ErrCodeInvalidReference Code = "INVALID_REFERENCE"
	ErrCodeInvalidIconName  Code = "INVALID_ICON_NAME"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidMetadata  Code = "INVALID_METADATA"

	// Lookup table misses
	ErrCodeUnknownLibrary Code = "UNKNOWN_LIBRARY"
	ErrCodeUnknownStyle   Code = "UNKNOWN_STYLE"

	// Bundled asset errors
	ErrCodeSpriteNotFound Code = "SPRITE_NOT_FOUND"
	ErrCodeSymbolNotFound Code = "SYMBOL_NOT_FOUND"

	// Cache errors
	ErrCodeCacheWrite Code = "CACHE_WRITE_FAILURE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsNotFound reports whether err means the requested icon does not exist in
// the bundled assets (missing sprite document or missing symbol).
func IsNotFound(err error) bool {
	return Is(err, ErrCodeSpriteNotFound) || Is(err, ErrCodeSymbolNotFound)
}
