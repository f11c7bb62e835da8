// Package errors provides structured error types for cupstack.
//
// Every tower operation reports failure through the tower's last-operation
// flag and, in parallel, returns one of these coded errors so callers can
// tell a duplicate cup from a full tower without parsing messages.
//
// # Error Codes
//
// Tower codes mirror the rule that was violated:
//   - DUPLICATE_ID: a cup with that number is already stacked
//   - CAPACITY_EXCEEDED: the mutation would push the tower above its max height
//   - NOT_FOUND: the referenced cup is not in the tower
//   - INVALID_REFERENCE: a swap operand does not name a cup
//   - ALREADY_COVERED / NO_LID: lid preconditions
//   - EMPTY_TOWER: popping from an empty tower
//   - DISPLAY_BOUND_EXCEEDED: the tower does not fit the display
//
// The remaining codes (INVALID_*, FILE_NOT_FOUND, INTERNAL_ERROR) belong to
// the command language, configuration and CLI layers.
//
// # Usage
//
//	err := t.PushCup(3)
//	if errors.Is(err, errors.ErrCodeCapacityExceeded) {
//	    // make room first
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Tower rule violations
	ErrCodeDuplicateID      Code = "DUPLICATE_ID"
	ErrCodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeInvalidReference Code = "INVALID_REFERENCE"
	ErrCodeAlreadyCovered   Code = "ALREADY_COVERED"
	ErrCodeNoLid            Code = "NO_LID"
	ErrCodeEmptyTower       Code = "EMPTY_TOWER"
	ErrCodeDisplayBound     Code = "DISPLAY_BOUND_EXCEEDED"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

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

// IsTowerRule reports whether err is one of the recoverable tower rule
// violations, as opposed to an input or infrastructure failure.
func IsTowerRule(err error) bool {
	switch GetCode(err) {
	case ErrCodeDuplicateID, ErrCodeCapacityExceeded, ErrCodeNotFound,
		ErrCodeInvalidReference, ErrCodeAlreadyCovered, ErrCodeNoLid,
		ErrCodeEmptyTower, ErrCodeDisplayBound:
		return true
	}
	return false
}
