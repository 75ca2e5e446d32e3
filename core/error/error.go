// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used by the jstr
//              library. Errors carry a code, the operation that raised
//              them, and optional key-value details, while remaining
//              compatible with Go's standard error interface and the
//              errors.Is/errors.As unwrapping conventions.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with coded errors

package error

import (
	"fmt"
	"strings"
)

// Error represents a structured error with a code, operation, and details
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve the code of an already-structured error
	if jErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     jErr,
			code:      jErr.code,
			operation: jErr.operation,
			details:   make(map[string]interface{}),
		}
		for k, v := range jErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// InvalidPattern creates an INVALID_PATTERN error for the given operation
func InvalidPattern(operation, message string) *Error {
	return &Error{
		message:   message,
		code:      CodeInvalidPattern,
		operation: operation,
		details:   make(map[string]interface{}),
	}
}

// InvalidArgument creates an INVALID_ARGUMENT error for the given operation
func InvalidArgument(operation string, value interface{}) *Error {
	return &Error{
		message:   fmt.Sprintf("invalid argument: %v", value),
		code:      CodeInvalidArgument,
		operation: operation,
		details:   map[string]interface{}{"value": value},
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithOperation sets the operation that raised the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Operation returns the operation that raised the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// HasCode checks if an error carries a specific code, unwrapping as needed
func HasCode(err error, code Code) bool {
	for err != nil {
		if jErr, ok := err.(*Error); ok {
			if jErr.code == code {
				return true
			}
			err = jErr.cause
			continue
		}
		return false
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if the
// error is not a structured jstr error
func GetCode(err error) Code {
	if jErr, ok := err.(*Error); ok {
		return jErr.code
	}
	return CodeUnknown
}
