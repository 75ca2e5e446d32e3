// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the jstr library. The
//              facade has exactly two failure conditions (invalid pattern
//              usage and invalid numeric arguments); everything else is
//              clamped or defaulted rather than rejected.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with library error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the jstr library
const (
	// CodeUnknown is the fallback code for wrapped foreign errors
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidPattern covers pattern compilation failures and
	// operations that require a pattern's global flag when it is absent
	// (MatchAll, ReplaceAll with a regex pattern)
	CodeInvalidPattern Code = "INVALID_PATTERN"

	// CodeInvalidArgument covers numeric arguments that cannot be
	// clamped into validity, such as a negative repeat count
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInvalidPattern, CodeInvalidArgument:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidPattern:
		return "pattern"
	case CodeInvalidArgument:
		return "argument"
	default:
		return "generic"
	}
}
