// Package error provides structured error handling for the jstr library.
//
// Package: error
// Title: jstr Error Handling
// Description: This package implements the coded error type shared by all
//
//	jstr packages. The library has an intentionally small
//	failure surface: pattern misuse and unclampable numeric
//	arguments. Every other input is coerced, clamped, or
//	defaulted rather than rejected.
//
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with coded errors
//
// Features:
// - Contextual error wrapping with operation and detail metadata
// - Structured error codes for consistent handling by callers
// - Compatibility with the standard error interface and Unwrap
//
// Usage:
//
//	import jstrerror "github.com/jstr-go/jstr/core/error"
//
//	// Create a coded error
//	err := jstrerror.InvalidPattern("match_all", "pattern must carry the global flag")
//
//	// Check the code, unwrapping as needed
//	if jstrerror.HasCode(err, jstrerror.CodeInvalidPattern) {
//	  // Handle pattern misuse specifically
//	}
package error
