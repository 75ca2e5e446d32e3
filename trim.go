// File: trim.go
// Title: Trimming Operations
// Description: Implements whitespace trimming from both ends, the start,
//              and the end, using the runtime's Unicode whitespace
//              definition.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of trim operations

package jstr

import (
	"strings"
	"unicode"

	"github.com/jstr-go/jstr/coerce"
)

// Trim returns the coerced value with leading and trailing whitespace
// removed.
func Trim(v interface{}) string {
	return strings.TrimSpace(coerce.String(v))
}

// TrimStart returns the coerced value with leading whitespace removed.
func TrimStart(v interface{}) string {
	return strings.TrimLeftFunc(coerce.String(v), unicode.IsSpace)
}

// TrimEnd returns the coerced value with trailing whitespace removed.
func TrimEnd(v interface{}) string {
	return strings.TrimRightFunc(coerce.String(v), unicode.IsSpace)
}
