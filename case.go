// File: case.go
// Title: Case Conversion Operations
// Description: Implements capitalization and simple case mapping. The
//              mappings are the standard non-locale-sensitive ones; no
//              locale-aware collation or special casing is applied.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of case operations

package jstr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jstr-go/jstr/coerce"
)

// Capitalize returns the coerced value with its first rune upper-cased
// and the remainder unchanged. The empty value stays empty.
func Capitalize(v interface{}) string {
	s := coerce.String(v)
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(first)
	if upper == first {
		return s
	}
	return string(upper) + s[size:]
}

// ToLowerCase returns the coerced value with all runes lower-cased using
// simple case mapping.
func ToLowerCase(v interface{}) string {
	return strings.ToLower(coerce.String(v))
}

// ToUpperCase returns the coerced value with all runes upper-cased using
// simple case mapping.
func ToUpperCase(v interface{}) string {
	return strings.ToUpper(coerce.String(v))
}
