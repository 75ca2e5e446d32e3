// File: jstr.go
// Title: Core Facade Operations
// Description: Implements the coercion entry point and the character-level
//              operations of the facade: length, concatenation, reversal,
//              and the palindrome check built on top of reversal.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of core operations

package jstr

import (
	"strings"
	"unicode/utf8"

	"github.com/jstr-go/jstr/coerce"
)

// EnsureString coerces an arbitrary value to its string form: nil becomes
// the empty string, strings pass through unchanged, numbers render in
// base-10 decimal form, and booleans render as "true"/"false". The
// conversion is total and idempotent.
func EnsureString(v interface{}) string {
	return coerce.String(v)
}

// Length returns the number of runes in the coerced value.
func Length(v interface{}) int {
	return utf8.RuneCountInString(coerce.String(v))
}

// Concat joins the coerced value with every additional part, each part
// coerced individually.
func Concat(v interface{}, parts ...interface{}) string {
	var b strings.Builder
	b.WriteString(coerce.String(v))
	for _, part := range parts {
		b.WriteString(coerce.String(part))
	}
	return b.String()
}

// Reverse returns the coerced value with its rune order reversed.
func Reverse(v interface{}) string {
	runes := []rune(coerce.String(v))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether the coerced value reads the same forwards
// and backwards, ignoring case and every character that is not an ASCII
// letter or digit. Values shorter than two characters after filtering are
// always palindromes.
func IsPalindrome(v interface{}) bool {
	var filtered []rune
	for _, r := range coerce.String(v) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			filtered = append(filtered, r)
		case r >= 'A' && r <= 'Z':
			filtered = append(filtered, r+('a'-'A'))
		}
	}

	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		if filtered[i] != filtered[j] {
			return false
		}
	}
	return true
}

// optInt returns the first optional value if present, otherwise def.
func optInt(vals []int, def int) int {
	if len(vals) > 0 {
		return vals[0]
	}
	return def
}
