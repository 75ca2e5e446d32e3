// File: extract.go
// Title: Substring Extraction Operations
// Description: Implements the three extraction operations with their
//              distinct index policies: Substring clamps and swaps,
//              Slice counts negative indices from the end, and the
//              legacy Substr takes a start plus a length.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of extraction operations

package jstr

import (
	"github.com/jstr-go/jstr/coerce"
)

// Substring extracts the runes between start and the optional end index
// (default: the end of the value). Negative or out-of-range indices clamp
// to the value's bounds, and an inverted range is swapped before
// extraction, so Substring(s, 4, 1) equals Substring(s, 1, 4).
func Substring(v interface{}, start int, end ...int) string {
	runes := []rune(coerce.String(v))

	a := clampIndex(start, len(runes))
	b := clampIndex(optInt(end, len(runes)), len(runes))
	if a > b {
		a, b = b, a
	}
	return string(runes[a:b])
}

// Slice extracts the runes between begin and the optional end index
// (default: the end of the value). Negative indices count backward from
// the end. An empty or inverted range yields the empty string; ranges are
// never swapped.
func Slice(v interface{}, begin int, end ...int) string {
	runes := []rune(coerce.String(v))

	a := resolveSliceIndex(begin, len(runes))
	b := resolveSliceIndex(optInt(end, len(runes)), len(runes))
	if a >= b {
		return ""
	}
	return string(runes[a:b])
}

// resolveSliceIndex maps a possibly-negative index onto [0, length],
// counting negative values back from the end.
func resolveSliceIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	return clampIndex(i, length)
}

// Substr extracts up to length runes beginning at start. A negative start
// counts backward from the end of the value; an omitted length extends to
// the end, and a non-positive length yields the empty string.
//
// Deprecated: Substr is retained for backward compatibility with the host
// surface; prefer Slice or Substring.
func Substr(v interface{}, start int, length ...int) string {
	runes := []rune(coerce.String(v))

	a := start
	if a < 0 {
		a += len(runes)
		if a < 0 {
			a = 0
		}
	}
	if a >= len(runes) {
		return ""
	}

	n := optInt(length, len(runes)-a)
	if n <= 0 {
		return ""
	}
	b := a + n
	if b > len(runes) {
		b = len(runes)
	}
	return string(runes[a:b])
}
