// File: search.go
// Title: Substring Search Operations
// Description: Implements containment, index lookup, prefix/suffix checks,
//              and pattern search. All positions are rune-based and
//              out-of-range positions are clamped.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of search operations

package jstr

import (
	"github.com/jstr-go/jstr/coerce"
	"github.com/jstr-go/jstr/pattern"
)

// runesEqual reports whether two rune slices hold the same sequence.
func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clampIndex restricts i to the range [0, max].
func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

// IndexOf returns the rune offset of the first occurrence of search at or
// after the optional start position (default 0), or -1 when absent. An
// empty search value is found at the clamped start position.
func IndexOf(v, search interface{}, start ...int) int {
	s := []rune(coerce.String(v))
	sub := []rune(coerce.String(search))
	pos := clampIndex(optInt(start, 0), len(s))

	if len(sub) == 0 {
		return pos
	}
	for i := pos; i+len(sub) <= len(s); i++ {
		if runesEqual(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the rune offset of the last occurrence of search
// that begins at or before the optional start position (default: the end
// of the value), or -1 when absent. An empty search value is found at the
// clamped start position.
func LastIndexOf(v, search interface{}, start ...int) int {
	s := []rune(coerce.String(v))
	sub := []rune(coerce.String(search))
	pos := clampIndex(optInt(start, len(s)), len(s))

	if len(sub) == 0 {
		return pos
	}

	from := pos
	if from > len(s)-len(sub) {
		from = len(s) - len(sub)
	}
	for i := from; i >= 0; i-- {
		if runesEqual(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// Includes reports whether search occurs in the coerced value at or after
// the optional start position (default 0).
func Includes(v, search interface{}, start ...int) bool {
	return IndexOf(v, search, start...) != -1
}

// StartsWith reports whether the coerced value begins with search at the
// optional position (default 0). The position shifts the window the check
// is applied to.
func StartsWith(v, search interface{}, position ...int) bool {
	s := []rune(coerce.String(v))
	sub := []rune(coerce.String(search))
	pos := clampIndex(optInt(position, 0), len(s))

	if pos+len(sub) > len(s) {
		return false
	}
	return runesEqual(s[pos:pos+len(sub)], sub)
}

// EndsWith reports whether the coerced value ends with search. The
// optional length truncates the value considered to its first length
// runes (default: the whole value).
func EndsWith(v, search interface{}, length ...int) bool {
	s := []rune(coerce.String(v))
	sub := []rune(coerce.String(search))
	end := clampIndex(optInt(length, len(s)), len(s))

	if len(sub) > end {
		return false
	}
	return runesEqual(s[end-len(sub):end], sub)
}

// Search returns the rune offset of the first match of pat in the coerced
// value, or -1 when there is none. pat may be a compiled *pattern.Pattern
// or any value whose coerced text is compiled as a pattern; text that
// does not compile is searched for literally.
func Search(v, pat interface{}) int {
	s := coerce.String(v)

	if p, ok := pat.(*pattern.Pattern); ok {
		return p.IndexIn(s)
	}

	source := coerce.String(pat)
	p, err := pattern.Compile(source, 0)
	if err != nil {
		return IndexOf(s, source)
	}
	return p.IndexIn(s)
}
