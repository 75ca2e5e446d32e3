// File: pad.go
// Title: Padding and Repetition Operations
// Description: Implements PadStart, PadEnd, and Repeat. Padding lengths
//              are rune-based; the pad text is coerced, defaults to a
//              single space, and is repeated or truncated to exactly fill
//              the remaining width.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of padding operations

package jstr

import (
	"strings"

	"github.com/jstr-go/jstr/coerce"
	jstrerror "github.com/jstr-go/jstr/core/error"
)

// buildPad produces exactly need runes of padding by cycling padRunes.
func buildPad(padRunes []rune, need int) string {
	var b strings.Builder
	b.Grow(need * 4)
	for i := 0; i < need; i++ {
		b.WriteRune(padRunes[i%len(padRunes)])
	}
	return b.String()
}

// padText resolves the optional pad argument: omitted means a single
// space, and the provided value is coerced.
func padText(pad []interface{}) string {
	if len(pad) == 0 {
		return " "
	}
	return coerce.String(pad[0])
}

// PadStart pads the front of the coerced value with the optional pad text
// (default single space) until it reaches targetLength runes. A value
// already at least targetLength runes long, or an empty pad text, leaves
// the value unchanged.
func PadStart(v interface{}, targetLength int, pad ...interface{}) string {
	s := coerce.String(v)
	runes := []rune(s)
	if targetLength <= len(runes) {
		return s
	}

	padRunes := []rune(padText(pad))
	if len(padRunes) == 0 {
		return s
	}
	return buildPad(padRunes, targetLength-len(runes)) + s
}

// PadEnd pads the back of the coerced value with the optional pad text
// (default single space) until it reaches targetLength runes. A value
// already at least targetLength runes long, or an empty pad text, leaves
// the value unchanged.
func PadEnd(v interface{}, targetLength int, pad ...interface{}) string {
	s := coerce.String(v)
	runes := []rune(s)
	if targetLength <= len(runes) {
		return s
	}

	padRunes := []rune(padText(pad))
	if len(padRunes) == 0 {
		return s
	}
	return s + buildPad(padRunes, targetLength-len(runes))
}

// Repeat returns the coerced value repeated count times. A count of zero
// yields the empty string; a negative count yields an INVALID_ARGUMENT
// error.
func Repeat(v interface{}, count int) (string, error) {
	if count < 0 {
		return "", jstrerror.InvalidArgument("repeat", count)
	}
	return strings.Repeat(coerce.String(v), count), nil
}
