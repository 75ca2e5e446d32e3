// File: split.go
// Title: Splitting Operation
// Description: Implements Split over text and pattern separators. The nil
//              separator is the absence marker and yields the whole value;
//              it is checked before coercion so it is not confused with
//              the empty-text separator, which splits between runes.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of split

package jstr

import (
	"strings"

	"github.com/jstr-go/jstr/coerce"
	"github.com/jstr-go/jstr/pattern"
)

// Split divides the coerced value around occurrences of separator and
// returns the pieces in order. A nil separator yields the whole value as
// a single element; a *pattern.Pattern separator splits on its matches;
// any other separator is coerced to text, with the empty text splitting
// between runes. The optional limit caps the number of returned pieces:
// zero yields an empty slice, and a negative or omitted limit means
// unlimited.
func Split(v, separator interface{}, limit ...int) []string {
	s := coerce.String(v)
	lim := optInt(limit, -1)

	if lim == 0 {
		return []string{}
	}
	if separator == nil {
		return []string{s}
	}

	if p, ok := separator.(*pattern.Pattern); ok {
		return p.Split(s, lim)
	}

	parts := strings.Split(s, coerce.String(separator))
	if lim > 0 && len(parts) > lim {
		parts = parts[:lim]
	}
	return parts
}
