// File: match.go
// Title: Pattern Matching Operations
// Description: Implements Match and MatchAll. Match dispatches on the
//              pattern's global flag: detailed first-match result versus
//              all whole-match texts. MatchAll requires the global flag
//              and returns a lazy single-pass iterator.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of matching operations

package jstr

import (
	"github.com/jstr-go/jstr/coerce"
	jstrerror "github.com/jstr-go/jstr/core/error"
	"github.com/jstr-go/jstr/pattern"
)

// Match runs p against the coerced value. For a non-global pattern the
// result holds at most one element carrying the matched text, its rune
// offset, and the capture group texts. For a global pattern the result
// holds the text of every match with no offset or group detail (Index is
// -1 and Groups is nil). A nil result means no match.
func Match(v interface{}, p *pattern.Pattern) []pattern.Match {
	s := coerce.String(v)

	if p.Global() {
		texts := p.FindAllText(s)
		if texts == nil {
			return nil
		}
		matches := make([]pattern.Match, len(texts))
		for i, text := range texts {
			matches[i] = pattern.Match{Text: text, Index: -1}
		}
		return matches
	}

	m := p.FindMatch(s)
	if m == nil {
		return nil
	}
	return []pattern.Match{*m}
}

// MatchAll returns a lazy iterator over every match of p in the coerced
// value, with full offset and group detail per match. The pattern must
// carry the global flag; otherwise an INVALID_PATTERN error is returned.
// The iterator is finite and non-restartable: exhausting it requires a
// fresh MatchAll call.
func MatchAll(v interface{}, p *pattern.Pattern) (*pattern.Iterator, error) {
	if !p.Global() {
		return nil, jstrerror.InvalidPattern("match_all",
			"matchAll requires a pattern with the global flag").
			WithDetail("pattern", p.String())
	}
	return p.Iterate(coerce.String(v)), nil
}
