// File: replace.go
// Title: Pattern Replacement and Splitting
// Description: Implements replacement and splitting over pattern matches.
//              Whether replacement covers the first match or every match
//              is decided by the pattern's Global flag.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with global-flag dispatch

package pattern

import (
	"github.com/dlclark/regexp2"
)

// replaceCount returns the match count for replacement operations: every
// match for global patterns, otherwise just the first.
func (p *Pattern) replaceCount() int {
	if p.Global() {
		return -1
	}
	return 1
}

// Replace substitutes matches of p in s with the replacement text. The
// replacement may reference capture groups with $1, $2, and ${name}.
// Non-global patterns replace only the first match.
func (p *Pattern) Replace(s, replacement string) string {
	out, err := p.re.Replace(s, replacement, -1, p.replaceCount())
	if err != nil {
		return s
	}
	return out
}

// ReplaceFunc substitutes matches of p in s with the value returned by fn
// for each match. Non-global patterns replace only the first match.
func (p *Pattern) ReplaceFunc(s string, fn func(Match) string) string {
	out, err := p.re.ReplaceFunc(s, func(m regexp2.Match) string {
		return fn(convert(&m))
	}, -1, p.replaceCount())
	if err != nil {
		return s
	}
	return out
}

// Split divides s around matches of p. limit caps the number of returned
// pieces when non-negative; a negative limit means no cap. Zero-width
// matches split between characters without producing empty edge pieces.
func (p *Pattern) Split(s string, limit int) []string {
	out := []string{}
	if limit == 0 {
		return out
	}

	runes := []rune(s)
	prev := 0

	m, _ := p.re.FindStringMatch(s)
	for m != nil {
		start := m.Index
		length := m.Length

		// A zero-width match at the very end would only add an empty tail
		if length == 0 && start >= len(runes) {
			break
		}

		// A zero-width match flush with the previous cut consumes nothing
		if !(length == 0 && start == prev) {
			out = append(out, string(runes[prev:start]))
			if limit > 0 && len(out) >= limit {
				return out
			}
			prev = start + length
		}

		m, _ = p.re.FindNextMatch(m)
	}

	out = append(out, string(runes[prev:]))
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
