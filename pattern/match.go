// File: match.go
// Title: Match Records and Search Operations
// Description: Implements the Match record and the first-match, all-match,
//              and index lookups used by the facade. All offsets are
//              rune-based, matching the engine's character positions.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with match conversion

package pattern

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Match describes one pattern match: the matched text, its rune offset in
// the input, and the capture group texts in declaration order. A group
// that did not participate in the match has an empty string entry.
type Match struct {
	Text   string
	Index  int
	Groups []string
}

// convert maps an engine match onto a Match record. Group 0 is the whole
// match and is folded into Text/Index rather than listed.
func convert(m *regexp2.Match) Match {
	groups := m.Groups()
	var captures []string
	if len(groups) > 1 {
		captures = make([]string, 0, len(groups)-1)
		for _, g := range groups[1:] {
			captures = append(captures, g.String())
		}
	}
	return Match{
		Text:   m.String(),
		Index:  m.Index,
		Groups: captures,
	}
}

// FindMatch returns the first match in s, or nil when there is none.
func (p *Pattern) FindMatch(s string) *Match {
	// Find errors only arise from match timeouts, which are not configured
	m, _ := p.re.FindStringMatch(s)
	if m == nil {
		return nil
	}
	result := convert(m)
	return &result
}

// FindMatchStartingAt returns the first match at or after the given rune
// offset, or nil when there is none. The offset is clamped to the input's
// rune bounds.
func (p *Pattern) FindMatchStartingAt(s string, start int) *Match {
	if start < 0 {
		start = 0
	}
	if n := utf8.RuneCountInString(s); start > n {
		start = n
	}
	m, _ := p.re.FindStringMatchStartingAt(s, start)
	if m == nil {
		return nil
	}
	result := convert(m)
	return &result
}

// FindAllText returns the texts of every match in s, in order. It returns
// nil when there is no match.
func (p *Pattern) FindAllText(s string) []string {
	var texts []string
	m, _ := p.re.FindStringMatch(s)
	for m != nil {
		texts = append(texts, m.String())
		m, _ = p.re.FindNextMatch(m)
	}
	return texts
}

// IndexIn returns the rune offset of the first match in s, or -1 when
// there is none.
func (p *Pattern) IndexIn(s string) int {
	m, _ := p.re.FindStringMatch(s)
	if m == nil {
		return -1
	}
	return m.Index
}

// MatchesString reports whether the pattern matches anywhere in s.
func (p *Pattern) MatchesString(s string) bool {
	ok, _ := p.re.MatchString(s)
	return ok
}
