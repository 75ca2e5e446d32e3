// File: iterator.go
// Title: Lazy Match Iteration
// Description: Implements the single-pass iterator over successive matches
//              that backs the facade's MatchAll operation. Matches are
//              computed on demand; exhausting the iterator requires a
//              fresh one.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with lazy cursor

package pattern

import (
	"github.com/dlclark/regexp2"
)

// Iterator walks the matches of a pattern in one input string, front to
// back, computing each match only when requested. It is finite and
// non-restartable: once Next reports false it stays exhausted. An
// Iterator holds a cursor and must not be shared between goroutines.
type Iterator struct {
	p       *Pattern
	input   string
	current *regexp2.Match
	started bool
	done    bool
}

// Iterate returns a lazy iterator over the matches of p in s. No matching
// work happens until the first call to Next.
func (p *Pattern) Iterate(s string) *Iterator {
	return &Iterator{p: p, input: s}
}

// Next returns the next match and true, or the zero Match and false when
// the matches are exhausted.
func (it *Iterator) Next() (Match, bool) {
	if it.done {
		return Match{}, false
	}

	var m *regexp2.Match
	if !it.started {
		it.started = true
		m, _ = it.p.re.FindStringMatch(it.input)
	} else {
		m, _ = it.p.re.FindNextMatch(it.current)
	}

	if m == nil {
		it.done = true
		it.current = nil
		return Match{}, false
	}

	it.current = m
	return convert(m), true
}

// Collect drains the remaining matches into a slice. The iterator is
// exhausted afterwards. It returns nil when no matches remain.
func (it *Iterator) Collect() []Match {
	var matches []Match
	for {
		m, ok := it.Next()
		if !ok {
			return matches
		}
		matches = append(matches, m)
	}
}
