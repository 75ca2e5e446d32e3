// File: replace.go
// Title: Replacement Operations
// Description: Implements Replace and ReplaceAll over text and pattern
//              targets, with text or function replacements. ReplaceAll
//              follows the permissive split-and-rejoin form for text
//              patterns and requires the global flag for regex patterns.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of replacement operations

package jstr

import (
	"strings"

	"github.com/jstr-go/jstr/coerce"
	jstrerror "github.com/jstr-go/jstr/core/error"
	"github.com/jstr-go/jstr/pattern"
)

// Replacer is a substitution function applied to each replaced match.
type Replacer func(pattern.Match) string

// resolveReplacer returns the function form of a replacement argument, or
// nil when the replacement is plain text.
func resolveReplacer(repl interface{}) Replacer {
	switch fn := repl.(type) {
	case Replacer:
		return fn
	case func(pattern.Match) string:
		return fn
	default:
		return nil
	}
}

// Replace substitutes the first occurrence of pat in the coerced value.
// A *pattern.Pattern target replaces its first match, or every match when
// the pattern is global; any other target is coerced to text and replaced
// literally, first occurrence only. The replacement is either a value
// coerced to text (with $n group substitution for pattern targets) or a
// Replacer function receiving the match.
func Replace(v, pat, repl interface{}) string {
	s := coerce.String(v)

	if p, ok := pat.(*pattern.Pattern); ok {
		if fn := resolveReplacer(repl); fn != nil {
			return p.ReplaceFunc(s, fn)
		}
		return p.Replace(s, coerce.String(repl))
	}

	needle := coerce.String(pat)
	if fn := resolveReplacer(repl); fn != nil {
		idx := IndexOf(s, needle)
		if idx == -1 {
			return s
		}
		runes := []rune(s)
		needleLen := len([]rune(needle))
		return string(runes[:idx]) +
			fn(pattern.Match{Text: needle, Index: idx}) +
			string(runes[idx+needleLen:])
	}
	return strings.Replace(s, needle, coerce.String(repl), 1)
}

// ReplaceAll substitutes every occurrence of pat in the coerced value.
// A text target is split on each literal occurrence and rejoined with the
// replacement, so all occurrences are replaced regardless of any global
// marker. A *pattern.Pattern target must carry the global flag; otherwise
// an INVALID_PATTERN error is returned.
func ReplaceAll(v, pat, repl interface{}) (string, error) {
	s := coerce.String(v)

	if p, ok := pat.(*pattern.Pattern); ok {
		if !p.Global() {
			return "", jstrerror.InvalidPattern("replace_all",
				"replaceAll requires a pattern with the global flag").
				WithDetail("pattern", p.String())
		}
		if fn := resolveReplacer(repl); fn != nil {
			return p.ReplaceFunc(s, fn), nil
		}
		return p.Replace(s, coerce.String(repl)), nil
	}

	needle := coerce.String(pat)
	if fn := resolveReplacer(repl); fn != nil {
		return replaceAllFunc(s, needle, fn), nil
	}
	return strings.Join(strings.Split(s, needle), coerce.String(repl)), nil
}

// replaceAllFunc applies fn to every literal occurrence of needle in s,
// tracking rune offsets for the Match records.
func replaceAllFunc(s, needle string, fn Replacer) string {
	if needle == "" {
		return s
	}

	runes := []rune(s)
	needleRunes := []rune(needle)
	var b strings.Builder
	prev := 0

	for i := 0; i+len(needleRunes) <= len(runes); {
		if runesEqual(runes[i:i+len(needleRunes)], needleRunes) {
			b.WriteString(string(runes[prev:i]))
			b.WriteString(fn(pattern.Match{Text: needle, Index: i}))
			i += len(needleRunes)
			prev = i
		} else {
			i++
		}
	}
	b.WriteString(string(runes[prev:]))
	return b.String()
}
