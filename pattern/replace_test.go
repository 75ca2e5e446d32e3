// File: replace_test.go
// Title: Unit Tests for Pattern Replacement and Splitting
// Description: Tests for first-vs-all replacement dispatch, group
//              substitution, function replacement, and match splitting
//              including zero-width and limit handling.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial test implementation

package pattern

import (
	"reflect"
	"strings"
	"testing"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		flags       Flags
		input       string
		replacement string
		expected    string
	}{
		{"non-global replaces first", `a`, 0, "banana", "o", "bonana"},
		{"global replaces all", `a`, Global, "banana", "o", "bonono"},
		{"group substitution", `(\w+)@(\w+)`, 0, "bob@example", "$2/$1", "example/bob"},
		{"no match leaves input", `\d`, Global, "letters", "#", "letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.source, tt.flags)
			if got := p.Replace(tt.input, tt.replacement); got != tt.expected {
				t.Errorf("Replace() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestReplaceFunc(t *testing.T) {
	p := MustCompile(`\w+`, Global)
	got := p.ReplaceFunc("one two", func(m Match) string {
		return strings.ToUpper(m.Text)
	})
	if got != "ONE TWO" {
		t.Errorf("ReplaceFunc() = %q; want %q", got, "ONE TWO")
	}

	first := MustCompile(`\w+`, 0)
	got = first.ReplaceFunc("one two", func(m Match) string {
		return strings.ToUpper(m.Text)
	})
	if got != "ONE two" {
		t.Errorf("ReplaceFunc() non-global = %q; want %q", got, "ONE two")
	}
}

func TestReplaceFuncReceivesOffsets(t *testing.T) {
	p := MustCompile(`a`, Global)
	var indices []int
	p.ReplaceFunc("banana", func(m Match) string {
		indices = append(indices, m.Index)
		return m.Text
	})
	if !reflect.DeepEqual(indices, []int{1, 3, 5}) {
		t.Errorf("match indices = %v; want [1 3 5]", indices)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		input    string
		limit    int
		expected []string
	}{
		{"simple separator", `,`, "a,b,c", -1, []string{"a", "b", "c"}},
		{"pattern separator", `\s*,\s*`, "a , b,c", -1, []string{"a", "b", "c"}},
		{"limit truncates", `,`, "a,b,c", 2, []string{"a", "b"}},
		{"limit zero", `,`, "a,b,c", 0, []string{}},
		{"separator at edges", `,`, ",a,", -1, []string{"", "a", ""}},
		{"no separator", `,`, "abc", -1, []string{"abc"}},
		{"empty input", `,`, "", -1, []string{""}},
		{"zero-width splits between runes", `(?:)`, "ab", -1, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.source, Global)
			got := p.Split(tt.input, tt.limit)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q, %d) = %q; want %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}

func BenchmarkReplaceGlobal(b *testing.B) {
	p := MustCompile(`\d+`, Global)
	input := "order 42 shipped 7 items to 1600 main street"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Replace(input, "#")
	}
}

func BenchmarkSplit(b *testing.B) {
	p := MustCompile(`\s*,\s*`, Global)
	input := "alpha , beta,gamma , delta,epsilon"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Split(input, -1)
	}
}
