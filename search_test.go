// File: search_test.go
// Title: Unit Tests for Substring Search Operations
// Description: Tests for containment, index lookup with start positions,
//              prefix/suffix windows, and pattern search.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial test implementation

package jstr

import (
	"testing"

	"github.com/jstr-go/jstr/pattern"
)

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		search   interface{}
		start    []int
		expected int
	}{
		{"found", "banana", "an", nil, 1},
		{"not found", "banana", "x", nil, -1},
		{"from start position", "banana", "an", []int{2}, 3},
		{"start past last match", "banana", "an", []int{4}, -1},
		{"negative start clamps to zero", "banana", "b", []int{-3}, 0},
		{"start past end clamps", "abc", "a", []int{10}, -1},
		{"empty search at position", "abc", "", []int{2}, 2},
		{"empty search past end", "abc", "", []int{10}, 3},
		{"rune offsets", "日本語abc", "abc", nil, 3},
		{"number coerced", 12321, 3, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexOf(tt.input, tt.search, tt.start...); got != tt.expected {
				t.Errorf("IndexOf(%v, %v, %v) = %d; want %d", tt.input, tt.search, tt.start, got, tt.expected)
			}
		})
	}
}

func TestLastIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		search   interface{}
		start    []int
		expected int
	}{
		{"last occurrence", "banana", "an", nil, 3},
		{"not found", "banana", "x", nil, -1},
		{"backward from position", "banana", "an", []int{2}, 1},
		{"position at match start", "banana", "an", []int{3}, 3},
		{"negative position", "banana", "b", []int{-1}, 0},
		{"empty search", "abc", "", nil, 3},
		{"empty search with position", "abc", "", []int{1}, 1},
		{"single char", "banana", "a", nil, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastIndexOf(tt.input, tt.search, tt.start...); got != tt.expected {
				t.Errorf("LastIndexOf(%v, %v, %v) = %d; want %d", tt.input, tt.search, tt.start, got, tt.expected)
			}
		})
	}
}

func TestIncludes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		search   interface{}
		start    []int
		expected bool
	}{
		{"contained", "hello world", "world", nil, true},
		{"not contained", "hello world", "mars", nil, false},
		{"start position excludes", "hello", "h", []int{1}, false},
		{"empty search", "abc", "", nil, true},
		{"coerced number", 3.14, ".", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Includes(tt.input, tt.search, tt.start...); got != tt.expected {
				t.Errorf("Includes(%v, %v, %v) = %v; want %v", tt.input, tt.search, tt.start, got, tt.expected)
			}
		})
	}
}

func TestStartsWith(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		search   interface{}
		position []int
		expected bool
	}{
		{"matching prefix", "hello world", "hello", nil, true},
		{"non-matching prefix", "hello world", "world", nil, false},
		{"position shifts window", "hello world", "world", []int{6}, true},
		{"empty search", "abc", "", nil, true},
		{"search longer than rest", "ab", "abc", nil, false},
		{"position past end", "abc", "a", []int{10}, false},
		{"empty search past end", "abc", "", []int{10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartsWith(tt.input, tt.search, tt.position...); got != tt.expected {
				t.Errorf("StartsWith(%v, %v, %v) = %v; want %v", tt.input, tt.search, tt.position, got, tt.expected)
			}
		})
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		search   interface{}
		length   []int
		expected bool
	}{
		{"matching suffix", "hello world", "world", nil, true},
		{"non-matching suffix", "hello world", "hello", nil, false},
		{"length truncates view", "hello world", "hello", []int{5}, true},
		{"empty search", "abc", "", nil, true},
		{"length zero with empty search", "abc", "", []int{0}, true},
		{"length zero with search", "abc", "a", []int{0}, false},
		{"negative length clamps", "abc", "a", []int{-2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EndsWith(tt.input, tt.search, tt.length...); got != tt.expected {
				t.Errorf("EndsWith(%v, %v, %v) = %v; want %v", tt.input, tt.search, tt.length, got, tt.expected)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		pat      interface{}
		expected int
	}{
		{"compiled pattern", "order 42 shipped", pattern.MustCompile(`\d+`, 0), 6},
		{"compiled pattern no match", "no digits", pattern.MustCompile(`\d+`, 0), -1},
		{"text compiled as pattern", "order 42 shipped", `\d+`, 6},
		{"plain text", "hello world", "world", 6},
		{"rune offset", "日本語42", `\d`, 3},
		{"unparsable text searched literally", "find a (paren", "(", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Search(tt.input, tt.pat); got != tt.expected {
				t.Errorf("Search(%v, %v) = %d; want %d", tt.input, tt.pat, got, tt.expected)
			}
		})
	}
}
