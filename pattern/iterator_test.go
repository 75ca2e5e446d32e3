// File: iterator_test.go
// Title: Unit Tests for Lazy Match Iteration
// Description: Tests for the single-pass iterator covering lazy traversal,
//              exhaustion behavior, and slice collection.
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
	"testing"
)

func TestIteratorNext(t *testing.T) {
	p := MustCompile(`\d+`, Global)
	it := p.Iterate("a1b22c333")

	expected := []Match{
		{Text: "1", Index: 1},
		{Text: "22", Index: 3},
		{Text: "333", Index: 6},
	}

	for i, want := range expected {
		m, ok := it.Next()
		if !ok {
			t.Fatalf("Next() #%d reported exhaustion early", i)
		}
		if !reflect.DeepEqual(m, want) {
			t.Errorf("Next() #%d = %+v; want %+v", i, m, want)
		}
	}

	if _, ok := it.Next(); ok {
		t.Error("Next() after last match = true; want false")
	}
}

func TestIteratorStaysExhausted(t *testing.T) {
	p := MustCompile(`x`, Global)
	it := p.Iterate("x")

	if _, ok := it.Next(); !ok {
		t.Fatal("Next() = false on first call; want true")
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatalf("Next() call %d after exhaustion = true; want false", i)
		}
	}
}

func TestIteratorNoMatches(t *testing.T) {
	p := MustCompile(`\d`, Global)
	it := p.Iterate("no digits")

	if m, ok := it.Next(); ok {
		t.Errorf("Next() = %+v, true; want exhaustion", m)
	}
}

func TestIteratorGroups(t *testing.T) {
	p := MustCompile(`(\w)(\d)`, Global)
	it := p.Iterate("a1 b2")

	m, ok := it.Next()
	if !ok {
		t.Fatal("Next() = false; want a match")
	}
	if !reflect.DeepEqual(m.Groups, []string{"a", "1"}) {
		t.Errorf("Groups = %v; want [a 1]", m.Groups)
	}
}

func TestIteratorCollect(t *testing.T) {
	p := MustCompile(`an`, Global)
	it := p.Iterate("banana")

	matches := it.Collect()
	if len(matches) != 2 {
		t.Fatalf("Collect() returned %d matches; want 2", len(matches))
	}
	if matches[0].Index != 1 || matches[1].Index != 3 {
		t.Errorf("Collect() indices = %d, %d; want 1, 3", matches[0].Index, matches[1].Index)
	}

	// Collect drains the iterator
	if got := it.Collect(); got != nil {
		t.Errorf("second Collect() = %v; want nil", got)
	}
}
