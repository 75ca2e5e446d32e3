// Package jstr exposes JavaScript's string operations as a flat Go facade.
//
// Package: jstr
// Title: JavaScript-Semantics String Facade
// Description: This package re-exposes the host-style string operations
//
//	(case conversion, extraction, search, padding, splitting,
//	pattern matching) under a uniform function surface with
//	permissive input coercion. Every operation accepts an
//	arbitrary subject value and coerces it to a string first;
//	optional trailing arguments mirror the host language's
//	optional parameters.
//
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation of the operation surface
// - 2026-02-10 v0.1.0: Documentation pass over index conventions
//
// # Conventions
//
// All indices, lengths, and offsets are rune-based and consistent across
// every operation: Length counts runes, IndexOf returns a rune offset,
// and Substring/Slice/Substr index by rune. Out-of-range numeric
// arguments are clamped rather than rejected.
//
// Every operation is pure, synchronous, and side-effect-free; none retain
// state between calls, so concurrent callers need no coordination. The
// one stateful value in the package's orbit is the iterator returned by
// MatchAll, which is owned by the single caller that received it.
//
// # Failure surface
//
// Coercion is total, so errors are rare by design. Only two conditions
// fail: pattern misuse (MatchAll or ReplaceAll with a regex pattern that
// lacks the global flag) and a negative Repeat count. Both return coded
// errors from the core/error package; nothing panics.
//
// Usage:
//
//	import "github.com/jstr-go/jstr"
//
//	jstr.Capitalize("hello")              // "Hello"
//	jstr.Capitalize(123)                  // "123"
//	jstr.Slice("The quick brown fox", 4, -4)  // "quick brown"
//	jstr.PadStart("abc", 10, "-")         // "-------abc"
package jstr
