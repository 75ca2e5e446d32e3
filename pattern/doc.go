// Package pattern provides the compiled pattern abstraction used by jstr.
//
// Package: pattern
// Title: Compiled Patterns with an Explicit Global Flag
// Description: This package wraps the regexp2 engine behind an opaque
//
//	Pattern type that carries the find-all ("global") flag as
//	explicit state. The facade queries the flag before
//	dispatching rather than introspecting the underlying
//	engine, so first-match versus all-matches behavior is
//	always decided in one place.
//
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation wrapping regexp2
//
// The regexp2 engine is used instead of the standard library's regexp
// because the pattern dialect exposed by the facade follows host-runtime
// conventions: backreferences, lookaround, $n group substitution in
// replacements, and rune-based match offsets.
//
// Usage:
//
//	import "github.com/jstr-go/jstr/pattern"
//
//	p := pattern.MustCompile(`\w+`, pattern.Global|pattern.IgnoreCase)
//	p.Global()            // true
//	p.FindAllText("a b")  // ["a", "b"]
package pattern
