// Package coerce provides total conversion of arbitrary values to strings.
//
// Package: coerce
// Title: Permissive Input Coercion
// Description: This package implements the coercion rule shared by every
//
//	jstr facade operation: any value becomes a string, nil
//	becomes the empty string, and strings pass through
//	unchanged. The conversion is an explicit, exhaustively
//	switched mapping rather than a reflective fallback, so the
//	rendering of every supported kind is pinned down.
//
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with total coercion
//
// The conversion is total (it never fails) and idempotent (coercing an
// already-coerced value returns it unchanged). Numbers render in base-10
// decimal form with no fraction part for integral values, booleans render
// as "true"/"false", and non-finite floats render as "NaN", "Infinity",
// and "-Infinity".
//
// Usage:
//
//	import "github.com/jstr-go/jstr/coerce"
//
//	coerce.String(nil)   // ""
//	coerce.String(123)   // "123"
//	coerce.String(1.5)   // "1.5"
//	coerce.String(true)  // "true"
package coerce
