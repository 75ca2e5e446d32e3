// File: coerce.go
// Title: Total Value-to-String Coercion
// Description: Implements the coercion rule applied to every text input of
//              the jstr facade. Each supported kind has an explicit branch
//              with a pinned textual rendering; anything unrecognized
//              falls back to fmt.Sprint.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with exhaustive type switch

package coerce

import (
	"fmt"
	"math"
	"strconv"
)

// String converts an arbitrary value to its canonical string form.
// nil yields the empty string, strings pass through unchanged, and the
// conversion never fails. The result of coercing an already-coerced value
// is the value itself.
func String(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case uintptr:
		return strconv.FormatUint(uint64(val), 10)
	case float32:
		return formatFloat(float64(val), 32)
	case float64:
		return formatFloat(val, 64)
	case []byte:
		return string(val)
	case []rune:
		return string(val)
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	default:
		return fmt.Sprint(val)
	}
}

// formatFloat renders a float in base-10 decimal form: integral values
// have no fraction part, zero is "0" regardless of sign, non-finite
// values use the spellings NaN, Infinity, and -Infinity, and very large
// or very small magnitudes switch to exponent notation.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
