// File: pattern.go
// Title: Pattern Type and Compilation
// Description: Implements the Pattern type, its flag bitmask, and
//              compilation. The Global flag is held on the Pattern itself;
//              only the remaining flags map onto engine options.
// Author: jstr-go
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with flag mapping

package pattern

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	jstrerror "github.com/jstr-go/jstr/core/error"
)

// Flags controls pattern behavior. Global selects find-all dispatch and is
// tracked outside the engine; the others translate to engine options.
type Flags uint8

const (
	// Global marks the pattern as find-all: match, replace, and split
	// operations cover every occurrence instead of only the first
	Global Flags = 1 << iota

	// IgnoreCase makes matching case-insensitive
	IgnoreCase

	// Multiline makes ^ and $ match at line boundaries
	Multiline

	// DotAll makes . match newline characters
	DotAll
)

// Has reports whether all bits of flag are set
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// String returns the host-style flag letters in canonical order
func (f Flags) String() string {
	var b strings.Builder
	if f.Has(Global) {
		b.WriteByte('g')
	}
	if f.Has(IgnoreCase) {
		b.WriteByte('i')
	}
	if f.Has(Multiline) {
		b.WriteByte('m')
	}
	if f.Has(DotAll) {
		b.WriteByte('s')
	}
	return b.String()
}

// ParseFlags converts host-style flag letters ("gim") to a Flags value.
// An unrecognized or repeated letter yields an INVALID_ARGUMENT error.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, r := range s {
		var flag Flags
		switch r {
		case 'g':
			flag = Global
		case 'i':
			flag = IgnoreCase
		case 'm':
			flag = Multiline
		case 's':
			flag = DotAll
		default:
			return 0, jstrerror.InvalidArgument("parse_flags", s).
				WithDetail("flag", string(r))
		}
		if f.Has(flag) {
			return 0, jstrerror.InvalidArgument("parse_flags", s).
				WithDetail("flag", string(r))
		}
		f |= flag
	}
	return f, nil
}

// Pattern is an immutable compiled pattern. It is safe for concurrent use;
// matching state lives in the values returned by its methods.
type Pattern struct {
	re     *regexp2.Regexp
	source string
	flags  Flags
}

// Compile compiles source with the given flags. A syntactically invalid
// source yields an INVALID_PATTERN error.
func Compile(source string, flags Flags) (*Pattern, error) {
	opts := regexp2.None
	if flags.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if flags.Has(Multiline) {
		opts |= regexp2.Multiline
	}
	if flags.Has(DotAll) {
		opts |= regexp2.Singleline
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, jstrerror.Wrap(err, "pattern compilation failed").
			WithCode(jstrerror.CodeInvalidPattern).
			WithOperation("compile").
			WithDetail("source", source)
	}

	return &Pattern{re: re, source: source, flags: flags}, nil
}

// MustCompile is like Compile but panics on error. It simplifies the safe
// initialization of package-level patterns.
func MustCompile(source string, flags Flags) *Pattern {
	p, err := Compile(source, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the pattern source text
func (p *Pattern) Source() string {
	return p.source
}

// Flags returns the pattern flags
func (p *Pattern) Flags() Flags {
	return p.flags
}

// Global reports whether the pattern carries the find-all flag
func (p *Pattern) Global() bool {
	return p.flags.Has(Global)
}

// String returns the pattern in host literal form, such as "/\w+/gi"
func (p *Pattern) String() string {
	return fmt.Sprintf("/%s/%s", p.source, p.flags)
}
