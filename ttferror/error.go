// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package ttferror defines the typed error kinds shared by the decoder, the
// bytecode interpreter and the rasterizer, so that callers can distinguish a
// malformed font from an unsupported feature without string matching.
package ttferror

import "fmt"

// Kind classifies an Error.
type Kind int

const (
	// TruncatedInput means a read crossed the end of the input stream.
	TruncatedInput Kind = iota
	// OutOfBounds means a seek targeted an offset outside the stream.
	OutOfBounds
	// UnsupportedSfnt means the magic tag was unrecognized, or the outlines
	// are CFF rather than TrueType.
	UnsupportedSfnt
	// MissingRequiredTable means head, maxp, hhea, hmtx, OS/2 or loca was
	// absent or zero-length.
	MissingRequiredTable
	// InvalidTable means an internal inconsistency was found in a decoded
	// table: zero unitsPerEm, unordered contour endpoints, an out-of-range
	// contour count, too many glyphs, too many TTC faces, or composite
	// recursion beyond the depth limit.
	InvalidTable
	// InvalidBytecode means the bytecode interpreter hit a stack, call
	// stack, zone, CVT, storage or opcode fault.
	InvalidBytecode
	// UnsupportedFeature means well-formed input used a feature outside
	// this library's scope, such as a cubic contour point.
	UnsupportedFeature
)

func (k Kind) String() string {
	switch k {
	case TruncatedInput:
		return "truncated input"
	case OutOfBounds:
		return "out of bounds"
	case UnsupportedSfnt:
		return "unsupported sfnt"
	case MissingRequiredTable:
		return "missing required table"
	case InvalidTable:
		return "invalid table"
	case InvalidBytecode:
		return "invalid bytecode"
	case UnsupportedFeature:
		return "unsupported feature"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by every package in this
// module. Kind lets callers switch on the failure category; Message carries
// the human-readable detail.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ttf: %s: %s", e.Kind, e.Message)
}

// New constructs an Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind, so that callers
// can use errors.Is(err, ttferror.InvalidBytecode) conventions via a thin
// wrapper if desired. It is also used internally by the façade to decide
// whether a GetGlyph failure should be treated as fatal.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
