// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package offsets converts byte offsets in UTF-8 text into the units used by renderers.
//
// Go strings are indexed by byte, but most text widgets count in runes, UTF-16 code units, or
// user perceived characters (grapheme clusters). Offsets reported for a line and offsets of the
// line within its document must use the same unit, this package is the single place where that
// conversion happens.
package offsets

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Unit describes how offsets into text are counted.
type Unit int

const (
	Bytes     Unit = iota // UTF-8 bytes, the native Go string index
	Runes                 // Unicode code points
	UTF16                 // UTF-16 code units, as used by Java and JavaScript text widgets
	Graphemes             // Extended grapheme clusters (UAX #29)
)

func (u Unit) String() string {
	switch u {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	case UTF16:
		return "utf16"
	case Graphemes:
		return "graphemes"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Parse returns the unit with the given name, as returned by [Unit.String].
func Parse(name string) (Unit, error) {
	for u := Bytes; u <= Graphemes; u++ {
		if u.String() == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown offset unit %q", name)
}

// Count returns the length of s in unit u.
func Count(s string, u Unit) int {
	switch u {
	case Bytes:
		return len(s)
	case Runes:
		return utf8.RuneCountInString(s)
	case UTF16:
		n := 0
		for _, r := range s {
			// Invalid UTF-8 decodes to utf8.RuneError which is a single code unit.
			n += utf16.RuneLen(r)
		}
		return n
	case Graphemes:
		n := 0
		it := graphemes.FromString(s)
		for it.Next() {
			n++
		}
		return n
	default:
		panic(fmt.Sprintf("unknown unit: %v", u))
	}
}

// Cursor converts a non-decreasing sequence of byte offsets within a string to unit offsets.
// Each conversion only scans the text between the previous and the current offset.
type Cursor struct {
	s    string
	unit Unit
	b, n int // last byte offset and the same offset in unit
}

// NewCursor returns a cursor positioned at the start of s.
func NewCursor(s string, u Unit) *Cursor {
	return &Cursor{s: s, unit: u}
}

// At converts the byte offset b. It panics if b is smaller than the offset of the previous call.
func (c *Cursor) At(b int) int {
	if b < c.b {
		panic(fmt.Sprintf("offset %d is before previous offset %d", b, c.b))
	}
	if c.unit == Bytes {
		c.b, c.n = b, b
		return b
	}
	c.n += Count(c.s[c.b:b], c.unit)
	c.b = b
	return c.n
}
