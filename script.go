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

package respdiff

import "fmt"

// Range is a half-open range [Pos, End) of lines.
type Range struct {
	Pos, End int
}

// Len returns the number of lines in the range.
func (r Range) Len() int { return r.End - r.Pos }

// WordSpan describes a region within a changed line of the new document.
//
// Start and End are offsets relative to the start of the line, counted in the unit configured
// with [Units]. Op is either Insert, if the region was added to the line, or Change if it
// replaces text of the old line. Text that was only removed from the old line has no position in
// the new line and is not reported.
type WordSpan struct {
	Op         Op
	Start, End int
}

// Edit describes a single edit of a diff.
//
//   - For Equal, X and Y cover the same number of lines, which are identical.
//   - For Delete, X contains the deleted lines and Y is an empty range at the position of the
//     deletion in the new document.
//   - For Insert, Y contains the inserted lines and X is an empty range.
//   - For Change, X and Y cover the same number of lines and the i-th line in X was replaced by
//     the i-th line in Y. Words[i] contains the word spans for line Y.Pos+i.
type Edit struct {
	Op    Op
	X, Y  Range        // Lines in the old and new document.
	Words [][]WordSpan // Word level spans for Change, nil otherwise.
}

// Script is a sequence of edits transforming an old document into a new one.
//
// The Y ranges of a script partition the lines of the new document: They start at 0, every range
// starts where the previous one ended, and the last one ends at the number of lines. The same is
// true for the X ranges and the old document, except for the script returned for documents that
// had nothing to be compared against (see [Session.Diff]).
type Script []Edit

// Plain reports whether the script consists of a single Equal edit without an old document, the
// script that's returned when there is nothing to compare against.
func (s Script) Plain() bool {
	return len(s) == 1 && s[0].Op == Equal && s[0].X.Len() == 0 && s[0].Y.Len() > 0
}

// Changed reports whether the script contains anything but Equal edits.
func (s Script) Changed() bool {
	for _, e := range s {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// Check verifies that s is a well formed script for an old document with nx lines and a new
// document with ny lines. It returns an error describing the first problem found.
func (s Script) Check(nx, ny int) error {
	if s.Plain() {
		if ny != s[0].Y.Len() || s[0].Y.Pos != 0 {
			return fmt.Errorf("plain script covers %v, want [0, %d)", s[0].Y, ny)
		}
		return nil
	}
	x, y := 0, 0
	var prev Op = -1
	for i, e := range s {
		if e.X.Pos != x || e.Y.Pos != y || e.X.End < e.X.Pos || e.Y.End < e.Y.Pos {
			return fmt.Errorf("edit %d (%v) covers %v and %v, want ranges starting at %d and %d", i, e.Op, e.X, e.Y, x, y)
		}
		switch e.Op {
		case Equal:
			if e.X.Len() == 0 || e.X.Len() != e.Y.Len() {
				return fmt.Errorf("edit %d (Equal) has mismatched ranges %v and %v", i, e.X, e.Y)
			}
			if prev == Equal {
				return fmt.Errorf("edit %d (Equal) follows another Equal edit", i)
			}
		case Insert:
			if e.X.Len() != 0 || e.Y.Len() == 0 {
				return fmt.Errorf("edit %d (Insert) has invalid ranges %v and %v", i, e.X, e.Y)
			}
		case Delete:
			if e.Y.Len() != 0 || e.X.Len() == 0 {
				return fmt.Errorf("edit %d (Delete) has invalid ranges %v and %v", i, e.X, e.Y)
			}
		case Change:
			if e.X.Len() == 0 || e.X.Len() != e.Y.Len() {
				return fmt.Errorf("edit %d (Change) has mismatched ranges %v and %v", i, e.X, e.Y)
			}
			if e.Words != nil && len(e.Words) != e.Y.Len() {
				return fmt.Errorf("edit %d (Change) has %d word lists for %d lines", i, len(e.Words), e.Y.Len())
			}
		default:
			return fmt.Errorf("edit %d has unknown op %v", i, e.Op)
		}
		if e.Op != Change && e.Words != nil {
			return fmt.Errorf("edit %d (%v) has word spans", i, e.Op)
		}
		x, y = e.X.End, e.Y.End
		prev = e.Op
	}
	if x != nx || y != ny {
		return fmt.Errorf("script ends at %d and %d, want %d and %d", x, y, nx, ny)
	}
	return nil
}
