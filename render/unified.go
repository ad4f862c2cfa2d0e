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

package render

import (
	"fmt"
	"strings"

	"znkr.io/respdiff"
	"znkr.io/respdiff/internal/rvecs"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\n\\ No newline at end of file\n"

// Unified returns a unified diff of x and y for the script s, with context matching lines around
// every hunk. Changed lines are shown as deletions followed by insertions. The output has no file
// headers.
//
// Unlike a [respdiff.Document], a unified diff doesn't count the empty line after a final line
// feed as a line, but marks a last line without a line feed. Unified takes care of the
// difference, the output is accepted by patch(1).
func Unified(x, y respdiff.Document, s respdiff.Script, context int) string {
	if s.Plain() {
		x = respdiff.Document{}
		s = respdiff.Script{{Op: respdiff.Insert, Y: s[0].Y}}
	}
	context = max(0, context)

	rx, ry := rvecs.Make(make([]struct{}, x.Len()), make([]struct{}, y.Len()))
	for _, e := range s {
		if e.Op == respdiff.Delete || e.Op == respdiff.Change {
			for i := e.X.Pos; i < e.X.End; i++ {
				rx[i] = true
			}
		}
		if e.Op == respdiff.Insert || e.Op == respdiff.Change {
			for i := e.Y.Pos; i < e.Y.End; i++ {
				ry[i] = true
			}
		}
	}

	xlines, ylines := patchLines(x), patchLines(y)
	n, m := x.Len(), y.Len()

	// A last line matching a line in the middle of the other document differs in the line feed,
	// e.g., "a" and "a\nb" both have a line "a" but in a patch it's "a\n\\ No newline..." and
	// "a\n".
	for s, t := 0, 0; s < n || t < m; {
		switch {
		case rx[s]:
			s++
		case ry[t]:
			t++
		default:
			if (s == n-1) != (t == m-1) {
				rx[s], ry[t] = true, true
			}
			s++
			t++
		}
	}
	// An empty last line is the end of the previous line. If it's matched, the other document
	// ends in an empty line, too.
	if len(xlines) < n {
		n--
		rx[n] = false
		rx = rx[:n+1]
	}
	if len(ylines) < m {
		m--
		ry[m] = false
		ry = ry[:m+1]
	}

	var b strings.Builder
	for h := range rvecs.Hunks(rx, ry, context) {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", hunkStart(h.S0, h.S1), h.S1-h.S0, hunkStart(h.T0, h.T1), h.T1-h.T0)
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && rx[s] {
				b.WriteString(prefixDelete)
				b.WriteString(xlines[s])
				s++
			}
			for t < h.T1 && ry[t] {
				b.WriteString(prefixInsert)
				b.WriteString(ylines[t])
				t++
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				b.WriteString(prefixMatch)
				b.WriteString(xlines[s])
				s++
				t++
			}
		}
	}
	return b.String()
}

// patchLines returns the lines of d as they appear in a patch.
func patchLines(d respdiff.Document) []string {
	n := d.Len()
	lines := make([]string, 0, n)
	for i := range n {
		line := d.Line(i)
		switch {
		case i < n-1:
			lines = append(lines, line+"\n")
		case line != "":
			lines = append(lines, line+missingNewline)
		}
	}
	return lines
}

// hunkStart returns the line number of a hunk side in a range header. An empty side names the
// line before the hunk.
func hunkStart(pos, end int) int {
	if pos == end {
		return pos
	}
	return pos + 1
}
