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

// Package render writes edit scripts computed by package respdiff for humans.
//
// [Highlight] shows the new document with changes marked and colored, the way a response viewer
// highlights a response that differs from the previous one. [Unified] prints a unified diff that
// can be applied with patch(1).
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"
	"znkr.io/respdiff"
)

const (
	markEqual  = " "
	markInsert = "+"
	markDelete = "-"
	markChange = "~"
)

// Highlight writes the new document y to w and marks every line according to the script s that
// transforms x into y:
//
//   - Equal lines are written as they are.
//   - Inserted lines are marked with "+" and written in the insert style.
//   - Deleted lines are taken from x, marked with "-" and written in the delete style.
//   - Changed lines are marked with "~" and written in the change style. Word spans are
//     highlighted by adding the words style to the insert or change style.
//
// Word spans must use byte offsets (the default, see [respdiff.Units]). The line feed that
// terminates a document is not shown as an empty last line.
func Highlight(w io.Writer, x, y respdiff.Document, s respdiff.Script, opts ...Option) error {
	st := newStyles(opts)
	insert, del, change := st.color(st.insert), st.color(st.delete), st.color(st.change)
	nx, ny := visible(x), visible(y)

	bw := bufio.NewWriter(w)
	for _, e := range s {
		switch e.Op {
		case respdiff.Equal:
			for t := e.Y.Pos; t < min(e.Y.End, ny); t++ {
				bw.WriteString(markEqual)
				bw.WriteString(y.Line(t))
				bw.WriteByte('\n')
			}
		case respdiff.Insert:
			for t := e.Y.Pos; t < min(e.Y.End, ny); t++ {
				line(bw, insert, markInsert+y.Line(t))
			}
		case respdiff.Delete:
			for i := e.X.Pos; i < min(e.X.End, nx); i++ {
				line(bw, del, markDelete+x.Line(i))
			}
		case respdiff.Change:
			for i := range e.Y.Len() {
				t := e.Y.Pos + i
				if t >= ny {
					break
				}
				if e.Words == nil {
					line(bw, change, markChange+y.Line(t))
					continue
				}
				words(bw, st, change, y.Line(t), e.Words[i])
			}
		}
	}
	return bw.Flush()
}

// visible returns the number of lines that are shown for d.
func visible(d respdiff.Document) int {
	n := d.Len()
	if n > 0 && d.Line(n-1) == "" {
		n--
	}
	return n
}

func line(w *bufio.Writer, c *color.Color, text string) {
	w.WriteString(c.Sprint(text))
	w.WriteByte('\n')
}

// words writes a changed line with its word spans highlighted.
func words(w *bufio.Writer, st *styles, base *color.Color, text string, spans []respdiff.WordSpan) {
	segment := func(c *color.Color, s string) {
		if s != "" {
			w.WriteString(c.Sprint(s))
		}
	}

	segment(base, markChange)
	pos := 0
	for _, span := range spans {
		start := min(max(span.Start, pos), len(text))
		end := min(max(span.End, start), len(text))
		segment(base, text[pos:start])
		attrs := st.change
		if span.Op == respdiff.Insert {
			attrs = st.insert
		}
		segment(st.color(attrs, st.words), text[start:end])
		pos = end
	}
	segment(base, text[pos:])
	w.WriteByte('\n')
}
