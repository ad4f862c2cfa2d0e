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

import (
	"slices"
	"strings"

	"znkr.io/respdiff/internal/offsets"
)

// Tokenize splits text into lines. It splits on '\n' only and keeps everything else, including a
// trailing '\r' and trailing whitespace.
//
// Splitting is total: text without a line feed is a single line, the empty text is a single empty
// line, and text ending in a line feed has an empty last line.
func Tokenize(text string) []string {
	return strings.Split(text, "\n")
}

// Document is an immutable text split into lines.
//
// The zero value is an absent document with no lines.
type Document struct {
	text  string
	lines []string
}

// NewDocument creates a document from text, see [Tokenize].
func NewDocument(text string) Document {
	return Document{text: text, lines: Tokenize(text)}
}

// Text returns the text the document was created from.
func (d Document) Text() string { return d.text }

// Len returns the number of lines.
func (d Document) Len() int { return len(d.lines) }

// Line returns the i-th line without the line feed.
func (d Document) Line(i int) string { return d.lines[i] }

// Lines returns a copy of all lines.
func (d Document) Lines() []string { return slices.Clone(d.lines) }

// Offset returns the offset of the first character of line i within the document text, counted
// in unit u. Offset(Len(), u) is the length of the text plus one, as if the text ended in a line
// feed.
//
// Together with the offsets in [WordSpan], which are relative to the start of a line, this
// translates spans into positions within the whole document.
func (d Document) Offset(i int, u Unit) int {
	b := 0
	for _, line := range d.lines[:i] {
		b += len(line) + 1
	}
	if b > len(d.text) {
		return offsets.Count(d.text, u) + 1
	}
	return offsets.Count(d.text[:b], u)
}
