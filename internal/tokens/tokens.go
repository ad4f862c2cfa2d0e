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

// Package tokens splits lines into the tokens compared by the word refiner.
//
// All splitters in this package are lossless: concatenating the tokens yields the input again.
// That property lets the refiner map tokens back to positions by summing token lengths.
package tokens

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// Whitespace splits s into alternating runs of whitespace and non-whitespace characters.
func Whitespace(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	space := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i > 0 && isSpace != space {
			out = append(out, s[start:i])
			start = i
		}
		space = isSpace
	}
	return append(out, s[start:])
}

// Words splits s on the word boundaries defined by Unicode Standard Annex #29. Punctuation and
// whitespace become tokens of their own.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, utf8.RuneCountInString(s)/4+1)
	it := words.FromString(s)
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}
