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
	"znkr.io/respdiff/internal/config"
	"znkr.io/respdiff/internal/offsets"
	"znkr.io/respdiff/internal/tokens"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// DefaultMaxBytes is the default size ceiling for documents, see [MaxBytes].
const DefaultMaxBytes = config.DefaultMaxBytes

// MaxBytes sets the size ceiling for documents. Documents with more than n bytes are rejected with
// an [*OversizedError] before any work is done. A value of n <= 0 disables the ceiling. The
// default is [DefaultMaxBytes].
//
// The ceiling is what keeps the quadratic comparison tractable, disable it only for trusted input.
func MaxBytes(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxBytes = max(0, n)
		return config.MaxBytes
	}
}

// Optimal finds a minimal diff irrespective of the cost. By default, the comparison functions in
// this package limit the memory used for large inputs with many differences by splitting the
// inputs at lines (or words) that appear exactly once in both inputs, which may produce a diff
// that's not minimal.
//
// With this option, time and space are O(N·M) where N and M are the number of lines (or words)
// that differ in the old and new input.
func Optimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CellLimit = 0
		return config.Optimal
	}
}

// WordSplit sets the function used to split lines into words for [Refine]. The default is
// [SplitWhitespace].
//
// Spans are located by walking the new line with the tokens it was split into. Tokens that can't
// be located are skipped, so a splitter that drops or rewrites parts of the line results in fewer
// highlighted spans, never in wrong ones.
func WordSplit(split func(line string) []string) Option {
	return func(cfg *config.Config) config.Flag {
		if split == nil {
			split = tokens.Whitespace
		}
		cfg.Split = split
		return config.WordSplit
	}
}

// Unit describes how offsets into text are counted.
type Unit = offsets.Unit

const (
	Bytes     = offsets.Bytes     // UTF-8 bytes, the default
	Runes     = offsets.Runes     // Unicode code points
	UTF16     = offsets.UTF16     // UTF-16 code units
	Graphemes = offsets.Graphemes // User perceived characters (UAX #29 grapheme clusters)
)

// Units sets the unit of the offsets in [WordSpan]s. The default is [Bytes].
func Units(u Unit) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Unit = u
		return config.Units
	}
}

// SplitWhitespace splits a line into alternating runs of whitespace and non-whitespace.
func SplitWhitespace(line string) []string { return tokens.Whitespace(line) }

// SplitWords splits a line at the word boundaries defined by Unicode Standard Annex #29. In
// contrast to [SplitWhitespace], punctuation is split from words, which often works better for
// structured text like JSON.
func SplitWords(line string) []string { return tokens.Words(line) }
