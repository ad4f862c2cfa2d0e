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

// Package respdiff compares successive versions of a text document, typically HTTP response
// bodies fetched from the same endpoint, and reports the differences as data for highlighting.
//
// A comparison happens in two steps. First, the documents are compared line by line using a
// longest common subsequence (see [DiffLines]). Then, every pair of changed lines is compared
// word by word to find the sub-line regions that differ (see [Refine]). The result is a [Script],
// an ordered list of typed [Edit]s whose target ranges cover the new document without gaps or
// overlaps. This package never renders anything, see [znkr.io/respdiff/render] for that.
//
// Most callers will keep a [Session] per stream of documents. A session remembers the previous
// document together with a comparability key and only diffs documents with equal keys.
//
// Performance: Line and word comparisons are O(N·M) in time and space for the part of the input
// that differs. Documents larger than [DefaultMaxBytes] are rejected with [ErrTooLarge] and large
// tables are avoided by splitting inputs at unique lines unless [Optimal] is used.
//
// [znkr.io/respdiff/render]: https://pkg.go.dev/znkr.io/respdiff/render
package respdiff
