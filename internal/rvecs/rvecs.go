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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's produced by the LCS engine and is then translated to a user facing edit script.
//
// For inputs x and y, rx[s] is true if x[s] is deleted and ry[t] is true if y[t] is inserted.
// Every unflagged element of x matches the unflagged element of y with the same rank. Both
// vectors carry one extra, always false, element as a border that makes iteration simpler.
package rvecs

import "iter"

// Make allocates result vectors for x and y using a single allocation.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}

// Run describes a maximal sequence of consecutive matches or a maximal gap of deletions and
// insertions between two matches.
type Run struct {
	S0, S1 int  // Start and end of the run in x.
	T0, T1 int  // Start and end of the run in y.
	Match  bool // If true, x[S0:S1] and y[T0:T1] match element by element.
}

// Runs iterates over the runs of rx and ry in order. Matches and gaps alternate.
func Runs(rx, ry []bool) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		s, t := 0, 0 // current index into x, y
		n, m := len(rx)-1, len(ry)-1
		for s < n || t < m {
			s0, t0 := s, t
			if rx[s] || ry[t] {
				for s < n && rx[s] {
					s++
				}
				for t < m && ry[t] {
					t++
				}
				if !yield(Run{s0, s, t0, t, false}) {
					return
				}
				continue
			}
			for s < n && t < m && !rx[s] && !ry[t] {
				s++
				t++
			}
			if s == s0 {
				panic("inconsistent result vectors")
			}
			if !yield(Run{s0, s, t0, t, true}) {
				return
			}
		}
	}
}
