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

// Package lcs computes a longest common subsequence of two slices and reports it as result
// vectors (see package rvecs).
//
// The algorithm is the classic dynamic programming solution: a table of the LCS lengths of all
// suffix pairs is filled back to front and then walked front to back. The walk matches equal
// elements as soon as it sees them and otherwise skips an element of x before an element of y
// whenever that keeps a longest common subsequence reachable. As a consequence, matches are
// placed as early as possible and deletions are reported before insertions. The result is fully
// determined by the input.
//
// Time and space are O(N·M) for the part of the input that's left after preprocessing (see
// [Diff]). To keep this tractable, the table size can be limited. Above the limit, the inputs
// are split at elements that appear exactly once in both inputs, and every piece is compared on
// its own. Pieces that still exceed the limit are reported as a whole as deleted and inserted.
package lcs

import (
	"slices"

	"znkr.io/respdiff/internal/rvecs"
)

// DefaultCellLimit is the default maximum number of cells of the dynamic programming table. The
// table uses 4 bytes per cell.
const DefaultCellLimit = 1 << 22

// Diff compares x and y and returns result vectors for a longest common subsequence.
//
// If cellLimit is > 0, it limits the size of any table used to compute the longest common
// subsequence. The result is then not necessarily minimal.
//
// Before the table is built, the problem is reduced:
//   - A common prefix is always a match.
//   - Elements that only appear in x or only in y can't be part of a common subsequence and are
//     always deletions and insertions respectively.
//
// All remaining elements are mapped to dense integer IDs so that the table is computed over ints
// instead of Ts.
func Diff[T comparable](x, y []T, cellLimit int) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return
	}

	x0, y0, xidx, yidx, counts, nanchors := preprocess(rx, ry, smin, smax, tmin, tmax, x, y)

	t := table{
		rx: rx, ry: ry,
		xidx: xidx, yidx: yidx,
		limit: cellLimit,
	}
	if t.fits(0, len(x0), 0, len(y0)) {
		t.compare(x0, y0, 0, len(x0), 0, len(y0))
		return
	}

	// The inputs are too large. Split them at common anchors and compare the pieces in between.
	smax0, tmax0 := len(x0), len(y0)
	anchors := segments(smax0, tmax0, nanchors, counts, x0, y0)
	done := anchors[0]
	for _, anchor := range anchors[1:] {
		if anchor.s < done.s {
			// Already handled scanning forward from an earlier match.
			continue
		}

		start := anchor
		for start.s > done.s && start.t > done.t && x0[start.s-1] == y0[start.t-1] {
			start.s--
			start.t--
		}
		end := anchor
		for end.s < smax0 && end.t < tmax0 && x0[end.s] == y0[end.t] {
			end.s++
			end.t++
		}

		if t.fits(done.s, start.s, done.t, start.t) {
			t.compare(x0, y0, done.s, start.s, done.t, start.t)
		} else {
			t.replace(done.s, start.s, done.t, start.t)
		}

		if end.s >= smax0 && end.t >= tmax0 {
			break
		}
		done = end
	}
	return
}

// handleTrivialBounds handles trivial bounds. It returns true if the bounds are trivial.
func handleTrivialBounds(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}

// preprocess reduces the problem to the elements that appear in both x[smin:smax] and
// y[tmin:tmax] and maps these elements to dense integer IDs. Elements that don't appear on the
// other side are marked as deletions or insertions right away.
//
// Occurrences are counted as 0, 1, or many for both x and y, using 0, 1, 2 for x and 0, 4, 8 for
// y. A count > 4 means the element appears in both x and y, a count of exactly 1+4 means the
// element appears exactly once in both, which makes it an anchor.
//
// The results are:
//   - x0:     x[smin:smax] as IDs, without elements that appear only in x
//   - y0:     y[tmin:tmax] as IDs, without elements that appear only in y
//   - xidx:   x0[s] corresponds to x[xidx[s]]
//   - yidx:   y0[t] corresponds to y[yidx[t]]
//   - counts: occurrence counts per ID as described above
func preprocess[T comparable](rx, ry []bool, smin, smax, tmin, tmax int, x, y []T) (x0, y0, xidx, yidx, counts []int, nanchors int) {
	n, m := smax-smin, tmax-tmin
	ids := make(map[T]int, n)
	buf := make([]int, 2*n+2*m)
	x0, buf = buf[:0:n], buf[n:]
	xidx, buf = buf[:0:n], buf[n:]
	y0, buf = buf[:0:m], buf[m:]
	yidx = buf[:0:m]
	counts = make([]int, n)

	for _, e := range x[smin:smax] {
		id, ok := ids[e]
		if !ok {
			id = len(ids)
			ids[e] = id
		}
		if c := counts[id]; c < 2 {
			counts[id] = c + 1
		}
		x0 = append(x0, id)
	}
	for i, e := range y[tmin:tmax] {
		id, ok := ids[e]
		if !ok {
			ry[tmin+i] = true
			continue
		}
		if c := counts[id]; c < 8 {
			counts[id] = c + 4
		}
		y0 = append(y0, id)
		yidx = append(yidx, tmin+i)
	}
	k := 0
	for i, id := range x0 {
		c := counts[id]
		if c < 4 {
			rx[smin+i] = true
			continue
		}
		if c == 1+4 {
			nanchors++
		}
		x0[k] = id
		xidx = append(xidx, smin+i)
		k++
	}
	x0 = x0[:k]
	return
}

// table computes longest common subsequences of x0 and y0 ranges and writes the result to the
// result vectors via the index mappings.
type table struct {
	rx, ry     []bool
	xidx, yidx []int
	limit      int
	cells      []int32 // reused between compare calls
}

// fits reports whether the table for x0[smin:smax] and y0[tmin:tmax] stays within the limit.
func (t *table) fits(smin, smax, tmin, tmax int) bool {
	return t.limit <= 0 || (smax-smin+1)*(tmax-tmin+1) <= t.limit
}

// compare finds a longest common subsequence of x[smin:smax] and y[tmin:tmax].
func (t *table) compare(x, y []int, smin, smax, tmin, tmax int) {
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	n, m := smax-smin, tmax-tmin
	if n == 0 || m == 0 {
		t.replace(smin, smax, tmin, tmax)
		return
	}

	// L[i*w+j] is the length of a longest common subsequence of x[smin+i:smax] and
	// y[tmin+j:tmax]. The last row and column are zero.
	w := m + 1
	t.cells = slices.Grow(t.cells[:0], (n+1)*w)[:(n+1)*w]
	L := t.cells
	clear(L[n*w:])
	for i := n - 1; i >= 0; i-- {
		e := x[smin+i]
		row, next := L[i*w:(i+1)*w], L[(i+1)*w:(i+2)*w]
		row[m] = 0
		for j := m - 1; j >= 0; j-- {
			if e == y[tmin+j] {
				row[j] = next[j+1] + 1
			} else {
				row[j] = max(next[j], row[j+1])
			}
		}
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case x[smin+i] == y[tmin+j]:
			i++
			j++
		case L[(i+1)*w+j] >= L[i*w+j+1]:
			t.rx[t.xidx[smin+i]] = true
			i++
		default:
			t.ry[t.yidx[tmin+j]] = true
			j++
		}
	}
	t.replace(smin+i, smax, tmin+j, tmax)
}

// replace marks x[smin:smax] as deleted and y[tmin:tmax] as inserted.
func (t *table) replace(smin, smax, tmin, tmax int) {
	for s := smin; s < smax; s++ {
		t.rx[t.xidx[s]] = true
	}
	for u := tmin; u < tmax; u++ {
		t.ry[t.yidx[u]] = true
	}
}

type pair struct{ s, t int }

// segments returns the pairs of indexes of the longest common subsequence of anchors in x and y,
// framed by the sentinels {0, 0} and {smax, tmax}.
//
// The longest common subsequence algorithm is as described in Thomas G. Szymanski, “A Special Case
// of the Maximal Common Subsequence Problem,” Princeton TR #170 (January 1975), available at
// https://research.swtch.com/tgs170.pdf.
func segments(smax, tmax int, nanchors int, counts []int, x, y []int) []pair {
	idx := make(map[int]int, nanchors)
	buf := make([]int, 3*nanchors)
	xi, buf := buf[:0:nanchors], buf[nanchors:]
	yi, buf := buf[:0:nanchors], buf[nanchors:]
	inv := buf[:0:nanchors]

	// xi[i] = increasing indexes of anchors in x.
	// yi[i] = increasing indexes of anchors in y.
	// inv[i] = index j such that x[xi[i]] = y[yi[j]].
	for t, e := range y[:tmax] {
		if counts[e] == 1+4 {
			idx[e] = len(yi)
			yi = append(yi, t)
		}
	}
	for s, e := range x[:smax] {
		if counts[e] == 1+4 {
			xi = append(xi, s)
			inv = append(inv, idx[e])
		}
	}

	// Algorithm A from Szymanski's paper with A = J = inv and B = [0, n).
	J := inv
	n := len(xi)
	T := make([]int, n)
	L := make([]int, n)
	for i := range T {
		T[i] = n + 1
	}
	for i := range n {
		k, _ := slices.BinarySearch(T, J[i])
		T[k] = J[i]
		L[i] = k + 1
	}
	k := 0
	for _, v := range L {
		k = max(k, v)
	}
	anchors := make([]pair, 2+k)
	anchors[1+k] = pair{smax, tmax}
	lastj := n
	for i := n - 1; i >= 0; i-- {
		if L[i] == k && J[i] < lastj {
			anchors[k] = pair{xi[i], yi[J[i]]}
			lastj = J[i]
			k--
		}
	}
	anchors[0] = pair{0, 0}
	return anchors
}
