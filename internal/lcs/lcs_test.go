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

package lcs

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []string
		limit int
		want  string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DDMDMIMMI",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "changed-middle",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "BAR", "baz"},
			want: "MDIM",
		},
		{
			name: "appended",
			x:    []string{"a", "b"},
			y:    []string{"a", "b", "c"},
			want: "MMI",
		},
		{
			name: "earliest-match",
			x:    []string{"a"},
			y:    []string{"a", "a"},
			want: "MI",
		},
		{
			name: "earliest-match-after-unique",
			x:    []string{"a", "a"},
			y:    []string{"v", "a"},
			want: "IMD",
		},
		{
			name: "swapped-blocks",
			x:    strings.Split("pqrsabcd", ""),
			y:    strings.Split("abcdpqrs", ""),
			want: "DDDDMMMMIIII",
		},
		{
			name:  "swapped-blocks-limited",
			x:     strings.Split("pqrsabcd", ""),
			y:     strings.Split("abcdpqrs", ""),
			limit: 10,
			want:  "DDDDMMMMIIII",
		},
		{
			name: "no-anchors",
			x:    strings.Split("ApqpqB", ""),
			y:    strings.Split("AqpqpB", ""),
			want: "MDMMMIM",
		},
		{
			name:  "no-anchors-limited",
			x:     strings.Split("ApqpqB", ""),
			y:     strings.Split("AqpqpB", ""),
			limit: 10,
			want:  "MDDDDIIIIM",
		},
		{
			name:  "anchored-limited",
			x:     strings.Split("ApqpqBxyz", ""),
			y:     strings.Split("AqpqpBzyx", ""),
			limit: 20,
			want:  "MDDDDIIIIMDDMII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := Diff(tt.x, tt.y, tt.limit)
			got := render(rx, ry, len(tt.x), len(tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestDiffRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		x := randomSeq(rng, rng.IntN(30), 1+rng.IntN(6))
		y := mutate(rng, x, 1+rng.IntN(6))
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			rx, ry := Diff(x, y, 0)
			checkConsistent(t, x, y, rx, ry)
			if got, want := matches(rx, len(x)), lcsLen(x, y); got != want {
				t.Errorf("Diff(%q, %q) found a common subsequence of length %d, want %d", x, y, got, want)
			}

			rx2, ry2 := Diff(x, y, 0)
			if !slices.Equal(rx, rx2) || !slices.Equal(ry, ry2) {
				t.Errorf("Diff(%q, %q) is not deterministic", x, y)
			}

			// With a tiny limit, the result needs to be valid, but not necessarily minimal.
			rx, ry = Diff(x, y, 16)
			checkConsistent(t, x, y, rx, ry)
		})
	}
}

// TestDiffOracle cross-checks the result against an independent Myers implementation. Ours is
// minimal, so it never needs more edits.
func TestDiffOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	for i := range 200 {
		x := randomSeq(rng, rng.IntN(60), 2+rng.IntN(10))
		y := mutate(rng, x, 1+rng.IntN(10))

		rx, _ := Diff(x, y, 0)
		got := len(x) + len(y) - 2*matches(rx, len(x))

		r1, r2, _ := dmp.DiffLinesToRunes(lines(x), lines(y))
		want := 0
		for _, d := range dmp.DiffMainRunes(r1, r2, false) {
			if d.Type != diffmatchpatch.DiffEqual {
				want += utf8.RuneCountInString(d.Text)
			}
		}
		if got > want {
			t.Errorf("case %d: Diff(%q, %q) needs %d edits, diffmatchpatch needs only %d", i, x, y, got, want)
		}
	}
}

func BenchmarkDiff(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, n := range []int{100, 1000, 5000} {
		x := randomSeq(rng, n, n/4)
		y := mutate(rng, x, n/10)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Diff(x, y, DefaultCellLimit)
			}
		})
	}
}

func render(rx, ry []bool, n, m int) string {
	var sb strings.Builder
	for s, t := 0, 0; s < n || t < m; {
		if rx[s] {
			sb.WriteRune('D')
			s++
		} else if ry[t] {
			sb.WriteRune('I')
			t++
		} else {
			sb.WriteRune('M')
			s++
			t++
		}
	}
	return sb.String()
}

// checkConsistent verifies that unflagged elements pair up and are equal.
func checkConsistent(t *testing.T, x, y []string, rx, ry []bool) {
	t.Helper()
	if len(rx) != len(x)+1 || len(ry) != len(y)+1 || rx[len(x)] || ry[len(y)] {
		t.Fatalf("invalid result vector borders")
	}
	var xs, ys []string
	for s, del := range rx[:len(x)] {
		if !del {
			xs = append(xs, x[s])
		}
	}
	for u, ins := range ry[:len(y)] {
		if !ins {
			ys = append(ys, y[u])
		}
	}
	if diff := cmp.Diff(xs, ys); diff != "" {
		t.Errorf("matched elements differ [-x,+y]:\n%s", diff)
	}
}

func matches(rx []bool, n int) int {
	k := 0
	for _, del := range rx[:n] {
		if !del {
			k++
		}
	}
	return k
}

// lcsLen is a straightforward reference implementation.
func lcsLen(x, y []string) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for i := range x {
		for j := range y {
			if x[i] == y[j] {
				cur[j+1] = prev[j] + 1
			} else {
				cur[j+1] = max(prev[j+1], cur[j])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

func randomSeq(rng *rand.Rand, n, alphabet int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + rng.IntN(max(1, alphabet))))
	}
	return out
}

// mutate returns a copy of x with some elements deleted, inserted, or replaced.
func mutate(rng *rand.Rand, x []string, alphabet int) []string {
	var out []string
	for _, e := range x {
		switch rng.IntN(6) {
		case 0:
			// deleted
		case 1:
			out = append(out, string(rune('A'+rng.IntN(alphabet))), e)
		case 2:
			out = append(out, string(rune('a'+rng.IntN(alphabet))))
		default:
			out = append(out, e)
		}
	}
	if rng.IntN(2) == 0 {
		out = append(out, string(rune('a'+rng.IntN(alphabet))))
	}
	return out
}

func lines(x []string) string {
	var sb strings.Builder
	for _, e := range x {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	return sb.String()
}
