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

package offsets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[Unit]int
	}{
		{
			name: "empty",
			in:   "",
			want: map[Unit]int{Bytes: 0, Runes: 0, UTF16: 0, Graphemes: 0},
		},
		{
			name: "ascii",
			in:   "hello",
			want: map[Unit]int{Bytes: 5, Runes: 5, UTF16: 5, Graphemes: 5},
		},
		{
			name: "latin",
			in:   "h\u00e9llo",
			want: map[Unit]int{Bytes: 6, Runes: 5, UTF16: 5, Graphemes: 5},
		},
		{
			name: "astral",
			in:   "\U0001F600",
			want: map[Unit]int{Bytes: 4, Runes: 1, UTF16: 2, Graphemes: 1},
		},
		{
			name: "combining",
			in:   "e\u0301",
			want: map[Unit]int{Bytes: 3, Runes: 2, UTF16: 2, Graphemes: 1},
		},
		{
			name: "flag",
			in:   "\U0001F1E9\U0001F1EA",
			want: map[Unit]int{Bytes: 8, Runes: 2, UTF16: 4, Graphemes: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make(map[Unit]int)
			for u := range tt.want {
				got[u] = Count(tt.in, u)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Count(%q, ...) differs [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestCursor(t *testing.T) {
	s := "a\U0001F600 b\U0001F600 c"
	for _, u := range []Unit{Bytes, Runes, UTF16, Graphemes} {
		t.Run(u.String(), func(t *testing.T) {
			c := NewCursor(s, u)
			for _, b := range []int{0, 1, 5, 5, 6, len(s)} {
				if got, want := c.At(b), Count(s[:b], u); got != want {
					t.Errorf("At(%d) = %d, want %d", b, got, want)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, u := range []Unit{Bytes, Runes, UTF16, Graphemes} {
		got, err := Parse(u.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", u, err)
		}
		if got != u {
			t.Errorf("Parse(%q) = %v, want %v", u, got, u)
		}
	}
	if _, err := Parse("columns"); err == nil {
		t.Errorf("Parse(%q) succeeded, want error", "columns")
	}
}
