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

package respdiff_test

import (
	"fmt"
	"net/url"

	"znkr.io/respdiff"
)

// Compare two versions of a text and print the edits with the changed words.
func ExampleDiff() {
	x := "name: widget\nprice: 10\nstock: 3\n"
	y := "name: widget\nprice: 12\nstock: 3\ncolor: red\n"

	script, err := respdiff.Diff(x, y)
	if err != nil {
		panic(err)
	}
	lines := respdiff.Tokenize(y)
	for _, e := range script {
		fmt.Printf("%v x[%d,%d) y[%d,%d)\n", e.Op, e.X.Pos, e.X.End, e.Y.Pos, e.Y.End)
		for i, spans := range e.Words {
			for _, w := range spans {
				fmt.Printf("  %q\n", lines[e.Y.Pos+i][w.Start:w.End])
			}
		}
	}
	// Output:
	// Equal x[0,1) y[0,1)
	// Change x[1,2) y[1,2)
	//   "12"
	// Equal x[2,3) y[2,3)
	// Insert x[3,3) y[3,4)
	// Equal x[3,4) y[4,5)
}

// Highlight the difference between two lines.
func ExampleRefine() {
	x := "the quick brown fox"
	y := "the quick red fox jumps"
	for _, w := range respdiff.Refine(x, y) {
		fmt.Printf("%v %q\n", w.Op, y[w.Start:w.End])
	}
	// Output:
	// Change "red"
	// Insert " jumps"
}

// Compare successive responses. Responses are only compared if they were received from the same
// endpoint.
func ExampleSession() {
	s := respdiff.NewSession[respdiff.Endpoint]()
	responses := []struct{ url, body string }{
		{"https://api.example.com/status", "status: ok\nload: 0.42"},
		{"https://api.example.com/status", "status: ok\nload: 0.57"},
		{"https://example.org/", "<html></html>"},
	}
	for _, r := range responses {
		u, err := url.Parse(r.url)
		if err != nil {
			panic(err)
		}
		key := respdiff.EndpointFromURL(u)
		script, err := s.Diff(key, r.body)
		if err != nil {
			panic(err)
		}
		if script.Plain() {
			fmt.Printf("%v: nothing to compare\n", key)
			continue
		}
		for _, e := range script {
			fmt.Printf("%v: %v lines %d-%d\n", key, e.Op, e.Y.Pos+1, e.Y.End)
		}
	}
	// Output:
	// https://api.example.com:443: nothing to compare
	// https://api.example.com:443: Equal lines 1-1
	// https://api.example.com:443: Change lines 2-2
	// https://example.org:443: nothing to compare
}
