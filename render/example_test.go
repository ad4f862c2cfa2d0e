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

package render_test

import (
	"fmt"
	"os"

	"znkr.io/respdiff"
	"znkr.io/respdiff/render"
)

func ExampleUnified() {
	x := "name: widget\nprice: 10\n"
	y := "name: widget\nprice: 12\n"
	s, err := respdiff.Diff(x, y)
	if err != nil {
		panic(err)
	}
	fmt.Print(render.Unified(respdiff.NewDocument(x), respdiff.NewDocument(y), s, 3))
	// Output:
	// @@ -1,2 +1,2 @@
	//  name: widget
	// -price: 10
	// +price: 12
}

func ExampleHighlight() {
	x := "name: widget\nprice: 10\n"
	y := "name: widget\nprice: 12\nstock: 3\n"
	s, err := respdiff.Diff(x, y)
	if err != nil {
		panic(err)
	}
	err = render.Highlight(os.Stdout, respdiff.NewDocument(x), respdiff.NewDocument(y), s, render.Plain())
	if err != nil {
		panic(err)
	}
	// Output:
	//  name: widget
	// ~price: 12
	// +stock: 3
}
