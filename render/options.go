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

package render

import "github.com/fatih/color"

// Option configures the styles used by [Highlight].
//
// Styles are given as SGR parameters, e.g. Inserts(32) for a green foreground or Words(1, 4) for
// bold and underlined text.
type Option func(*styles)

type styles struct {
	insert []color.Attribute
	delete []color.Attribute
	change []color.Attribute
	words  []color.Attribute // Added to the insert or change style for word spans.
	plain  bool
}

func newStyles(opts []Option) *styles {
	st := &styles{
		insert: []color.Attribute{color.FgGreen},
		delete: []color.Attribute{color.FgRed},
		change: []color.Attribute{color.FgBlue},
		words:  []color.Attribute{color.ReverseVideo},
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Inserts sets the style of inserted lines and inserted words.
func Inserts(params ...int) Option {
	attrs := attributes(params)
	return func(st *styles) {
		st.insert = attrs
	}
}

// Deletes sets the style of deleted lines.
func Deletes(params ...int) Option {
	attrs := attributes(params)
	return func(st *styles) {
		st.delete = attrs
	}
}

// Changes sets the style of changed lines and changed words.
func Changes(params ...int) Option {
	attrs := attributes(params)
	return func(st *styles) {
		st.change = attrs
	}
}

// Words sets the parameters that are added to the insert or change style to highlight word spans
// within a changed line.
func Words(params ...int) Option {
	attrs := attributes(params)
	return func(st *styles) {
		st.words = attrs
	}
}

// Plain disables all styles. Changes are then only visible from the line markers.
func Plain() Option {
	return func(st *styles) {
		st.plain = true
	}
}

func attributes(params []int) []color.Attribute {
	attrs := make([]color.Attribute, len(params))
	for i, p := range params {
		attrs[i] = color.Attribute(p)
	}
	return attrs
}

// color returns a color for attrs that ignores the terminal detection of the color package; the
// caller decides about colors with [Plain].
func (st *styles) color(attrs ...[]color.Attribute) *color.Color {
	c := color.New()
	n := 0
	for _, a := range attrs {
		c.Add(a...)
		n += len(a)
	}
	if st.plain || n == 0 {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}
