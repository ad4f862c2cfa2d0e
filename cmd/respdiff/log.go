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

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const indent = "  "

// printer writes status messages for humans, each prefixed with a colored symbol.
type printer struct {
	w io.Writer

	blue, green, red, yellow *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:      w,
		blue:   color.New(color.FgBlue),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
}

// Infof prints information.
func (p *printer) Infof(msg string, v ...any) {
	fmt.Fprintf(p.w, "%s%s %s", indent, p.blue.Sprint("•"), fmt.Sprintf(msg, v...))
}

// Successf prints a success message.
func (p *printer) Successf(msg string, v ...any) {
	fmt.Fprintf(p.w, "%s%s %s", indent, p.green.Sprint("✔"), fmt.Sprintf(msg, v...))
}

// Warnf prints a warning.
func (p *printer) Warnf(msg string, v ...any) {
	fmt.Fprintf(p.w, "%s%s %s", indent, p.yellow.Sprint("•"), fmt.Sprintf(msg, v...))
}

// Errorf prints an error.
func (p *printer) Errorf(msg string, v ...any) {
	fmt.Fprintf(p.w, "%s%s %s", indent, p.red.Sprint("⨯"), fmt.Sprintf(msg, v...))
}
