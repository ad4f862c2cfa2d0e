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

// respdiff shows how a text document changed since its previous version.
//
//	respdiff files OLD NEW     compare two files
//	respdiff watch FILE        show every change to FILE
//	respdiff poll URL          fetch URL periodically and show how the response changes
//
// Changed lines and words are highlighted with colors if the output is a terminal. Settings can be
// stored in a TOML file passed with --config, see [fileConfig].
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		newPrinter(color.Error).Errorf("%s\n", err)
		stop()
		os.Exit(1)
	}
}
