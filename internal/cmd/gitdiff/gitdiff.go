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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff
//
// For text files, it prints a unified diff. With GITDIFF_WORDS=1, it prints the new version of the
// file with changed lines and words highlighted instead.
package main

import (
	"fmt"
	"os"

	"znkr.io/respdiff"
	"znkr.io/respdiff/render"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	old, err := read(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := read(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	s, err := respdiff.Diff(old, new, respdiff.MaxBytes(0))
	if err != nil {
		return err
	}
	x, y := respdiff.NewDocument(old), respdiff.NewDocument(new)

	fmt.Printf("diff --git a/%s b/%s\n", path, path)
	fmt.Printf("index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	fmt.Printf("--- a/%s\n", path)
	fmt.Printf("+++ b/%s\n", path)
	if os.Getenv("GITDIFF_WORDS") == "1" {
		return render.Highlight(os.Stdout, x, y, s)
	}
	_, err = os.Stdout.WriteString(render.Unified(x, y, s, 3))
	return err
}

func read(name string) (string, error) {
	if name == "/dev/null" {
		return "", nil
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func short(hex string) string {
	return hex[:min(10, len(hex))]
}
