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

// Package unixpatch applies unified diffs with the patch(1) tool to check that they are valid.
//
// This package is only for testing.
package unixpatch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Available reports whether patch(1) can be found in PATH.
func Available() bool {
	_, err := exec.LookPath("patch")
	return err == nil
}

// Patch applies the unified diff to orig and returns the result.
func Patch(orig, diff string) (string, error) {
	// patch doesn't write an output file for an empty diff.
	if diff == "" {
		return orig, nil
	}

	dir, err := os.MkdirTemp("", "respdiff-patch-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	files := map[string]string{
		"patch": diff,
		"orig":  orig,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %v", name, err)
		}
	}

	cmd := exec.Command("patch", "--unified", "--quiet", "--input=patch", "--output=out", "orig")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%s: %v\n%s", cmd, err, out)
	}

	out, err := os.ReadFile(filepath.Join(dir, "out"))
	if err != nil {
		return "", fmt.Errorf("reading patched file: %v", err)
	}
	return string(out), nil
}
