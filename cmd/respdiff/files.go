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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"znkr.io/respdiff"
)

var filesExample = `
 * Compare two responses saved to disk
 respdiff files before.json after.json

 * Print a unified diff
 respdiff files --format unified before.json after.json`

func newFilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "files <old> <new>",
		Short:   "Compare two files",
		Example: filesExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.files(cmd, args[0], args[1])
		},
	}
}

func (a *app) files(cmd *cobra.Command, oldPath, newPath string) error {
	old, err := os.ReadFile(oldPath)
	if err != nil {
		return errors.Wrap(err, "reading old file")
	}
	new, err := os.ReadFile(newPath)
	if err != nil {
		return errors.Wrap(err, "reading new file")
	}
	opts, err := a.diffOptions()
	if err != nil {
		return err
	}

	s, err := respdiff.Diff(string(old), string(new), opts...)
	if errors.Is(err, respdiff.ErrTooLarge) {
		a.log.Debug("not compared", "err", err)
		a.msg.Warnf("File is too large to diff\n")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "comparing files")
	}
	x, y := respdiff.NewDocument(string(old)), respdiff.NewDocument(string(new))
	if a.verbose {
		if err := s.Check(x.Len(), y.Len()); err != nil {
			return errors.Wrap(err, "invalid script")
		}
	}
	if err := a.write(cmd.OutOrStdout(), x, y, s); err != nil {
		return err
	}
	if !s.Changed() {
		a.msg.Successf("Files are identical\n")
	}
	return nil
}
