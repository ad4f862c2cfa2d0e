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
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Show every change to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) watch(ctx context.Context, out io.Writer, name string) error {
	path, err := filepath.Abs(name)
	if err != nil {
		return errors.Wrap(err, "resolving path")
	}
	st, err := newStream[string](a, out, "File")
	if err != nil {
		return err
	}
	if err := a.reload(st, path); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer w.Close()
	// Watch the directory, many editors replace a file instead of writing to it.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watching %s", path)
	}
	a.log.Debug("watching", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			a.log.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			if err := a.reload(st, path); err != nil {
				a.msg.Errorf("%s\n", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", "err", err)
		}
	}
}

// reload reads the file at path and shows it. A missing file is skipped, it's usually in the
// middle of being replaced.
func (a *app) reload(st *stream[string], path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Debug("file disappeared", "path", path)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	return st.show(path, path+" "+time.Now().Format(time.TimeOnly), string(b))
}
