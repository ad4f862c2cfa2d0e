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
	"encoding/json"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"znkr.io/respdiff"
	"znkr.io/respdiff/internal/offsets"
	"znkr.io/respdiff/render"
)

const (
	formatHighlight = "highlight"
	formatUnified   = "unified"
	formatJSON      = "json"
)

// app holds the global flags and the state shared by all commands.
type app struct {
	configPath string
	maxBytes   int
	words      string
	units      string
	format     string
	context    int
	noColor    bool
	verbose    bool
	colors     colorConfig

	log *slog.Logger
	msg *printer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "respdiff",
		Short:         "respdiff - show what changed since the previous version of a document",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "path to a TOML configuration file")
	f.IntVar(&a.maxBytes, "max-bytes", respdiff.DefaultMaxBytes, "documents larger than this are not compared (0 disables the limit)")
	f.StringVar(&a.words, "words", "whitespace", "how changed lines are split into words: whitespace or uax29")
	f.StringVar(&a.units, "units", "bytes", "unit of word offsets in json output: bytes, runes, utf16, or graphemes")
	f.StringVar(&a.format, "format", formatHighlight, "output format: highlight, unified, or json")
	f.IntVar(&a.context, "context", 3, "number of context lines in unified output")
	f.BoolVar(&a.noColor, "no-color", false, "disable colors")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "print debug information")

	cmd.AddCommand(newFilesCmd(a), newWatchCmd(a), newPollCmd(a))
	return cmd
}

// setup merges the configuration file into the flags that weren't set explicitly.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.msg = newPrinter(cmd.ErrOrStderr())

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if cfg.MaxBytes != nil && !flags.Changed("max-bytes") {
		a.maxBytes = *cfg.MaxBytes
	}
	if cfg.Words != "" && !flags.Changed("words") {
		a.words = cfg.Words
	}
	if cfg.Units != "" && !flags.Changed("units") {
		a.units = cfg.Units
	}
	if cfg.Context != nil && !flags.Changed("context") {
		a.context = *cfg.Context
	}
	a.colors = cfg.Colors
	a.log.Debug("configuration", "config", a.configPath, "max-bytes", a.maxBytes, "words", a.words, "units", a.units, "format", a.format)

	switch a.format {
	case formatHighlight, formatUnified, formatJSON:
	default:
		return errors.Errorf("unknown output format %q", a.format)
	}
	_, err = a.diffOptions()
	return err
}

func (a *app) diffOptions() ([]respdiff.Option, error) {
	opts := []respdiff.Option{respdiff.MaxBytes(a.maxBytes)}
	switch a.words {
	case "whitespace":
		opts = append(opts, respdiff.WordSplit(respdiff.SplitWhitespace))
	case "uax29":
		opts = append(opts, respdiff.WordSplit(respdiff.SplitWords))
	default:
		return nil, errors.Errorf("unknown word splitter %q", a.words)
	}
	u, err := offsets.Parse(a.units)
	if err != nil {
		return nil, errors.Wrap(err, "invalid units")
	}
	// Highlighting slices lines by byte offsets.
	if a.format == formatJSON {
		opts = append(opts, respdiff.Units(u))
	}
	return opts, nil
}

func (a *app) renderOptions() []render.Option {
	if a.noColor || color.NoColor {
		return []render.Option{render.Plain()}
	}
	var opts []render.Option
	if c := a.colors.Insert; c != nil {
		opts = append(opts, render.Inserts(c...))
	}
	if c := a.colors.Delete; c != nil {
		opts = append(opts, render.Deletes(c...))
	}
	if c := a.colors.Change; c != nil {
		opts = append(opts, render.Changes(c...))
	}
	if c := a.colors.Words; c != nil {
		opts = append(opts, render.Words(c...))
	}
	return opts
}

// write writes the script s for x and y in the selected format.
func (a *app) write(w io.Writer, x, y respdiff.Document, s respdiff.Script) error {
	switch a.format {
	case formatUnified:
		_, err := io.WriteString(w, render.Unified(x, y, s, a.context))
		return err
	case formatJSON:
		return json.NewEncoder(w).Encode(s)
	default:
		return render.Highlight(w, x, y, s, a.renderOptions()...)
	}
}
