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

package config_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"znkr.io/respdiff"
	"znkr.io/respdiff/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "max-bytes",
			opts: []config.Option{
				respdiff.MaxBytes(100),
			},
			want: config.Config{
				MaxBytes:  100,
				CellLimit: config.Default.CellLimit,
				Unit:      config.Default.Unit,
			},
		},
		{
			name: "max-bytes-disabled",
			opts: []config.Option{
				respdiff.MaxBytes(-1),
			},
			want: config.Config{
				MaxBytes:  0,
				CellLimit: config.Default.CellLimit,
				Unit:      config.Default.Unit,
			},
		},
		{
			name: "optimal",
			opts: []config.Option{
				respdiff.Optimal(),
			},
			want: config.Config{
				MaxBytes:  config.Default.MaxBytes,
				CellLimit: 0,
				Unit:      config.Default.Unit,
			},
		},
		{
			name: "override",
			opts: []config.Option{
				respdiff.Units(respdiff.Runes),
				respdiff.MaxBytes(5),
				respdiff.Units(respdiff.UTF16),
			},
			want: config.Config{
				MaxBytes:  5,
				CellLimit: config.Default.CellLimit,
				Unit:      respdiff.UTF16,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.MaxBytes|config.Optimal|config.WordSplit|config.Units)
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(config.Config{}, "Split")); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsWordSplit(t *testing.T) {
	cfg := config.FromOptions([]config.Option{respdiff.WordSplit(strings.Fields)}, config.WordSplit)
	if diff := cmp.Diff([]string{"a", "b"}, cfg.Split(" a  b ")); diff != "" {
		t.Errorf("Split(...) differs [-want,+got]:\n%s", diff)
	}

	cfg = config.FromOptions([]config.Option{respdiff.WordSplit(nil)}, config.WordSplit)
	if diff := cmp.Diff([]string{" ", "a", "  ", "b", " "}, cfg.Split(" a  b ")); diff != "" {
		t.Errorf("default Split(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromOptions(...) with a disallowed option didn't panic")
		}
	}()
	config.FromOptions([]config.Option{respdiff.MaxBytes(1)}, config.Optimal)
}
