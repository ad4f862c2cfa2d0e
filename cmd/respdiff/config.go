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
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileConfig is the content of the configuration file. Flags given on the command line take
// precedence.
//
//	max_bytes = 750000
//	words = "uax29"      # or "whitespace"
//	units = "utf16"      # bytes, runes, utf16, or graphemes
//	context = 3
//
//	[colors]             # SGR parameters
//	insert = [32]
//	delete = [31]
//	change = [34]
//	words = [1, 7]
type fileConfig struct {
	MaxBytes *int        `toml:"max_bytes"`
	Words    string      `toml:"words"`
	Units    string      `toml:"units"`
	Context  *int        `toml:"context"`
	Colors   colorConfig `toml:"colors"`
}

type colorConfig struct {
	Insert []int `toml:"insert"`
	Delete []int `toml:"delete"`
	Change []int `toml:"change"`
	Words  []int `toml:"words"`
}

// loadConfig reads the configuration file at path. An empty path results in an empty
// configuration.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "reading configuration")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("unknown configuration key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}
