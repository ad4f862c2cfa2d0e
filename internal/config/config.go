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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// respdiff.Option.
package config

import (
	"znkr.io/respdiff/internal/lcs"
	"znkr.io/respdiff/internal/offsets"
	"znkr.io/respdiff/internal/tokens"
)

// DefaultMaxBytes is the default size ceiling for documents.
const DefaultMaxBytes = 750_000

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Documents larger than MaxBytes are rejected. A value <= 0 disables the check.
	MaxBytes int

	// Maximum size of an LCS table, <= 0 means unlimited.
	CellLimit int

	// Split splits a line into tokens for word level comparison.
	Split func(string) []string

	// Unit of the offsets reported for word spans and lines.
	Unit offsets.Unit
}

// Default is the default configuration.
var Default = Config{
	MaxBytes:  DefaultMaxBytes,
	CellLimit: lcs.DefaultCellLimit,
	Split:     tokens.Whitespace,
	Unit:      offsets.Bytes,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	MaxBytes Flag = 1 << iota
	Optimal
	WordSplit
	Units
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case MaxBytes:
		return "respdiff.MaxBytes"
	case Optimal:
		return "respdiff.Optimal"
	case WordSplit:
		return "respdiff.WordSplit"
	case Units:
		return "respdiff.Units"
	default:
		panic("never reached")
	}
}
