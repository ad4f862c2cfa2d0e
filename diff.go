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

package respdiff

import (
	"znkr.io/respdiff/internal/config"
	"znkr.io/respdiff/internal/lcs"
	"znkr.io/respdiff/internal/rvecs"
)

// Diff compares the old text x with the new text y line by line and refines every changed line
// word by word.
//
// Both texts are checked against the size ceiling before anything else happens. If either
// exceeds it, Diff returns an [*OversizedError].
//
// The following options are supported: [MaxBytes], [Optimal], [WordSplit], [Units]
func Diff(x, y string, opts ...Option) (Script, error) {
	cfg := config.FromOptions(opts, config.MaxBytes|config.Optimal|config.WordSplit|config.Units)
	if err := checkSize(x, cfg.MaxBytes); err != nil {
		return nil, err
	}
	if err := checkSize(y, cfg.MaxBytes); err != nil {
		return nil, err
	}
	return diff(NewDocument(x), NewDocument(y), cfg), nil
}

func diff(x, y Document, cfg config.Config) Script {
	if x.text == y.text {
		return Script{{Op: Equal, X: Range{0, x.Len()}, Y: Range{0, y.Len()}}}
	}
	s := diffLines(x.lines, y.lines, cfg)
	for i, e := range s {
		if e.Op != Change {
			continue
		}
		words := make([][]WordSpan, e.Y.Len())
		for k := range words {
			words[k] = refine(x.lines[e.X.Pos+k], y.lines[e.Y.Pos+k], cfg)
		}
		s[i].Words = words
	}
	return s
}

// DiffLines compares the lines in x and y and returns the edits necessary to convert from one to
// the other. The returned edits don't contain word spans.
//
// Lines are compared for exact equality. Among all minimal scripts, DiffLines returns the one that
// matches lines as early as possible. A gap between two runs of equal lines results in:
//
//   - Delete if it only contains old lines,
//   - Insert if it only contains new lines,
//   - Change otherwise, pairing old and new lines positionally. If one side has more lines,
//     the excess is reported as a Delete or Insert directly after the Change.
//
// If x and y are identical, the result is a single Equal edit (or empty if both are empty).
//
// The following option is supported: [Optimal]
func DiffLines(x, y []string, opts ...Option) Script {
	cfg := config.FromOptions(opts, config.Optimal)
	return diffLines(x, y, cfg)
}

func diffLines(x, y []string, cfg config.Config) Script {
	rx, ry := lcs.Diff(x, y, cfg.CellLimit)

	// Count the number of edits first, this is cheap and allows us to preallocate the script.
	nedits := 0
	for r := range rvecs.Runs(rx, ry) {
		if r.Match {
			nedits++
			continue
		}
		k, l := r.S1-r.S0, r.T1-r.T0
		if k > 0 && l > 0 {
			nedits++
		}
		if k != l {
			nedits++
		}
	}
	if nedits == 0 {
		return nil
	}

	out := make(Script, 0, nedits)
	for r := range rvecs.Runs(rx, ry) {
		if r.Match {
			out = append(out, Edit{Op: Equal, X: Range{r.S0, r.S1}, Y: Range{r.T0, r.T1}})
			continue
		}
		c := min(r.S1-r.S0, r.T1-r.T0)
		s, t := r.S0+c, r.T0+c
		if c > 0 {
			out = append(out, Edit{Op: Change, X: Range{r.S0, s}, Y: Range{r.T0, t}})
		}
		if s < r.S1 {
			out = append(out, Edit{Op: Delete, X: Range{s, r.S1}, Y: Range{t, t}})
		}
		if t < r.T1 {
			out = append(out, Edit{Op: Insert, X: Range{s, s}, Y: Range{t, r.T1}})
		}
	}
	return out
}
