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
	"strings"

	"znkr.io/respdiff/internal/config"
	"znkr.io/respdiff/internal/lcs"
	"znkr.io/respdiff/internal/offsets"
	"znkr.io/respdiff/internal/rvecs"
)

// Refine compares the old line x with the new line y word by word and returns the regions of y
// that differ, in order.
//
// Both lines are split into tokens (see [WordSplit]) and compared the same way as lines are
// compared in [DiffLines]. Consecutive new tokens between two matches become one span, which is a
// Change if old tokens were removed in the same place, and an Insert otherwise. Removed tokens
// without a replacement are not reported.
//
// The following options are supported: [Optimal], [WordSplit], [Units]
func Refine(x, y string, opts ...Option) []WordSpan {
	cfg := config.FromOptions(opts, config.Optimal|config.WordSplit|config.Units)
	return refine(x, y, cfg)
}

func refine(x, y string, cfg config.Config) []WordSpan {
	if x == y {
		return nil
	}
	xt, yt := cfg.Split(x), cfg.Split(y)
	rx, ry := lcs.Diff(xt, yt, cfg.CellLimit)

	var spans []WordSpan
	cur := offsets.NewCursor(y, cfg.Unit)
	emit := func(op Op, start, end int) {
		if start < end {
			spans = append(spans, WordSpan{Op: op, Start: cur.At(start), End: cur.At(end)})
		}
	}

	pos := 0 // byte offset in y after the last located token
	for r := range rvecs.Runs(rx, ry) {
		op := Insert
		if r.S1 > r.S0 {
			op = Change
		}
		start, end := -1, -1 // current span
		for t := r.T0; t < r.T1; t++ {
			at, ok := locate(y, pos, yt, t)
			if !ok {
				continue
			}
			pos = at + len(yt[t])
			if r.Match {
				continue
			}
			if start >= 0 && at != end {
				// Something in between couldn't be located, don't highlight it.
				emit(op, start, end)
				start = -1
			}
			if start < 0 {
				start = at
			}
			end = pos
		}
		if start >= 0 {
			emit(op, start, end)
		}
	}
	return spans
}

// locate returns the byte offset of the token toks[t] in line. The token is expected at pos. If
// it's not there, locate searches forward, but not beyond the point where the following token
// would be found. It returns false if the token can't be located.
func locate(line string, pos int, toks []string, t int) (int, bool) {
	tok := toks[t]
	rest := line[pos:]
	if strings.HasPrefix(rest, tok) {
		return pos, true
	}
	i := strings.Index(rest, tok)
	if i < 0 {
		return 0, false
	}
	if t+1 < len(toks) && toks[t+1] != "" {
		if j := strings.Index(rest, toks[t+1]); j >= 0 && j < i {
			return 0, false
		}
	}
	return pos + i, true
}
