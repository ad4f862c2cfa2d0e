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
	"fmt"
	"io"

	"github.com/pkg/errors"
	"znkr.io/respdiff"
)

// stream shows a sequence of documents, each compared with the previous one of the same key.
type stream[K comparable] struct {
	app     *app
	out     io.Writer
	noun    string // What the documents are, for messages.
	session *respdiff.Session[K]
}

func newStream[K comparable](a *app, out io.Writer, noun string) (*stream[K], error) {
	opts, err := a.diffOptions()
	if err != nil {
		return nil, err
	}
	return &stream[K]{
		app:     a,
		out:     out,
		noun:    noun,
		session: respdiff.NewSession[K](opts...),
	}, nil
}

// show compares text with the previous document and writes the result under the given title.
func (st *stream[K]) show(key K, title, text string) error {
	_, prev := st.session.Last()
	s, err := st.session.Diff(key, text)
	if errors.Is(err, respdiff.ErrTooLarge) {
		st.app.log.Debug("not compared", "key", key, "err", err)
		st.app.msg.Warnf("%s: %s is too large to diff\n", title, st.noun)
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(st.out, "==> %s <==\n", title); err != nil {
		return err
	}
	if !s.Plain() && !s.Changed() {
		st.app.msg.Infof("%s: unchanged\n", title)
		return nil
	}
	st.app.log.Debug("compared", "key", key, "edits", len(s), "plain", s.Plain())
	return st.app.write(st.out, prev, respdiff.NewDocument(text), s)
}
