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
	"net"
	"net/url"
	"strconv"
	"strings"

	"znkr.io/respdiff/internal/config"
)

// Session compares every document with the previous one of the same stream.
//
// A session stores the last document together with its comparability key K. A new document is
// only compared with the stored one if their keys are equal, which keeps documents from unrelated
// sources apart. [Endpoint] is a key for HTTP responses.
//
// A Session is not safe for concurrent use. Use one session per stream of documents and
// serialize calls to it.
type Session[K comparable] struct {
	cfg  config.Config
	key  K
	last *Document // nil if there is nothing to compare against
}

// NewSession creates a session without a previous document.
//
// The following options are supported: [MaxBytes], [Optimal], [WordSplit], [Units]
func NewSession[K comparable](opts ...Option) *Session[K] {
	cfg := config.FromOptions(opts, config.MaxBytes|config.Optimal|config.WordSplit|config.Units)
	return &Session[K]{cfg: cfg}
}

// Diff compares text with the previous document and stores text as the new previous document.
//
// If there is no previous document, if it was stored under a different key, or if it's empty,
// there is nothing to compare against and Diff returns a plain script: a single Equal edit over
// all lines of text with an empty old range (see [Script.Plain]). Otherwise, the result is the
// same as for [Diff].
//
// If text exceeds the size ceiling, Diff returns an [*OversizedError] and forgets the previous
// document, so that the next call returns a plain script.
//
// The session is updated exactly once per call, after the result has been computed.
func (s *Session[K]) Diff(key K, text string) (Script, error) {
	if err := checkSize(text, s.cfg.MaxBytes); err != nil {
		s.key, s.last = key, nil
		return nil, err
	}
	doc := NewDocument(text)
	var out Script
	if s.last == nil || s.key != key || s.last.text == "" {
		out = Script{{Op: Equal, X: Range{0, 0}, Y: Range{0, doc.Len()}}}
	} else {
		out = diff(*s.last, doc, s.cfg)
	}
	s.key, s.last = key, &doc
	return out, nil
}

// Last returns the stored document and its key. The document is absent (the zero Document) if
// there is nothing to compare against.
func (s *Session[K]) Last() (K, Document) {
	if s.last == nil {
		return s.key, Document{}
	}
	return s.key, *s.last
}

// Reset forgets the stored document.
func (s *Session[K]) Reset() {
	var zero K
	s.key, s.last = zero, nil
}

// Endpoint identifies the network service a response was received from. Two responses are
// comparable if they were received from the same endpoint.
type Endpoint struct {
	Protocol string // URL scheme, e.g. "https"
	Host     string
	Port     int
}

// EndpointFromURL returns the endpoint of u. Scheme and host are lower cased and a missing port
// is derived from the scheme.
func EndpointFromURL(u *url.URL) Endpoint {
	e := Endpoint{
		Protocol: strings.ToLower(u.Scheme),
		Host:     strings.ToLower(u.Hostname()),
	}
	e.Port, _ = strconv.Atoi(u.Port())
	if e.Port == 0 {
		switch e.Protocol {
		case "http", "ws":
			e.Port = 80
		case "https", "wss":
			e.Port = 443
		}
	}
	return e
}

func (e Endpoint) String() string {
	return e.Protocol + "://" + net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}
