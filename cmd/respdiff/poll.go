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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"znkr.io/respdiff"
)

var pollExample = `
 * Fetch a status page every 5 seconds and show how it changes
 respdiff poll --interval 5s https://example.com/status

 * Fetch an API endpoint three times
 respdiff poll --count 3 --words uax29 https://example.com/api/items`

func newPollCmd(a *app) *cobra.Command {
	var interval time.Duration
	var count int
	cmd := &cobra.Command{
		Use:     "poll <url>",
		Short:   "Fetch a URL periodically and show how the response changes",
		Example: pollExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.poll(cmd.Context(), cmd.OutOrStdout(), http.DefaultClient, args[0], interval, count)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "minimum time between two requests")
	cmd.Flags().IntVar(&count, "count", 0, "number of requests, 0 polls until interrupted")
	return cmd
}

func (a *app) poll(ctx context.Context, out io.Writer, client *http.Client, rawURL string, interval time.Duration, count int) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, "invalid url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("unsupported url %q, want http or https", rawURL)
	}
	st, err := newStream[respdiff.Endpoint](a, out, "Response")
	if err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	for i := 0; count <= 0 || i < count; i++ {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "waiting for next request")
		}
		if err := a.fetch(ctx, st, client, u); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			a.msg.Errorf("%s\n", err)
		}
	}
	return nil
}

// fetch requests u and shows the response body. Responses are keyed by the endpoint they were
// finally received from, after redirects.
func (a *app) fetch(ctx context.Context, st *stream[respdiff.Endpoint], client *http.Client, u *url.URL) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if a.maxBytes > 0 {
		// One byte more than allowed is enough to reject the response.
		body = io.LimitReader(resp.Body, int64(a.maxBytes)+1)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}
	a.log.Debug("response", "url", resp.Request.URL.String(), "status", resp.StatusCode, "bytes", len(b))

	key := respdiff.EndpointFromURL(resp.Request.URL)
	title := fmt.Sprintf("%s %s: %s", req.Method, resp.Request.URL, resp.Status)
	return st.show(key, title, string(b))
}
