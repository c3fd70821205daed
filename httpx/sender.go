/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


// Package httpx adapts dcall to net/http: a dispatch.Sender for clients and
// an envelope writer for servers.
package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"dirpx.dev/dcall/dispatch"
)

// DefaultMaxBodyBytes bounds response bodies read by Sender.
const DefaultMaxBodyBytes = 10 << 20

// Sender implements dispatch.Sender on top of an *http.Client.
type Sender struct {
	client  *http.Client
	maxBody int64
}

var _ dispatch.Sender = (*Sender)(nil)

// NewSender wraps c; nil means http.DefaultClient.
func NewSender(c *http.Client) *Sender {
	if c == nil {
		c = http.DefaultClient
	}
	return &Sender{client: c, maxBody: DefaultMaxBodyBytes}
}

// WithMaxBodyBytes returns a copy of s reading at most n response bytes.
func (s *Sender) WithMaxBodyBytes(n int64) *Sender {
	cp := *s
	cp.maxBody = n
	return &cp
}

// Send implements dispatch.Sender. Non-2xx statuses are not errors; the body
// is returned for the dispatcher to decode.
func (s *Sender) Send(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return dispatch.Response{}, fmt.Errorf("httpx: build request: %w", err)
	}
	for k, v := range req.Header {
		hreq.Header[k] = append([]string(nil), v...)
	}

	resp, err := s.client.Do(hreq)
	if err != nil {
		return dispatch.Response{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return dispatch.Response{}, fmt.Errorf("httpx: read body: %w", err)
	}
	if int64(len(b)) > s.maxBody {
		return dispatch.Response{}, fmt.Errorf("httpx: response body exceeds %d bytes", s.maxBody)
	}
	return dispatch.Response{Status: resp.StatusCode, Header: resp.Header, Body: b}, nil
}
