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


package dispatch

import (
	"net/http"
	"time"

	"dirpx.dev/dcall/address"
)

// CallOption configures a single call.
type CallOption func(*callOptions)

type callOptions struct {
	header    http.Header
	params    address.Params
	timeout   time.Duration
	requestID string
}

// WithHeader adds a header (REST) or metadata entry (RPC) to the call.
func WithHeader(name, value string) CallOption {
	return func(o *callOptions) { o.header.Set(name, value) }
}

// WithParams adds path and query parameters. They are applied after the
// request's tagged fields and win on conflict.
func WithParams(p address.Params) CallOption {
	return func(o *callOptions) { o.params = o.params.Merge(p) }
}

// WithQuery is shorthand for WithParams(address.NewParams(kv...)).
func WithQuery(kv ...any) CallOption {
	return WithParams(address.NewParams(kv...))
}

// WithTimeout bounds the call. The deadline is applied to the context
// handed to the transport.
func WithTimeout(d time.Duration) CallOption {
	return func(o *callOptions) { o.timeout = d }
}

// WithRequestID sets the request id instead of generating one.
func WithRequestID(id string) CallOption {
	return func(o *callOptions) { o.requestID = id }
}

// WithBearerToken passes an access token through in the Authorization
// header.
func WithBearerToken(token string) CallOption {
	return func(o *callOptions) {
		if token != "" {
			o.header.Set("Authorization", "Bearer "+token)
		}
	}
}

func (c *Client) callOptions(opts []CallOption) *callOptions {
	o := &callOptions{header: make(http.Header), timeout: c.timeout}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.requestID == "" {
		o.requestID = c.requestID()
	}
	return o
}
