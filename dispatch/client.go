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
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dirpx.dev/dcall/catalog"
	"dirpx.dev/dcall/envelope"
)

var (
	// ErrNoCatalog is returned by New when WithCatalog is missing.
	ErrNoCatalog = errors.New("dispatch: no catalog")
	// ErrNoSender is the cause of errors for REST calls on a client
	// without a Sender.
	ErrNoSender = errors.New("dispatch: no REST sender configured")
	// ErrNoCaller is the cause of errors for RPC calls on a client without
	// a Caller.
	ErrNoCaller = errors.New("dispatch: no RPC caller configured")
)

// Client dispatches calls. It is immutable after New and safe for
// concurrent use.
type Client struct {
	catalog    *catalog.Catalog
	sender     Sender
	caller     Caller
	baseURL    string
	header     http.Header
	userAgent  string
	timeout    time.Duration
	log        zerolog.Logger
	hooks      []Hook
	validator  Validator
	requestID  func() string
	statusKind envelope.StatusKindFunc
}

// Option configures a Client.
type Option func(*Client)

// WithCatalog sets the operations the client accepts. Required.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cl *Client) { cl.catalog = c }
}

// WithSender sets the REST transport.
func WithSender(s Sender) Option {
	return func(cl *Client) { cl.sender = s }
}

// WithCaller sets the RPC transport.
func WithCaller(c Caller) Option {
	return func(cl *Client) { cl.caller = c }
}

// WithBaseURL sets the prefix of every REST address.
func WithBaseURL(u string) Option {
	return func(cl *Client) { cl.baseURL = strings.TrimRight(u, "/") }
}

// WithHeaders adds headers to every call. Later values for the same name
// replace earlier ones.
func WithHeaders(h map[string]string) Option {
	return func(cl *Client) {
		for k, v := range h {
			cl.header.Set(k, v)
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(cl *Client) { cl.log = l }
}

// WithHook adds a dispatch hook. Hooks run in registration order on start
// and in reverse order on end.
func WithHook(h Hook) Option {
	return func(cl *Client) {
		if h != nil {
			cl.hooks = append(cl.hooks, h)
		}
	}
}

// WithValidator sets the request validator.
func WithValidator(v Validator) Option {
	return func(cl *Client) { cl.validator = v }
}

// WithRequestIDFunc sets the generator of request ids. The default
// generates random UUIDs.
func WithRequestIDFunc(fn func() string) Option {
	return func(cl *Client) {
		if fn != nil {
			cl.requestID = fn
		}
	}
}

// WithStatusKind sets how legacy failures that only carry an HTTP status are
// classified. Defaults to envelope.DefaultStatusKind.
func WithStatusKind(fn envelope.StatusKindFunc) Option {
	return func(cl *Client) { cl.statusKind = fn }
}

// WithConfig applies a loaded configuration. Options after it may still
// override individual fields.
func WithConfig(cfg *Config) Option {
	return func(cl *Client) {
		if cfg == nil {
			return
		}
		if cfg.BaseURL != "" {
			WithBaseURL(cfg.BaseURL)(cl)
		}
		if cfg.Timeout > 0 {
			cl.timeout = time.Duration(cfg.Timeout)
		}
		if cfg.UserAgent != "" {
			cl.userAgent = cfg.UserAgent
		}
		WithHeaders(cfg.Headers)(cl)
	}
}

// WithDefaultTimeout bounds every call that does not set its own timeout.
func WithDefaultTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

// New builds a client.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		header:     make(http.Header),
		userAgent:  DefaultUserAgent,
		log:        zerolog.Nop(),
		requestID:  uuid.NewString,
		statusKind: envelope.DefaultStatusKind,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.catalog == nil {
		return nil, ErrNoCatalog
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Client {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Catalog returns the client's catalog.
func (c *Client) Catalog() *catalog.Catalog { return c.catalog }

// BaseURL returns the REST address prefix.
func (c *Client) BaseURL() string { return c.baseURL }
