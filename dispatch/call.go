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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/address"
	"dirpx.dev/dcall/catalog"
	"dirpx.dev/dcall/envelope"
	"dirpx.dev/dcall/kind"
)

// Call performs ep with req and returns the response data.
//
// Errors are always *dcall.Error; use dcall.Is or errors.As to inspect them.
func Call[Req, Res any](ctx context.Context, c *Client, ep catalog.Endpoint[Req, Res], req Req, opts ...CallOption) (Res, error) {
	var res Res
	decode := func(b []byte) (*envelope.Failure, error) {
		env, err := envelope.Decode[Res](b, c.statusKind)
		if err != nil {
			return nil, err
		}
		if f, failed := env.Failure(); failed {
			return &f, nil
		}
		res, _ = env.Data()
		return nil, nil
	}
	if err := c.do(ctx, ep.Operation(), req, c.callOptions(opts), decode); err != nil {
		var zero Res
		return zero, err
	}
	return res, nil
}

// CallAsync starts Call in its own goroutine.
func CallAsync[Req, Res any](ctx context.Context, c *Client, ep catalog.Endpoint[Req, Res], req Req, opts ...CallOption) *envelope.Future[Res] {
	return envelope.Go(ctx, func(ctx context.Context) (Res, error) {
		return Call(ctx, c, ep, req, opts...)
	})
}

// decodeFunc parses a response envelope. A nil failure and nil error means
// success.
type decodeFunc func(b []byte) (*envelope.Failure, error)

// exchange is a request ready to be sent.
type exchange struct {
	op     catalog.Operation
	url    string
	header http.Header
	body   []byte
}

func (c *Client) do(ctx context.Context, op catalog.Operation, req any, co *callOptions, decode decodeFunc) error {
	start := time.Now()
	dctx := dcall.Context{Operation: op.Name(), RequestID: co.requestID}

	var (
		ex   *exchange
		derr *dcall.Error
	)
	if err := c.catalog.Check(op); err != nil {
		derr = dcall.New(kind.InternalError, dctx,
			dcall.WithMessageOption(err.Error()),
			dcall.WithCauseOption(err),
			dcall.WithMetadataOption(dcall.MetaOriginalError, err.Error()),
		)
	} else if op.Transport == catalog.TransportREST {
		ex, derr = c.prepareREST(op, req, co, dctx)
	} else {
		ex, derr = c.prepareRPC(op, req, co, dctx)
	}
	if derr != nil {
		return c.finish(op, "", co.requestID, start, derr)
	}

	info := DispatchInfo{
		Transport: op.Transport,
		Group:     op.Group,
		Action:    op.Action,
		Method:    op.Method,
		Address:   ex.url,
		RequestID: co.requestID,
		Metadata:  flatten(ex.header),
	}
	ctx, tokens := c.startHooks(ctx, info)
	for k, v := range info.Metadata {
		if ex.header.Get(k) == "" {
			ex.header.Set(k, v)
		}
	}
	stats := &CallStatistics{RequestBytes: int64(len(ex.body))}

	if co.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, co.timeout)
		defer cancel()
	}
	if op.Transport == catalog.TransportREST {
		derr = c.sendREST(ctx, ex, stats, decode, dctx)
	} else {
		derr = c.sendRPC(ctx, ex, stats, decode, dctx)
	}

	var err error
	if derr != nil {
		err = derr
	}
	c.endHooks(ctx, tokens, info, stats, err)
	return c.finish(op, ex.url, co.requestID, start, derr)
}

func (c *Client) prepareREST(op catalog.Operation, req any, co *callOptions, dctx dcall.Context) (*exchange, *dcall.Error) {
	if op.NoBody() && hasBody(req) {
		return nil, dcall.New(kind.InvalidInput, dctx,
			dcall.WithMessageOption(fmt.Sprintf("Cannot send a %s request with a body", op.Method)))
	}
	if derr := c.validate(req, dctx); derr != nil {
		return nil, derr
	}

	params := requestParams(req).Merge(co.params)
	url, err := address.Resolve(c.baseURL, op.Path, params)
	if err != nil {
		var missing *address.MissingPathParameterError
		if errors.As(err, &missing) {
			return nil, dcall.New(kind.MissingRequiredFields, dctx,
				dcall.WithMissingFields(missing.Name),
				dcall.WithCauseOption(err))
		}
		return nil, dcall.New(kind.InvalidInput, dctx,
			dcall.WithMessageOption(err.Error()),
			dcall.WithCauseOption(err))
	}
	if c.sender == nil {
		return nil, noTransport(ErrNoSender, dctx)
	}

	ex := &exchange{op: op, url: url, header: c.headers(co)}
	if !op.NoBody() {
		if ex.body, err = encode(req); err != nil {
			return nil, dcall.New(kind.InvalidInput, dctx,
				dcall.WithMessageOption("Request cannot be encoded"),
				dcall.WithCauseOption(err))
		}
		if ex.body != nil {
			ex.header.Set("Content-Type", "application/json")
		}
	}
	return ex, nil
}

func (c *Client) prepareRPC(op catalog.Operation, req any, co *callOptions, dctx dcall.Context) (*exchange, *dcall.Error) {
	if derr := c.validate(req, dctx); derr != nil {
		return nil, derr
	}
	if c.caller == nil {
		return nil, noTransport(ErrNoCaller, dctx)
	}
	body, err := encode(req)
	if err != nil {
		return nil, dcall.New(kind.InvalidInput, dctx,
			dcall.WithMessageOption("Request cannot be encoded"),
			dcall.WithCauseOption(err))
	}
	if body == nil {
		body = []byte("{}")
	}
	return &exchange{
		op:     op,
		url:    op.Group + "/" + op.Action,
		header: c.headers(co),
		body:   body,
	}, nil
}

func (c *Client) validate(req any, dctx dcall.Context) *dcall.Error {
	if c.validator == nil {
		return nil
	}
	err := c.validator.Validate(req)
	if err == nil {
		return nil
	}
	if e, ok := dcall.As(err); ok {
		return e
	}
	opts := []dcall.Option{dcall.WithCauseOption(err)}
	var fe FieldErrorer
	if errors.As(err, &fe) {
		opts = append(opts, dcall.WithFieldErrors(fe.FieldErrors()))
	}
	return dcall.New(kind.ValidationError, dctx, opts...)
}

func (c *Client) sendREST(ctx context.Context, ex *exchange, stats *CallStatistics, decode decodeFunc, dctx dcall.Context) *dcall.Error {
	resp, err := c.sender.Send(ctx, Request{
		Method: ex.op.Method,
		URL:    ex.url,
		Header: ex.header,
		Body:   ex.body,
	})
	if err != nil {
		return dcall.Wrap(deadline(ctx, err), dctx)
	}
	stats.Status = resp.Status
	stats.ResponseBytes = int64(len(resp.Body))

	opts := []dcall.Option{dcall.WithTransportMetadataOption(flatten(resp.Header))}
	if secs, ok := retryAfter(resp.Header); ok {
		opts = append(opts, dcall.WithRetryAfter(secs))
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		if resp.Status < http.StatusBadRequest {
			return nil
		}
		return dcall.New(c.kindForStatus(resp.Status), dctx, opts...)
	}

	f, err := decode(resp.Body)
	if err != nil {
		if resp.Status >= http.StatusBadRequest {
			return dcall.New(c.kindForStatus(resp.Status), dctx, append(opts, dcall.WithCauseOption(err))...)
		}
		return malformed(err, dctx, opts...)
	}
	if f != nil {
		return dcall.FromFailure(*f, dctx, opts...)
	}
	return nil
}

func (c *Client) sendRPC(ctx context.Context, ex *exchange, stats *CallStatistics, decode decodeFunc, dctx dcall.Context) *dcall.Error {
	out, err := c.caller.Call(ctx, ex.op.Group, ex.op.Action, ex.body, flatten(ex.header))
	if err != nil {
		return dcall.Wrap(deadline(ctx, err), dctx)
	}
	stats.ResponseBytes = int64(len(out))

	f, err := decode(out)
	if err != nil {
		return malformed(err, dctx)
	}
	if f != nil {
		return dcall.FromFailure(*f, dctx)
	}
	return nil
}

func (c *Client) headers(co *callOptions) http.Header {
	h := c.header.Clone()
	h.Set("Accept", "application/json")
	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	}
	h.Set("X-Request-ID", co.requestID)
	for k, v := range co.header {
		h[k] = append([]string(nil), v...)
	}
	return h
}

func (c *Client) kindForStatus(status int) kind.Kind {
	if c.statusKind == nil {
		return kind.InternalError
	}
	return c.statusKind(status)
}

func (c *Client) startHooks(ctx context.Context, info DispatchInfo) (context.Context, []HookToken) {
	if len(c.hooks) == 0 {
		return ctx, nil
	}
	tokens := make([]HookToken, len(c.hooks))
	for i, h := range c.hooks {
		ctx, tokens[i] = h.OnDispatchStart(ctx, info)
	}
	return ctx, tokens
}

func (c *Client) endHooks(ctx context.Context, tokens []HookToken, info DispatchInfo, stats *CallStatistics, err error) {
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.hooks[i].OnDispatchEnd(ctx, tokens[i], info, stats, err)
	}
}

// finish logs the outcome of a call and returns derr as an error (nil when
// derr is nil).
func (c *Client) finish(op catalog.Operation, addr, requestID string, start time.Time, derr *dcall.Error) error {
	ev := c.log.Debug().
		Str("transport", op.Transport.String()).
		Str("operation", op.Name()).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start))
	if addr != "" {
		ev = ev.Str("address", addr)
	}
	if derr == nil {
		ev.Msg("dispatch ok")
		return nil
	}
	ev.Str("code", derr.Code.String()).Msg("dispatch failed")

	if derr.ShouldLog() {
		c.log.WithLevel(derr.LogLevel()).
			Str("operation", op.Name()).
			Object("error", derr).
			Msg(derr.Message)
	}
	return derr
}

func noTransport(cause error, dctx dcall.Context) *dcall.Error {
	return dcall.New(kind.InternalError, dctx,
		dcall.WithMessageOption(cause.Error()),
		dcall.WithCauseOption(cause),
		dcall.WithMetadataOption(dcall.MetaOriginalError, cause.Error()))
}

func malformed(err error, dctx dcall.Context, opts ...dcall.Option) *dcall.Error {
	base := []dcall.Option{
		dcall.WithMessageOption("Malformed response envelope"),
		dcall.WithCauseOption(err),
		dcall.WithMetadataOption(dcall.MetaOriginalError, err.Error()),
		dcall.WithSeverityOption(kind.SeverityHigh),
		dcall.WithShouldLogOption(true),
	}
	return dcall.New(kind.InternalError, dctx, append(base, opts...)...)
}

// deadline makes sure an error caused by an expired ctx is recognizable as
// context.DeadlineExceeded, whatever the transport wrapped it in.
func deadline(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
		if _, ok := dcall.As(err); !ok {
			return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
	}
	return err
}

func encode(req any) ([]byte, error) {
	if _, ok := structOf(req); !ok && !hasBody(req) {
		return nil, nil
	}
	return json.Marshal(req)
}

// retryAfter reads a Retry-After header given in seconds or as an HTTP date.
func retryAfter(h http.Header) (int, bool) {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return secs, true
	}
	if at, err := http.ParseTime(v); err == nil {
		secs := int(time.Until(at).Round(time.Second) / time.Second)
		return max(secs, 0), true
	}
	return 0, false
}

// flatten keeps the first value of each header under its lower-case name.
func flatten(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			out[strings.ToLower(k)] = v[0]
		}
	}
	return out
}
