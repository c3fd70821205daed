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


package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/catalog"
	"dirpx.dev/dcall/kind"
)

// MaxRequestBytes bounds request bodies decoded by Mux handlers.
const MaxRequestBytes = 1 << 20

// Mux serves the REST operations of a catalog. Routes are resolved with
// catalog.Match, so a literal segment wins over a placeholder.
type Mux struct {
	cat      *catalog.Catalog
	w        Writer
	handlers map[catalog.Operation]http.Handler
}

var _ http.Handler = (*Mux)(nil)

// NewMux returns an empty Mux writing errors through w.
func NewMux(cat *catalog.Catalog, w Writer) *Mux {
	return &Mux{cat: cat, w: w, handlers: make(map[catalog.Operation]http.Handler)}
}

type paramsKey struct{}

// PathParam returns the value of a path placeholder of the matched route.
func PathParam(r *http.Request, name string) string {
	params, _ := r.Context().Value(paramsKey{}).(map[string]string)
	return params[name]
}

// Handle registers fn for ep. The request body, when the method carries
// one, is decoded from JSON into Req. Errors and panics are written as
// failure envelopes.
func Handle[Req, Res any](m *Mux, ep catalog.Endpoint[Req, Res], fn func(*http.Request, Req) (Res, error)) error {
	if err := m.cat.Check(ep); err != nil {
		return err
	}
	op := ep.Operation()
	if op.Transport != catalog.TransportREST {
		return fmt.Errorf("httpx: %s is not a REST operation", op)
	}
	m.handlers[op] = http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		meta := Meta{RequestID: r.Header.Get("X-Request-ID")}
		var req Req
		if !op.NoBody() && r.Body != nil {
			dec := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBytes))
			if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				m.w.WriteError(rw, dcall.New(kind.InvalidInput, dcall.Context{Operation: op.Name()},
					dcall.WithMessageOption("Request body is not valid JSON"),
					dcall.WithCauseOption(err)), meta)
				return
			}
		}
		res, err := safeCall(fn, r, req)
		if err != nil {
			if e, ok := dcall.As(err); ok && e.Context.Operation == "" {
				err = e.WithOperation(op.Name())
			}
			m.w.WriteError(rw, err, meta)
			return
		}
		WriteData(rw, http.StatusOK, res)
	})
	return nil
}

// ServeHTTP implements http.Handler.
func (m *Mux) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	meta := Meta{RequestID: r.Header.Get("X-Request-ID")}
	op, params, ok := m.cat.Match(r.Method, r.URL.Path)
	var h http.Handler
	if ok {
		h, ok = m.handlers[op]
	}
	if !ok {
		m.w.WriteError(rw, dcall.New(kind.ResourceNotFound, dcall.Context{},
			dcall.WithMessageOption(fmt.Sprintf("No route for %s %s", r.Method, r.URL.Path))), meta)
		return
	}
	h.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), paramsKey{}, params)))
}

func safeCall[Req, Res any](fn func(*http.Request, Req) (Res, error), r *http.Request, req Req) (res Res, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn(r, req)
}
