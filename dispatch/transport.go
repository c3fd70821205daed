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
	"context"
	"net/http"
)

// Request is one REST exchange as handed to a Sender.
type Request struct {
	Method string
	URL    string
	Header http.Header
	// Body is nil for requests without a body.
	Body []byte
}

// Response is the raw reply to a Request.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Sender carries REST requests. Implementations must honor ctx and be safe
// for concurrent use.
type Sender interface {
	Send(ctx context.Context, req Request) (Response, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, req Request) (Response, error)

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, req Request) (Response, error) { return f(ctx, req) }

// Caller carries RPC requests. body is the JSON-encoded request and the
// return value the JSON-encoded envelope. md holds lower-case metadata keys.
type Caller interface {
	Call(ctx context.Context, group, action string, body []byte, md map[string]string) ([]byte, error)
}

// CallerFunc adapts a function to Caller.
type CallerFunc func(ctx context.Context, group, action string, body []byte, md map[string]string) ([]byte, error)

// Call calls f.
func (f CallerFunc) Call(ctx context.Context, group, action string, body []byte, md map[string]string) ([]byte, error) {
	return f(ctx, group, action, body, md)
}

// Validator checks a request before it is sent. A returned error that
// implements FieldErrorer contributes its field errors to the resulting
// VALIDATION_ERROR; a returned *dcall.Error is used as is.
type Validator interface {
	Validate(req any) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(req any) error

// Validate calls f.
func (f ValidatorFunc) Validate(req any) error { return f(req) }

// FieldErrorer is implemented by validation errors that know which fields
// failed.
type FieldErrorer interface {
	FieldErrors() map[string][]string
}
