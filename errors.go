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


package dcall

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"time"

	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/envelope"
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/mapper"
)

// Error is the contextual error produced for every failed call.
//
// It carries:
//   - Code: the error kind, always a built-in kind once built by New;
//   - Message: developer-oriented description (what went wrong);
//   - Context: operation, resource, request id, metadata and so on;
//   - Timestamp: when the failure was detected;
//   - TransportMetadata: header-like values received with the failure;
//   - Cause: wrapped underlying error for errors.Is / errors.As.
//
// Status, severity, suggestions and the log flag are resolved by New from
// the taxonomy table and the context.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	Code              kind.Kind
	Message           string
	Context           Context
	Timestamp         time.Time
	TransportMetadata map[string]string
	Cause             error

	status      int
	severity    kind.Severity
	suggestions []string
	shouldLog   bool
	// fixedSuggestions disables merging with the kind's defaults.
	fixedSuggestions bool
}

var (
	_ apis.KindedError   = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.AdvisedError  = (*Error)(nil)
	_ apis.LoggableError = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Kind returns the error kind.
func (e *Error) Kind() kind.Kind { return e.Code }

// ErrorKind implements apis.KindedError.
func (e *Error) ErrorKind() string { return string(e.Code) }

// Status returns the HTTP-equivalent status class of the kind.
func (e *Error) Status() int { return e.status }

// Severity returns the resolved severity.
func (e *Error) Severity() kind.Severity { return e.severity }

// Suggestions returns the resolved suggestions. The slice is a copy.
func (e *Error) Suggestions() []string { return slices.Clone(e.suggestions) }

// ShouldLog reports whether the error deserves a log line.
func (e *Error) ShouldLog() bool { return e.shouldLog }

// UserMessage returns a message that is safe to show to end users. It never
// contains the developer message.
func (e *Error) UserMessage() string { return mapper.UserMessage(e.Code) }

// DetailedMessage joins the message with the populated context fields:
//
//	Invalid credentials provided | Operation: auth.signIn | Request ID: r-1 | Suggestions: a, b
func (e *Error) DetailedMessage() string {
	parts := []string{e.Message}
	if e.Context.Operation != "" {
		parts = append(parts, "Operation: "+e.Context.Operation)
	}
	if e.Context.ResourceID != "" {
		parts = append(parts, "Resource: "+e.Context.ResourceID)
	}
	if e.Context.Service != "" {
		parts = append(parts, "Service: "+e.Context.Service)
	}
	if e.Context.RequestID != "" {
		parts = append(parts, "Request ID: "+e.Context.RequestID)
	}
	if len(e.suggestions) > 0 {
		parts = append(parts, "Suggestions: "+strings.Join(e.suggestions, ", "))
	}
	return strings.Join(parts, " | ")
}

// Failure converts the error into the failure variant of an envelope.
func (e *Error) Failure() envelope.Failure {
	f, _ := envelope.Fail[struct{}](e.Code, e.Message, e.Context.FieldErrors).Failure()
	return f
}

// ErrorDetails implements apis.DetailedError: one "field" detail per field
// error message, sorted by field.
func (e *Error) ErrorDetails() []apis.Detail {
	if len(e.Context.FieldErrors) == 0 {
		return nil
	}
	fields := make([]string, 0, len(e.Context.FieldErrors))
	for f := range e.Context.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var out []apis.Detail
	for _, f := range fields {
		for _, msg := range e.Context.FieldErrors[f] {
			out = append(out, apis.Detail{Type: "field", Field: f, Reason: msg})
		}
	}
	return out
}

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Kind:        string(e.Code),
		Message:     e.Message,
		UserMessage: e.UserMessage(),
		Status:      e.status,
		Severity:    e.severity.String(),
		Suggestions: e.Suggestions(),
		RequestID:   e.Context.RequestID,
		Details:     e.ErrorDetails(),
	}
}

// WithMessage returns a shallow copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// WithMetadata returns a copy of e with one extra metadata entry. The map is
// always copied.
func (e *Error) WithMetadata(k string, v any) *Error {
	cp := *e
	cp.Context.Metadata = maps.Clone(e.Context.Metadata)
	cp.Context.setMeta(k, v)
	return &cp
}

// WithRequestID returns a copy of e carrying the request id.
func (e *Error) WithRequestID(id string) *Error {
	cp := *e
	cp.Context.RequestID = id
	return &cp
}

// WithOperation returns a copy of e carrying the operation name.
func (e *Error) WithOperation(op string) *Error {
	cp := *e
	cp.Context.Operation = op
	return &cp
}

// WithSeverity returns a copy of e with an overridden severity.
func (e *Error) WithSeverity(s kind.Severity) *Error {
	if s == kind.SeverityUnset {
		return e
	}
	cp := *e
	cp.Context.Severity = s
	cp.severity = s
	return &cp
}

// WithShouldLog returns a copy of e with an overridden log flag.
func (e *Error) WithShouldLog(v bool) *Error {
	cp := *e
	cp.Context.ShouldLog = Bool(v)
	cp.shouldLog = v
	return &cp
}

// WithSuggestions returns a copy of e with s merged after the current
// suggestions. Duplicates are dropped.
func (e *Error) WithSuggestions(s ...string) *Error {
	cp := *e
	cp.suggestions = mergeSuggestions(e.suggestions, s)
	return &cp
}

// WithTransportMetadata returns a copy of e with md merged into the
// transport metadata.
func (e *Error) WithTransportMetadata(md map[string]string) *Error {
	if len(md) == 0 {
		return e
	}
	cp := *e
	cp.TransportMetadata = maps.Clone(e.TransportMetadata)
	if cp.TransportMetadata == nil {
		cp.TransportMetadata = make(map[string]string, len(md))
	}
	maps.Copy(cp.TransportMetadata, md)
	return &cp
}

func mergeSuggestions(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, list := range [2][]string{base, extra} {
		for _, s := range list {
			if s == "" {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
