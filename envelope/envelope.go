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


// Package envelope implements the two-variant result shape returned by every
// dispatched call:
//
//	{"success":true,"data":...}
//	{"success":false,"code":"AUTH_INVALID_CREDENTIALS","message":"...","errors":{"email":["..."]}}
//
// An Envelope is either a success carrying data or a failure carrying a
// kind, a message and optional per-field errors. Never both.
package envelope

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/dcall/kind"
)

// DefaultFailureMessage is written in place of an empty failure message.
const DefaultFailureMessage = "An unknown error occurred"

var (
	// ErrMissingKind is returned by Validate for a failure without a kind.
	ErrMissingKind = errors.New("envelope: failure without code")

	// ErrUnknownKind is returned by Validate for a failure whose code is not
	// a built-in kind.
	ErrUnknownKind = errors.New("envelope: unknown failure code")

	// ErrEmptyFieldErrors is returned by Validate when a field error list is
	// empty.
	ErrEmptyFieldErrors = errors.New("envelope: empty field error list")
)

// Failure is the failure variant.
type Failure struct {
	Code    kind.Kind
	Message string
	// FieldErrors maps field names to messages. nil when there are none.
	FieldErrors map[string][]string
}

// Envelope is the tagged union. The zero value is a failure with no kind and
// does not pass Validate; build envelopes with Success or Fail.
type Envelope[T any] struct {
	ok      bool
	data    T
	failure Failure
}

// Success wraps data.
func Success[T any](data T) Envelope[T] {
	return Envelope[T]{ok: true, data: data}
}

// Fail builds a failure. Empty field error lists are dropped and the map is
// copied. An empty message stays empty so the reader can pick the kind's
// default; MarshalJSON writes DefaultFailureMessage instead.
func Fail[T any](code kind.Kind, message string, fieldErrors map[string][]string) Envelope[T] {
	return Envelope[T]{failure: Failure{
		Code:        code,
		Message:     message,
		FieldErrors: cleanFieldErrors(fieldErrors),
	}}
}

// FromFailure wraps an existing failure value.
func FromFailure[T any](f Failure) Envelope[T] {
	return Fail[T](f.Code, f.Message, f.FieldErrors)
}

// OK reports whether e is the success variant.
func (e Envelope[T]) OK() bool { return e.ok }

// Data returns the payload and true for successes, the zero value and false
// otherwise.
func (e Envelope[T]) Data() (T, bool) {
	if !e.ok {
		var zero T
		return zero, false
	}
	return e.data, true
}

// Failure returns the failure and true for failures.
func (e Envelope[T]) Failure() (Failure, bool) {
	if e.ok {
		return Failure{}, false
	}
	f := e.failure
	f.FieldErrors = cloneFieldErrors(f.FieldErrors)
	return f, true
}

// Validate checks the variant invariants: a failure carries a built-in kind
// and every field error list is non-empty. Decode keeps unknown codes, so a
// decoded envelope may fail this check; MarshalJSON refuses to write it.
func (e Envelope[T]) Validate() error {
	if e.ok {
		return nil
	}
	if e.failure.Code == kind.Empty {
		return ErrMissingKind
	}
	if !kind.Known(e.failure.Code) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, e.failure.Code)
	}
	for field, msgs := range e.failure.FieldErrors {
		if len(msgs) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyFieldErrors, field)
		}
	}
	return nil
}

// String is meant for logs and tests.
func (e Envelope[T]) String() string {
	if e.ok {
		return fmt.Sprintf("Success{%v}", e.data)
	}
	return fmt.Sprintf("Failure{%s: %s}", e.failure.Code, e.failure.Message)
}

func cleanFieldErrors(in map[string][]string) map[string][]string {
	var out map[string][]string
	for field, msgs := range in {
		msgs = slices.DeleteFunc(slices.Clone(msgs), func(m string) bool { return m == "" })
		if len(msgs) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string][]string, len(in))
		}
		out[field] = msgs
	}
	return out
}

func cloneFieldErrors(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := maps.Clone(in)
	for k, v := range out {
		out[k] = slices.Clone(v)
	}
	return out
}
