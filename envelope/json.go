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


package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/mapper"
)

// StatusKindFunc derives a kind from a legacy HTTP status code.
type StatusKindFunc func(status int) kind.Kind

// DefaultStatusKind is used by UnmarshalJSON for failures that carry a
// "statusCode" but no "code".
var DefaultStatusKind StatusKindFunc = mapper.KindForHTTP

// ErrMissingSuccess is returned when the "success" discriminator is absent.
var ErrMissingSuccess = errors.New(`envelope: missing "success" field`)

type wire struct {
	Success *bool               `json:"success"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	// StatusCode is only read; older REST failures carried it instead of
	// a code.
	StatusCode int `json:"statusCode,omitempty"`
}

type successWire[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type failureWire struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	if e.ok {
		return json.Marshal(successWire[T]{Success: true, Data: e.data})
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	msg := e.failure.Message
	if msg == "" {
		msg = DefaultFailureMessage
	}
	return json.Marshal(failureWire{
		Code:    string(e.failure.Code),
		Message: msg,
		Errors:  e.failure.FieldErrors,
	})
}

// UnmarshalJSON implements json.Unmarshaler using DefaultStatusKind.
func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	out, err := Decode[T](b, DefaultStatusKind)
	if err != nil {
		return err
	}
	*e = out
	return nil
}

// Decode parses an envelope. statusKind resolves legacy failures that carry
// only "statusCode"; nil means every such failure is kind.InternalError.
//
// A failure whose code is not a known kind keeps the raw code, normalized
// when it is well-formed. Turning it into an error coerces it to
// INTERNAL_ERROR.
func Decode[T any](b []byte, statusKind StatusKindFunc) (Envelope[T], error) {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return Envelope[T]{}, fmt.Errorf("envelope: %w", err)
	}
	if w.Success == nil {
		return Envelope[T]{}, ErrMissingSuccess
	}

	if *w.Success {
		var data T
		if len(w.Data) > 0 && !bytes.Equal(w.Data, []byte("null")) {
			if err := json.Unmarshal(w.Data, &data); err != nil {
				return Envelope[T]{}, fmt.Errorf("envelope: data: %w", err)
			}
		}
		return Success(data), nil
	}

	var code kind.Kind
	switch {
	case w.Code != "":
		if k, err := kind.Parse(w.Code); err == nil {
			code = k
		} else {
			code = kind.Kind(w.Code)
		}
	case w.StatusCode != 0 && statusKind != nil:
		code = statusKind(w.StatusCode)
	default:
		code = kind.InternalError
	}
	return Fail[T](code, w.Message, w.Errors), nil
}
