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
	"context"
	"errors"
	"fmt"

	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/envelope"
	"dirpx.dev/dcall/kind"
)

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries kind k.
func Is(err error, k kind.Kind) bool {
	return KindOf(err) == k
}

// KindOf returns the kind of err: the kind of a *Error or apis.KindedError in
// the chain, kind.ServiceUnavailable for deadline errors, kind.InternalError
// for anything else and kind.Empty for nil.
func KindOf(err error) kind.Kind {
	if err == nil {
		return kind.Empty
	}
	if e, ok := As(err); ok {
		return e.Code
	}
	var ke apis.KindedError
	if errors.As(err, &ke) {
		if k, perr := kind.Parse(ke.ErrorKind()); perr == nil && kind.Known(k) {
			return k
		}
		return kind.InternalError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return kind.ServiceUnavailable
	}
	return kind.InternalError
}

// Wrap turns any error into a *Error.
//
// A *Error in the chain is returned as is. Deadline errors become
// kind.ServiceUnavailable; other errors become kind.InternalError, logged
// at high severity. In both cases the original text is kept in metadata
// "originalError" and err becomes the cause.
func Wrap(err error, ctx Context, opts ...Option) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	base := []Option{
		WithMetadataOption(MetaOriginalError, err.Error()),
		WithCauseOption(err),
	}

	var ke apis.KindedError
	switch {
	case errors.As(err, &ke):
		return New(kind.Kind(kind.Normalize(ke.ErrorKind())), ctx, append(base, opts...)...)
	case errors.Is(err, context.DeadlineExceeded):
		return New(kind.ServiceUnavailable, ctx, append(base, opts...)...)
	default:
		base = append(base, WithSeverityOption(kind.SeverityHigh), WithShouldLogOption(true))
		return New(kind.InternalError, ctx, append(base, opts...)...)
	}
}

// FromFailure turns a failure envelope into an error. The failure's message
// and field errors are kept; unknown codes are coerced by New.
func FromFailure(f envelope.Failure, ctx Context, opts ...Option) *Error {
	base := []Option{WithFieldErrors(f.FieldErrors)}
	if f.Message != "" {
		base = append(base, WithMessageOption(f.Message))
	}
	return New(f.Code, ctx, append(base, opts...)...)
}

// ToFailure converts err into a failure, wrapping it first when needed.
func ToFailure(err error) envelope.Failure {
	return Wrap(err, Context{}).Failure()
}

// Capture runs fn and converts its outcome into an envelope. It is the
// server-side counterpart of the dispatcher: errors, including panics, never
// escape; they become failure envelopes.
func Capture[T any](ctx context.Context, fn func(context.Context) (T, error)) (env envelope.Envelope[T]) {
	defer func() {
		if r := recover(); r != nil {
			e := Wrap(fmt.Errorf("panic: %v", r), Context{})
			env = envelope.FromFailure[T](e.Failure())
		}
	}()
	data, err := fn(ctx)
	if err != nil {
		return envelope.FromFailure[T](ToFailure(err))
	}
	return envelope.Success(data)
}
