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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dcall/envelope"
	"dirpx.dev/dcall/kind"
)

type kindedErr string

func (k kindedErr) Error() string     { return "kinded: " + string(k) }
func (k kindedErr) ErrorKind() string { return string(k) }

func TestKindOfAndIs(t *testing.T) {
	wrapped := fmt.Errorf("call: %w", New(kind.TokenExpired, Context{}))
	tests := []struct {
		name string
		err  error
		want kind.Kind
	}{
		{"nil", nil, kind.Empty},
		{"dcall error", New(kind.Forbidden, Context{}), kind.Forbidden},
		{"wrapped", wrapped, kind.TokenExpired},
		{"kinded", kindedErr("rate-limited"), kind.RateLimited},
		{"kinded unknown", kindedErr("NOPE_NOPE"), kind.InternalError},
		{"deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), kind.ServiceUnavailable},
		{"plain", errors.New("boom"), kind.InternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
	assert.True(t, Is(wrapped, kind.TokenExpired))
	assert.False(t, Is(wrapped, kind.TokenInvalid))

	e, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, kind.TokenExpired, e.Kind())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, Context{}))

	orig := New(kind.Forbidden, Context{})
	assert.Same(t, orig, Wrap(fmt.Errorf("x: %w", orig), Context{}))

	boom := errors.New("connection reset")
	e := Wrap(boom, Context{Operation: "users.list"})
	assert.Equal(t, kind.InternalError, e.Kind())
	assert.Equal(t, "connection reset", e.Context.Metadata[MetaOriginalError])
	assert.Equal(t, kind.SeverityHigh, e.Severity())
	assert.True(t, e.ShouldLog())
	assert.ErrorIs(t, e, boom)

	e = Wrap(context.DeadlineExceeded, Context{})
	assert.Equal(t, kind.ServiceUnavailable, e.Kind())
	assert.Equal(t, context.DeadlineExceeded.Error(), e.Context.Metadata[MetaOriginalError])

	e = Wrap(kindedErr("user-not-verified"), Context{})
	assert.Equal(t, kind.UserNotVerified, e.Kind())
}

func TestFromFailure(t *testing.T) {
	f := envelope.Failure{Code: kind.InvalidCredentials, Message: "bad creds"}
	e := FromFailure(f, Context{RequestID: "r"})
	assert.Equal(t, kind.InvalidCredentials, e.Kind())
	assert.Equal(t, "bad creds", e.Message)
	assert.Equal(t, 401, e.Status())
	assert.NotEmpty(t, e.Suggestions())

	e = FromFailure(envelope.Failure{Code: "FROM_THE_FUTURE", Message: "m"}, Context{})
	assert.Equal(t, kind.InternalError, e.Kind())
	assert.Equal(t, "FROM_THE_FUTURE", e.Context.Metadata[MetaOriginalCode])
	assert.Equal(t, "m", e.Message)

	e = FromFailure(envelope.Failure{Code: kind.ValidationError, FieldErrors: map[string][]string{"email": {"bad"}}}, Context{})
	assert.Equal(t, "Validation failed", e.Message)
	assert.Equal(t, []string{"bad"}, e.Context.FieldErrors["email"])
}

func TestCapture(t *testing.T) {
	ok := Capture(context.Background(), func(context.Context) (string, error) { return "hi", nil })
	data, isOK := ok.Data()
	require.True(t, isOK)
	assert.Equal(t, "hi", data)

	failed := Capture(context.Background(), func(context.Context) (string, error) {
		return "", New(kind.UserAlreadyExists, Context{})
	})
	f, isFailure := failed.Failure()
	require.True(t, isFailure)
	assert.Equal(t, kind.UserAlreadyExists, f.Code)
	assert.Equal(t, "User already exists", f.Message)

	unknown := Capture(context.Background(), func(context.Context) (int, error) { return 0, errors.New("disk full") })
	f, _ = unknown.Failure()
	assert.Equal(t, kind.InternalError, f.Code)

	panicked := Capture(context.Background(), func(context.Context) (int, error) { panic("nil map") })
	f, isFailure = panicked.Failure()
	require.True(t, isFailure)
	assert.Equal(t, kind.InternalError, f.Code)
	assert.NoError(t, panicked.Validate())
}

func TestClassify(t *testing.T) {
	c := Classify(kind.RateLimited)
	assert.Equal(t, 429, c.Status)
	assert.Equal(t, kind.RateLimiting, c.Group)
	assert.Equal(t, kind.SeverityLow, c.Severity)
	assert.True(t, c.Retryable)
	assert.False(t, c.ShouldLog)
	assert.Equal(t, "Too many requests. Please try again later", c.UserMessage)

	c = Classify("NOPE_NOPE")
	assert.Equal(t, kind.InternalError, c.Kind)
	assert.Equal(t, 500, c.Status)
}
