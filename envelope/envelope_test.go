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
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dcall/kind"
)

type user struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestSuccessRoundTrip(t *testing.T) {
	in := Success(user{ID: "1", Name: "ada"})
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"id":"1","name":"ada"}}`, string(b))

	var out Envelope[user]
	require.NoError(t, json.Unmarshal(b, &out))
	require.True(t, out.OK())
	data, ok := out.Data()
	require.True(t, ok)
	assert.Equal(t, "ada", data.Name)
	_, isFailure := out.Failure()
	assert.False(t, isFailure)
}

func TestFailureMarshal(t *testing.T) {
	e := Fail[user](kind.ValidationError, "Validation failed", map[string][]string{
		"email": {"must be a valid email"},
		"name":  {},
	})
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":false,"code":"VALIDATION_ERROR","message":"Validation failed","errors":{"email":["must be a valid email"]}}`,
		string(b))

	b, err = json.Marshal(Fail[user](kind.Forbidden, "no", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"code":"FORBIDDEN","message":"no"}`, string(b))

	b, err = json.Marshal(Fail[user](kind.Forbidden, "", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"code":"FORBIDDEN","message":"An unknown error occurred"}`, string(b))
}

func TestDecodeFailureShapes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		code    kind.Kind
		message string
		fields  map[string][]string
		invalid error
	}{
		{
			name:    "current shape",
			in:      `{"success":false,"code":"AUTH_INVALID_CREDENTIALS","message":"bad creds"}`,
			code:    kind.InvalidCredentials,
			message: "bad creds",
		},
		{
			name:    "legacy rest shape",
			in:      `{"success":false,"message":"nope","statusCode":404,"errors":{"id":["unknown"]}}`,
			code:    kind.ResourceNotFound,
			message: "nope",
			fields:  map[string][]string{"id": {"unknown"}},
		},
		{
			name:    "missing message",
			in:      `{"success":false,"code":"FORBIDDEN"}`,
			code:    kind.Forbidden,
		},
		{
			name:    "unknown code kept",
			in:      `{"success":false,"code":"brand-new-kind","message":"m"}`,
			code:    kind.Kind("BRAND_NEW_KIND"),
			message: "m",
			invalid: ErrUnknownKind,
		},
		{
			name:    "no code at all",
			in:      `{"success":false,"message":"m","errors":{"a":[]}}`,
			code:    kind.InternalError,
			message: "m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Envelope[user]
			require.NoError(t, json.Unmarshal([]byte(tt.in), &e))
			require.False(t, e.OK())
			f, ok := e.Failure()
			require.True(t, ok)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
			assert.Equal(t, tt.fields, f.FieldErrors)
			if tt.invalid != nil {
				assert.ErrorIs(t, e.Validate(), tt.invalid)
				return
			}
			assert.NoError(t, e.Validate())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	var e Envelope[user]
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"data":{}}`), &e), ErrMissingSuccess)
	assert.Error(t, json.Unmarshal([]byte(`{"success":true,"data":"not an object"}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`[]`), &e))
}

func TestDecodeWithoutStatusMapper(t *testing.T) {
	e, err := Decode[user]([]byte(`{"success":false,"statusCode":429}`), nil)
	require.NoError(t, err)
	f, _ := e.Failure()
	assert.Equal(t, kind.InternalError, f.Code)

	e, err = Decode[user]([]byte(`{"success":false,"statusCode":429}`), DefaultStatusKind)
	require.NoError(t, err)
	f, _ = e.Failure()
	assert.Equal(t, kind.RateLimited, f.Code)
}

func TestSuccessWithNullData(t *testing.T) {
	var e Envelope[*user]
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"data":null}`), &e))
	d, ok := e.Data()
	assert.True(t, ok)
	assert.Nil(t, d)
}

func TestValidate(t *testing.T) {
	var zero Envelope[int]
	assert.ErrorIs(t, zero.Validate(), ErrMissingKind)
	_, err := json.Marshal(zero)
	assert.Error(t, err)

	bad := Envelope[int]{failure: Failure{Code: kind.Forbidden, FieldErrors: map[string][]string{"x": nil}}}
	assert.ErrorIs(t, bad.Validate(), ErrEmptyFieldErrors)

	unknown := Fail[int](kind.Kind("QUOTA_BURNED"), "m", nil)
	assert.ErrorIs(t, unknown.Validate(), ErrUnknownKind)
	_, err = json.Marshal(unknown)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFailureIsCopied(t *testing.T) {
	e := Fail[int](kind.ValidationError, "v", map[string][]string{"a": {"x"}})
	f, _ := e.Failure()
	f.FieldErrors["a"][0] = "mutated"
	again, _ := e.Failure()
	assert.Equal(t, "x", again.FieldErrors["a"][0])
}

func TestFuture(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) { return 42, nil })
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	boom := errors.New("boom")
	f = Go(context.Background(), func(context.Context) (int, error) { return 0, boom })
	<-f.Done()
	_, err = f.Await(context.Background())
	assert.ErrorIs(t, err, boom)

	release := make(chan struct{})
	defer close(release)
	slow := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = slow.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
