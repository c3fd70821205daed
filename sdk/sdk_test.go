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


package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/address"
	"dirpx.dev/dcall/catalog"
	"dirpx.dev/dcall/dispatch"
	"dirpx.dev/dcall/kind"
)

type stub struct {
	mu    sync.Mutex
	calls []dispatch.Request
	body  string
}

func (s *stub) Send(_ context.Context, req dispatch.Request) (dispatch.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	return dispatch.Response{Status: http.StatusOK, Header: http.Header{}, Body: []byte(s.body)}, nil
}

func (s *stub) last(t *testing.T) dispatch.Request {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.calls)
	return s.calls[len(s.calls)-1]
}

func newTestClient(t *testing.T, s dispatch.Sender, opts ...dispatch.Option) *Client {
	t.Helper()
	base := []dispatch.Option{
		dispatch.WithSender(s),
		dispatch.WithBaseURL("https://api.test"),
	}
	c, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

func validSignUp() CreateUserRequest {
	return CreateUserRequest{
		Identifier: NewIdentifier{Email: "ada@example.com", Username: "ada.lovelace"},
		Identity:   NewIdentity{DisplayName: "Ada Lovelace"},
		Password:   "Analytical1",
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	assert.Same(t, cat, Catalog())
	assert.Equal(t, 23+2*len(OAuthProviders), cat.Len())

	tests := []struct {
		method, path string
		want         string
		params       map[string]string
	}{
		{http.MethodGet, "/users/@me", "users.me", nil},
		{http.MethodGet, "/users/42", "users.get", map[string]string{"userId": "42"}},
		{http.MethodPatch, "/users/42", "users.update", map[string]string{"userId": "42"}},
		{http.MethodGet, "/users/check/ada", "users.check", map[string]string{"identifier": "ada"}},
		{http.MethodGet, "/oauth2/discord/callback", "oauth2.discordCallback", nil},
		{http.MethodPost, "/auth/sign-in", "auth.signIn", nil},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			op, params, ok := cat.Match(tt.method, tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.want, op.Name())
			if tt.params != nil {
				assert.Equal(t, tt.params, params)
			}
		})
	}

	_, _, ok := cat.Match(http.MethodPut, "/users/42")
	assert.False(t, ok)
	assert.NoError(t, cat.Check(UserUpdateUser))
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		req    any
		fields map[string][]string
	}{
		{name: "valid sign-up", req: validSignUp()},
		{name: "non struct", req: "x"},
		{name: "nil pointer", req: (*CreateUserRequest)(nil)},
		{
			name: "empty sign-in",
			req:  SignInRequest{},
			fields: map[string][]string{
				"identifier": {"must not be empty"},
				"password":   {"must not be empty"},
			},
		},
		{
			name: "weak password",
			req: func() CreateUserRequest {
				r := validSignUp()
				r.Password = "short"
				return r
			}(),
			fields: map[string][]string{
				"password": {
					"Password must be at least 8 characters long",
					"Password must contain at least one uppercase letter",
					"Password must contain at least one number or special character",
				},
			},
		},
		{
			name: "bad username and email",
			req: func() *CreateUserRequest {
				r := validSignUp()
				r.Identifier.Username = ".ada"
				r.Identifier.Email = "not-an-email"
				return &r
			}(),
			fields: map[string][]string{
				"identifier.username": {"must use lower-case letters, digits, underscores and single inner dots"},
				"identifier.email":    {"must be a valid email address"},
			},
		},
		{
			name: "patch only checks what is set",
			req: UpdateUserRequest{
				UserID:   "42",
				Identity: &IdentityPatch{FirstName: "Ada", Bio: "Countess <of> Lovelace"},
			},
			fields: map[string][]string{
				"identity.bio": {"contains unsupported characters"},
			},
		},
		{
			name: "phone",
			req:  IdentifierPatch{PhoneNumber: "+33 6 12 34 56 78"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.fields, ve.FieldErrors())
		})
	}
}

func TestValidUsername(t *testing.T) {
	for in, want := range map[string]bool{
		"ada":          true,
		"ada.lovelace": true,
		"ada_1":        true,
		"ad":           false,
		"Ada":          false,
		"ada.":         false,
		"a..da":        false,
	} {
		assert.Equal(t, want, validUsername(in), in)
	}
}

func TestSignIn(t *testing.T) {
	s := &stub{body: `{"success":true,"data":{"id":"u1","identifier":{"username":"ada"},"role":"admin"}}`}
	c := newTestClient(t, s)

	u, err := c.Auth.SignIn(context.Background(), SignInRequest{Identifier: "ada", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, RoleAdmin, u.Role)

	req := s.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://api.test/auth/sign-in", req.URL)
	assert.JSONEq(t, `{"identifier":"ada","password":"secret"}`, string(req.Body))
}

func TestSignUpRejectedLocally(t *testing.T) {
	s := &stub{}
	c := newTestClient(t, s)

	r := validSignUp()
	r.Identity.DisplayName = ""
	_, err := c.Auth.SignUp(context.Background(), r)

	e, ok := dcall.As(err)
	require.True(t, ok)
	assert.Equal(t, kind.ValidationError, e.Kind())
	assert.Equal(t, []string{"must not be empty"}, e.Context.FieldErrors["identity.displayName"])
	assert.Empty(t, s.calls)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("update sends the patch without the id", func(t *testing.T) {
		s := &stub{body: `{"success":true,"data":null}`}
		c := newTestClient(t, s)
		err := c.Users.Update(ctx, "a/b", UserPatch{Identity: &IdentityPatch{DisplayName: "Ada"}})
		require.NoError(t, err)
		req := s.last(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "https://api.test/users/a%2Fb", req.URL)
		assert.JSONEq(t, `{"identity":{"displayName":"Ada"}}`, string(req.Body))
	})

	t.Run("check", func(t *testing.T) {
		s := &stub{body: `{"success":true,"data":{"exists":true,"identifier":{"username":"ada"},"suggestions":["ada1"]}}`}
		c := newTestClient(t, s)
		res, err := c.Users.Check(ctx, "ada", true)
		require.NoError(t, err)
		assert.True(t, res.Exists)
		assert.Equal(t, []string{"ada1"}, res.Suggestions)
		req := s.last(t)
		assert.Equal(t, "https://api.test/users/check/ada?suggestions=true", req.URL)
		assert.Nil(t, req.Body)
	})

	t.Run("me", func(t *testing.T) {
		s := &stub{body: `{"success":true,"data":{"id":"me"}}`}
		c := newTestClient(t, s)
		u, err := c.Users.Me(ctx, dispatch.WithBearerToken("tok"))
		require.NoError(t, err)
		assert.Equal(t, "me", u.ID)
		req := s.last(t)
		assert.Equal(t, "https://api.test/users/@me", req.URL)
		assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	})

	t.Run("delete reports not found", func(t *testing.T) {
		s := &stub{body: `{"success":false,"code":"AUTH_USER_NOT_FOUND","message":"no such user"}`}
		c := newTestClient(t, s)
		err := c.Users.Delete(ctx, "42")
		assert.True(t, dcall.Is(err, kind.UserNotFound))
		assert.Equal(t, http.MethodDelete, s.last(t).Method)
	})
}

func TestRPC(t *testing.T) {
	var got struct {
		group, action string
		body          []byte
	}
	caller := dispatch.CallerFunc(func(_ context.Context, group, action string, body []byte, _ map[string]string) ([]byte, error) {
		got.group, got.action, got.body = group, action, body
		return json.Marshal(map[string]any{
			"success": true,
			"data":    Session{UserID: "u1", AccessToken: "a", RefreshToken: "r"},
		})
	})
	c := newTestClient(t, nil, dispatch.WithCaller(caller))

	sess, err := dispatch.Call(context.Background(), c.Dispatch(), AuthRefreshToken, RefreshRequest{RefreshToken: "r0"})
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, ServiceAuth, got.group)
	assert.Equal(t, "RefreshToken", got.action)
	assert.JSONEq(t, `{"refreshToken":"r0"}`, string(got.body))

	_, err = dispatch.Call(context.Background(), c.Dispatch(), UserGetUserByEmail, EmailRequest{Email: "nope"})
	assert.True(t, dcall.Is(err, kind.ValidationError))
}

func TestOAuthURL(t *testing.T) {
	c := newTestClient(t, &stub{})

	got, err := c.Auth.OAuthURL(ProviderDiscord, address.NewParams("redirect", "https://app.test/cb", "state", "xyz"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.test/oauth2/discord?redirect=https%3A%2F%2Fapp.test%2Fcb&state=xyz", got)

	_, err = OAuthURL("", ProviderLocal, address.Params{})
	assert.True(t, errors.Is(err, ErrUnknownProvider))

	op := OAuthOperation(ProviderTwitch, true)
	assert.Equal(t, "/oauth2/twitch/callback", op.Path)
	assert.True(t, Catalog().Has(op))
	assert.Equal(t, catalog.TransportREST, op.Transport)
}
