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


package catalog

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	getUserReq  struct{ UserID string }
	user        struct{ ID string }
	signInReq   struct{ Login, Password string }
	tokenResult struct{ AccessToken string }
)

var (
	getUser   = REST[getUserReq, user]("users", "getUser", "get", "/users/:userId")
	getMe     = REST[struct{}, user]("users", "getMe", http.MethodGet, "/users/@me")
	checkUser = REST[struct{}, bool]("users", "check", http.MethodGet, "/users/check/:identifier")
	signIn    = REST[signInReq, tokenResult]("auth", "signIn", http.MethodPost, "/auth/sign-in")
	rpcSignIn = RPC[signInReq, tokenResult]("AuthService", "SignIn")
)

func TestEndpoint_Operation(t *testing.T) {
	op := getUser.Operation()
	assert.Equal(t, TransportREST, op.Transport)
	assert.Equal(t, http.MethodGet, op.Method, "method is upper-cased")
	assert.Equal(t, "users.getUser", op.Name())
	assert.True(t, op.NoBody())
	assert.Equal(t, []string{"userId"}, op.Placeholders())

	assert.False(t, signIn.Operation().NoBody())
	assert.False(t, rpcSignIn.Operation().NoBody())
	assert.Equal(t, "rpc AuthService.SignIn", rpcSignIn.String())
}

func TestNew_Valid(t *testing.T) {
	c, err := New(getUser, getMe, checkUser, signIn, rpcSignIn)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	op, ok := c.Lookup(TransportREST, "users", "getUser")
	require.True(t, ok)
	assert.Equal(t, "/users/:userId", op.Path)

	_, ok = c.Lookup(TransportRPC, "users", "getUser")
	assert.False(t, ok, "transports are separate namespaces")

	assert.True(t, c.Has(rpcSignIn))
	assert.False(t, c.Has(RPC[struct{}, struct{}]("AuthService", "SignOut")))
}

func TestNew_SameNameAcrossTransports(t *testing.T) {
	_, err := New(
		REST[struct{}, struct{}]("auth", "signIn", http.MethodPost, "/auth/sign-in"),
		RPC[struct{}, struct{}]("auth", "signIn"),
	)
	require.NoError(t, err)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty group", []Entry{REST[struct{}, struct{}]("", "a", http.MethodGet, "/a")}},
		{"empty action", []Entry{RPC[struct{}, struct{}]("g", "")}},
		{"duplicate name", []Entry{
			REST[struct{}, struct{}]("g", "a", http.MethodGet, "/a"),
			REST[struct{}, struct{}]("g", "a", http.MethodGet, "/b"),
		}},
		{"bad method", []Entry{REST[struct{}, struct{}]("g", "a", "FETCH", "/a")}},
		{"relative path", []Entry{REST[struct{}, struct{}]("g", "a", http.MethodGet, "a/b")}},
		{"empty placeholder", []Entry{REST[struct{}, struct{}]("g", "a", http.MethodGet, "/a/:")}},
		{"bad placeholder", []Entry{REST[struct{}, struct{}]("g", "a", http.MethodGet, "/a/:x-y")}},
		{"same route", []Entry{
			REST[struct{}, struct{}]("g", "a", http.MethodGet, "/users/:id"),
			REST[struct{}, struct{}]("g", "b", http.MethodGet, "/users/:userId"),
		}},
		{"zero transport", []Entry{Operation{Group: "g", Action: "a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.entries...)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrInvalidOperation))
		})
	}
}

func TestNew_SameRouteDifferentMethod(t *testing.T) {
	_, err := New(
		REST[struct{}, struct{}]("users", "get", http.MethodGet, "/users/:userId"),
		REST[struct{}, struct{}]("users", "update", http.MethodPatch, "/users/:userId"),
	)
	require.NoError(t, err)
}

func TestNew_ReportsAllProblems(t *testing.T) {
	_, err := New(
		REST[struct{}, struct{}]("", "a", http.MethodGet, "/a"),
		REST[struct{}, struct{}]("g", "b", "BREW", "/b"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty group or action")
	assert.Contains(t, err.Error(), `unsupported method "BREW"`)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(RPC[struct{}, struct{}]("", "")) })
	assert.NotPanics(t, func() { MustNew(rpcSignIn) })
}

func TestCheck(t *testing.T) {
	c := MustNew(getUser)

	require.NoError(t, c.Check(getUser))

	err := c.Check(REST[getUserReq, user]("users", "getUser", http.MethodGet, "/users/by-id/:userId"))
	var unknown *UnknownOperationError
	require.ErrorAs(t, err, &unknown, "a different path is a different operation")
	assert.Equal(t, "users", unknown.Group)
	assert.Equal(t, "getUser", unknown.Action)
	assert.Equal(t, "catalog: unknown rest operation users.getUser", unknown.Error())
}

func TestOperations_Sorted(t *testing.T) {
	c := MustNew(rpcSignIn, signIn, getUser, getMe)
	var names []string
	for _, op := range c.Operations() {
		names = append(names, op.Transport.String()+":"+op.Name())
	}
	assert.Equal(t, []string{
		"rest:auth.signIn",
		"rest:users.getMe",
		"rest:users.getUser",
		"rpc:AuthService.SignIn",
	}, names)
}

func TestMatch(t *testing.T) {
	c := MustNew(getUser, getMe, checkUser, signIn)

	tests := []struct {
		method, path string
		action       string
		params       map[string]string
		ok           bool
	}{
		{http.MethodGet, "/users/42", "getUser", map[string]string{"userId": "42"}, true},
		{"get", "/users/@me", "getMe", nil, true},
		{http.MethodGet, "/users/check/bob?x=1", "check", map[string]string{"identifier": "bob"}, true},
		{http.MethodPost, "/auth/sign-in", "signIn", nil, true},
		{http.MethodGet, "/auth/sign-in", "", nil, false},
		{http.MethodDelete, "/users/42", "", nil, false},
		{http.MethodGet, "/users/42/posts", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			op, params, ok := c.Match(tt.method, tt.path)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.action, op.Action)
			assert.Equal(t, tt.params, params)
		})
	}
}

func TestTransport_String(t *testing.T) {
	assert.Equal(t, "rest", TransportREST.String())
	assert.Equal(t, "rpc", TransportRPC.String())
	assert.Equal(t, "transport(9)", Transport(9).String())
}
