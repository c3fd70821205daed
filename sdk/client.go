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
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/dcall/address"
	"dirpx.dev/dcall/dispatch"
)

// ErrUnknownProvider is returned by OAuthURL for providers without an
// OAuth2 redirect.
var ErrUnknownProvider = errors.New("sdk: unknown oauth2 provider")

// Client groups the typed operations of the API.
type Client struct {
	Auth  *Auth
	Users *Users

	dispatch *dispatch.Client
}

// NewClient builds a dispatch client on Catalog and NewValidator, then
// applies opts. A transport must be given through opts.
func NewClient(opts ...dispatch.Option) (*Client, error) {
	base := []dispatch.Option{
		dispatch.WithCatalog(Catalog()),
		dispatch.WithValidator(NewValidator()),
	}
	dc, err := dispatch.New(append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Client{
		Auth:     &Auth{c: dc},
		Users:    &Users{c: dc},
		dispatch: dc,
	}, nil
}

// Dispatch returns the underlying client, for operations without a helper.
func (c *Client) Dispatch() *dispatch.Client { return c.dispatch }

// Auth holds the authentication operations.
type Auth struct {
	c *dispatch.Client
}

// SignUp registers a new local account. req is validated before anything
// is sent.
func (a *Auth) SignUp(ctx context.Context, req CreateUserRequest, opts ...dispatch.CallOption) (User, error) {
	return dispatch.Call(ctx, a.c, SignUp, req, opts...)
}

// SignIn authenticates with an email, phone number or username and a
// password.
func (a *Auth) SignIn(ctx context.Context, req SignInRequest, opts ...dispatch.CallOption) (User, error) {
	return dispatch.Call(ctx, a.c, SignIn, req, opts...)
}

// SignOut ends the current session.
func (a *Auth) SignOut(ctx context.Context, opts ...dispatch.CallOption) error {
	_, err := dispatch.Call(ctx, a.c, SignOut, Empty{}, opts...)
	return err
}

// RefreshToken renews the session; the refresh token travels as a cookie.
func (a *Auth) RefreshToken(ctx context.Context, opts ...dispatch.CallOption) error {
	_, err := dispatch.Call(ctx, a.c, RefreshToken, Empty{}, opts...)
	return err
}

// Providers lists the identity providers enabled on the server.
func (a *Auth) Providers(ctx context.Context, opts ...dispatch.CallOption) ([]OAuthProvider, error) {
	return dispatch.Call(ctx, a.c, Providers, Empty{}, opts...)
}

// OAuthURL returns the address a browser must be sent to in order to start
// the OAuth2 flow of p. Nothing is sent.
func (a *Auth) OAuthURL(p Provider, params address.Params) (string, error) {
	return OAuthURL(a.c.BaseURL(), p, params)
}

// OAuthURL resolves the OAuth2 redirect address of p against base. params
// end up in the query string.
func OAuthURL(base string, p Provider, params address.Params) (string, error) {
	if !slices.Contains(OAuthProviders, p) {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}
	return address.Resolve(base, OAuthOperation(p, false).Path, params)
}

// Users holds the user operations.
type Users struct {
	c *dispatch.Client
}

// List returns the users visible to the caller.
func (u *Users) List(ctx context.Context, opts ...dispatch.CallOption) ([]User, error) {
	return dispatch.Call(ctx, u.c, ListUsers, Empty{}, opts...)
}

// Get returns the user with the given id.
func (u *Users) Get(ctx context.Context, id string, opts ...dispatch.CallOption) (User, error) {
	return dispatch.Call(ctx, u.c, GetUser, UserRequest{UserID: id}, opts...)
}

// Me returns the user the call is authenticated as.
func (u *Users) Me(ctx context.Context, opts ...dispatch.CallOption) (User, error) {
	return dispatch.Call(ctx, u.c, GetMe, Empty{}, opts...)
}

// Check reports whether identifier is taken, with alternatives when
// suggestions is set.
func (u *Users) Check(ctx context.Context, identifier string, suggestions bool, opts ...dispatch.CallOption) (Existence, error) {
	return dispatch.Call(ctx, u.c, CheckUser, CheckUserRequest{Identifier: identifier, Suggestions: suggestions}, opts...)
}

// Create adds a user and returns it.
func (u *Users) Create(ctx context.Context, req CreateUserRequest, opts ...dispatch.CallOption) (User, error) {
	return dispatch.Call(ctx, u.c, CreateUser, req, opts...)
}

// Update applies patch to the user with the given id. Nil or empty fields
// of patch are not sent.
func (u *Users) Update(ctx context.Context, id string, patch UserPatch, opts ...dispatch.CallOption) error {
	req := UpdateUserRequest{
		UserID:     id,
		Identifier: patch.Identifier,
		Identity:   patch.Identity,
		Password:   patch.Password,
	}
	_, err := dispatch.Call(ctx, u.c, UpdateUser, req, opts...)
	return err
}

// Delete removes the user with the given id.
func (u *Users) Delete(ctx context.Context, id string, opts ...dispatch.CallOption) error {
	_, err := dispatch.Call(ctx, u.c, DeleteUser, UserRequest{UserID: id}, opts...)
	return err
}
