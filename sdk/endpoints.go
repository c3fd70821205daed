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
	"net/http"
	"sync"

	"dirpx.dev/dcall/catalog"
)

// Operation groups.
const (
	GroupAuth   = "auth"
	GroupUsers  = "users"
	GroupOAuth2 = "oauth2"

	ServiceAuth = "AuthService"
	ServiceUser = "UserService"
)

// REST auth operations.
var (
	SignUp       = catalog.REST[CreateUserRequest, User](GroupAuth, "signUp", http.MethodPost, "/auth/sign-up")
	SignIn       = catalog.REST[SignInRequest, User](GroupAuth, "signIn", http.MethodPost, "/auth/sign-in")
	SignOut      = catalog.REST[Empty, Empty](GroupAuth, "signOut", http.MethodPost, "/auth/sign-out")
	RefreshToken = catalog.REST[Empty, Empty](GroupAuth, "refreshToken", http.MethodPost, "/auth/refresh-token")
	Providers    = catalog.REST[Empty, []OAuthProvider](GroupAuth, "providers", http.MethodGet, "/auth/providers")
)

// REST user operations.
var (
	ListUsers  = catalog.REST[Empty, []User](GroupUsers, "list", http.MethodGet, "/users")
	GetUser    = catalog.REST[UserRequest, User](GroupUsers, "get", http.MethodGet, "/users/:userId")
	GetMe      = catalog.REST[Empty, User](GroupUsers, "me", http.MethodGet, "/users/@me")
	CheckUser  = catalog.REST[CheckUserRequest, Existence](GroupUsers, "check", http.MethodGet, "/users/check/:identifier")
	CreateUser = catalog.REST[CreateUserRequest, User](GroupUsers, "create", http.MethodPost, "/users")
	UpdateUser = catalog.REST[UpdateUserRequest, Empty](GroupUsers, "update", http.MethodPatch, "/users/:userId")
	DeleteUser = catalog.REST[UserRequest, Empty](GroupUsers, "delete", http.MethodDelete, "/users/:userId")
)

// RPC operations of AuthService.
var (
	AuthSignUp       = catalog.RPC[CreateUserRequest, Session](ServiceAuth, "SignUp")
	AuthSignIn       = catalog.RPC[SignInRequest, Session](ServiceAuth, "SignIn")
	AuthSignOut      = catalog.RPC[Empty, Empty](ServiceAuth, "SignOut")
	AuthRefreshToken = catalog.RPC[RefreshRequest, Session](ServiceAuth, "RefreshToken")
)

// RPC operations of UserService.
var (
	UserGetUsers        = catalog.RPC[Empty, []User](ServiceUser, "GetUsers")
	UserGetUser         = catalog.RPC[UserIDRequest, User](ServiceUser, "GetUser")
	UserGetUserByEmail  = catalog.RPC[EmailRequest, User](ServiceUser, "GetUserByEmail")
	UserCheckUserExists = catalog.RPC[IdentifierRequest, Existence](ServiceUser, "CheckUserExists")
	UserCreateUser      = catalog.RPC[CreateUserRequest, User](ServiceUser, "CreateUser")
	UserUpdateUser      = catalog.RPC[UpdateUserCommand, Empty](ServiceUser, "UpdateUser")
	UserDeleteUser      = catalog.RPC[UserIDRequest, Empty](ServiceUser, "DeleteUser")
)

// OAuthOperation returns the redirect operation of p, or its callback when
// callback is set. The operations carry no typed payload: they are browser
// redirects, not API calls.
func OAuthOperation(p Provider, callback bool) catalog.Operation {
	op := catalog.Operation{
		Transport: catalog.TransportREST,
		Group:     GroupOAuth2,
		Action:    string(p),
		Method:    http.MethodGet,
		Path:      "/oauth2/" + string(p),
	}
	if callback {
		op.Action += "Callback"
		op.Path += "/callback"
	}
	return op
}

// Catalog returns the catalog of every operation declared in this package.
// It is built once.
var Catalog = sync.OnceValue(func() *catalog.Catalog {
	return catalog.MustNew(entries()...)
})

func entries() []catalog.Entry {
	out := []catalog.Entry{
		SignUp, SignIn, SignOut, RefreshToken, Providers,
		ListUsers, GetUser, GetMe, CheckUser, CreateUser, UpdateUser, DeleteUser,
		AuthSignUp, AuthSignIn, AuthSignOut, AuthRefreshToken,
		UserGetUsers, UserGetUser, UserGetUserByEmail, UserCheckUserExists,
		UserCreateUser, UserUpdateUser, UserDeleteUser,
	}
	for _, p := range OAuthProviders {
		out = append(out, OAuthOperation(p, false), OAuthOperation(p, true))
	}
	return out
}
