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


// Package catalog describes the operations a remote service exposes.
//
// Each operation is declared once as a typed Endpoint, whose type
// parameters fix the request and response shapes checked by the compiler at
// every call site:
//
//	var GetUser = catalog.REST[GetUserRequest, User]("users", "getUser", http.MethodGet, "/users/:userId")
//	var SignIn  = catalog.RPC[SignInRequest, Tokens]("AuthService", "SignIn")
//
// Endpoints are then collected into an immutable Catalog, validated once at
// startup.
package catalog

import (
	"fmt"
	"net/http"
	"strings"
)

// Transport selects how an operation is carried.
type Transport uint8

const (
	// TransportREST is the address-based HTTP transport.
	TransportREST Transport = iota + 1
	// TransportRPC is the request/response RPC transport addressed by group and action.
	TransportRPC
)

func (t Transport) String() string {
	switch t {
	case TransportREST:
		return "rest"
	case TransportRPC:
		return "rpc"
	default:
		return fmt.Sprintf("transport(%d)", uint8(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Transport) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Operation is one named remote action. For REST operations Method and Path
// are set; for RPC operations they are empty.
type Operation struct {
	Transport Transport `json:"transport"`
	// Group is the service or resource group, e.g. "users" or "UserService".
	Group string `json:"group"`
	// Action names the operation within its group.
	Action string `json:"action"`
	// Method is the HTTP verb, upper-case.
	Method string `json:"method,omitempty"`
	// Path is the address template, e.g. "/users/:userId".
	Path string `json:"path,omitempty"`
}

// Operation lets a bare Operation be used wherever an Entry is expected.
func (o Operation) Operation() Operation { return o }

// Name returns "group.action".
func (o Operation) Name() string { return o.Group + "." + o.Action }

// NoBody reports whether requests must not carry a body (GET and HEAD).
func (o Operation) NoBody() bool {
	return o.Transport == TransportREST && (o.Method == http.MethodGet || o.Method == http.MethodHead)
}

func (o Operation) String() string {
	if o.Transport == TransportREST {
		return fmt.Sprintf("%s %s %s (%s)", o.Transport, o.Method, o.Path, o.Name())
	}
	return fmt.Sprintf("%s %s", o.Transport, o.Name())
}

// Entry is anything that describes an operation: an Operation or an Endpoint.
type Entry interface {
	Operation() Operation
}

// Endpoint is a typed handle on an operation. Req and Res are the request and
// response shapes; they exist only at compile time.
type Endpoint[Req, Res any] struct {
	op Operation
}

// Operation returns the untyped description.
func (e Endpoint[Req, Res]) Operation() Operation { return e.op }

func (e Endpoint[Req, Res]) String() string { return e.op.String() }

// REST declares an operation carried over HTTP.
func REST[Req, Res any](group, action, method, path string) Endpoint[Req, Res] {
	return Endpoint[Req, Res]{op: Operation{
		Transport: TransportREST,
		Group:     group,
		Action:    action,
		Method:    strings.ToUpper(method),
		Path:      path,
	}}
}

// RPC declares an operation carried over the RPC transport.
func RPC[Req, Res any](group, action string) Endpoint[Req, Res] {
	return Endpoint[Req, Res]{op: Operation{
		Transport: TransportRPC,
		Group:     group,
		Action:    action,
	}}
}
