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


package mapper

import (
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/taxonomy"
)

func TestNew_Defaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.InvalidCredentials, 401, codes.Unauthenticated)
	check(kind.UserNotFound, 404, codes.NotFound)
	check(kind.UserAlreadyExists, 409, codes.AlreadyExists)
	check(kind.ValidationError, 400, codes.InvalidArgument)
	check(kind.RateLimited, 429, codes.ResourceExhausted)
	check(kind.ServiceUnavailable, 503, codes.Unavailable)
	check(kind.DatabaseError, 500, codes.Internal)
	check(kind.ResourceExpired, 410, codes.FailedPrecondition)
}

func TestHTTPStatus_TotalAndDeterministic(t *testing.T) {
	for _, k := range kind.All() {
		first, second := HTTPStatus(k), HTTPStatus(k)
		if first != second {
			t.Fatalf("HTTPStatus(%q) not deterministic: %d vs %d", k, first, second)
		}
		if first == 0 {
			t.Fatalf("HTTPStatus(%q) = 0", k)
		}
		e, _ := taxonomy.Lookup(k)
		if first != e.Status {
			t.Fatalf("HTTPStatus(%q) = %d, taxonomy says %d", k, first, e.Status)
		}
	}
	if got := HTTPStatus("NOT_A_KIND"); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(unknown) = %d, want 500", got)
	}
	if got := GRPCCode("NOT_A_KIND"); got != codes.Internal {
		t.Fatalf("GRPCCode(unknown) = %v, want Internal", got)
	}
}

func TestGroupsPartitionKinds(t *testing.T) {
	seen := map[kind.Kind]kind.Group{}
	for _, g := range Groups() {
		for _, k := range Kinds(g) {
			if prev, dup := seen[k]; dup {
				t.Fatalf("%q appears in %s and %s", k, prev, g)
			}
			seen[k] = g
			if GroupOf(k) != g {
				t.Fatalf("GroupOf(%q) = %s, want %s", k, GroupOf(k), g)
			}
			if !g.Class().Contains(HTTPStatus(k)) {
				t.Fatalf("%q (group %s) maps to %d, outside the group's class", k, g, HTTPStatus(k))
			}
		}
	}
	if len(seen) != len(kind.All()) {
		t.Fatalf("groups cover %d kinds, want %d", len(seen), len(kind.All()))
	}
}

func TestAuthenticationKindsAre401(t *testing.T) {
	for _, k := range Kinds(kind.Authentication) {
		if HTTPStatus(k) != http.StatusUnauthorized {
			t.Fatalf("HTTPStatus(%q) = %d, want 401", k, HTTPStatus(k))
		}
	}
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.ServiceUnavailable, 502),
		WithHTTPOverride(kind.ServiceUnavailable, 418),
		WithGRPCDefault(kind.ServiceUnavailable, int(codes.Internal)),
		WithGRPCOverride(kind.ServiceUnavailable, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.ServiceUnavailable)
	if st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %+v", st)
	}

	m2, err := New(WithHTTPDefault(kind.ServiceUnavailable, 502))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m2.HTTPStatus(kind.ServiceUnavailable); got != 502 {
		t.Fatalf("user default must replace library default; got %d", got)
	}
}

func TestNew_RejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"bad kind", WithHTTPOverride("bad kind!", 400)},
		{"http status too low", WithHTTPOverride(kind.Forbidden, 42)},
		{"http status too high", WithHTTPDefault(kind.Forbidden, 700)},
		{"grpc code out of range", WithGRPCOverride(kind.Forbidden, 99)},
		{"user message for bad kind", WithUserMessage("", "x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatalf("New() expected error")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(kind.InvalidCredentials); got != "Invalid username or password" {
		t.Fatalf("UserMessage = %q", got)
	}
	if got := UserMessage("NOT_A_KIND"); got != "An unexpected error occurred. Please try again" {
		t.Fatalf("UserMessage(unknown) = %q", got)
	}
	m := MustNew(WithUserMessage(kind.InvalidCredentials, "Nope"))
	if got := m.UserMessage(kind.InvalidCredentials); got != "Nope" {
		t.Fatalf("configured UserMessage = %q", got)
	}
}

func TestClientServerRetryable(t *testing.T) {
	tests := []struct {
		k                      kind.Kind
		client, server, retry bool
	}{
		{kind.InvalidInput, true, false, false},
		{kind.RateLimited, true, false, true},
		{kind.TooManyRequests, true, false, true},
		{kind.ServiceUnavailable, false, true, true},
		{kind.ExternalServiceError, false, true, true},
		{kind.DatabaseError, false, true, false},
	}
	for _, tt := range tests {
		if IsClientError(tt.k) != tt.client || IsServerError(tt.k) != tt.server || IsRetryable(tt.k) != tt.retry {
			t.Fatalf("%q: client=%v server=%v retry=%v", tt.k, IsClientError(tt.k), IsServerError(tt.k), IsRetryable(tt.k))
		}
	}
}

func TestReverseMapping(t *testing.T) {
	httpTests := map[int]kind.Kind{
		401: kind.Unauthorized,
		404: kind.ResourceNotFound,
		418: kind.InvalidInput,
		429: kind.RateLimited,
		503: kind.ServiceUnavailable,
		200: kind.InternalError,
	}
	for status, want := range httpTests {
		if got := KindForHTTP(status); got != want {
			t.Fatalf("KindForHTTP(%d) = %q, want %q", status, got, want)
		}
	}

	// the representative kind must map back to the same status family
	for status := range httpReverse {
		if HTTPStatus(KindForHTTP(status))/100 != status/100 {
			t.Fatalf("KindForHTTP(%d) leaves the status family", status)
		}
	}

	if got := KindForGRPC(codes.Unauthenticated); got != kind.Unauthorized {
		t.Fatalf("KindForGRPC(Unauthenticated) = %q", got)
	}
	if got := KindForGRPC(codes.Unimplemented); got != kind.InternalError {
		t.Fatalf("KindForGRPC(Unimplemented) = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	d := Describe(kind.RateLimited)
	if d.Kind != "RATE_LIMITED" || d.HTTPStatus != 429 || d.GRPCCode != int(codes.ResourceExhausted) {
		t.Fatalf("Describe = %+v", d)
	}
	if !d.Retryable || d.ShouldLog || d.Severity != "low" || d.Group != "RateLimiting" {
		t.Fatalf("Describe = %+v", d)
	}
}
