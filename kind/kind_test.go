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


package kind

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal_error  ", "INTERNAL_ERROR"},
		{"to upper", "Rate_Limited", "RATE_LIMITED"},
		{"dash to underscore", "resource-not-found", "RESOURCE_NOT_FOUND"},
		{"dot to underscore", "auth.token.expired", "AUTH_TOKEN_EXPIRED"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr bool
	}{
		{"built-in", "AUTH_INVALID_CREDENTIALS", InvalidCredentials, false},
		{"lower case", "forbidden", Forbidden, false},
		{"unknown but well formed", "SOMETHING_NEW", Kind("SOMETHING_NEW"), false},
		{"empty", "", Empty, true},
		{"too short", "AB", Empty, true},
		{"starts with digit", "1ERROR", Empty, true},
		{"punctuation", "NOT!FOUND", Empty, true},
		{"too long", strings.Repeat("A", MaxLength+1), Empty, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("??")
}

func TestKnown(t *testing.T) {
	for _, k := range All() {
		if !Known(k) {
			t.Fatalf("Known(%q) = false for a built-in kind", k)
		}
		if err := Validate(k); err != nil {
			t.Fatalf("built-in kind %q fails Validate: %v", k, err)
		}
	}
	if Known("SOMETHING_NEW") {
		t.Fatalf("Known reported an unknown kind")
	}
}

func TestAll_IsClosedAndUnique(t *testing.T) {
	got := All()
	if len(got) != 24 {
		t.Fatalf("len(All()) = %d, want 24", len(got))
	}
	seen := map[Kind]bool{}
	for _, k := range got {
		if seen[k] {
			t.Fatalf("duplicate kind %q", k)
		}
		seen[k] = true
	}

	// callers must not be able to mutate the table
	got[0] = "MUTATED"
	if All()[0] != InvalidCredentials {
		t.Fatalf("All() leaked its backing array")
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	text, err := RateLimited.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	var k Kind
	if err := k.UnmarshalText(append([]byte(" "), text...)); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != RateLimited {
		t.Fatalf("round trip = %q, want %q", k, RateLimited)
	}
	if _, err := Kind("bad kind!").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid kind must return error")
	}
}

func TestSeverity(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		got, err := ParseSeverity(strings.ToUpper(s.String()))
		if err != nil || got != s {
			t.Fatalf("ParseSeverity(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseSeverity("catastrophic"); err == nil {
		t.Fatalf("ParseSeverity accepted an unknown name")
	}
	if _, err := SeverityUnset.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on unset severity must return error")
	}
	if !(SeverityLow < SeverityMedium && SeverityHigh < SeverityCritical) {
		t.Fatalf("severities are not ordered")
	}
}

func TestGroupClass(t *testing.T) {
	tests := []struct {
		g      Group
		status int
		want   bool
	}{
		{Authentication, 401, true},
		{Authentication, 403, false},
		{UserManagement, 409, true},
		{UserManagement, 500, false},
		{Server, 503, true},
		{Server, 429, false},
		{Resources, 410, true},
	}
	for _, tt := range tests {
		if got := tt.g.Class().Contains(tt.status); got != tt.want {
			t.Fatalf("%s.Class().Contains(%d) = %v, want %v", tt.g, tt.status, got, tt.want)
		}
	}
	if len(Groups()) != 7 {
		t.Fatalf("len(Groups()) = %d, want 7", len(Groups()))
	}
}
