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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dcall/kind"
)

func TestNew_DefaultsFromTable(t *testing.T) {
	e := New(kind.InvalidCredentials, Context{})
	assert.Equal(t, "Invalid credentials provided", e.Message)
	assert.Equal(t, 401, e.Status())
	assert.Equal(t, kind.SeverityMedium, e.Severity())
	assert.Equal(t, []string{"Check your username and password", "Ensure your account is not locked"}, e.Suggestions())
	assert.True(t, e.ShouldLog())
}

func TestNew_UnknownKindFallsBack(t *testing.T) {
	e := New("SOMETHING_NEW", Context{Metadata: map[string]any{"x": 1}})
	assert.Equal(t, kind.InternalError, e.Kind())
	assert.Equal(t, "SOMETHING_NEW", e.Context.Metadata[MetaOriginalCode])
	assert.Equal(t, 1, e.Context.Metadata["x"])
	assert.Equal(t, "Internal server error occurred", e.Message)
	assert.Equal(t, 500, e.Status())
	assert.True(t, e.ShouldLog())
}

func TestNew_ParameterizedMessages(t *testing.T) {
	exp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		k          kind.Kind
		opts       []Option
		message    string
		suggestion string
	}{
		{"missing fields", kind.MissingRequiredFields, []Option{WithMissingFields("email", "password")},
			"Missing required fields: email, password", "Provide values for: email, password"},
		{"missing fields without names", kind.MissingRequiredFields, nil,
			"Missing required fields", "Provide values for all required fields"},
		{"permissions", kind.InsufficientPermissions, []Option{WithRequiredPermissions("users:write")},
			"Insufficient permissions. Required: users:write", "Request additional permissions"},
		{"rate limited", kind.RateLimited, []Option{WithRetryAfter(30)},
			"Rate limit exceeded", "Try again in 30 seconds"},
		{"rate limited without retry", kind.RateLimited, nil,
			"Rate limit exceeded", "Try again later"},
		{"time window", kind.TooManyRequests, []Option{WithTimeWindow("1 minute")},
			"Too many requests", "Wait for the 1 minute window to reset"},
		{"recovery", kind.ServiceUnavailable, []Option{WithEstimatedRecovery("5 minutes")},
			"Service temporarily unavailable", "Try again after 5 minutes"},
		{"external service", kind.ExternalServiceError, []Option{WithServiceName("stripe")},
			"External service error: stripe", "Try again later"},
		{"resource not found", kind.ResourceNotFound, []Option{WithResource("User", "42")},
			"User with ID 42 not found", "Check the resource identifier"},
		{"resource not found without id", kind.ResourceNotFound, []Option{WithResource("User", "")},
			"Resource not found", "Check the resource identifier"},
		{"conflict", kind.ResourceConflict, []Option{WithConflictReason("version mismatch")},
			"Resource conflict: version mismatch", "Refresh and try again"},
		{"expired", kind.ResourceExpired, []Option{WithExpiration("Invite", exp)},
			"Invite has expired", "Request a new resource"},
		{"explicit message wins", kind.ResourceConflict, []Option{WithConflictReason("x"), WithMessageOption("custom")},
			"custom", "Refresh and try again"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.k, Context{}, tt.opts...)
			assert.Equal(t, tt.message, e.Message)
			require.NotEmpty(t, e.Suggestions())
			assert.Equal(t, tt.suggestion, e.Suggestions()[0])
		})
	}
}

func TestNew_KindParametersLandInMetadata(t *testing.T) {
	exp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := New(kind.ResourceExpired, Context{}, WithExpiration("Invite", exp))
	assert.Equal(t, "Invite", e.Context.Metadata[MetaResourceType])
	assert.Equal(t, "2025-06-01T12:00:00Z", e.Context.Metadata[MetaExpirationTime])

	e = New(kind.ResourceNotFound, Context{}, WithResource("User", "42"))
	assert.Equal(t, "42", e.Context.ResourceID)

	e = New(kind.RateLimited, Context{}, WithParams(map[string]any{MetaRetryAfter: float64(12)}))
	assert.Equal(t, "Try again in 12 seconds", e.Suggestions()[0])
}

func TestNew_SuggestionsMergeAndOverride(t *testing.T) {
	e := New(kind.InvalidCredentials, Context{Suggestions: []string{"Use SSO", "Check your username and password"}})
	assert.Equal(t, []string{
		"Check your username and password",
		"Ensure your account is not locked",
		"Use SSO",
	}, e.Suggestions())

	e = New(kind.InvalidCredentials, Context{}, WithSuggestionsOverride("Use SSO"))
	assert.Equal(t, []string{"Use SSO"}, e.Suggestions())
}

func TestNew_ContextOverrides(t *testing.T) {
	e := New(kind.ValidationError, Context{Severity: kind.SeverityHigh, ShouldLog: Bool(true)})
	assert.Equal(t, kind.SeverityHigh, e.Severity())
	assert.True(t, e.ShouldLog())

	e = New(kind.DatabaseError, Context{}, WithShouldLogOption(false))
	assert.False(t, e.ShouldLog())
	assert.Equal(t, kind.SeverityCritical, e.Severity())
}

func TestNew_ValidationAndRateLimitAreQuiet(t *testing.T) {
	for _, k := range []kind.Kind{kind.ValidationError, kind.InvalidInput, kind.MissingRequiredFields, kind.RateLimited, kind.TooManyRequests} {
		assert.False(t, New(k, Context{}).ShouldLog(), k)
	}
}

func TestNew_DoesNotShareContext(t *testing.T) {
	ctx := Context{Metadata: map[string]any{"a": 1}, Suggestions: []string{"s"}}
	e := New(kind.Forbidden, ctx, WithMetadataOption("b", 2))
	_, leaked := ctx.Metadata["b"]
	assert.False(t, leaked, "New must not write into the caller's maps")
	ctx.Suggestions[0] = "changed"
	assert.Contains(t, e.Suggestions(), "s")
}

// Two errors built from the same inputs are equal in everything but
// identity and timestamp.
func TestNew_FreshInstances(t *testing.T) {
	tick := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orig := now
	now = func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}
	defer func() { now = orig }()

	ctx := Context{Operation: "auth.signIn"}
	a := New(kind.InvalidCredentials, ctx)
	b := New(kind.InvalidCredentials, ctx)

	assert.NotSame(t, a, b)
	assert.Equal(t, a.Kind(), b.Kind())
	assert.Equal(t, a.Status(), b.Status())
	assert.Equal(t, a.Suggestions(), b.Suggestions())
	assert.True(t, b.Timestamp.After(a.Timestamp))
}
