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

// Authentication kinds
//
// Raised when the caller could not be identified or its credentials were
// rejected. All of them map to HTTP 401.
const (
	// InvalidCredentials indicates that the supplied login/password pair (or
	// an equivalent secret) was rejected.
	InvalidCredentials Kind = "AUTH_INVALID_CREDENTIALS"

	// TokenExpired indicates that the bearer token was well-formed but is no
	// longer valid. Callers usually refresh and retry once.
	TokenExpired Kind = "AUTH_TOKEN_EXPIRED"

	// TokenInvalid indicates a malformed or tampered token.
	TokenInvalid Kind = "AUTH_TOKEN_INVALID"

	// Unauthorized indicates that the operation requires an authenticated
	// caller and none was presented.
	Unauthorized Kind = "AUTH_UNAUTHORIZED"
)

// User management kinds
const (
	// UserNotFound indicates that the addressed user does not exist.
	//
	// The wire string keeps its historical "AUTH_" prefix, but the kind is
	// grouped with user management (HTTP 404).
	UserNotFound Kind = "AUTH_USER_NOT_FOUND"

	// UserAlreadyExists indicates a sign-up or create for an existing
	// email/username. HTTP 409.
	UserAlreadyExists Kind = "USER_ALREADY_EXISTS"

	// InvalidEmail indicates an email address that failed format checks.
	InvalidEmail Kind = "USER_INVALID_EMAIL"

	// InvalidUsername indicates a username that failed format checks.
	InvalidUsername Kind = "USER_INVALID_USERNAME"

	// WeakPassword indicates a password that does not meet the policy.
	WeakPassword Kind = "USER_WEAK_PASSWORD"

	// UserNotVerified indicates that the account exists but has not completed
	// verification. HTTP 403.
	UserNotVerified Kind = "USER_NOT_VERIFIED"
)

// Validation kinds
//
// Expected, user-driven input problems. They default to low severity and are
// not logged.
const (
	// ValidationError carries per-field messages in the envelope "errors"
	// object.
	ValidationError Kind = "VALIDATION_ERROR"

	// InvalidInput is the generic "request is malformed" kind. It is also
	// raised locally when a no-body operation is given a body.
	InvalidInput Kind = "INVALID_INPUT"

	// MissingRequiredFields names the absent fields in metadata
	// "missingFields". Raised locally for unresolved path placeholders.
	MissingRequiredFields Kind = "MISSING_REQUIRED_FIELDS"
)

// Permission kinds
const (
	// Forbidden indicates that the caller is authenticated but not allowed.
	Forbidden Kind = "FORBIDDEN"

	// InsufficientPermissions lists the missing permissions in metadata
	// "requiredPermissions".
	InsufficientPermissions Kind = "INSUFFICIENT_PERMISSIONS"
)

// Rate limiting kinds
//
// Both are retryable. RateLimited may carry "retryAfter" seconds.
const (
	RateLimited     Kind = "RATE_LIMITED"
	TooManyRequests Kind = "TOO_MANY_REQUESTS"
)

// Server kinds
//
// Server-side failures. Always logged.
const (
	// InternalError is the fallback for anything that could not be
	// classified, including unknown kinds and transport failures.
	InternalError Kind = "INTERNAL_ERROR"

	// ServiceUnavailable indicates a temporarily unreachable service. Local
	// transport timeouts surface as this kind.
	ServiceUnavailable Kind = "SERVICE_UNAVAILABLE"

	// DatabaseError indicates a storage failure. Critical severity.
	DatabaseError Kind = "DATABASE_ERROR"

	// ExternalServiceError indicates a failing third-party dependency, named
	// in metadata "serviceName".
	ExternalServiceError Kind = "EXTERNAL_SERVICE_ERROR"
)

// Resource kinds
const (
	ResourceNotFound Kind = "RESOURCE_NOT_FOUND"
	ResourceConflict Kind = "RESOURCE_CONFLICT"
	ResourceExpired  Kind = "RESOURCE_EXPIRED"
)

// all lists the built-in kinds in declaration order.
var all = [...]Kind{
	InvalidCredentials,
	TokenExpired,
	TokenInvalid,
	Unauthorized,
	UserNotFound,
	UserAlreadyExists,
	InvalidEmail,
	InvalidUsername,
	WeakPassword,
	UserNotVerified,
	ValidationError,
	InvalidInput,
	MissingRequiredFields,
	Forbidden,
	InsufficientPermissions,
	RateLimited,
	TooManyRequests,
	InternalError,
	ServiceUnavailable,
	DatabaseError,
	ExternalServiceError,
	ResourceNotFound,
	ResourceConflict,
	ResourceExpired,
}

var index = func() map[Kind]int {
	m := make(map[Kind]int, len(all))
	for i, k := range all {
		m[k] = i
	}
	return m
}()

// All returns the built-in kinds in a stable order. The returned slice is a
// fresh copy.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all[:])
	return out
}
