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


package taxonomy

import (
	"net/http"

	"dirpx.dev/dcall/kind"
)

var rows = []Entry{
	// Authentication
	{
		Kind:        kind.InvalidCredentials,
		Group:       kind.Authentication,
		Status:      http.StatusUnauthorized,
		Message:     "Invalid credentials provided",
		UserMessage: "Invalid username or password",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Check your username and password", "Ensure your account is not locked"},
	},
	{
		Kind:        kind.TokenExpired,
		Group:       kind.Authentication,
		Status:      http.StatusUnauthorized,
		Message:     "Authentication token has expired",
		UserMessage: "Your session has expired. Please sign in again",
		Severity:    kind.SeverityLow,
		Suggestions: []string{"Refresh your authentication token", "Sign in again"},
	},
	{
		Kind:        kind.TokenInvalid,
		Group:       kind.Authentication,
		Status:      http.StatusUnauthorized,
		Message:     "Invalid authentication token",
		UserMessage: "Invalid authentication token",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Check token format", "Ensure token was not tampered with"},
	},
	{
		Kind:        kind.Unauthorized,
		Group:       kind.Authentication,
		Status:      http.StatusUnauthorized,
		Message:     "Authentication required",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Sign in to continue", "Check authentication headers"},
	},

	// User management
	{
		Kind:        kind.UserNotFound,
		Group:       kind.UserManagement,
		Status:      http.StatusNotFound,
		Message:     "User not found",
		UserMessage: "User not found",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Check the user identifier", "Verify the user exists in the system"},
	},
	{
		Kind:        kind.UserAlreadyExists,
		Group:       kind.UserManagement,
		Status:      http.StatusConflict,
		Message:     "User already exists",
		UserMessage: "An account with this email already exists",
		Severity:    kind.SeverityLow,
		Suggestions: []string{"Try signing in instead", "Use a different email address", "Reset password if needed"},
	},
	{
		Kind:        kind.InvalidEmail,
		Group:       kind.UserManagement,
		Status:      http.StatusBadRequest,
		Message:     "Invalid email address",
		UserMessage: "Please enter a valid email address",
		Severity:    kind.SeverityLow,
		Suggestions: []string{"Check email format (user@domain.com)", "Remove extra spaces"},
	},
	{
		Kind:        kind.InvalidUsername,
		Group:       kind.UserManagement,
		Status:      http.StatusBadRequest,
		Message:     "Invalid username",
		UserMessage: "Username must be 3-48 characters and contain only letters, numbers, and underscores",
		Severity:    kind.SeverityLow,
		Suggestions: []string{
			"Username must be 3-48 characters",
			"Use only letters, numbers, and underscores",
			"Start with a letter or number",
		},
	},
	{
		Kind:        kind.WeakPassword,
		Group:       kind.UserManagement,
		Status:      http.StatusBadRequest,
		Message:     "Password does not meet requirements",
		UserMessage: "Password must be at least 8 characters with uppercase, lowercase, and number/special character",
		Severity:    kind.SeverityLow,
		Suggestions: []string{
			"Use at least 8 characters",
			"Include uppercase and lowercase letters",
			"Add numbers or special characters",
		},
	},
	{
		Kind:        kind.UserNotVerified,
		Group:       kind.UserManagement,
		Status:      http.StatusForbidden,
		Message:     "User account not verified",
		UserMessage: "Please verify your email address before continuing",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Check your email for verification link", "Resend verification email"},
	},

	// Validation
	{
		Kind:        kind.ValidationError,
		Group:       kind.Validation,
		Status:      http.StatusBadRequest,
		Message:     "Validation failed",
		UserMessage: "Please check your input and try again",
		Severity:    kind.SeverityLow,
		Suggestions: []string{"Review and correct the highlighted fields"},
	},
	{
		Kind:        kind.InvalidInput,
		Group:       kind.Validation,
		Status:      http.StatusBadRequest,
		Message:     "Invalid input provided",
		Severity:    kind.SeverityLow,
		Suggestions: []string{"Check input format and requirements"},
	},
	{
		Kind:     kind.MissingRequiredFields,
		Group:    kind.Validation,
		Status:   http.StatusBadRequest,
		Message:  "Missing required fields",
		Severity: kind.SeverityLow,
	},

	// Permissions
	{
		Kind:        kind.Forbidden,
		Group:       kind.Permissions,
		Status:      http.StatusForbidden,
		Message:     "Access forbidden",
		UserMessage: "You don't have permission to perform this action",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Contact administrator for access", "Check your permissions"},
	},
	{
		Kind:        kind.InsufficientPermissions,
		Group:       kind.Permissions,
		Status:      http.StatusForbidden,
		Message:     "Insufficient permissions",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Request additional permissions", "Contact administrator"},
	},

	// Rate limiting
	{
		Kind:        kind.RateLimited,
		Group:       kind.RateLimiting,
		Status:      http.StatusTooManyRequests,
		Message:     "Rate limit exceeded",
		UserMessage: "Too many requests. Please try again later",
		Severity:    kind.SeverityLow,
		Suggestions: []string{"Try again later", "Reduce request frequency"},
	},
	{
		Kind:        kind.TooManyRequests,
		Group:       kind.RateLimiting,
		Status:      http.StatusTooManyRequests,
		Message:     "Too many requests",
		Severity:    kind.SeverityLow,
		Suggestions: []string{"Wait before making more requests", "Implement request batching"},
	},

	// Server
	{
		Kind:        kind.InternalError,
		Group:       kind.Server,
		Status:      http.StatusInternalServerError,
		Message:     "Internal server error occurred",
		Severity:    kind.SeverityHigh,
		Suggestions: []string{"Try again later", "Contact support if problem persists"},
	},
	{
		Kind:        kind.ServiceUnavailable,
		Group:       kind.Server,
		Status:      http.StatusServiceUnavailable,
		Message:     "Service temporarily unavailable",
		UserMessage: "Service is temporarily unavailable. Please try again later",
		Severity:    kind.SeverityHigh,
		Suggestions: []string{"Try again later", "Check service status page"},
	},
	{
		Kind:        kind.DatabaseError,
		Group:       kind.Server,
		Status:      http.StatusInternalServerError,
		Message:     "Database error occurred",
		Severity:    kind.SeverityCritical,
		Suggestions: []string{"Try again later", "Contact support if problem persists"},
	},
	{
		Kind:        kind.ExternalServiceError,
		Group:       kind.Server,
		Status:      http.StatusServiceUnavailable,
		Message:     "External service error",
		Severity:    kind.SeverityHigh,
		Suggestions: []string{"Try again later", "Check external service status"},
	},

	// Resources
	{
		Kind:        kind.ResourceNotFound,
		Group:       kind.Resources,
		Status:      http.StatusNotFound,
		Message:     "Resource not found",
		UserMessage: "The requested resource was not found",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Check the resource identifier", "Verify the resource exists"},
	},
	{
		Kind:        kind.ResourceConflict,
		Group:       kind.Resources,
		Status:      http.StatusConflict,
		Message:     "Resource conflict",
		UserMessage: "This resource is in conflict with existing data",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Refresh and try again", "Check for concurrent modifications"},
	},
	{
		Kind:        kind.ResourceExpired,
		Group:       kind.Resources,
		Status:      http.StatusGone,
		Message:     "Resource has expired",
		Severity:    kind.SeverityMedium,
		Suggestions: []string{"Request a new resource", "Check expiration policies"},
	},
}
