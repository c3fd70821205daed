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

	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/taxonomy"
)

// defaultHTTP is derived from the taxonomy table.
var defaultHTTP = func() map[kind.Kind]int {
	m := make(map[kind.Kind]int, len(kind.All()))
	for _, e := range taxonomy.Entries() {
		m[e.Kind] = e.Status
	}
	return m
}()

// defaultGRPC defines the built-in gRPC mappings.
var defaultGRPC = map[kind.Kind]codes.Code{
	// Authentication
	kind.InvalidCredentials: codes.Unauthenticated,
	kind.TokenExpired:       codes.Unauthenticated,
	kind.TokenInvalid:       codes.Unauthenticated,
	kind.Unauthorized:       codes.Unauthenticated,

	// User management
	kind.UserNotFound:      codes.NotFound,
	kind.UserAlreadyExists: codes.AlreadyExists,
	kind.InvalidEmail:      codes.InvalidArgument,
	kind.InvalidUsername:   codes.InvalidArgument,
	kind.WeakPassword:      codes.InvalidArgument,
	kind.UserNotVerified:   codes.FailedPrecondition, // account exists, state is wrong

	// Validation
	kind.ValidationError:       codes.InvalidArgument,
	kind.InvalidInput:          codes.InvalidArgument,
	kind.MissingRequiredFields: codes.InvalidArgument,

	// Permissions
	kind.Forbidden:               codes.PermissionDenied,
	kind.InsufficientPermissions: codes.PermissionDenied,

	// Rate limiting
	kind.RateLimited:     codes.ResourceExhausted,
	kind.TooManyRequests: codes.ResourceExhausted,

	// Server
	kind.InternalError:        codes.Internal,
	kind.ServiceUnavailable:   codes.Unavailable,
	kind.DatabaseError:        codes.Internal,
	kind.ExternalServiceError: codes.Unavailable,

	// Resources
	kind.ResourceNotFound: codes.NotFound,
	kind.ResourceConflict: codes.Aborted,
	kind.ResourceExpired:  codes.FailedPrecondition,
}

// httpReverse picks one representative kind per HTTP status.
var httpReverse = map[int]kind.Kind{
	http.StatusBadRequest:          kind.ValidationError,
	http.StatusUnauthorized:        kind.Unauthorized,
	http.StatusForbidden:           kind.Forbidden,
	http.StatusNotFound:            kind.ResourceNotFound,
	http.StatusConflict:            kind.ResourceConflict,
	http.StatusGone:                kind.ResourceExpired,
	http.StatusUnprocessableEntity: kind.ValidationError,
	http.StatusTooManyRequests:     kind.RateLimited,
	http.StatusInternalServerError: kind.InternalError,
	http.StatusBadGateway:          kind.ExternalServiceError,
	http.StatusServiceUnavailable:  kind.ServiceUnavailable,
	http.StatusGatewayTimeout:      kind.ServiceUnavailable,
}

// grpcReverse picks one representative kind per gRPC code.
var grpcReverse = map[codes.Code]kind.Kind{
	codes.Unauthenticated:    kind.Unauthorized,
	codes.PermissionDenied:   kind.Forbidden,
	codes.NotFound:           kind.ResourceNotFound,
	codes.AlreadyExists:      kind.ResourceConflict,
	codes.Aborted:            kind.ResourceConflict,
	codes.InvalidArgument:    kind.InvalidInput,
	codes.OutOfRange:         kind.InvalidInput,
	codes.FailedPrecondition: kind.InvalidInput,
	codes.ResourceExhausted:  kind.RateLimited,
	codes.Unavailable:        kind.ServiceUnavailable,
	codes.DeadlineExceeded:   kind.ServiceUnavailable,
	codes.Internal:           kind.InternalError,
	codes.Unknown:            kind.InternalError,
	codes.DataLoss:           kind.DatabaseError,
}
