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
	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/taxonomy"
)

var defaultMapper = MustNew()

// Default returns the library-default snapshot used by the package functions.
func Default() apis.Mapper { return defaultMapper }

// HTTPStatus maps k to an HTTP status. Total; unknown kinds get 500.
func HTTPStatus(k kind.Kind) int { return defaultMapper.HTTPStatus(k) }

// GRPCCode maps k to a gRPC code. Total; unknown kinds get codes.Internal.
func GRPCCode(k kind.Kind) codes.Code { return defaultMapper.GRPCStatus(k) }

// UserMessage maps k to an end-user message.
func UserMessage(k kind.Kind) string { return defaultMapper.UserMessage(k) }

// Explain describes how the default snapshot resolved k.
func Explain(k kind.Kind) string { return defaultMapper.Explain(k) }

// GroupOf returns the group of k. Unknown kinds belong to kind.Server.
func GroupOf(k kind.Kind) kind.Group { return taxonomy.GroupOf(k) }

// Groups returns every group in a stable order.
func Groups() []kind.Group { return kind.Groups() }

// Kinds returns the members of g.
func Kinds(g kind.Group) []kind.Kind { return taxonomy.Members(g) }

// IsClientError reports whether k maps to a 4xx status.
func IsClientError(k kind.Kind) bool {
	s := HTTPStatus(k)
	return s >= 400 && s < 500
}

// IsServerError reports whether k maps to a 5xx status.
func IsServerError(k kind.Kind) bool {
	return HTTPStatus(k) >= 500
}

// IsRetryable reports whether a caller may retry k with backoff: the
// RateLimiting group plus transient server unavailability.
func IsRetryable(k kind.Kind) bool {
	switch k {
	case kind.ServiceUnavailable, kind.ExternalServiceError:
		return true
	}
	return GroupOf(k) == kind.RateLimiting
}

// KindForHTTP returns the representative kind for an HTTP status reported by
// a peer that did not send a kind. Unlisted 4xx statuses map to
// kind.InvalidInput, everything else to kind.InternalError.
func KindForHTTP(status int) kind.Kind {
	if k, ok := httpReverse[status]; ok {
		return k
	}
	if status >= 400 && status < 500 {
		return kind.InvalidInput
	}
	return kind.InternalError
}

// KindForGRPC returns the representative kind for a gRPC code.
func KindForGRPC(c codes.Code) kind.Kind {
	if k, ok := grpcReverse[c]; ok {
		return k
	}
	return kind.InternalError
}

// Describe flattens everything known about k into a descriptor.
func Describe(k kind.Kind) apis.KindDescriptor {
	e := taxonomy.MustLookup(k)
	st := defaultMapper.Status(k)
	return apis.KindDescriptor{
		Kind:        string(k),
		Group:       string(GroupOf(k)),
		HTTPStatus:  st.HTTP,
		GRPCCode:    int(st.GRPC),
		Severity:    e.Severity.String(),
		Message:     e.Message,
		UserMessage: UserMessage(k),
		Suggestions: e.Suggestions,
		ShouldLog:   e.ShouldLog,
		Retryable:   IsRetryable(k),
	}
}
