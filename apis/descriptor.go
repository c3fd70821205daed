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


package apis

// KindDescriptor is a flat, transport-friendly description of one kind and
// everything the taxonomy and mapper know about it.
//
// It uses plain strings and ints (not kind.Kind or codes.Code) so that it
// can be printed by tools and serialized without pulling in the mapper.
type KindDescriptor struct {
	// Kind is the wire string, e.g. "AUTH_TOKEN_EXPIRED".
	Kind string `json:"kind"`

	// Group is the kind's group, e.g. "Authentication".
	Group string `json:"group"`

	// HTTPStatus is the status used when the kind is exposed over HTTP.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the gRPC status code as integer.
	GRPCCode int `json:"grpc_code"`

	// Severity is one of "low", "medium", "high", "critical".
	Severity string `json:"severity"`

	// Message is the default developer-facing message.
	Message string `json:"message"`

	// UserMessage is the default end-user message.
	UserMessage string `json:"user_message"`

	// Suggestions are the default remediation hints.
	Suggestions []string `json:"suggestions,omitempty"`

	// ShouldLog is the default log flag.
	ShouldLog bool `json:"should_log"`

	// Retryable reports whether callers may retry with backoff.
	Retryable bool `json:"retryable"`
}
