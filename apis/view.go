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

// ViewProvider is implemented by errors that can produce a transport-friendly
// representation of themselves.
//
// The returned view MUST be safe to marshal and SHOULD contain only what may
// be disclosed to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error. It is the
// shape logged by hooks and returned by tooling; the wire envelope is built
// from the same data.
type ErrorView struct {
	// Kind is the wire string, e.g. "RESOURCE_NOT_FOUND".
	Kind string `json:"code"`

	// Message is the developer-facing message.
	Message string `json:"message,omitempty"`

	// UserMessage is the end-user message.
	UserMessage string `json:"user_message,omitempty"`

	// Status is the HTTP status the kind maps to.
	Status int `json:"status,omitempty"`

	// Severity is one of "low", "medium", "high", "critical".
	Severity string `json:"severity,omitempty"`

	// Suggestions are remediation hints.
	Suggestions []string `json:"suggestions,omitempty"`

	// RequestID is the request identifier, if one was attached.
	RequestID string `json:"request_id,omitempty"`

	// Details is an optional list of structured details.
	Details []Detail `json:"details,omitempty"`
}
