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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall/kind"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves an error kind into transport statuses for HTTP and gRPC and
// into an end-user message.
//
// Every method is total: unknown kinds resolve like kind.InternalError.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for k.
	HTTPStatus(k kind.Kind) int

	// GRPCStatus returns the gRPC status code for k.
	GRPCStatus(k kind.Kind) codes.Code

	// Status resolves both HTTP and gRPC in a single call.
	Status(k kind.Kind) Status

	// UserMessage returns the end-user message for k.
	UserMessage(k kind.Kind) string

	// Explain returns a human-readable description of which rule matched.
	Explain(k kind.Kind) string
}

// Status represents a resolved pair of transport statuses for a single kind.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
