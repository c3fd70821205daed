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


// Package mapper provides deterministic, immutable mappings from error kinds
// (dirpx.dev/dcall/kind) to transport-level statuses for HTTP and gRPC and to
// end-user messages.
//
// # Overview
//
// REST gateways, gRPC servers and clients all need to turn a kind into
// something their transport understands, and back. Package mapper does that
// in a way that is:
//
//   - total: every kind, known or not, resolves to a status;
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per kind;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the kind;
//  2. per-kind default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// HTTP defaults come from the taxonomy table, so the status a kind maps to is
// the same one its errors carry. gRPC defaults follow the usual gateway
// conventions (AUTH_* -> Unauthenticated, RATE_LIMITED -> ResourceExhausted,
// SERVICE_UNAVAILABLE -> Unavailable, and so on).
//
// # Package functions
//
// HTTPStatus, GRPCCode, UserMessage and friends use a default snapshot built
// at init. KindForHTTP and KindForGRPC go the other way and are used when a
// peer only reports a transport status.
package mapper
