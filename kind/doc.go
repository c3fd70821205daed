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

// Package kind defines the closed set of error kinds exchanged by dcall
// transports, together with the severity scale and the kind groups.
//
// A "kind" is the wire-level, machine-readable classification of a failed
// call, such as "AUTH_INVALID_CREDENTIALS" or "RESOURCE_NOT_FOUND". Kinds are:
//
//   - upper-case and underscore-separated;
//   - stable: the string is what REST and RPC envelopes carry in "code";
//   - closed: the set is fixed at build time, see All.
//
// Parse only checks the format. A well-formed but unknown kind is still a
// valid Kind value (it may come from a newer server); use Known to test
// membership. Consumers are expected to treat unknown kinds as InternalError.
package kind
