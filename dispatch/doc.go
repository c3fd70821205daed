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


// Package dispatch performs typed calls against a catalog of operations.
//
// A Client owns the transports and the ambient configuration; Call binds one
// typed endpoint to one request:
//
//	c, err := dispatch.New(
//		dispatch.WithCatalog(cat),
//		dispatch.WithSender(httpx.NewSender(nil)),
//		dispatch.WithBaseURL("https://api.example.com"),
//	)
//	u, err := dispatch.Call(ctx, c, sdk.GetUser, sdk.GetUserRequest{UserID: "42"})
//
// Every failure is a *dcall.Error. Local preconditions (unknown operation,
// a body on a GET or HEAD request, validation, missing path parameters) fail
// before any transport is touched. Failures reported by the remote side keep
// their kind and field errors; transport errors are wrapped, and a timed out
// call surfaces as SERVICE_UNAVAILABLE.
package dispatch
