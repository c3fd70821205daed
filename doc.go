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


// Package dcall is the error model of the dcall call layer.
//
// Every failed call, whether it failed locally (a missing path parameter, a
// body on a GET) or remotely (a failure envelope), surfaces as a *Error
// carrying a kind from package kind. Callers pattern-match on the kind:
//
//	res, err := dispatch.Call(ctx, client, sdk.GetUser, req)
//	switch {
//	case dcall.Is(err, kind.UserNotFound):
//	    ...
//	case mapper.IsRetryable(dcall.KindOf(err)):
//	    ...
//	}
//
// New is the only constructor. It fills in the default message, status,
// severity, suggestions and log flag of the kind, and coerces unknown kinds
// to kind.InternalError while keeping the original in metadata.
package dcall
