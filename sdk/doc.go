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


// Package sdk declares the Auth and User operations of the platform API as
// typed dcall endpoints, together with their request and response shapes.
//
// Every REST operation has an RPC twin in AuthService or UserService. Both
// sets live in one Catalog:
//
//	c, err := sdk.NewClient(dispatch.WithBaseURL("https://api.example.com"), dispatch.WithSender(httpx.NewSender(nil)))
//	me, err := c.Users.Me(ctx)
//
// Requests are checked locally with NewValidator before they are sent; a
// rejected request never reaches the transport.
package sdk
