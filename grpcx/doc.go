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


// Package grpcx carries dcall RPC operations over gRPC.
//
// Requests and replies are JSON documents framed by a JSON codec, so no
// generated stubs are needed on either side. An operation (group, action)
// is invoked as the gRPC method "/<package>.<group>/<action>".
//
// Replies are failure or success envelopes. Errors raised outside a handler
// (interceptors, decoding, panics) travel as gRPC statuses carrying
// google.rpc error details; Caller turns both forms back into *dcall.Error.
package grpcx
