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


package dispatch

import (
	"context"

	"dirpx.dev/dcall/catalog"
)

// Hook provides observability callpoints around a dispatch. Hooks only see
// calls that passed the local preconditions and are about to reach a
// transport. Implementations must be safe for concurrent use.
type Hook interface {
	OnDispatchStart(ctx context.Context, info DispatchInfo) (context.Context, HookToken)
	OnDispatchEnd(ctx context.Context, token HookToken, info DispatchInfo, stats *CallStatistics, err error)
}

// HookToken is an opaque value returned by OnDispatchStart and passed back to
// OnDispatchEnd. Only meaningful to the Hook that created it.
type HookToken interface{}

// DispatchInfo describes the call being dispatched.
type DispatchInfo struct {
	Transport catalog.Transport
	Group     string
	Action    string
	// Method is empty for RPC calls.
	Method string
	// Address is the resolved URL for REST calls and "group/action" for RPC.
	Address   string
	RequestID string
	// Metadata is the outgoing header or metadata set, with lower-case
	// keys. Entries added by OnDispatchStart are sent with the request.
	Metadata map[string]string
}

// CallStatistics holds per-call counters.
type CallStatistics struct {
	RequestBytes  int64
	ResponseBytes int64
	// Status is the HTTP status of a REST response, zero for RPC.
	Status int
}
