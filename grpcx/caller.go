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


package grpcx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"dirpx.dev/dcall"
)

// Caller invokes RPC operations over a gRPC connection. It implements
// dispatch.Caller.
type Caller struct {
	conn grpc.ClientConnInterface
	pkg  string
	opts []grpc.CallOption
}

// NewCaller returns a Caller for the services of pkg, e.g. "zymu.v1". An
// empty pkg addresses services by bare group name.
func NewCaller(conn grpc.ClientConnInterface, pkg string, opts ...grpc.CallOption) *Caller {
	return &Caller{conn: conn, pkg: pkg, opts: opts}
}

// Call sends body to group/action and returns the reply envelope. md is
// sent as outgoing metadata. A gRPC status error is returned as a
// *dcall.Error.
func (c *Caller) Call(ctx context.Context, group, action string, body []byte, md map[string]string) ([]byte, error) {
	if len(md) > 0 {
		kv := make([]string, 0, 2*len(md))
		for k, v := range md {
			kv = append(kv, k, v)
		}
		ctx = metadata.AppendToOutgoingContext(ctx, kv...)
	}

	in, out := body, []byte(nil)
	opts := append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, c.opts...)
	if err := c.conn.Invoke(ctx, FullMethod(c.pkg, group, action), &in, &out, opts...); err != nil {
		return nil, FromError(err, dcall.Context{
			Operation: group + "." + action,
			RequestID: md["x-request-id"],
		})
	}
	return out, nil
}

// FullMethod returns "/<pkg>.<group>/<action>".
func FullMethod(pkg, group, action string) string {
	return "/" + ServiceName(pkg, group) + "/" + action
}

// ServiceName returns "<pkg>.<group>", or group alone when pkg is empty.
func ServiceName(pkg, group string) string {
	if pkg == "" {
		return group
	}
	return pkg + "." + group
}
