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
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/kind"
)

// UnaryFunc serves one action: JSON request in, JSON envelope out.
type UnaryFunc func(ctx context.Context, body []byte) ([]byte, error)

// Handle adapts a typed function to UnaryFunc. The request is decoded from
// JSON and the outcome, errors included, is returned as an envelope. Only an
// undecodable request fails the call itself, with INVALID_INPUT.
func Handle[Req, Res any](fn func(context.Context, Req) (Res, error)) UnaryFunc {
	return func(ctx context.Context, body []byte) ([]byte, error) {
		var req Req
		if len(body) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, dcall.New(kind.InvalidInput, dcall.Context{RequestID: RequestID(ctx)},
					dcall.WithMessageOption("Request body is not valid JSON"),
					dcall.WithCauseOption(err))
			}
		}
		env := dcall.Capture(ctx, func(ctx context.Context) (Res, error) {
			return fn(ctx, req)
		})
		return json.Marshal(env)
	}
}

// Register adds the actions of one group to s as a gRPC service named
// "<pkg>.<group>".
func Register(s grpc.ServiceRegistrar, pkg, group string, actions map[string]UnaryFunc) {
	name := ServiceName(pkg, group)
	desc := grpc.ServiceDesc{
		ServiceName: name,
		HandlerType: (*any)(nil),
		Metadata:    "dcall",
	}
	methods := make([]string, 0, len(actions))
	for m := range actions {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	for _, m := range methods {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: m,
			Handler:    methodHandler("/"+name+"/"+m, actions[m]),
		})
	}
	s.RegisterService(&desc, nil)
}

func methodHandler(fullMethod string, fn UnaryFunc) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		var in []byte
		if err := dec(&in); err != nil {
			return nil, err
		}
		call := func(ctx context.Context, req any) (any, error) {
			out, err := fn(ctx, *req.(*[]byte))
			if err != nil {
				return nil, err
			}
			return &out, nil
		}
		if interceptor == nil {
			return call(ctx, &in)
		}
		return interceptor(ctx, &in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}, call)
	}
}

// UnaryServerInterceptor converts handler errors and panics into gRPC
// statuses carrying error details. Statuses created elsewhere pass through
// untouched. Errors that should be logged are logged to log.
//
// m resolves kinds to codes; nil means the default mapper.
func UnaryServerInterceptor(m apis.Mapper, log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				resp, err = nil, convert(ctx, fmt.Errorf("panic: %v", r), info, m, log)
			}
		}()

		resp, err = handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ours := dcall.As(err); !ours {
			if _, isStatus := status.FromError(err); isStatus {
				return nil, err
			}
		}
		return nil, convert(ctx, err, info, m, log)
	}
}

func convert(ctx context.Context, err error, info *grpc.UnaryServerInfo, m apis.Mapper, log zerolog.Logger) error {
	e := dcall.Wrap(err, dcall.Context{Operation: info.FullMethod, RequestID: RequestID(ctx)})
	if e.Context.RequestID == "" {
		e = e.WithRequestID(RequestID(ctx))
	}
	if e.ShouldLog() {
		log.WithLevel(e.LogLevel()).
			Str("method", info.FullMethod).
			Object("error", e).
			Msg(e.Message)
	}
	return ToStatus(e, m).Err()
}

// RequestID returns the x-request-id of the incoming call, if any.
func RequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get("x-request-id"); len(v) > 0 {
		return v[0]
	}
	return ""
}
