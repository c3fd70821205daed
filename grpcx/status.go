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
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/internal/errdetail"
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/mapper"
)

// ToStatus converts err into a gRPC status. err is wrapped into a *dcall.Error
// first; its kind picks the code through m (the default mapper when nil)
// and the error is attached as details. If the details cannot be attached
// the bare status is returned.
func ToStatus(err error, m apis.Mapper) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	if m == nil {
		m = mapper.Default()
	}
	e := dcall.Wrap(err, dcall.Context{})
	base := status.New(m.GRPCStatus(e.Code), e.Message)

	msgs := errdetail.Build(e)
	details := make([]protoadapt.MessageV1, 0, len(msgs))
	for _, d := range msgs {
		details = append(details, protoadapt.MessageV1Of(d))
	}
	if with, derr := base.WithDetails(details...); derr == nil {
		return with
	}
	return base
}

// FromStatus converts a gRPC status back into a *dcall.Error. The kind comes
// from the ErrorInfo detail when present, otherwise from the code; in that
// case the status text is kept in metadata "originalError".
func FromStatus(st *status.Status, ctx dcall.Context) *dcall.Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	k, opts := errdetail.Parse(st.Details())
	if k == kind.Empty {
		k = mapper.KindForGRPC(st.Code())
		opts = append(opts, dcall.WithMetadataOption(dcall.MetaOriginalError, st.Err().Error()))
	}
	if msg := st.Message(); msg != "" {
		opts = append(opts, dcall.WithMessageOption(msg))
	}
	opts = append(opts, dcall.WithCauseOption(st.Err()))
	return dcall.New(k, ctx, opts...)
}

// FromError converts an error returned by a gRPC call. Context errors are
// kept as causes so deadlines still classify as SERVICE_UNAVAILABLE. An
// Unavailable status without dcall details means the connection failed and
// becomes INTERNAL_ERROR, as any other transport failure does.
func FromError(err error, ctx dcall.Context) *dcall.Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return dcall.Wrap(err, ctx)
	}
	st, ok := status.FromError(err)
	if !ok {
		return dcall.Wrap(err, ctx)
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return dcall.Wrap(errors.Join(context.DeadlineExceeded, err), ctx)
	case codes.Unavailable:
		if k, _ := errdetail.Parse(st.Details()); k == kind.Empty {
			return dcall.Wrap(err, ctx)
		}
	}
	return FromStatus(st, ctx)
}
