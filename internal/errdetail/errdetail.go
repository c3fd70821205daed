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


// Package errdetail converts dcall errors to and from google.rpc error
// details, the structured payload shared by gRPC statuses and the HTTP
// problem body.
package errdetail

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/kind"
)

// Domain is the ErrorInfo domain of every dcall error.
const Domain = "dcall.dirpx.dev"

// Locale of the LocalizedMessage detail.
const Locale = "en-US"

// list-valued metadata travels comma-joined
var listKeys = map[string]bool{
	dcall.MetaMissingFields:       true,
	dcall.MetaRequiredPermissions: true,
}

// Build describes e as error details:
//
//   - ErrorInfo: the kind as reason, scalar metadata;
//   - BadRequest: field errors;
//   - RetryInfo: the retryAfter hint;
//   - ResourceInfo: resource type and id;
//   - RequestInfo: the request id;
//   - Help: suggestions, as link descriptions;
//   - LocalizedMessage: the user message.
func Build(e *dcall.Error) []proto.Message {
	if e == nil {
		return nil
	}
	md := e.Context.Metadata
	out := []proto.Message{&errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: flatten(md),
	}}

	if fe := e.Context.FieldErrors; len(fe) > 0 {
		br := &errdetails.BadRequest{}
		fields := make([]string, 0, len(fe))
		for f := range fe {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			for _, msg := range fe[f] {
				br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
					Field:       f,
					Description: msg,
				})
			}
		}
		out = append(out, br)
	}

	if secs := intOf(md[dcall.MetaRetryAfter]); secs > 0 {
		out = append(out, &errdetails.RetryInfo{RetryDelay: durationpb.New(time.Duration(secs) * time.Second)})
	}

	typ, _ := md[dcall.MetaResourceType].(string)
	id := e.Context.ResourceID
	if typ != "" || id != "" {
		out = append(out, &errdetails.ResourceInfo{ResourceType: typ, ResourceName: id})
	}

	if e.Context.RequestID != "" {
		out = append(out, &errdetails.RequestInfo{RequestId: e.Context.RequestID})
	}

	if s := e.Suggestions(); len(s) > 0 {
		h := &errdetails.Help{}
		for _, d := range s {
			h.Links = append(h.Links, &errdetails.Help_Link{Description: d})
		}
		out = append(out, h)
	}

	out = append(out, &errdetails.LocalizedMessage{Locale: Locale, Message: e.UserMessage()})
	return out
}

// Parse reads details produced by Build. It returns the kind named by the
// ErrorInfo (kind.Empty when absent or foreign) and options restoring the
// rest. Unrecognized details are ignored.
func Parse(details []any) (kind.Kind, []dcall.Option) {
	k := kind.Empty
	var opts []dcall.Option
	for _, d := range details {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == Domain {
				if parsed, err := kind.Parse(d.GetReason()); err == nil {
					k = parsed
				}
			}
			opts = append(opts, dcall.WithParams(unflatten(d.GetMetadata())))
		case *errdetails.BadRequest:
			fe := make(map[string][]string)
			for _, v := range d.GetFieldViolations() {
				fe[v.GetField()] = append(fe[v.GetField()], v.GetDescription())
			}
			opts = append(opts, dcall.WithFieldErrors(fe))
		case *errdetails.RetryInfo:
			if delay := d.GetRetryDelay(); delay != nil {
				opts = append(opts, dcall.WithRetryAfter(int(delay.AsDuration().Round(time.Second)/time.Second)))
			}
		case *errdetails.ResourceInfo:
			opts = append(opts, dcall.WithResource(d.GetResourceType(), d.GetResourceName()))
		case *errdetails.RequestInfo:
			id := d.GetRequestId()
			opts = append(opts, func(e *dcall.Error) *dcall.Error {
				e.Context.RequestID = id
				return e
			})
		case *errdetails.Help:
			var s []string
			for _, l := range d.GetLinks() {
				s = append(s, l.GetDescription())
			}
			opts = append(opts, func(e *dcall.Error) *dcall.Error {
				e.Context.Suggestions = append(e.Context.Suggestions, s...)
				return e
			})
		}
	}
	return k, opts
}

func flatten(md map[string]any) map[string]string {
	if len(md) == 0 {
		return nil
	}
	out := make(map[string]string, len(md))
	for k, v := range md {
		switch v := v.(type) {
		case nil:
		case string:
			out[k] = v
		case []string:
			out[k] = strings.Join(v, ",")
		case []any:
			parts := make([]string, 0, len(v))
			for _, x := range v {
				parts = append(parts, fmt.Sprint(x))
			}
			out[k] = strings.Join(parts, ",")
		default:
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

func unflatten(md map[string]string) map[string]any {
	if len(md) == 0 {
		return nil
	}
	out := make(map[string]any, len(md))
	for k, v := range md {
		switch {
		case listKeys[k]:
			if v != "" {
				out[k] = strings.Split(v, ",")
			}
		case k == dcall.MetaRetryAfter:
			if n, err := strconv.Atoi(v); err == nil {
				out[k] = n
				continue
			}
			out[k] = v
		default:
			out[k] = v
		}
	}
	return out
}

func intOf(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}
