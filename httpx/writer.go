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


package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/envelope"
	"dirpx.dev/dcall/internal/errdetail"
	"dirpx.dev/dcall/mapper"
)

// Meta carries what the HTTP layer knows on top of the error itself. All
// fields are optional.
type Meta struct {
	RequestID         string
	RetryAfterSeconds int
}

// Writer turns errors and results into envelope responses.
type Writer struct {
	// Mapper resolves kinds to statuses; nil means the default mapper.
	Mapper apis.Mapper
	// Log receives errors whose ShouldLog is true. The zero value discards.
	Log zerolog.Logger
	// Details adds google.rpc error details, in protojson form, under
	// "details" in failure bodies.
	Details bool
}

type failureBody struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Details []json.RawMessage   `json:"details,omitempty"`
}

// WriteError writes err as a failure envelope. Errors that are not
// *dcall.Error become INTERNAL_ERROR.
//
// No redaction is performed: the message and field errors of the error are
// exposed as they are.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	e := dcall.Wrap(err, dcall.Context{RequestID: meta.RequestID})
	if meta.RequestID != "" && e.Context.RequestID == "" {
		e = e.WithRequestID(meta.RequestID)
	}
	if meta.RetryAfterSeconds > 0 {
		e = e.WithMetadata(dcall.MetaRetryAfter, meta.RetryAfterSeconds)
	}

	if e.ShouldLog() {
		w.Log.WithLevel(e.LogLevel()).Object("error", e).Msg(e.Message)
	}

	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}

	f := e.Failure()
	body := failureBody{Code: string(f.Code), Message: f.Message, Errors: f.FieldErrors}
	if w.Details {
		body.Details = details(e)
	}

	h := rw.Header()
	h.Set("Content-Type", "application/json")
	if e.Context.RequestID != "" {
		h.Set("X-Request-ID", e.Context.RequestID)
	}
	if secs := retryAfter(e); secs > 0 {
		h.Set("Retry-After", strconv.Itoa(secs))
	}
	rw.WriteHeader(m.HTTPStatus(e.Code))
	_ = json.NewEncoder(rw).Encode(body)
}

// WriteData writes data as a success envelope with the given status.
func WriteData[T any](rw http.ResponseWriter, status int, data T) {
	b, err := json.Marshal(envelope.Success(data))
	if err != nil {
		Writer{}.WriteError(rw, err, Meta{})
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(append(b, '\n'))
}

func details(e *dcall.Error) []json.RawMessage {
	msgs := errdetail.Build(e)
	out := make([]json.RawMessage, 0, len(msgs))
	for _, m := range msgs {
		a, err := anypb.New(m)
		if err != nil {
			continue
		}
		b, err := protojson.Marshal(a)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func retryAfter(e *dcall.Error) int {
	switch v := e.Context.Metadata[dcall.MetaRetryAfter].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}
