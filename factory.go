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


package dcall

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/taxonomy"
)

// now is replaced in tests.
var now = time.Now

// New builds a fully populated error of kind k.
//
// Unknown kinds become kind.InternalError with the original kind kept in
// metadata "originalCode". Options run first; then the message (when none
// was given), status, severity, suggestions and log flag are resolved from
// the taxonomy table, the kind parameters and ctx. Caller suggestions are
// merged after the defaults unless WithSuggestionsOverride was used.
//
// Usage:
//
//	return dcall.New(kind.RateLimited, dcall.Context{Operation: "users.list"},
//	    dcall.WithRetryAfter(30),
//	)
//
// It always returns a new Error with its own timestamp.
func New(k kind.Kind, ctx Context, opts ...Option) *Error {
	e := &Error{Context: ctx.clone(), Timestamp: now()}

	if kind.Known(k) {
		e.Code = k
	} else {
		e.Code = kind.InternalError
		if _, exists := e.Context.Metadata[MetaOriginalCode]; !exists {
			e.Context.setMeta(MetaOriginalCode, string(k))
		}
	}

	for _, opt := range opts {
		e = opt(e)
	}

	entry := taxonomy.MustLookup(e.Code)
	md := e.Context.Metadata

	if e.Message == "" {
		e.Message = defaultMessage(entry, md)
	}
	e.status = entry.Status

	e.severity = entry.Severity
	if e.Context.Severity != kind.SeverityUnset {
		e.severity = e.Context.Severity
	}

	e.shouldLog = entry.ShouldLog
	if e.Context.ShouldLog != nil {
		e.shouldLog = *e.Context.ShouldLog
	}

	if e.fixedSuggestions {
		e.suggestions = mergeSuggestions(nil, e.Context.Suggestions)
	} else {
		e.suggestions = mergeSuggestions(defaultSuggestions(entry, md), e.Context.Suggestions)
	}
	return e
}

// defaultMessage renders the kind's message, filling in kind parameters.
func defaultMessage(entry taxonomy.Entry, md map[string]any) string {
	switch entry.Kind {
	case kind.MissingRequiredFields:
		if fields := metaStrings(md, MetaMissingFields); len(fields) > 0 {
			return "Missing required fields: " + strings.Join(fields, ", ")
		}
	case kind.InsufficientPermissions:
		if perms := metaStrings(md, MetaRequiredPermissions); len(perms) > 0 {
			return "Insufficient permissions. Required: " + strings.Join(perms, ", ")
		}
	case kind.ExternalServiceError:
		if name := metaString(md, MetaServiceName); name != "" {
			return "External service error: " + name
		}
	case kind.ResourceNotFound:
		typ, id := metaString(md, MetaResourceType), metaString(md, MetaResourceID)
		if typ != "" && id != "" {
			return fmt.Sprintf("%s with ID %s not found", typ, id)
		}
	case kind.ResourceConflict:
		if reason := metaString(md, MetaConflictReason); reason != "" {
			return "Resource conflict: " + reason
		}
	case kind.ResourceExpired:
		if typ := metaString(md, MetaResourceType); typ != "" {
			return typ + " has expired"
		}
	}
	return entry.Message
}

// defaultSuggestions renders the kind's suggestions, filling in kind
// parameters.
func defaultSuggestions(entry taxonomy.Entry, md map[string]any) []string {
	s := entry.Suggestions
	switch entry.Kind {
	case kind.MissingRequiredFields:
		if fields := metaStrings(md, MetaMissingFields); len(fields) > 0 {
			return []string{"Provide values for: " + strings.Join(fields, ", ")}
		}
		return []string{"Provide values for all required fields"}
	case kind.RateLimited:
		if secs := metaInt(md, MetaRetryAfter); secs > 0 {
			s[0] = fmt.Sprintf("Try again in %d seconds", secs)
		}
	case kind.TooManyRequests:
		if w := metaString(md, MetaTimeWindow); w != "" {
			s[0] = fmt.Sprintf("Wait for the %s window to reset", w)
		}
	case kind.ServiceUnavailable:
		if when := metaString(md, MetaEstimatedRecoveryTime); when != "" {
			s[0] = "Try again after " + when
		}
	}
	return s
}

func metaString(md map[string]any, k string) string {
	switch v := md[k].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return ""
}

func metaStrings(md map[string]any, k string) []string {
	switch v := md[k].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, x := range v {
			if s, ok := x.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return nil
}

// metaInt accepts the numeric shapes metadata takes after a JSON round trip.
func metaInt(md map[string]any, k string) int {
	switch v := md[k].(type) {
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
