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
	"maps"
	"slices"
	"time"

	"dirpx.dev/dcall/kind"
)

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
//
// Options run inside New before defaults are resolved, so the kind
// parameters below shape the default message and suggestions.
type Option func(*Error) *Error

// WithMessageOption replaces the default message.
func WithMessageOption(msg string) Option {
	return func(e *Error) *Error {
		e.Message = msg
		return e
	}
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}

// WithMetadataOption adds a single metadata key/value on construction.
func WithMetadataOption(k string, v any) Option {
	return func(e *Error) *Error {
		e.Context.setMeta(k, v)
		return e
	}
}

// WithTransportMetadataOption attaches header-like transport metadata.
func WithTransportMetadataOption(md map[string]string) Option {
	return func(e *Error) *Error {
		return e.WithTransportMetadata(md)
	}
}

// WithSuggestionsOverride replaces the kind's default suggestions instead of
// merging with them.
func WithSuggestionsOverride(s ...string) Option {
	return func(e *Error) *Error {
		e.Context.Suggestions = slices.Clone(s)
		e.fixedSuggestions = true
		return e
	}
}

// WithRetryAfter records how many seconds a rate-limited caller should wait.
func WithRetryAfter(seconds int) Option {
	return WithMetadataOption(MetaRetryAfter, seconds)
}

// WithTimeWindow records the rate limit window, e.g. "1 minute".
func WithTimeWindow(window string) Option {
	return WithMetadataOption(MetaTimeWindow, window)
}

// WithMissingFields names the absent required fields.
func WithMissingFields(fields ...string) Option {
	return WithMetadataOption(MetaMissingFields, slices.Clone(fields))
}

// WithRequiredPermissions names the permissions the caller lacks.
func WithRequiredPermissions(perms ...string) Option {
	return WithMetadataOption(MetaRequiredPermissions, slices.Clone(perms))
}

// WithFieldErrors attaches per-field validation messages.
func WithFieldErrors(fe map[string][]string) Option {
	return func(e *Error) *Error {
		if len(fe) == 0 {
			return e
		}
		if e.Context.FieldErrors == nil {
			e.Context.FieldErrors = make(map[string][]string, len(fe))
		}
		for k, v := range fe {
			e.Context.FieldErrors[k] = append(e.Context.FieldErrors[k], v...)
		}
		return e
	}
}

// WithEstimatedRecovery records when an unavailable service is expected
// back, e.g. "5 minutes".
func WithEstimatedRecovery(when string) Option {
	return WithMetadataOption(MetaEstimatedRecoveryTime, when)
}

// WithServiceName names the failing external service.
func WithServiceName(name string) Option {
	return WithMetadataOption(MetaServiceName, name)
}

// WithResource names the resource type and id. The id also becomes
// Context.ResourceID.
func WithResource(typ, id string) Option {
	return func(e *Error) *Error {
		if typ != "" {
			e.Context.setMeta(MetaResourceType, typ)
		}
		if id != "" {
			e.Context.setMeta(MetaResourceID, id)
			e.Context.ResourceID = id
		}
		return e
	}
}

// WithConflictReason explains a resource conflict.
func WithConflictReason(reason string) Option {
	return WithMetadataOption(MetaConflictReason, reason)
}

// WithExpiration names the expired resource type and when it expired. A zero
// time is not recorded.
func WithExpiration(typ string, at time.Time) Option {
	return func(e *Error) *Error {
		if typ != "" {
			e.Context.setMeta(MetaResourceType, typ)
		}
		if !at.IsZero() {
			e.Context.setMeta(MetaExpirationTime, at.UTC().Format(time.RFC3339Nano))
		}
		return e
	}
}

// WithParams applies loosely typed kind parameters, as found in decoded
// metadata. Recognized keys are the Meta* constants; others are copied into
// metadata as-is.
func WithParams(params map[string]any) Option {
	return func(e *Error) *Error {
		if len(params) == 0 {
			return e
		}
		if e.Context.Metadata == nil {
			e.Context.Metadata = make(map[string]any, len(params))
		}
		maps.Copy(e.Context.Metadata, params)
		if id, ok := params[MetaResourceID].(string); ok && e.Context.ResourceID == "" {
			e.Context.ResourceID = id
		}
		return e
	}
}

// WithSeverityOption overrides the kind's default severity.
func WithSeverityOption(s kind.Severity) Option {
	return func(e *Error) *Error {
		e.Context.Severity = s
		return e
	}
}

// WithShouldLogOption overrides the kind's default log flag.
func WithShouldLogOption(v bool) Option {
	return func(e *Error) *Error {
		e.Context.ShouldLog = Bool(v)
		return e
	}
}
