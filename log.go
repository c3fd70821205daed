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
	"time"

	"github.com/rs/zerolog"

	"dirpx.dev/dcall/kind"
)

var _ zerolog.LogObjectMarshaler = (*Error)(nil)

// LogFields returns the error as a flat map, for loggers that do not speak
// zerolog.
func (e *Error) LogFields() map[string]any {
	f := map[string]any{
		"errorCode":  string(e.Code),
		"message":    e.Message,
		"timestamp":  e.Timestamp.UTC().Format(time.RFC3339Nano),
		"severity":   e.severity.String(),
		"httpStatus": e.status,
	}
	put := func(k, v string) {
		if v != "" {
			f[k] = v
		}
	}
	put("operation", e.Context.Operation)
	put("resourceId", e.Context.ResourceID)
	put("service", e.Context.Service)
	put("requestId", e.Context.RequestID)
	put("debugInfo", e.Context.DebugInfo)
	if len(e.Context.Metadata) > 0 {
		f["metadata"] = e.Context.Metadata
	}
	if len(e.Context.FieldErrors) > 0 {
		f["validationErrors"] = e.Context.FieldErrors
	}
	if len(e.suggestions) > 0 {
		f["suggestions"] = e.Suggestions()
	}
	if e.Cause != nil {
		f["cause"] = e.Cause.Error()
	}
	return f
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler, so errors can
// be logged with Event.Object or Event.EmbedObject.
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("code", string(e.Code)).
		Str("error_message", e.Message).
		Int("status", e.status).
		Str("severity", e.severity.String()).
		Time("timestamp", e.Timestamp)
	if e.Context.Operation != "" {
		ev.Str("operation", e.Context.Operation)
	}
	if e.Context.ResourceID != "" {
		ev.Str("resource_id", e.Context.ResourceID)
	}
	if e.Context.Service != "" {
		ev.Str("service", e.Context.Service)
	}
	if e.Context.RequestID != "" {
		ev.Str("request_id", e.Context.RequestID)
	}
	if len(e.Context.Metadata) > 0 {
		ev.Interface("metadata", e.Context.Metadata)
	}
	if len(e.Context.FieldErrors) > 0 {
		ev.Interface("field_errors", e.Context.FieldErrors)
	}
	if len(e.suggestions) > 0 {
		ev.Strs("suggestions", e.suggestions)
	}
	if e.Cause != nil {
		ev.AnErr("cause", e.Cause)
	}
}

// LogLevel maps the error's severity to a zerolog level.
func (e *Error) LogLevel() zerolog.Level {
	return LevelFor(e.severity)
}

// LevelFor maps a severity to a zerolog level.
func LevelFor(s kind.Severity) zerolog.Level {
	switch s {
	case kind.SeverityCritical, kind.SeverityHigh:
		return zerolog.ErrorLevel
	case kind.SeverityMedium:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
