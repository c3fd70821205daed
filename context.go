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

	"dirpx.dev/dcall/kind"
)

// Well-known metadata keys filled by the factory options and by the
// dispatcher.
const (
	MetaRetryAfter            = "retryAfter"
	MetaTimeWindow            = "timeWindow"
	MetaMissingFields         = "missingFields"
	MetaRequiredPermissions   = "requiredPermissions"
	MetaEstimatedRecoveryTime = "estimatedRecoveryTime"
	MetaServiceName           = "serviceName"
	MetaResourceType          = "resourceType"
	MetaResourceID            = "resourceId"
	MetaConflictReason        = "conflictReason"
	MetaExpirationTime        = "expirationTime"
	MetaOriginalCode          = "originalCode"
	MetaOriginalError         = "originalError"
)

// Context is the free-form diagnostic record attached to an Error.
// Every field is optional.
type Context struct {
	// Operation names what was being done, e.g. "users.getUser".
	Operation string
	// ResourceID identifies the resource involved (user id, email, ...).
	ResourceID string
	// Service names the component the error originated in.
	Service string
	// RequestID correlates the error with a request.
	RequestID string
	// DebugInfo is free text for developers; never shown to users.
	DebugInfo string

	// Metadata holds kind parameters (see the Meta* keys) and anything else
	// worth logging.
	Metadata map[string]any
	// FieldErrors maps field names to validation messages.
	FieldErrors map[string][]string
	// Suggestions are merged after the kind's default suggestions.
	Suggestions []string

	// Severity overrides the kind's default when set.
	Severity kind.Severity
	// ShouldLog overrides the kind's default log flag when non-nil.
	ShouldLog *bool
}

// clone returns a deep copy of the maps and slices in c.
func (c Context) clone() Context {
	c.Metadata = maps.Clone(c.Metadata)
	if c.FieldErrors != nil {
		fe := make(map[string][]string, len(c.FieldErrors))
		for k, v := range c.FieldErrors {
			fe[k] = slices.Clone(v)
		}
		c.FieldErrors = fe
	}
	c.Suggestions = slices.Clone(c.Suggestions)
	if c.ShouldLog != nil {
		v := *c.ShouldLog
		c.ShouldLog = &v
	}
	return c
}

func (c *Context) setMeta(k string, v any) {
	if c.Metadata == nil {
		c.Metadata = make(map[string]any, 2)
	}
	c.Metadata[k] = v
}

// Bool returns a pointer to v, for Context.ShouldLog.
func Bool(v bool) *bool { return &v }
