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


// Package taxonomy holds the fixed metadata table behind every error kind:
// HTTP status, default message, user message, severity, suggestions, log
// policy and group.
//
// The table is built once at init and never grows. Lookup returns copies, so
// callers cannot mutate it.
package taxonomy

import (
	"dirpx.dev/dcall/kind"
)

// DefaultUserMessage is shown for kinds that have no dedicated user message.
const DefaultUserMessage = "An unexpected error occurred. Please try again"

// Entry is the metadata attached to one kind.
type Entry struct {
	Kind        kind.Kind
	Group       kind.Group
	Status      int
	Message     string
	UserMessage string
	Severity    kind.Severity
	Suggestions []string
	// ShouldLog is the default log flag for errors of this kind.
	ShouldLog bool
}

func (e Entry) clone() Entry {
	e.Suggestions = append([]string(nil), e.Suggestions...)
	return e
}

// Lookup returns the entry for k. The second result is false for kinds that
// are not built in.
func Lookup(k kind.Kind) (Entry, bool) {
	e, ok := table[k]
	if !ok {
		return Entry{}, false
	}
	return e.clone(), true
}

// MustLookup returns the entry for k, falling back to InternalError's entry
// for unknown kinds.
func MustLookup(k kind.Kind) Entry {
	if e, ok := Lookup(k); ok {
		return e
	}
	return table[kind.InternalError].clone()
}

// Entries returns every entry in kind.All order.
func Entries() []Entry {
	out := make([]Entry, 0, len(table))
	for _, k := range kind.All() {
		out = append(out, table[k].clone())
	}
	return out
}

// GroupOf returns the group of k. Unknown kinds belong to kind.Server, the
// group of the InternalError they are coerced to.
func GroupOf(k kind.Kind) kind.Group {
	if e, ok := table[k]; ok {
		return e.Group
	}
	return kind.Server
}

// Members returns the kinds of g in kind.All order.
func Members(g kind.Group) []kind.Kind {
	var out []kind.Kind
	for _, k := range kind.All() {
		if table[k].Group == g {
			out = append(out, k)
		}
	}
	return out
}

// shouldLog is the default log policy. Low-severity validation and rate-limit
// kinds are expected and stay quiet; everything else is logged.
func shouldLog(g kind.Group, s kind.Severity) bool {
	if s > kind.SeverityLow {
		return true
	}
	switch g {
	case kind.Validation, kind.RateLimiting:
		return false
	}
	return true
}

var table = func() map[kind.Kind]Entry {
	m := make(map[kind.Kind]Entry, len(rows))
	for _, r := range rows {
		if r.UserMessage == "" {
			r.UserMessage = DefaultUserMessage
		}
		r.ShouldLog = shouldLog(r.Group, r.Severity)
		m[r.Kind] = r
	}
	return m
}()
