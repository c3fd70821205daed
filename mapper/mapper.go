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


package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/taxonomy"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, user messages).
//  3. Validate every rule: kinds must be well-formed, statuses in range.
//  4. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := validateHTTP("default", b.httpDefaults); err != nil {
		return nil, err
	}
	if err := validateHTTP("override", b.httpOverride); err != nil {
		return nil, err
	}
	if err := validateGRPC("default", b.grpcDefaults); err != nil {
		return nil, err
	}
	if err := validateGRPC("override", b.grpcOverride); err != nil {
		return nil, err
	}
	for k := range b.userMessages {
		if err := kind.Validate(k); err != nil {
			return nil, fmt.Errorf("mapper: user message for kind %q: %w", k, err)
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpDefault:  freeze(b.httpDefaults, same[int]),
		grpcDefault:  freeze(b.grpcDefaults, toCode),
		httpOverride: freeze(b.httpOverride, same[int]),
		grpcOverride: freeze(b.grpcOverride, toCode),
		userMessages: freeze(b.userMessages, same[string]),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// MustNew is like New but panics on error. Intended for package-level
// variables.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// mapper is an immutable mapper implementation combining per-kind defaults
// and per-kind exact overrides. Lookups are map reads and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a kind.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// userMessages holds user message replacements.
	userMessages map[kind.Kind]string

	// fallbackHTTP is used when there is no mapping at all for a kind.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override;
//  2. per-kind default (library or user overridden);
//  3. hardcoded fallback (500).
func (m *mapper) HTTPStatus(k kind.Kind) int {
	if v, ok := m.httpOverride[k]; ok {
		return v
	}
	if v, ok := m.httpDefault[k]; ok {
		return v
	}
	// HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(k kind.Kind) codes.Code {
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports in one call, keeping HTTP and gRPC
// decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k),
		GRPC: m.GRPCStatus(k),
	}
}

// UserMessage returns the end-user message for k: a configured replacement,
// the taxonomy's user message, or taxonomy.DefaultUserMessage.
func (m *mapper) UserMessage(k kind.Kind) string {
	if msg, ok := m.userMessages[k]; ok {
		return msg
	}
	if e, ok := taxonomy.Lookup(k); ok {
		return e.UserMessage
	}
	return taxonomy.DefaultUserMessage
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a kind.
//
// Example output:
//
//	kind="RATE_LIMITED" group="RateLimiting"
//	http: source=override -> 503
//	grpc: source=default -> RESOURCEEXHAUSTED(8)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(k kind.Kind) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q group=%q\n", k, taxonomy.GroupOf(k))
	_, _ = fmt.Fprintln(&b, m.explainHTTP(k))
	_, _ = fmt.Fprint(&b, m.explainGRPC(k))
	return b.String()
}

func (m *mapper) explainHTTP(k kind.Kind) string {
	if v, ok := m.httpOverride[k]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[k]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(k kind.Kind) string {
	if v, ok := m.grpcOverride[k]; ok {
		return "grpc: source=override -> " + grpcName(v)
	}
	if v, ok := m.grpcDefault[k]; ok {
		return "grpc: source=default -> " + grpcName(v)
	}
	return "grpc: source=fallback -> " + grpcName(m.fallbackGRPC)
}
