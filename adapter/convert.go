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


// Package adapter projects dcall errors and kinds through an arbitrary
// apis.Mapper. The methods on *dcall.Error and mapper.Describe always use
// the default mapping; tools that run with overrides go through here.
package adapter

import (
	"dirpx.dev/dcall"
	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/mapper"
	"dirpx.dev/dcall/taxonomy"
)

// ToDescriptor describes k with the statuses and user message resolved by
// m. A nil m means mapper.Default(). Unknown kinds are described as
// kind.InternalError, except for the Kind field which keeps k.
func ToDescriptor(k kind.Kind, m apis.Mapper) apis.KindDescriptor {
	if m == nil {
		m = mapper.Default()
	}
	e := taxonomy.MustLookup(k)
	st := m.Status(k)
	return apis.KindDescriptor{
		Kind:        string(k),
		Group:       string(e.Group),
		HTTPStatus:  st.HTTP,
		GRPCCode:    int(st.GRPC),
		Severity:    e.Severity.String(),
		Message:     e.Message,
		UserMessage: m.UserMessage(k),
		Suggestions: e.Suggestions,
		ShouldLog:   e.ShouldLog,
		Retryable:   mapper.IsRetryable(e.Kind),
	}
}

// Table describes every built-in kind, grouped and in declaration order.
func Table(m apis.Mapper) []apis.KindDescriptor {
	out := make([]apis.KindDescriptor, 0, len(kind.All()))
	for _, g := range kind.Groups() {
		for _, k := range taxonomy.Members(g) {
			out = append(out, ToDescriptor(k, m))
		}
	}
	return out
}

// ToView converts e into a public ErrorView using the status and user
// message resolved by m. It performs no redaction: details are copied as
// the error reports them.
func ToView(e *dcall.Error, m apis.Mapper) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	if m == nil {
		m = mapper.Default()
	}
	v := e.ErrorView()
	v.Status = m.HTTPStatus(e.Code)
	v.UserMessage = m.UserMessage(e.Code)
	return v
}
