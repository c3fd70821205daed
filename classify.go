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
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/mapper"
	"dirpx.dev/dcall/taxonomy"
)

// Classification is everything a caller may want to know about a kind
// without building an error.
type Classification struct {
	Kind        kind.Kind
	Group       kind.Group
	Status      int
	Message     string
	UserMessage string
	Suggestions []string
	Severity    kind.Severity
	ShouldLog   bool
	Retryable   bool
}

// Classify returns the classification of k. Unknown kinds are classified as
// kind.InternalError.
func Classify(k kind.Kind) Classification {
	e := taxonomy.MustLookup(k)
	return Classification{
		Kind:        e.Kind,
		Group:       e.Group,
		Status:      mapper.HTTPStatus(e.Kind),
		Message:     e.Message,
		UserMessage: mapper.UserMessage(e.Kind),
		Suggestions: e.Suggestions,
		Severity:    e.Severity,
		ShouldLog:   e.ShouldLog,
		Retryable:   mapper.IsRetryable(e.Kind),
	}
}
