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


package apis

// Detail represents a single structured piece of information attached to an
// error. This is a view type: small, transport-friendly, and suitable for
// JSON or proto mapping.
//
// Field errors of a ValidationError become one Detail per message, with
// Type "field".
type Detail struct {
	// Type is a short classifier of the detail, e.g. "field", "metadata".
	Type string `json:"type,omitempty"`

	// Field carries the logical path to the failing field, e.g. "email".
	// For non-field details this may be empty.
	Field string `json:"field,omitempty"`

	// Reason is a short, human-friendly explanation, e.g. "must be a valid
	// email".
	Reason string `json:"reason,omitempty"`

	// Info carries optional extra structured data. Keys and values should
	// survive JSON/proto round-trips.
	Info map[string]string `json:"info,omitempty"`
}
