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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical representation of an error kind as it travels in
// the "code" field of a failure envelope.
//
// It is a separate type (not just string) so that envelopes, errors and
// mappers declare explicitly that they expect a normalized value.
type Kind string

// MinLength and MaxLength define the allowed length range for a kind.
const (
	// MinLength is the minimum length for a valid kind.
	MinLength = 3

	// MaxLength is the maximum length for a valid kind. The longest built-in
	// kind is "AUTH_INVALID_CREDENTIALS"; 64 leaves room for server-side
	// additions.
	MaxLength = 64
)

const (
	// kindFmt is the canonical regular expression used to validate kinds.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an upper-case ASCII letter;
	//	[A-Z0-9_]{2,63} - upper-case letters, digits or underscore; total
	//	                  length 3..64;
	//	$ - end of string.
	//
	// IMPORTANT: {2,63} is tied to MinLength / MaxLength above.
	kindFmt = `^[A-Z][A-Z0-9_]{2,63}$`
)

var kindRe = regexp.MustCompile(kindFmt)

var (
	// ErrKindInvalid is returned when a value cannot be parsed as a kind.
	ErrKindInvalid = errors.New("dcall: invalid kind")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It never appears in a valid failure envelope.
var Empty Kind = ""

// Parse normalizes s and validates its format. It does not check that the
// result is one of the built-in kinds; see Known.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings s closer to the canonical form:
//
//   - trims surrounding spaces;
//   - upper-cases the value;
//   - replaces '-', '.' and ' ' with '_'.
//
// The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(s)
}

// Validate checks the format of k. The empty kind is invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// Known reports whether k is one of the built-in kinds.
func Known(k Kind) bool {
	_, ok := index[k]
	return ok
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is normalized
// and validated; unknown but well-formed kinds are accepted.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
