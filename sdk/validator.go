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


package sdk

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{00FF}0-9\s-]+$`)
	bioRe      = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{00FF}0-9.,;:!?'"()@#$%^&*_+=\[\]{}|\\~` + "`" + ` -]+$`)
	usernameRe = regexp.MustCompile(`^[a-z0-9_.]{3,48}$`)
	phoneRe    = regexp.MustCompile(`^\+(?:[0-9] ?){6,14}[0-9]$`)
)

// Validator checks request shapes against their validate tags. It
// implements dispatch.Validator and is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator with the custom rules name, bio,
// username, phone and password registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range map[string]func(string) bool{
		"name":     nameRe.MatchString,
		"bio":      bioRe.MatchString,
		"username": validUsername,
		"phone":    phoneRe.MatchString,
		"password": func(s string) bool { return len(passwordProblems(s)) == 0 },
	} {
		must(v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}))
	}
	return &Validator{v: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate checks req. Values that are not structs are accepted as is. A
// rejected request yields a *ValidationError.
func (v *Validator) Validate(req any) error {
	rv := reflect.Indirect(reflect.ValueOf(req))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil
	}
	err := v.v.Struct(req)
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		return newValidationError(ves)
	}
	return err
}

// ValidationError lists the messages per field path, e.g.
// "identifier.username".
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "sdk: invalid request: " + strings.Join(parts, ", ")
}

// FieldErrors implements dispatch.FieldErrorer.
func (e *ValidationError) FieldErrors() map[string][]string {
	return e.Fields
}

func newValidationError(ves validator.ValidationErrors) *ValidationError {
	out := &ValidationError{Fields: make(map[string][]string, len(ves))}
	for _, fe := range ves {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		out.Fields[field] = append(out.Fields[field], messages(fe)...)
	}
	return out
}

func messages(fe validator.FieldError) []string {
	switch fe.Tag() {
	case "required":
		return []string{"must not be empty"}
	case "email":
		return []string{"must be a valid email address"}
	case "phone":
		return []string{"must be an international phone number"}
	case "lowercase":
		return []string{"must be lower-case"}
	case "min":
		return []string{fmt.Sprintf("must be at least %s characters long", fe.Param())}
	case "max":
		return []string{fmt.Sprintf("must be at most %s characters long", fe.Param())}
	case "username":
		return []string{"must use lower-case letters, digits, underscores and single inner dots"}
	case "name":
		return []string{"must contain only letters, digits, spaces and dashes"}
	case "bio":
		return []string{"contains unsupported characters"}
	case "password":
		if s, ok := fe.Value().(string); ok {
			return passwordProblems(s)
		}
		return []string{"Password must be secure"}
	default:
		return []string{fmt.Sprintf("failed %q check", fe.Tag())}
	}
}

func validUsername(s string) bool {
	return usernameRe.MatchString(s) &&
		!strings.HasPrefix(s, ".") &&
		!strings.HasSuffix(s, ".") &&
		!strings.Contains(s, "..")
}

// passwordProblems returns one message per unmet password rule.
func passwordProblems(s string) []string {
	var upper, lower, other bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
		if unicode.IsDigit(r) || !(unicode.IsLetter(r) || r == '_') {
			other = true
		}
	}
	var out []string
	if len([]rune(s)) < 8 {
		out = append(out, "Password must be at least 8 characters long")
	}
	if !upper {
		out = append(out, "Password must contain at least one uppercase letter")
	}
	if !lower {
		out = append(out, "Password must contain at least one lowercase letter")
	}
	if !other {
		out = append(out, "Password must contain at least one number or special character")
	}
	return out
}
