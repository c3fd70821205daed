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


package address

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// value is a parameter converted to its textual form.
type value struct {
	present bool
	list    bool
	items   []string
}

// toValue converts a parameter. Numbers are formatted with strconv, so the
// result never depends on locale.
func toValue(v any) (value, error) {
	if v == nil {
		return value{}, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return value{}, nil
		}
		rv = rv.Elem()
	}

	s, ok, err := scalar(rv.Interface())
	if err != nil {
		return value{}, err
	}
	if ok {
		return value{present: true, items: []string{s}}, nil
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return value{}, fmt.Errorf("unsupported type %T", v)
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return value{}, nil
	}

	out := value{present: true, list: true, items: make([]string, 0, rv.Len())}
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i)
		for el.Kind() == reflect.Pointer || el.Kind() == reflect.Interface {
			if el.IsNil() {
				break
			}
			el = el.Elem()
		}
		if (el.Kind() == reflect.Pointer || el.Kind() == reflect.Interface) && el.IsNil() {
			continue
		}
		s, ok, err := scalar(el.Interface())
		if err != nil {
			return value{}, err
		}
		if !ok {
			return value{}, fmt.Errorf("unsupported element type %s", el.Type())
		}
		out.items = append(out.items, s)
	}
	return out, nil
}

// scalar formats v when it is a scalar. ok is false for non-scalars.
func scalar(v any) (s string, ok bool, err error) {
	switch x := v.(type) {
	case string:
		return x, true, nil
	case []byte:
		return string(x), true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case int:
		return strconv.Itoa(x), true, nil
	case int64:
		return strconv.FormatInt(x, 10), true, nil
	case uint64:
		return strconv.FormatUint(x, 10), true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true, nil
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return "", true, err
		}
		return string(b), true, nil
	case fmt.Stringer:
		return x.String(), true, nil
	}

	// named types and the remaining sized integers
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	}
	return "", false, nil
}
