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


package dispatch

import (
	"reflect"
	"strings"

	"dirpx.dev/dcall/address"
)

// Struct tags that bind request fields to the address:
//
//	type GetUsersRequest struct {
//		Team  string `path:"teamId"`
//		Limit int    `query:"limit,omitempty"`
//		Skip  int    `query:"skip,omitempty"`
//	}
const (
	tagPath  = "path"
	tagQuery = "query"
)

// requestParams collects the fields of req tagged with path or query, in
// declaration order. Exported embedded structs without a tag are flattened.
func requestParams(req any) address.Params {
	var p address.Params
	if v, ok := structOf(req); ok {
		collectParams(v, &p)
	}
	return p
}

func collectParams(v reflect.Value, p *address.Params) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		name, omitEmpty, tagged := paramTag(f)
		if !tagged {
			if f.Anonymous {
				if ev, ok := structOf(fv.Interface()); ok {
					collectParams(ev, p)
				}
			}
			continue
		}
		if name == "" || (omitEmpty && fv.IsZero()) {
			continue
		}
		p.Set(name, fv.Interface())
	}
}

// hasBody reports whether req carries anything besides address parameters.
// Fields tagged path or query, fields tagged json:"-" and zero values do not
// count.
func hasBody(req any) bool {
	v := reflect.ValueOf(req)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return false
	}
	if v.Kind() != reflect.Struct {
		return !v.IsZero()
	}
	return structHasBody(v)
}

func structHasBody(v reflect.Value) bool {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if _, _, tagged := paramTag(f); tagged {
			continue
		}
		if f.Tag.Get("json") == "-" {
			continue
		}
		fv := v.Field(i)
		if f.Anonymous {
			if ev, ok := structOf(fv.Interface()); ok {
				if structHasBody(ev) {
					return true
				}
				continue
			}
		}
		if !fv.IsZero() {
			return true
		}
	}
	return false
}

func paramTag(f reflect.StructField) (name string, omitEmpty, ok bool) {
	tag, ok := f.Tag.Lookup(tagPath)
	if !ok {
		tag, ok = f.Tag.Lookup(tagQuery)
	}
	if !ok {
		return "", false, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false, true
	}
	return name, opts == "omitempty", true
}

func structOf(x any) (reflect.Value, bool) {
	v := reflect.ValueOf(x)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return v, true
}
