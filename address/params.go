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


// Package address turns path templates and parameter bags into request
// addresses.
//
// A template is a path with zero or more ":name" placeholders, e.g.
// "/users/:userId". Resolve substitutes placeholders from a Params bag and
// serializes whatever is left into the query string, in insertion order.
package address

import (
	"fmt"
	"slices"
)

// Params is an ordered parameter bag. The zero value is ready to use.
//
// Values may be strings, bools, any integer or float, fmt.Stringer or
// encoding.TextMarshaler values, pointers to those, or slices and arrays of
// those. nil values and nil pointers count as absent: they are skipped in the
// query string and do not satisfy a placeholder. Other value types are
// accepted by Set and reported by Resolve.
type Params struct {
	keys []string
	vals map[string]any
}

// NewParams builds a bag from alternating keys and values:
//
//	address.NewParams("resource", "my-resource", "limit", 20)
//
// Non-string keys are formatted with fmt.Sprint. A trailing key without a
// value is recorded as absent.
func NewParams(kv ...any) Params {
	var p Params
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		var val any
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		p.Set(key, val)
	}
	return p
}

// Set stores v under key. Re-setting a key keeps its original position.
func (p *Params) Set(key string, v any) {
	if p.vals == nil {
		p.vals = make(map[string]any)
	}
	if _, exists := p.vals[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = v
}

// Get returns the raw value stored under key.
func (p Params) Get(key string) (any, bool) {
	v, ok := p.vals[key]
	return v, ok
}

// Del removes key from the bag.
func (p *Params) Del(key string) {
	if _, ok := p.vals[key]; !ok {
		return
	}
	delete(p.vals, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (p Params) Keys() []string {
	return slices.Clone(p.keys)
}

// Len returns the number of keys, absent values included.
func (p Params) Len() int {
	return len(p.keys)
}

// Merge returns a copy of p with the entries of other appended (or
// replaced, keeping p's order for keys present in both).
func (p Params) Merge(other Params) Params {
	out := p.Clone()
	for _, k := range other.keys {
		out.Set(k, other.vals[k])
	}
	return out
}

// Clone returns an independent copy of the bag. Values are shared.
func (p Params) Clone() Params {
	out := Params{keys: slices.Clone(p.keys)}
	if p.vals != nil {
		out.vals = make(map[string]any, len(p.vals))
		for k, v := range p.vals {
			out.vals[k] = v
		}
	}
	return out
}
