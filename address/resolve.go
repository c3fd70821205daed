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
	"net/url"
	"strings"
)

// Resolve builds base + path + query from a template and a bag.
//
//  1. Each ":name" in template is replaced by the percent-encoded value of
//     name. A missing or absent value fails with *MissingPathParameterError;
//     a list value fails with *InvalidParameterError.
//  2. The remaining keys are serialized into the query string in insertion
//     order. Lists become one key=value pair per element; absent values are
//     omitted; empty strings are kept.
//  3. base (without trailing "/") is prepended.
//
// Example:
//
//	Resolve("", "/path/to/:resource", NewParams("resource", "my-resource", "limit", 20, "skip", 20))
//	// "/path/to/my-resource?limit=20&skip=20"
func Resolve(base, template string, p Params) (string, error) {
	var path strings.Builder
	path.Grow(len(template))
	used := make(map[string]struct{}, 2)

	for i := 0; i < len(template); {
		name, next := placeholderAt(template, i)
		if name == "" {
			path.WriteByte(template[i])
			i++
			continue
		}
		raw, ok := p.vals[name]
		if !ok {
			return "", &MissingPathParameterError{Name: name, Template: template}
		}
		v, err := toValue(raw)
		if err != nil {
			return "", &InvalidParameterError{Name: name, Reason: "cannot format value", Err: err}
		}
		if !v.present {
			return "", &MissingPathParameterError{Name: name, Template: template}
		}
		if v.list {
			return "", &InvalidParameterError{Name: name, Reason: "list value bound to a path placeholder"}
		}
		path.WriteString(escape(v.items[0]))
		used[name] = struct{}{}
		i = next
	}

	var query strings.Builder
	for _, k := range p.keys {
		if _, consumed := used[k]; consumed {
			continue
		}
		v, err := toValue(p.vals[k])
		if err != nil {
			return "", &InvalidParameterError{Name: k, Reason: "cannot format value", Err: err}
		}
		for _, item := range v.items {
			if query.Len() > 0 {
				query.WriteByte('&')
			}
			query.WriteString(url.QueryEscape(k))
			query.WriteByte('=')
			query.WriteString(url.QueryEscape(item))
		}
	}

	out := join(base, path.String())
	if query.Len() == 0 {
		return out, nil
	}
	sep := "?"
	if strings.Contains(out, "?") {
		sep = "&"
	}
	return out + sep + query.String(), nil
}

// Placeholders lists the placeholder names of template in order of
// appearance. Duplicates are kept.
func Placeholders(template string) []string {
	var names []string
	for i := 0; i < len(template); {
		name, next := placeholderAt(template, i)
		if name == "" {
			i++
			continue
		}
		names = append(names, name)
		i = next
	}
	return names
}

// placeholderAt returns the placeholder name starting at template[i] and the
// index just past it, or "" when there is none.
func placeholderAt(template string, i int) (string, int) {
	if template[i] != ':' {
		return "", i
	}
	j := i + 1
	for j < len(template) && isNameByte(template[j]) {
		j++
	}
	if j == i+1 {
		return "", i
	}
	return template[i+1 : j], j
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// escape percent-encodes a path value. Every reserved character, including
// "/" and ":", is encoded, so a value can never introduce a new segment or
// look like a placeholder.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func join(base, path string) string {
	base = strings.TrimRight(base, "/")
	switch {
	case base == "":
		return path
	case path == "":
		return base
	case strings.HasPrefix(path, "/"):
		return base + path
	default:
		return base + "/" + path
	}
}
