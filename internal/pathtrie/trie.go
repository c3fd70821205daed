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


// Package pathtrie is a segment-aware index of "/"-separated path templates
// such as "/users/:userId". It is used for reverse route lookup: given a
// concrete request path, find the template that serves it and extract the
// placeholder values.
package pathtrie

import (
	"errors"
	"strings"
)

// Trie maps path templates to values. Each node represents one segment; a
// ":name" segment matches exactly one non-empty path segment.
//
// Matching is full-path only (no prefix matching) and a literal segment
// always beats a placeholder at the same depth.
type Trie[T any] struct {
	// children holds literal segments; placeholders live under param.
	children map[string]*Trie[T]
	param    *Trie[T]
	// hasVal marks that a template ends at this node.
	hasVal bool
	val    T
	// names lists the placeholder names of the template ending here, in
	// order. Templates sharing a node shape may name placeholders
	// differently, so names belong to the terminal node.
	names []string
	// pattern is the template as inserted, set only when hasVal=true.
	pattern string
}

var (
	// ErrInvalidTemplate is returned for templates that do not start with
	// "/", contain empty segments or malformed placeholders.
	ErrInvalidTemplate = errors.New("pathtrie: invalid template")

	// ErrDuplicate is returned when two templates resolve to the same shape,
	// e.g. "/users/:id" and "/users/:userId".
	ErrDuplicate = errors.New("pathtrie: duplicate template")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a template to the trie and associates it with val.
//
// Examples:
//
//	"/auth/sign-in"
//	"/users/:userId"
//	"/users/check/:identifier"
func (t *Trie[T]) Insert(template string, val T) error {
	if t == nil {
		return ErrInvalidTemplate
	}
	segs, ok := split(template)
	if !ok {
		return ErrInvalidTemplate
	}

	cur := t
	var names []string
	for _, s := range segs {
		if strings.HasPrefix(s, ":") {
			name := s[1:]
			if !ValidName(name) {
				return ErrInvalidTemplate
			}
			names = append(names, name)
			if cur.param == nil {
				cur.param = New[T]()
			}
			cur = cur.param
			continue
		}
		if strings.Contains(s, ":") {
			return ErrInvalidTemplate
		}
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	if cur.hasVal {
		return ErrDuplicate
	}
	cur.hasVal = true
	cur.val = val
	cur.names = names
	cur.pattern = template
	return nil
}

// Match resolves a concrete path. Any query string is ignored. On success it
// returns the value, the template it was registered under and the extracted
// placeholder values (nil when the template has none).
func (t *Trie[T]) Match(path string) (val T, pattern string, params map[string]string, ok bool) {
	if t == nil {
		return val, "", nil, false
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segs, valid := split(path)
	if !valid {
		return val, "", nil, false
	}

	values := make([]string, 0, len(segs))
	var dfs func(n *Trie[T], i int) *Trie[T]
	dfs = func(n *Trie[T], i int) *Trie[T] {
		if i == len(segs) {
			if n.hasVal {
				return n
			}
			return nil
		}
		// literal first
		if next, ok := n.children[segs[i]]; ok {
			if hit := dfs(next, i+1); hit != nil {
				return hit
			}
		}
		if n.param != nil {
			values = append(values, segs[i])
			if hit := dfs(n.param, i+1); hit != nil {
				return hit
			}
			values = values[:len(values)-1]
		}
		return nil
	}

	hit := dfs(t, 0)
	if hit == nil {
		return val, "", nil, false
	}
	if len(hit.names) > 0 {
		params = make(map[string]string, len(hit.names))
		for i, name := range hit.names {
			params[name] = values[i]
		}
	}
	return hit.val, hit.pattern, params, true
}

// ValidName reports whether name is a valid placeholder name: one or more
// of [A-Za-z0-9_].
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

// split turns "/a/b/" into ["a", "b"]. The root path "/" yields no segments.
// Paths must start with "/" and must not contain empty inner segments.
func split(p string) ([]string, bool) {
	if !strings.HasPrefix(p, "/") {
		return nil, false
	}
	p = strings.TrimSuffix(p[1:], "/")
	if p == "" {
		return []string{}, true
	}
	segs := strings.Split(p, "/")
	for _, s := range segs {
		if s == "" {
			return nil, false
		}
	}
	return segs, true
}
