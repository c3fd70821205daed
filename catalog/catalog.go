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


package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"dirpx.dev/dcall/address"
	"dirpx.dev/dcall/internal/pathtrie"
)

var validMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// ErrInvalidOperation is wrapped by every validation error returned by New.
var ErrInvalidOperation = errors.New("catalog: invalid operation")

// UnknownOperationError is returned for an operation that is not part of
// the catalog, or is registered with a different method or path.
type UnknownOperationError struct {
	Transport Transport
	Group     string
	Action    string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("catalog: unknown %s operation %s.%s", e.Transport, e.Group, e.Action)
}

type key struct {
	t             Transport
	group, action string
}

// Catalog is an immutable set of operations. Safe for concurrent use.
type Catalog struct {
	ops    map[key]Operation
	routes map[string]*pathtrie.Trie[Operation]
}

// New validates entries and builds a catalog. All problems are reported
// together, each wrapping ErrInvalidOperation.
//
// Rules: group and action are non-empty; (transport, group, action) is
// unique; REST operations use a known HTTP verb and a path that starts with
// "/" and has well-formed placeholders; no two REST operations share a
// method and path shape.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		ops:    make(map[key]Operation, len(entries)),
		routes: make(map[string]*pathtrie.Trie[Operation]),
	}
	var errs []error
	fail := func(op Operation, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w %s: %s", ErrInvalidOperation, op, fmt.Sprintf(format, args...)))
	}

	for _, entry := range entries {
		op := entry.Operation()
		if op.Group == "" || op.Action == "" {
			fail(op, "empty group or action")
			continue
		}
		k := key{op.Transport, op.Group, op.Action}
		if _, dup := c.ops[k]; dup {
			fail(op, "duplicate name")
			continue
		}

		switch op.Transport {
		case TransportRPC:
		case TransportREST:
			if !validMethods[op.Method] {
				fail(op, "unsupported method %q", op.Method)
				continue
			}
			tr := c.routes[op.Method]
			if tr == nil {
				tr = pathtrie.New[Operation]()
				c.routes[op.Method] = tr
			}
			// the trie validates the template shape and catches
			// conflicting routes
			if err := tr.Insert(op.Path, op); err != nil {
				fail(op, "path %q: %v", op.Path, err)
				continue
			}
		default:
			fail(op, "unknown transport")
			continue
		}
		c.ops[k] = op
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for package-level
// catalogs.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the operation registered under (t, group, action).
func (c *Catalog) Lookup(t Transport, group, action string) (Operation, bool) {
	op, ok := c.ops[key{t, group, action}]
	return op, ok
}

// Check returns *UnknownOperationError unless e is registered exactly as
// described.
func (c *Catalog) Check(e Entry) error {
	op := e.Operation()
	if got, ok := c.Lookup(op.Transport, op.Group, op.Action); ok && got == op {
		return nil
	}
	return &UnknownOperationError{Transport: op.Transport, Group: op.Group, Action: op.Action}
}

// Has reports whether e is registered.
func (c *Catalog) Has(e Entry) bool {
	return c.Check(e) == nil
}

// Len returns the number of operations.
func (c *Catalog) Len() int { return len(c.ops) }

// Operations returns every operation sorted by transport, group and action.
func (c *Catalog) Operations() []Operation {
	out := make([]Operation, 0, len(c.ops))
	for _, op := range c.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Transport != b.Transport {
			return a.Transport < b.Transport
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Action < b.Action
	})
	return out
}

// Match finds the REST operation serving method and path, returning the
// extracted path parameters. Literal segments win over placeholders.
func (c *Catalog) Match(method, path string) (Operation, map[string]string, bool) {
	tr := c.routes[strings.ToUpper(method)]
	if tr == nil {
		return Operation{}, nil, false
	}
	op, _, params, ok := tr.Match(path)
	return op, params, ok
}

// Placeholders lists the path parameters of op.
func (o Operation) Placeholders() []string {
	return address.Placeholders(o.Path)
}
