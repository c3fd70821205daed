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


package pathtrie

import (
	"errors"
	"testing"
)

func TestInsertAndMatch(t *testing.T) {
	tr := New[string]()
	routes := []string{
		"/users",
		"/users/@me",
		"/users/:userId",
		"/users/check/:identifier",
		"/oauth2/:provider/callback",
		"/",
	}
	for _, r := range routes {
		if err := tr.Insert(r, r); err != nil {
			t.Fatalf("Insert(%q): %v", r, err)
		}
	}

	tests := []struct {
		path    string
		want    string
		params  map[string]string
		matched bool
	}{
		{"/users", "/users", nil, true},
		{"/users/", "/users", nil, true},
		{"/users/@me", "/users/@me", nil, true},
		{"/users/42", "/users/:userId", map[string]string{"userId": "42"}, true},
		{"/users/check/bob?suggestions=true", "/users/check/:identifier", map[string]string{"identifier": "bob"}, true},
		{"/users/check", "/users/:userId", map[string]string{"userId": "check"}, true},
		{"/oauth2/discord/callback", "/oauth2/:provider/callback", map[string]string{"provider": "discord"}, true},
		{"/", "/", nil, true},
		{"/oauth2/discord", "", nil, false},
		{"/users/42/extra", "", nil, false},
		{"users", "", nil, false},
		{"/users//42", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			val, pattern, params, ok := tr.Match(tt.path)
			if ok != tt.matched {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.path, ok, tt.matched)
			}
			if !ok {
				return
			}
			if val != tt.want || pattern != tt.want {
				t.Fatalf("Match(%q) = %q (%q), want %q", tt.path, val, pattern, tt.want)
			}
			if len(params) != len(tt.params) {
				t.Fatalf("Match(%q) params = %v, want %v", tt.path, params, tt.params)
			}
			for k, v := range tt.params {
				if params[k] != v {
					t.Fatalf("Match(%q) params[%q] = %q, want %q", tt.path, k, params[k], v)
				}
			}
		})
	}
}

func TestLiteralBeatsPlaceholderWithBacktracking(t *testing.T) {
	tr := New[int]()
	_ = tr.Insert("/a/b/c", 1)
	_ = tr.Insert("/a/:x/d", 2)

	// the literal "b" branch dead-ends on "d"; the placeholder must be tried
	v, _, params, ok := tr.Match("/a/b/d")
	if !ok || v != 2 || params["x"] != "b" {
		t.Fatalf("Match = %d %v %v", v, params, ok)
	}
}

func TestInsertErrors(t *testing.T) {
	tr := New[int]()
	if err := tr.Insert("/users/:id", 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tr.Insert("/users/:userId", 2); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Insert(same shape) err = %v, want ErrDuplicate", err)
	}

	invalid := []string{"", "users", "/users//x", "/users/:", "/users/:bad-name", "/a:b"}
	for _, tpl := range invalid {
		if err := tr.Insert(tpl, 0); !errors.Is(err, ErrInvalidTemplate) {
			t.Fatalf("Insert(%q) err = %v, want ErrInvalidTemplate", tpl, err)
		}
	}

	var nilTrie *Trie[int]
	if err := nilTrie.Insert("/x", 1); err == nil {
		t.Fatalf("Insert on nil trie must fail")
	}
	if _, _, _, ok := nilTrie.Match("/x"); ok {
		t.Fatalf("Match on nil trie must fail")
	}
}
