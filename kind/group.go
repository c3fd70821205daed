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

// Group partitions the kinds for bulk handling, e.g. "retry every
// RateLimiting kind with backoff". Every built-in kind belongs to exactly one
// group.
type Group string

const (
	Authentication Group = "Authentication"
	UserManagement Group = "UserManagement"
	Validation     Group = "Validation"
	Permissions    Group = "Permissions"
	RateLimiting   Group = "RateLimiting"
	Server         Group = "Server"
	Resources      Group = "Resources"
)

var groups = [...]Group{
	Authentication,
	UserManagement,
	Validation,
	Permissions,
	RateLimiting,
	Server,
	Resources,
}

// Groups returns every group in a stable order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups[:])
	return out
}

// StatusClass is the HTTP status range a group's members must fall in.
// Lo == Hi pins an exact status.
type StatusClass struct {
	Lo, Hi int
}

// Contains reports whether status is within the class.
func (c StatusClass) Contains(status int) bool {
	return status >= c.Lo && status <= c.Hi
}

// Class returns the declared status class of g. Unknown groups get the 5xx
// class.
func (g Group) Class() StatusClass {
	switch g {
	case Authentication:
		return StatusClass{401, 401}
	case Validation:
		return StatusClass{400, 400}
	case Permissions:
		return StatusClass{403, 403}
	case RateLimiting:
		return StatusClass{429, 429}
	case UserManagement, Resources:
		return StatusClass{400, 499}
	default:
		return StatusClass{500, 599}
	}
}

func (g Group) String() string { return string(g) }
