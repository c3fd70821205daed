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

import "fmt"

// MissingPathParameterError reports a placeholder with no value in the bag.
type MissingPathParameterError struct {
	Name     string
	Template string
}

func (e *MissingPathParameterError) Error() string {
	return fmt.Sprintf("address: missing path parameter %q for %q", e.Name, e.Template)
}

// InvalidParameterError reports a value that cannot be serialized, or a
// list bound to a path placeholder.
type InvalidParameterError struct {
	Name   string
	Reason string
	Err    error
}

func (e *InvalidParameterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("address: invalid parameter %q: %s: %v", e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("address: invalid parameter %q: %s", e.Name, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return e.Err }
