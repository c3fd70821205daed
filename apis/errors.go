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


package apis

// KindedError represents an error classified into one of the error kinds,
// e.g. "AUTH_INVALID_CREDENTIALS".
//
// Adapters treat empty or unknown kinds as INTERNAL_ERROR at the boundary.
type KindedError interface {
	error

	// ErrorKind returns the wire string of the kind. It MUST be non-empty.
	ErrorKind() string
}

// DetailedError represents an error that exposes zero or more structured
// details, such as per-field validation messages.
//
// Implementations SHOULD return a slice the caller may keep. Returning nil
// means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError represents an error that exposes its underlying cause.
type CausedError interface {
	error

	// Cause returns the direct cause, or nil.
	Cause() error
}

// AdvisedError is implemented by errors carrying remediation hints for the
// end user.
type AdvisedError interface {
	error

	// UserMessage returns a message that is safe to show to end users.
	UserMessage() string

	// Suggestions returns remediation hints. May return nil.
	Suggestions() []string
}

// LoggableError lets an error decide whether it deserves a log line.
type LoggableError interface {
	error

	ShouldLog() bool
}
