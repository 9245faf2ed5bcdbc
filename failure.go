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

package dresult

import (
	"fmt"

	"dirpx.dev/dresult/apis"
)

var (
	_ apis.CodedError    = Failure[string]{}
	_ apis.MessagedError = Failure[string]{}
)

// Failure is the payload of a failed Result.
//
// It carries:
//   - Code: the caller-defined classification, used for programmatic branching;
//   - Message: a human-oriented description, used for logs and responses.
//
// The two are kept apart so that callers can switch on Code without parsing
// a formatted string. A Failure may also remember the Go error it was built
// from (see Of); that cause is only reachable through Unwrap.
//
// Failure implements error, so it can be returned wherever an error is
// expected (see Unpack and Result.Err).
type Failure[E any] struct {
	// Code classifies the failure, e.g. code.NotFound or "NOT_FOUND".
	Code E

	// Message explains what went wrong. It is stored verbatim.
	Message string

	cause error
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// A payload-less code (Unit) renders as the message alone.
func (f Failure[E]) Error() string {
	if _, ok := any(f.Code).(Unit); ok {
		return f.Message
	}
	return fmt.Sprintf("%v: %s", f.Code, f.Message)
}

// ErrorCode returns the code formatted with %v. It is empty for Unit codes.
func (f Failure[E]) ErrorCode() string {
	if _, ok := any(f.Code).(Unit); ok {
		return ""
	}
	return fmt.Sprint(f.Code)
}

// ErrorMessage returns the message verbatim.
func (f Failure[E]) ErrorMessage() string { return f.Message }

// Unwrap returns the Go error this failure was built from, if any.
func (f Failure[E]) Unwrap() error { return f.cause }

// WithMessage returns a copy of f with a replaced message.
func (f Failure[E]) WithMessage(msg string) Failure[E] {
	f.Message = msg
	return f
}

// WithCause returns a copy of f with err attached as its cause.
// If err is nil, f is returned unchanged.
func (f Failure[E]) WithCause(err error) Failure[E] {
	if err == nil {
		return f
	}
	f.cause = err
	return f
}
