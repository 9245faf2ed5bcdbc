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

import "fmt"

// Result is either a success value of type T or a Failure[E].
//
// Exactly one branch is populated and the branch never changes after
// construction. Build a Result with Success, Fail, FromSuccess, FromError,
// FromFailure or Of; the zero value is a failure with the zero code and an
// empty message.
//
// Value, Failure, Code and Message are branch reads: calling them on the
// wrong branch panics with a Defect. Use IsSuccess/IsFailure, or the
// non-panicking Get, GetFailure, ValueOr and Err, when the branch is unknown.
type Result[T any, E any] struct {
	ok      bool
	value   T
	failure Failure[E]
}

// Success returns a successful Result holding v.
//
// The error type comes first so that callers only need to name it:
//
//	dresult.Success[code.Code](user)
func Success[E, T any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Fail returns a failed Result with the given code and message.
//
// The success type comes first so that callers only need to name it:
//
//	dresult.Fail[User](code.NotFound, "user 42 missing")
func Fail[T, E any](code E, message string) Result[T, E] {
	return Result[T, E]{failure: Failure[E]{Code: code, Message: message}}
}

// FromFailure returns a failed Result holding f.
func FromFailure[T, E any](f Failure[E]) Result[T, E] {
	return Result[T, E]{failure: f}
}

// FromSuccess converts a success tag into a Result. It cannot fail.
func FromSuccess[E, T any](tag SuccessTag[T]) Result[T, E] {
	return Success[E](tag.value)
}

// FromError converts an error tag into a Result. It cannot fail.
func FromError[T, E any](tag ErrorTag[E]) Result[T, E] {
	return Fail[T](tag.code, tag.message)
}

// IsSuccess reports whether r holds a success value.
func (r Result[T, E]) IsSuccess() bool { return r.ok }

// IsFailure reports whether r holds a failure.
func (r Result[T, E]) IsFailure() bool { return !r.ok }

// Value returns the success payload.
// It panics with a Defect wrapping ErrNotSuccess if r is a failure.
func (r Result[T, E]) Value() T {
	if !r.ok {
		panicNotSuccess(r.failure)
	}
	return r.value
}

// Failure returns the failure payload.
// It panics with a Defect wrapping ErrNotFailure if r is a success.
func (r Result[T, E]) Failure() Failure[E] {
	if r.ok {
		panicNotFailure()
	}
	return r.failure
}

// Code returns the failure code. It panics if r is a success.
func (r Result[T, E]) Code() E { return r.Failure().Code }

// Message returns the failure message. It panics if r is a success.
func (r Result[T, E]) Message() string { return r.Failure().Message }

// Get returns the success payload and true, or the zero T and false.
func (r Result[T, E]) Get() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// GetFailure returns the failure payload and true, or the zero Failure and false.
func (r Result[T, E]) GetFailure() (Failure[E], bool) {
	if r.ok {
		return Failure[E]{}, false
	}
	return r.failure, true
}

// ValueOr returns the success payload, or def if r is a failure.
func (r Result[T, E]) ValueOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Err returns nil for a success and the Failure as an error otherwise.
func (r Result[T, E]) Err() error {
	if r.ok {
		return nil
	}
	return r.failure
}

// String renders r for diagnostics as success(<value>) or failure(<code>: <message>).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%s)", r.failure.Error())
}
