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

// Map transforms the success payload of r with f.
// A failure is carried over unchanged and f is not called.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return FromFailure[U](r.failure)
	}
	return Success[E](f(r.value))
}

// MapError transforms the failure code of r with f, keeping the message and
// cause. A success is carried over unchanged and f is not called.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Success[F](r.value)
	}
	return FromFailure[T](Failure[F]{
		Code:    f(r.failure.Code),
		Message: r.failure.Message,
		cause:   r.failure.cause,
	})
}

// MapFailure transforms the whole failure payload of r with f.
// A success is carried over unchanged and f is not called.
func MapFailure[T, E, F any](r Result[T, E], f func(Failure[E]) Failure[F]) Result[T, F] {
	if r.ok {
		return Success[F](r.value)
	}
	return FromFailure[T](f(r.failure))
}

// AndThen chains an operation that may itself fail onto a success.
// A failure short-circuits and f is not called.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return FromFailure[U](r.failure)
	}
	return f(r.value)
}

// OrElse substitutes a failure with the Result returned by f, which may be a
// recovered success or a different failure. A success is carried over and f
// is not called.
func OrElse[T, E, F any](r Result[T, E], f func(Failure[E]) Result[T, F]) Result[T, F] {
	if r.ok {
		return Success[F](r.value)
	}
	return f(r.failure)
}

// Match calls exactly one of onSuccess or onFailure and returns its value.
func Match[T, E, U any](r Result[T, E], onSuccess func(T) U, onFailure func(Failure[E]) U) U {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}

// Collect turns a slice of results into a result of a slice.
//
// It returns the first failure in rs, or a success holding every value in
// order. An empty or nil input yields a success with an empty, non-nil slice.
func Collect[T, E any](rs []Result[T, E]) Result[[]T, E] {
	vals := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.ok {
			return FromFailure[[]T](r.failure)
		}
		vals = append(vals, r.value)
	}
	return Success[E](vals)
}

// Partition splits rs into its success values and its failures, each in input order.
func Partition[T, E any](rs []Result[T, E]) ([]T, []Failure[E]) {
	var (
		vals  []T
		fails []Failure[E]
	)
	for _, r := range rs {
		if r.ok {
			vals = append(vals, r.value)
			continue
		}
		fails = append(fails, r.failure)
	}
	return vals, fails
}
