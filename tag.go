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

// Unit is the payload of a branch that carries nothing but the discriminant.
// A void operation returns Result[Unit, E]; an operation that fails with only a
// message uses ErrorTag[Unit].
type Unit = struct{}

// SuccessTag carries the value of a successful operation into a Result.
//
// A tag has no behavior of its own. It exists only between the producing call
// site and FromSuccess, and should not be stored, compared or serialized.
type SuccessTag[T any] struct {
	value T
}

// NewSuccessTag tags v as a success payload. It never fails.
func NewSuccessTag[T any](v T) SuccessTag[T] {
	return SuccessTag[T]{value: v}
}

// NewUnitSuccessTag returns the payload-less success tag.
func NewUnitSuccessTag() SuccessTag[Unit] {
	return SuccessTag[Unit]{}
}

// ErrorTag carries the code and message of a failed operation into a Result.
//
// Both fields are kept verbatim: the message is neither trimmed nor truncated,
// and the code is not normalized.
type ErrorTag[E any] struct {
	code    E
	message string
}

// NewErrorTag tags the (code, message) pair as a failure payload. It never fails.
func NewErrorTag[E any](code E, message string) ErrorTag[E] {
	return ErrorTag[E]{code: code, message: message}
}

// NewUnitErrorTag returns a failure tag that carries only a message.
func NewUnitErrorTag(message string) ErrorTag[Unit] {
	return ErrorTag[Unit]{message: message}
}
