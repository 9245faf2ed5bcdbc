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
	"context"
	"errors"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
)

// Of converts a conventional (value, error) pair into a Result.
//
// A nil err yields a success holding v. Otherwise the failure is classified:
//
//  1. a Failure[code.Code] anywhere in the chain is used as is;
//  2. an apis.CodedError in the chain contributes its code, if it parses, and
//     its message if it implements apis.MessagedError;
//  3. otherwise context.Canceled maps to code.Canceled and
//     context.DeadlineExceeded to code.Timeout;
//  4. anything else becomes code.Internal.
//
// Except in case 1 the message defaults to err.Error() and err is kept as the
// failure cause, so errors.Is and errors.As keep working on Result.Err.
func Of[T any](v T, err error) Result[T, code.Code] {
	if err == nil {
		return Success[code.Code](v)
	}

	var f Failure[code.Code]
	if errors.As(err, &f) {
		return FromFailure[T](f)
	}

	return FromFailure[T](classify(err))
}

func classify(err error) Failure[code.Code] {
	f := Failure[code.Code]{Code: code.Internal, Message: err.Error(), cause: err}

	var ce apis.CodedError
	if errors.As(err, &ce) {
		if me, ok := ce.(apis.MessagedError); ok {
			f.Message = me.ErrorMessage()
		}
		if c, perr := code.Parse(ce.ErrorCode()); perr == nil {
			f.Code = c
			return f
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		f.Code = code.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		f.Code = code.Timeout
	}
	return f
}

// Unpack converts r back into a conventional (value, error) pair.
// The error is nil for a success and r's Failure otherwise.
func Unpack[T, E any](r Result[T, E]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.failure
	}
	return r.value, nil
}
