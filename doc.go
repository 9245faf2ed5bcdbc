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

// Package dresult provides a tagged result type for dirpx.
//
// A Result[T, E] holds exactly one of two things: a success value of type T,
// or a Failure[E] made of a caller-defined code E and a human-readable message.
// The branch is fixed when the Result is built and never changes afterwards.
//
// Producers either return a Result directly:
//
//	func findUser(id int) dresult.Result[User, code.Code] {
//	    u, ok := users[id]
//	    if !ok {
//	        return dresult.Fail[User](code.NotFound, fmt.Sprintf("user %d missing", id))
//	    }
//	    return dresult.Success[code.Code](u)
//	}
//
// or hand out a tag that the caller converts:
//
//	tag := dresult.NewErrorTag("NOT_FOUND", "user 42 missing")
//	r := dresult.FromError[User](tag) // Result[User, string]
//
// Consumers check the discriminant first and then read the matching branch.
// Reading the other branch is a programming error and panics with a Defect:
//
//	if r.IsFailure() {
//	    log.Printf("%s: %s", r.Code(), r.Message())
//	    return
//	}
//	use(r.Value())
//
// Map, MapError, AndThen, OrElse and Match transform results without ever
// calling a function on the branch that is not populated.
//
// All types in this package are immutable values and safe for concurrent use.
package dresult
