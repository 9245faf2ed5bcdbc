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
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Defect is the error class of every panic raised by this package.
//
// A defect is a bug in the calling code, not a runtime condition: it is raised
// when a branch is read without checking the discriminant first. Recovered
// values can be matched with Defect.Has or errors.Is against the sentinels.
var Defect = errs.Class("dresult")

var (
	// ErrNotSuccess is the cause of a defect raised when the success payload is
	// read from a failed Result.
	ErrNotSuccess = errors.New("success payload read from failed result")

	// ErrNotFailure is the cause of a defect raised when the failure payload is
	// read from a successful Result.
	ErrNotFailure = errors.New("failure payload read from successful result")
)

func panicNotSuccess[E any](f Failure[E]) {
	panic(Defect.Wrap(fmt.Errorf("%w: %v", ErrNotSuccess, f)))
}

func panicNotFailure() {
	panic(Defect.Wrap(ErrNotFailure))
}
