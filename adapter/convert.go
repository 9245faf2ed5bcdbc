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

package adapter

import (
	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
)

// ToDescriptor flattens a failed result together with its resolved transport
// statuses into an apis.ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing or message bus
// propagation. ok is false, and the descriptor empty, when r is a success.
// A nil classify leaves both statuses unresolved (zero).
func ToDescriptor[T, E any](r dresult.Result[T, E], classify apis.StatusFunc[E]) (d apis.ErrorDescriptor, ok bool) {
	f, ok := r.GetFailure()
	if !ok {
		return apis.ErrorDescriptor{}, false
	}

	d = apis.ErrorDescriptor{
		Outcome: apis.OutcomeError,
		Code:    f.ErrorCode(),
		Message: f.Message,
	}
	if classify != nil {
		st := classify(f.Code)
		d.HTTPStatus = st.HTTP
		d.GRPCCode = int(st.GRPC)
	}
	return d, true
}
