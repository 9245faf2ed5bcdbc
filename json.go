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
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/dresult/apis"
)

// ErrInvalidEnvelope is returned when decoding a Result whose "status"
// discriminant is missing or unknown.
var ErrInvalidEnvelope = errors.New("dresult: invalid result envelope")

var (
	_ json.Marshaler   = Result[int, string]{}
	_ json.Unmarshaler = (*Result[int, string])(nil)
)

type successEnvelope[T any] struct {
	Status apis.Outcome `json:"status"`
	Data   T            `json:"data"`
}

type failureEnvelope struct {
	Status  apis.Outcome    `json:"status"`
	Code    json.RawMessage `json:"code,omitempty"`
	Message string          `json:"message"`
}

type rawEnvelope struct {
	Status  apis.Outcome    `json:"status"`
	Data    json.RawMessage `json:"data"`
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
}

// MarshalJSON encodes r with an explicit discriminant:
//
//	{"status":"success","data":<T>}
//	{"status":"error","code":<E>,"message":"..."}
//
// A zero code (Unit codes included) is omitted and decodes back to the zero
// value. A code whose own encoding fails, such as a non-canonical code.Code, is
// written as its fmt.Sprint text. The cause of a Failure is never encoded.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(successEnvelope[T]{Status: apis.OutcomeSuccess, Data: r.value})
	}
	c, err := encodeCode(r.failure.Code)
	if err != nil {
		return nil, err
	}
	return json.Marshal(failureEnvelope{
		Status:  apis.OutcomeError,
		Code:    c,
		Message: r.failure.Message,
	})
}

func encodeCode[E any](c E) (json.RawMessage, error) {
	if reflect.ValueOf(&c).Elem().IsZero() {
		return nil, nil
	}
	if b, err := json.Marshal(c); err == nil {
		return b, nil
	}
	return json.Marshal(fmt.Sprint(c))
}

// UnmarshalJSON decodes the envelope written by MarshalJSON.
//
// The branch is taken from "status" only; a missing or unknown status is an
// ErrInvalidEnvelope error, whatever other fields are present. Absent "data"
// or "code" decode to the zero value.
func (r *Result[T, E]) UnmarshalJSON(b []byte) error {
	var raw rawEnvelope
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch {
	case raw.Status == "":
		return fmt.Errorf("%w: missing status", ErrInvalidEnvelope)
	case !raw.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidEnvelope, raw.Status)
	}

	if raw.Status == apis.OutcomeSuccess {
		var v T
		if len(raw.Data) > 0 {
			if err := json.Unmarshal(raw.Data, &v); err != nil {
				return fmt.Errorf("dresult: decode data: %w", err)
			}
		}
		*r = Success[E](v)
		return nil
	}

	var c E
	if len(raw.Code) > 0 {
		if err := json.Unmarshal(raw.Code, &c); err != nil {
			return fmt.Errorf("dresult: decode code: %w", err)
		}
	}
	*r = Fail[T](c, raw.Message)
	return nil
}
