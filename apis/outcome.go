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

// Outcome is the explicit discriminant of a serialized result.
//
// Every wire form of a result carries an Outcome; the branch must never be
// inferred from the shape of the payload.
type Outcome string

const (
	// OutcomeSuccess marks a result that holds a success payload.
	OutcomeSuccess Outcome = "success"

	// OutcomeError marks a result that holds a code and a message.
	OutcomeError Outcome = "error"
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	return o == OutcomeSuccess || o == OutcomeError
}
