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

// CodedError represents an error that is classified by a machine-readable
// code, e.g. "not_found" or "NOT_FOUND".
//
// dresult.Failure implements it, and dresult.Of uses it to classify foreign
// errors. Adapters should treat an empty or unparsable code as internal.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable code.
	ErrorCode() string
}

// MessagedError represents an error whose human-readable message is kept
// separately from its code.
//
// Error() usually combines code and message; ErrorMessage returns only the
// message, which is what should end up in an HTTP body or a gRPC status.
type MessagedError interface {
	error

	// ErrorMessage returns the human-readable message.
	ErrorMessage() string
}
