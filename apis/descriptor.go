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

// ErrorDescriptor is a flat, transport-friendly description of a failed
// result together with its resolved statuses.
//
// It uses plain strings rather than the generic code type so that it can be
// logged, traced or put on a message bus without knowing E.
type ErrorDescriptor struct {
	// Outcome is always OutcomeError for a populated descriptor.
	Outcome Outcome `json:"status"`

	// Code is the failure code formatted as text.
	Code string `json:"code,omitempty"`

	// Message is the failure message, verbatim.
	Message string `json:"message"`

	// HTTPStatus is the resolved HTTP status. Zero means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`
}
