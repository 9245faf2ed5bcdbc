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

// Package mapper provides deterministic, immutable mappings from canonical
// codes (dirpx.dev/dresult/code) to transport statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves a code in the following order:
//
//  1. a caller override registered with WithHTTP / WithGRPC;
//  2. the library default for catalog codes (defaults.go);
//  3. the fallback (500 / codes.Internal unless changed with WithFallback).
//
// The reverse direction (gRPC status code to canonical code) is used when a
// peer answered with a bare status. It follows the same override/default
// model through WithCode.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTP(code.Canceled, http.StatusRequestTimeout),
//	    mapper.WithGRPC(code.Conflict, codes.FailedPrecondition),
//	)
//	if err != nil {
//	    // invalid status or code in an option
//	}
//
//	st := m.Status(code.NotFound) // st.HTTP == 404, st.GRPC == codes.NotFound
//
// Results whose code type is a free-form string can use Strings to normalize
// and parse the string before resolution.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which tier produced each
// status. It is meant for logs and tests, not for machine parsing.
//
// # Immutability
//
// All option values are copied during New. After construction the Mapper
// never changes and is safe to share across goroutines.
package mapper
