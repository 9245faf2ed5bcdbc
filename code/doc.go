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

// Package code defines the canonical error-code type used by dresult
// failures that cross a transport boundary.
//
// A Code is a short, lowercase, snake_case identifier such as "not_found" or
// "unavailable". Any string can be turned into a Code with Parse, which
// normalizes obvious variants first:
//
//	c, err := code.Parse("NOT-FOUND") // code.NotFound
//
// The package also ships a catalog of well-known codes (codes.go) that the
// mapper package knows how to project onto HTTP and gRPC statuses. Callers are
// free to define their own codes; unknown codes map to the fallback status.
package code
