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

package mapper

import (
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
)

// Strings adapts m to results whose code type is a free-form string.
//
// Each code is normalized and parsed with code.Parse, so "NOT_FOUND" and
// "not-found" both resolve as code.NotFound. Strings that do not parse
// resolve with the fallback statuses.
func Strings[E ~string](m apis.Mapper) apis.StatusFunc[E] {
	return func(e E) apis.Status {
		c, err := code.Parse(string(e))
		if err != nil {
			c = code.Empty
		}
		return m.Status(c)
	}
}
