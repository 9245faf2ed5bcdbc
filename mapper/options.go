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
	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTP registers the HTTP status for c, replacing the library default.
// status must be a valid HTTP status (100-599).
func WithHTTP(c code.Code, status int) Option {
	return func(b *builder) {
		b.check(c)
		b.checkHTTP(status)
		b.httpOverride[c] = status
	}
}

// WithGRPC registers the gRPC status for c, replacing the library default.
// g must be a known, non-OK gRPC code.
func WithGRPC(c code.Code, g codes.Code) Option {
	return func(b *builder) {
		b.check(c)
		b.checkGRPC(g)
		b.grpcOverride[c] = g
	}
}

// WithCode registers the canonical code that a bare gRPC status g maps back to.
func WithCode(g codes.Code, c code.Code) Option {
	return func(b *builder) {
		b.checkGRPC(g)
		b.check(c)
		b.codeOverride[g] = c
	}
}

// WithFallback replaces the statuses used for codes that have neither an
// override nor a library default.
func WithFallback(status int, g codes.Code) Option {
	return func(b *builder) {
		b.checkHTTP(status)
		b.checkGRPC(g)
		b.fallbackHTTP = status
		b.fallbackGRPC = g
	}
}
