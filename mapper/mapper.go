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
	"fmt"
	"maps"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Options are validated as they are applied; every invalid value is reported
// in the returned error and no Mapper is built in that case.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if err := b.err(); err != nil {
		return nil, fmt.Errorf("mapper: invalid options: %w", err)
	}

	return &mapper{
		httpOverride: maps.Clone(b.httpOverride),
		grpcOverride: maps.Clone(b.grpcOverride),
		codeOverride: maps.Clone(b.codeOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// Default returns a Mapper with library defaults only.
func Default() apis.Mapper {
	m, err := New()
	if err != nil {
		// New without options cannot fail.
		panic(err)
	}
	return m
}

// mapper combines caller overrides, library defaults and a fallback.
// Library defaults are package-level and read-only; only overrides are
// copied per instance.
type mapper struct {
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	codeOverride map[codes.Code]code.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for c. It never returns zero.
func (m *mapper) HTTPStatus(c code.Code) int {
	v, _ := m.resolveHTTP(c)
	return v
}

// GRPCStatus resolves a gRPC status for c. It never returns codes.OK.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _ := m.resolveGRPC(c)
	return v
}

// Status resolves both HTTP and gRPC for c.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Code resolves a gRPC status code back into a canonical code.
// codes.OK and unknown values map to code.Internal.
func (m *mapper) Code(g codes.Code) code.Code {
	if c, ok := m.codeOverride[g]; ok {
		return c
	}
	if c, ok := defaultCode[g]; ok {
		return c
	}
	return code.Internal
}

// Explain produces a textual trace of how the statuses for c were resolved.
//
// Example output:
//
//	code="canceled"
//	http: source=override -> 408
//	grpc: source=default -> CANCELED(1)
func (m *mapper) Explain(c code.Code) string {
	h, hsrc := m.resolveHTTP(c)
	g, gsrc := m.resolveGRPC(c)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, h)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", gsrc, strings.ToUpper(g.String()), uint32(g))
	return b.String()
}

func (m *mapper) resolveHTTP(c code.Code) (int, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override"
	}
	if v, ok := defaultHTTP[c]; ok {
		return v, "default"
	}
	return m.fallbackHTTP, "fallback"
}

func (m *mapper) resolveGRPC(c code.Code) (codes.Code, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override"
	}
	if v, ok := defaultGRPC[c]; ok {
		return v, "default"
	}
	return m.fallbackGRPC, "fallback"
}
