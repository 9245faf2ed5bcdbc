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
	"errors"
	"fmt"
	"net/http"

	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

// maxGRPCCode is the highest canonical gRPC status code (Unauthenticated).
const maxGRPCCode = codes.Unauthenticated

type builder struct {
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	codeOverride map[codes.Code]code.Code

	fallbackHTTP int
	fallbackGRPC codes.Code

	// errs collects every invalid option value; New reports them all at once.
	errs []error
}

func newBuilder() *builder {
	return &builder{
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),
		codeOverride: make(map[codes.Code]code.Code),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

func (b *builder) check(c code.Code) {
	if err := code.Validate(c); err != nil {
		b.errs = append(b.errs, fmt.Errorf("code %q: %w", c, err))
	}
}

func (b *builder) checkHTTP(status int) {
	if status < 100 || status > 599 {
		b.errs = append(b.errs, fmt.Errorf("http status %d out of range", status))
	}
}

func (b *builder) checkGRPC(g codes.Code) {
	if g == codes.OK || g > maxGRPCCode {
		b.errs = append(b.errs, fmt.Errorf("grpc code %d is not a failure code", uint32(g)))
	}
}

func (b *builder) err() error {
	return errors.Join(b.errs...)
}
