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
	"net/http"

	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

// StatusClientClosedRequest is the non-standard (nginx) status for a request
// the client abandoned. net/http has no constant for it.
const StatusClientClosedRequest = 499

// defaultHTTP holds the library HTTP status for every catalog code.
var defaultHTTP = map[code.Code]int{
	// 5xx: server, dependency and transient issues.
	code.Internal:         http.StatusInternalServerError,
	code.Unsupported:      http.StatusNotImplemented,
	code.Unavailable:      http.StatusServiceUnavailable,
	code.Overloaded:       http.StatusServiceUnavailable,
	code.DependencyFailed: http.StatusBadGateway,
	code.Timeout:          http.StatusGatewayTimeout,

	// 4xx: client, protocol and resource issues.
	code.Canceled:           StatusClientClosedRequest,
	code.Invalid:            http.StatusBadRequest,
	code.Missing:            http.StatusBadRequest,
	code.NotFound:           http.StatusNotFound,
	code.Gone:               http.StatusGone,
	code.AlreadyExists:      http.StatusConflict,
	code.Conflict:           http.StatusConflict,
	code.PreconditionFailed: http.StatusPreconditionFailed,
	code.Unauthenticated:    http.StatusUnauthorized,
	code.PermissionDenied:   http.StatusForbidden,
	code.RateLimited:        http.StatusTooManyRequests,
	code.QuotaExceeded:      http.StatusTooManyRequests,
}

// defaultGRPC holds the library gRPC status for every catalog code.
var defaultGRPC = map[code.Code]codes.Code{
	code.Internal:           codes.Internal,
	code.Invalid:            codes.InvalidArgument,
	code.Missing:            codes.InvalidArgument,
	code.Unsupported:        codes.Unimplemented,
	code.Unavailable:        codes.Unavailable,
	code.Overloaded:         codes.Unavailable,
	code.DependencyFailed:   codes.FailedPrecondition,
	code.Timeout:            codes.DeadlineExceeded,
	code.Canceled:           codes.Canceled,
	code.NotFound:           codes.NotFound,
	code.Gone:               codes.NotFound, // gRPC has no 410.
	code.AlreadyExists:      codes.AlreadyExists,
	code.Conflict:           codes.Aborted,
	code.PreconditionFailed: codes.FailedPrecondition,
	code.Unauthenticated:    codes.Unauthenticated,
	code.PermissionDenied:   codes.PermissionDenied,
	code.RateLimited:        codes.ResourceExhausted,
	code.QuotaExceeded:      codes.ResourceExhausted,
}

// defaultCode holds the preferred canonical code for every non-OK gRPC code.
// Several codes share a gRPC status; the most general one is chosen here.
var defaultCode = map[codes.Code]code.Code{
	codes.Canceled:           code.Canceled,
	codes.Unknown:            code.Internal,
	codes.InvalidArgument:    code.Invalid,
	codes.DeadlineExceeded:   code.Timeout,
	codes.NotFound:           code.NotFound,
	codes.AlreadyExists:      code.AlreadyExists,
	codes.PermissionDenied:   code.PermissionDenied,
	codes.ResourceExhausted:  code.RateLimited,
	codes.FailedPrecondition: code.PreconditionFailed,
	codes.Aborted:            code.Conflict,
	codes.OutOfRange:         code.Invalid,
	codes.Unimplemented:      code.Unsupported,
	codes.Internal:           code.Internal,
	codes.Unavailable:        code.Unavailable,
	codes.DataLoss:           code.Internal,
	codes.Unauthenticated:    code.Unauthenticated,
}
