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

package code

// Generic codes.
const (
	// Internal is the fallback for failures that fit no other code.
	// HTTP 500, gRPC Internal.
	Internal Code = "internal"

	// Invalid means the input violates a format, range or consistency rule.
	// HTTP 400, gRPC InvalidArgument.
	Invalid Code = "invalid"

	// Missing means a required value was not supplied.
	// HTTP 400, gRPC InvalidArgument.
	Missing Code = "missing"

	// Unsupported means the requested operation or option is not available.
	// HTTP 501, gRPC Unimplemented.
	Unsupported Code = "unsupported"
)

// Runtime codes: transient conditions that stop the operation from completing.
const (
	// Unavailable means a required dependency is temporarily unreachable.
	// HTTP 503, gRPC Unavailable.
	Unavailable Code = "unavailable"

	// Timeout means the operation ran out of its time budget.
	// HTTP 504, gRPC DeadlineExceeded.
	Timeout Code = "timeout"

	// Canceled means the caller gave up on the operation.
	// HTTP 499 (client closed request), gRPC Canceled.
	Canceled Code = "canceled"

	// DependencyFailed means a reachable dependency answered with a failure.
	// HTTP 502, gRPC FailedPrecondition.
	DependencyFailed Code = "dependency_failed"

	// Overloaded means the service is shedding load.
	// HTTP 503, gRPC Unavailable.
	Overloaded Code = "overloaded"
)

// Resource codes.
const (
	// NotFound means the addressed entity does not exist.
	// HTTP 404, gRPC NotFound.
	NotFound Code = "not_found"

	// AlreadyExists means an entity with the same identity already exists.
	// HTTP 409, gRPC AlreadyExists.
	AlreadyExists Code = "already_exists"

	// Conflict means the request clashes with the current state, e.g. a
	// concurrent update.
	// HTTP 409, gRPC Aborted.
	Conflict Code = "conflict"

	// PreconditionFailed means a stated precondition (version, ETag, state)
	// does not hold.
	// HTTP 412, gRPC FailedPrecondition.
	PreconditionFailed Code = "precondition_failed"

	// Gone means the entity existed but has been removed for good.
	// HTTP 410, gRPC NotFound.
	Gone Code = "gone"
)

// Access codes.
const (
	// Unauthenticated means the caller's identity could not be established.
	// HTTP 401, gRPC Unauthenticated.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied means the caller is known but not allowed.
	// HTTP 403, gRPC PermissionDenied.
	PermissionDenied Code = "permission_denied"

	// RateLimited means the caller exceeded a request rate.
	// HTTP 429, gRPC ResourceExhausted.
	RateLimited Code = "rate_limited"

	// QuotaExceeded means the caller exceeded an allocated quota.
	// HTTP 429, gRPC ResourceExhausted.
	QuotaExceeded Code = "quota_exceeded"
)

var ordered = []Code{
	Internal, Invalid, Missing, Unsupported,
	Unavailable, Timeout, Canceled, DependencyFailed, Overloaded,
	NotFound, AlreadyExists, Conflict, PreconditionFailed, Gone,
	Unauthenticated, PermissionDenied, RateLimited, QuotaExceeded,
}

var catalog = func() map[Code]struct{} {
	m := make(map[Code]struct{}, len(ordered))
	for _, c := range ordered {
		m[c] = struct{}{}
	}
	return m
}()
