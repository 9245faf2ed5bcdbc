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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/mapper"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	m := mapper.Default()

	require.Nil(t, ToStatus(dresult.Success[code.Code]("ok"), m.Status))

	st := ToStatus(dresult.Fail[string](code.NotFound, "user 42 missing"), m.Status)
	require.NotNil(t, st)
	require.Equal(t, gcodes.NotFound, st.Code())
	require.Equal(t, "user 42 missing", st.Message())

	info, ok := ExtractErrorInfo(st)
	require.True(t, ok)
	require.Equal(t, "not_found", info.GetReason())
	require.Equal(t, Domain, info.GetDomain())
	require.Equal(t, "404", info.GetMetadata()["http_status"])
}

func TestToStatus_NoClassifier(t *testing.T) {
	st := ToStatus(dresult.Fail[int]("E_QUOTA", "slow down"), nil)
	require.Equal(t, gcodes.Internal, st.Code())

	info, ok := ExtractErrorInfo(st)
	require.True(t, ok)
	require.Equal(t, "E_QUOTA", info.GetReason())
	require.Empty(t, info.GetMetadata())
}

func TestUnpackOf_RoundTrip(t *testing.T) {
	m := mapper.Default()

	v, err := Unpack(dresult.Success[code.Code](7), m.Status)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	// Gone shares codes.NotFound with NotFound; ErrorInfo keeps it exact.
	_, err = Unpack(dresult.Fail[int](code.Gone, "deleted"), m.Status)
	require.Error(t, err)

	r := Of(0, err, m)
	require.True(t, r.IsFailure())
	require.Equal(t, code.Gone, r.Code())
	require.Equal(t, "deleted", r.Message())
	require.Same(t, err, errors.Unwrap(r.Err()))

	ok := Of(3, nil, m)
	require.True(t, ok.IsSuccess())
	require.Equal(t, 3, ok.Value())
}

func TestOf_BareStatus(t *testing.T) {
	r := Of("", gstatus.Error(gcodes.DeadlineExceeded, "too slow"), mapper.Default())
	require.Equal(t, code.Timeout, r.Code())
	require.Equal(t, "too slow", r.Message())
}

func TestOf_NotAStatus(t *testing.T) {
	r := Of("", fmt.Errorf("dial: %w", context.Canceled), mapper.Default())
	require.Equal(t, code.Canceled, r.Code())
	require.True(t, errors.Is(r.Err(), context.Canceled))
}

func TestUnaryServerInterceptor(t *testing.T) {
	icpt := UnaryServerInterceptor(mapper.Default())
	info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}

	call := func(err error) error {
		t.Helper()
		_, got := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, err
		})
		return got
	}

	// Failure values become rich statuses.
	err := call(dresult.Fail[int](code.PermissionDenied, "not yours").Err())
	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	require.Equal(t, gcodes.PermissionDenied, st.Code())
	require.Equal(t, "not yours", st.Message())
	gotInfo, ok := ExtractErrorInfo(st)
	require.True(t, ok)
	require.Equal(t, "permission_denied", gotInfo.GetReason())

	// String codes are normalized.
	err = call(dresult.Fail[int]("NOT-FOUND", "missing").Err())
	require.Equal(t, gcodes.NotFound, gstatus.Code(err))

	// Unparsable codes are internal.
	err = call(dresult.Fail[int]("??", "weird").Err())
	require.Equal(t, gcodes.Internal, gstatus.Code(err))

	// Existing statuses and plain errors pass through untouched.
	orig := gstatus.Error(gcodes.Aborted, "retry")
	require.Same(t, orig, call(orig))

	plain := errors.New("plain")
	require.Same(t, plain, call(plain))

	// Success passes the response through.
	resp, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "pong", nil
	})
	require.NoError(t, err)
	require.Equal(t, "pong", resp)
}

func TestUnaryServerInterceptor_RemappedUpstreamFailure(t *testing.T) {
	m := mapper.Default()
	icpt := UnaryServerInterceptor(m)
	info := &grpc.UnaryServerInfo{FullMethod: "/inventory.v1.Stock/Get"}

	handler := func(context.Context, any) (any, error) {
		upstream := Of(0, gstatus.Error(gcodes.NotFound, "row 7 not found"), m)
		r := dresult.MapFailure(upstream, func(f dresult.Failure[code.Code]) dresult.Failure[code.Code] {
			f.Code = code.DependencyFailed
			return f.WithMessage("inventory lookup failed")
		})
		return dresult.Unpack(r)
	}

	_, err := icpt(context.Background(), nil, info, handler)
	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	require.Equal(t, gcodes.FailedPrecondition, st.Code())
	require.Equal(t, "inventory lookup failed", st.Message())

	gotInfo, ok := ExtractErrorInfo(st)
	require.True(t, ok)
	require.Equal(t, "dependency_failed", gotInfo.GetReason())
}
