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

// Package grpcx translates dresult values to and from gRPC status errors.
//
// A failure travels as a status whose code is resolved through an
// apis.StatusFunc and whose message is the failure message. The failure code
// itself is attached as a google.rpc.ErrorInfo detail (Reason = code,
// Domain = Domain), so the receiving side can restore it exactly instead of
// guessing from the coarser gRPC code.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// Domain identifies ErrorInfo details written by this package.
const Domain = "dresult.dirpx.dev"

// metaHTTPStatus is the ErrorInfo metadata key holding the resolved HTTP status.
const metaHTTPStatus = "http_status"

// ToStatus converts a failed result into a gRPC status carrying an ErrorInfo
// detail. It returns nil for a success.
//
// A nil classify, or one that resolves to codes.OK, produces codes.Internal.
func ToStatus[T, E any](r dresult.Result[T, E], classify apis.StatusFunc[E]) *gstatus.Status {
	f, failed := r.GetFailure()
	if !failed {
		return nil
	}

	st := apis.Status{GRPC: gcodes.Internal}
	if classify != nil {
		st = classify(f.Code)
	}
	return newStatus(f.ErrorCode(), f.Message, st)
}

// Unpack returns r in the shape a gRPC handler returns: the value and a nil
// error for a success, the zero value and a status error for a failure.
func Unpack[T, E any](r dresult.Result[T, E], classify apis.StatusFunc[E]) (T, error) {
	if v, ok := r.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, ToStatus(r, classify).Err()
}

// Of converts the (value, error) pair returned by a gRPC client call into a
// Result.
//
// A nil err yields a success. A status error carrying an ErrorInfo from
// Domain restores the original code; other status errors map their gRPC code
// back through m. Errors that are not statuses are classified by dresult.Of.
// The message is the status message and err is kept as the cause.
func Of[T any](v T, err error, m apis.Mapper) dresult.Result[T, code.Code] {
	if err == nil {
		return dresult.Success[code.Code](v)
	}

	st, ok := gstatus.FromError(err)
	if !ok {
		return dresult.Of(v, err)
	}

	c := m.Code(st.Code())
	if info, ok := ExtractErrorInfo(st); ok {
		if parsed, perr := code.Parse(info.GetReason()); perr == nil {
			c = parsed
		}
	}

	f := dresult.Failure[code.Code]{Code: c, Message: st.Message()}
	return dresult.FromFailure[T](f.WithCause(err))
}

// ExtractErrorInfo returns the ErrorInfo detail written by this package, if present.
func ExtractErrorInfo(st *gstatus.Status) (*errdetails.ErrorInfo, bool) {
	if st == nil {
		return nil, false
	}
	for _, d := range st.Proto().GetDetails() {
		info := &errdetails.ErrorInfo{}
		if !d.MessageIs(info) {
			continue
		}
		if err := d.UnmarshalTo(info); err != nil {
			continue
		}
		if info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// handler errors implementing apis.CodedError (dresult.Failure among them)
// into status errors with an ErrorInfo detail.
//
// Status errors returned directly, and errors without a code, are returned
// as-is. Codes that do not parse are reported as code.Internal.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		// Only a status at the top level is final. A failure whose cause is
		// an upstream status still has to be converted.
		if _, ok := err.(interface{ GRPCStatus() *gstatus.Status }); ok {
			return nil, err
		}

		var ce apis.CodedError
		if !errors.As(err, &ce) {
			// Not ours; let grpc report it as Unknown.
			return nil, err
		}

		c, perr := code.Parse(ce.ErrorCode())
		if perr != nil {
			c = code.Internal
		}
		msg := err.Error()
		if me, ok := ce.(apis.MessagedError); ok {
			msg = me.ErrorMessage()
		}
		return nil, newStatus(c.String(), msg, m.Status(c)).Err()
	}
}

func newStatus(codeText, msg string, st apis.Status) *gstatus.Status {
	g := st.GRPC
	if g == gcodes.OK {
		g = gcodes.Internal
	}
	base := gstatus.New(g, msg)

	info := &errdetails.ErrorInfo{
		Reason: codeText,
		Domain: Domain,
	}
	if st.HTTP != 0 {
		info.Metadata = map[string]string{metaHTTPStatus: strconv.Itoa(st.HTTP)}
	}

	// Attaching can only fail on marshaling; fall back to the bare status.
	detail, err := anypb.New(info)
	if err != nil {
		return base
	}
	p := base.Proto()
	p.Details = append(p.Details, detail)
	return gstatus.FromProto(p)
}
