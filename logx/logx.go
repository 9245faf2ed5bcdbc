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

// Package logx renders dresult values as structured zap fields.
//
// A failure is logged through its code and message fields as they are; no
// extra formatting is applied. Success payloads are encoded reflectively and
// should therefore be cheap to encode and free of secrets.
package logx

import (
	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field keys used by this package.
const (
	KeyStatus  = "status"
	KeyData    = "data"
	KeyCode    = "code"
	KeyMessage = "message"
	KeyCause   = "cause"
)

// Result returns a field that encodes r as a nested object:
//
//	{"status":"success","data":...}
//	{"status":"error","code":"...","message":"...","cause":"..."}
func Result[T, E any](key string, r dresult.Result[T, E]) zap.Field {
	return zap.Object(key, resultObject[T, E]{r: r})
}

// Failure returns flat code/message (and cause, if present) fields for f.
// The code field is omitted for payload-less codes.
func Failure[E any](f dresult.Failure[E]) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if c := f.ErrorCode(); c != "" {
		fields = append(fields, zap.String(KeyCode, c))
	}
	fields = append(fields, zap.String(KeyMessage, f.Message))
	if cause := f.Unwrap(); cause != nil {
		fields = append(fields, zap.NamedError(KeyCause, cause))
	}
	return fields
}

// Log writes r to l: at Debug level for a success and at Warn level, with the
// Failure fields, for a failure. Extra fields are appended to either entry.
func Log[T, E any](l *zap.Logger, msg string, r dresult.Result[T, E], fields ...zap.Field) {
	all := make([]zap.Field, 0, len(fields)+4)
	all = append(all, fields...)

	f, failed := r.GetFailure()
	if !failed {
		l.Debug(msg, append(all, zap.String(KeyStatus, string(apis.OutcomeSuccess)))...)
		return
	}
	all = append(all, zap.String(KeyStatus, string(apis.OutcomeError)))
	l.Warn(msg, append(all, Failure(f)...)...)
}

type resultObject[T, E any] struct {
	r dresult.Result[T, E]
}

func (o resultObject[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if v, ok := o.r.Get(); ok {
		enc.AddString(KeyStatus, string(apis.OutcomeSuccess))
		return enc.AddReflected(KeyData, v)
	}

	f := o.r.Failure()
	enc.AddString(KeyStatus, string(apis.OutcomeError))
	if c := f.ErrorCode(); c != "" {
		enc.AddString(KeyCode, c)
	}
	enc.AddString(KeyMessage, f.Message)
	if cause := f.Unwrap(); cause != nil {
		enc.AddString(KeyCause, cause.Error())
	}
	return nil
}
