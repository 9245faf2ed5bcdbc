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

package logx

import (
	"context"
	"fmt"
	"testing"

	"dirpx.dev/dresult"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestLog_Success(t *testing.T) {
	l, logs := newObserved()

	Log(l, "lookup", dresult.Success[string](42), zap.String("op", "find"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, map[string]interface{}{
		"op":     "find",
		"status": "success",
	}, entries[0].ContextMap())
}

func TestLog_Failure(t *testing.T) {
	l, logs := newObserved()

	Log(l, "lookup", dresult.Fail[int]("NOT_FOUND", "user 42 missing"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, map[string]interface{}{
		"status":  "error",
		"code":    "NOT_FOUND",
		"message": "user 42 missing",
	}, entries[0].ContextMap())
}

func TestResultField(t *testing.T) {
	l, logs := newObserved()

	l.Info("done",
		Result("ok", dresult.Success[string]("v")),
		Result("bad", dresult.FromError[int](dresult.NewUnitErrorTag("no data"))),
	)

	ctx := logs.All()[0].ContextMap()
	require.Equal(t, map[string]interface{}{"status": "success", "data": "v"}, ctx["ok"])
	require.Equal(t, map[string]interface{}{"status": "error", "message": "no data"}, ctx["bad"])
}

func TestFailure_WithCause(t *testing.T) {
	r := dresult.Of(0, fmt.Errorf("fetch: %w", context.Canceled))

	fields := Failure(r.Failure())
	require.Len(t, fields, 3)
	require.Equal(t, KeyCode, fields[0].Key)
	require.Equal(t, "canceled", fields[0].String)
	require.Equal(t, KeyCause, fields[2].Key)
}
