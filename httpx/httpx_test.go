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

package httpx

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/mapper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestWrite_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, dresult.Success[code.Code](user{ID: 42, Name: "ada"}), mapper.Default().Status)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"status":"success","data":{"id":42,"name":"ada"}}`, rec.Body.String())
}

func TestWrite_Failure(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, dresult.Fail[user](code.NotFound, "user 42 missing"), mapper.Default().Status)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":"error","code":"not_found","message":"user 42 missing"}`, rec.Body.String())
}

func TestWrite_StringCodes(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, dresult.Fail[user]("NOT_FOUND", "user 42 missing"), mapper.Strings[string](mapper.Default()))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":"error","code":"NOT_FOUND","message":"user 42 missing"}`, rec.Body.String())
}

func TestWrite_NonCanonicalCode(t *testing.T) {
	rec := httptest.NewRecorder()

	r := dresult.Fail[user](code.Code("NOT_FOUND"), "user 42 missing")
	Write(rec, r, mapper.Strings[code.Code](mapper.Default()))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":"error","code":"NOT_FOUND","message":"user 42 missing"}`, rec.Body.String())
}

func TestWrite_FailureWithoutClassifier(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, dresult.Fail[int](7, "seven"), nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"status":"error","code":7,"message":"seven"}`, rec.Body.String())
}

func TestWrite_EncodeError(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, dresult.Success[code.Code](make(chan int)), nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"error"`)
	require.Contains(t, rec.Body.String(), `"code":"internal"`)
}

func TestHandler_RoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	h := Handler(func(req *http.Request) dresult.Result[user, code.Code] {
		if req.URL.Query().Get("id") != "42" {
			return dresult.Fail[user](code.NotFound, "no such user")
		}
		return dresult.Success[code.Code](user{ID: 42, Name: "ada"})
	}, mapper.Default().Status, WithLogger(zap.New(core)))

	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users?id=42")
	require.NoError(t, err)
	defer resp.Body.Close()

	r, err := Read[user, code.Code](resp)
	require.NoError(t, err)
	require.True(t, r.IsSuccess())
	require.Equal(t, user{ID: 42, Name: "ada"}, r.Value())

	resp2, err := http.Get(srv.URL + "/users?id=7")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusNotFound, resp2.StatusCode)

	r2, err := Read[user, code.Code](resp2)
	require.NoError(t, err)
	require.True(t, r2.IsFailure())
	require.Equal(t, code.NotFound, r2.Code())
	require.Equal(t, "no such user", r2.Message())

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "/users", entries[1].ContextMap()["path"])
}

func TestRead_NotEnvelope(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Body:       io.NopCloser(strings.NewReader(`<html>bad gateway</html>`)),
	}

	_, err := Read[user, code.Code](resp)
	require.True(t, errors.Is(err, ErrNotEnvelope))
	require.Contains(t, err.Error(), "http 502")

	resp.Body = io.NopCloser(strings.NewReader(`{"data":{"id":1}}`))
	_, err = Read[user, code.Code](resp)
	require.True(t, errors.Is(err, dresult.ErrInvalidEnvelope))
}
