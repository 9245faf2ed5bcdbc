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

// Package httpx translates dresult values to and from HTTP responses.
//
// The body is always the JSON envelope produced by dresult.Result.MarshalJSON,
// so the outcome is explicit in the "status" field. The HTTP status code is
// 200 for a success and is resolved through an apis.StatusFunc for a failure.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/logx"
	"go.uber.org/zap"
)

// ContentType is the media type of every envelope written by this package.
const ContentType = "application/json"

// ErrNotEnvelope is returned by Read when the response does not carry a
// result envelope.
var ErrNotEnvelope = errors.New("httpx: response is not a result envelope")

// Write serializes r as a result envelope and writes it to rw.
//
// A success is written with 200 OK. A failure is written with the HTTP status
// resolved by classify; a nil classify, or a resolved status outside the 4xx-5xx
// range, is written as 500. Encoding errors on a success are reported as a
// 500 with a plain internal failure envelope.
func Write[T, E any](rw http.ResponseWriter, r dresult.Result[T, E], classify apis.StatusFunc[E]) {
	status := http.StatusOK
	if f, failed := r.GetFailure(); failed {
		status = http.StatusInternalServerError
		if classify != nil {
			if st := classify(f.Code).HTTP; st >= 400 && st <= 599 {
				status = st
			}
		}
	}

	body, err := json.Marshal(r)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(dresult.Fail[dresult.Unit]("internal", fmt.Sprintf("encode result: %v", err)))
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(status)
	_, _ = rw.Write(body)
}

// HandlerFunc produces a result for a request.
type HandlerFunc[T, E any] func(*http.Request) dresult.Result[T, E]

// Option configures a Handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger *zap.Logger
}

// WithLogger makes the Handler log every result through logx.Log.
func WithLogger(l *zap.Logger) Option {
	return func(c *handlerConfig) { c.logger = l }
}

// Handler adapts fn into an http.Handler that writes its result with Write.
func Handler[T, E any](fn HandlerFunc[T, E], classify apis.StatusFunc[E], opts ...Option) http.Handler {
	cfg := handlerConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		r := fn(req)
		logx.Log(cfg.logger, "http result", r,
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
		)
		Write(rw, r, classify)
	})
}

// Read decodes a result envelope from resp.Body. It does not close the body.
//
// The branch is taken from the envelope alone; the HTTP status code is not
// consulted. A body that is not an envelope yields ErrNotEnvelope together
// with the HTTP status for context.
func Read[T, E any](resp *http.Response) (dresult.Result[T, E], error) {
	var r dresult.Result[T, E]

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return r, fmt.Errorf("httpx: read body: %w", err)
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return r, fmt.Errorf("%w (http %d): %w", ErrNotEnvelope, resp.StatusCode, err)
	}
	return r, nil
}
