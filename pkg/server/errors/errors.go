/*
Copyright 2026 the Storebook Authors.

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

package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	"github.com/storebook/api-tests/pkg/openapi"
)

// Error is an API error.  The status is that of the first code, every code
// is rendered in order.
type Error struct {
	status int
	codes  []openapi.ErrorCode
	err    error
}

// New returns an error with one or more codes.
func New(codes ...openapi.ErrorCode) *Error {
	return &Error{
		status: openapi.Status(codes[0]),
		codes:  codes,
	}
}

func ActionNotAllowed() *Error {
	return New(openapi.ErrorActionNotAllowed)
}

func Unexpected() *Error {
	return New(openapi.ErrorUnexpected)
}

// WithError attaches the underlying cause, which is logged, never returned
// to the client.
func (e *Error) WithError(err error) *Error {
	e.err = err

	return e
}

func (e *Error) Error() string {
	codes := make([]string, len(e.codes))

	for i := range e.codes {
		codes[i] = e.codes[i].String()
	}

	s := strings.Join(codes, ", ")

	if e.err != nil {
		s += ": " + e.err.Error()
	}

	return s
}

func (e *Error) Unwrap() error {
	return e.err
}

// Status returns the HTTP status code.
func (e *Error) Status() int {
	return e.status
}

// Codes returns the error codes.
func (e *Error) Codes() []openapi.ErrorCode {
	return e.codes
}

// HandleError renders an error as an error envelope.  Anything that isn't an
// API error is an unexpected server error.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logr.FromContextOrDiscard(r.Context())

	var apiError *Error

	if !errors.As(err, &apiError) {
		apiError = Unexpected().WithError(err)
	}

	if apiError.status >= http.StatusInternalServerError {
		log.Error(err, "unhandled error", "method", r.Method, "path", r.URL.Path)
	} else {
		log.V(1).Info("request rejected", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	}

	w.Header().Set("Content-Type", openapi.ContentTypeJSON)
	w.WriteHeader(apiError.status)

	if err := json.NewEncoder(w).Encode(openapi.NewErrorResponse(apiError.codes...)); err != nil {
		log.Error(err, "failed to write error response")
	}
}
