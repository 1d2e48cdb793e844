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

package util

import (
	"encoding/json"
	goerrors "errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
)

// WriteJSONResponse writes a JSON body with the given status.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, code int, response any) {
	body, err := json.Marshal(response)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", openapi.ContentTypeJSON)
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logr.FromContextOrDiscard(r.Context()).Error(err, "failed to write response")
	}
}

// ContentType returns the media type of the request body, without
// parameters.
func ContentType(r *http.Request) string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}

	return mediaType
}

// RequireContentType rejects a request whose body isn't one of the types.
func RequireContentType(r *http.Request, types ...string) error {
	mediaType := ContentType(r)

	for _, t := range types {
		if mediaType == t {
			return nil
		}
	}

	return errors.New(openapi.ErrorContentTypeNotSupported)
}

// ReadJSONBody decodes a JSON request body.  The content type must be JSON.
func ReadJSONBody(r *http.Request, v any) error {
	if err := RequireContentType(r, openapi.ContentTypeJSON); err != nil {
		return err
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New(openapi.ErrorBodyInvalid).WithError(err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.New(openapi.ErrorBodyInvalid).WithError(err)
	}

	return nil
}

// ReadBody reads a raw request body of at most limit bytes.  Larger bodies
// are rejected rather than truncated.
func ReadBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError

		if goerrors.As(err, &tooLarge) {
			return nil, errors.New(openapi.ErrorBodyTooLarge).WithError(err)
		}

		return nil, errors.New(openapi.ErrorBodyInvalid).WithError(err)
	}

	return body, nil
}

// WriteBinaryResponse writes raw bytes with the given content type.
func WriteBinaryResponse(w http.ResponseWriter, r *http.Request, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		log := logr.FromContextOrDiscard(r.Context())

		log.Error(err, "failed to write response")
	}
}
