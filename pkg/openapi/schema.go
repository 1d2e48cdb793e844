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

package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed openapi.yaml
var document []byte

// GetSwagger loads and validates the embedded API document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	spec, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := spec.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	return spec, nil
}

// ResponseValidator checks live responses against the API document, so
// shape regressions are caught even where a scenario only asserts a status.
type ResponseValidator struct {
	router routers.Router
}

// NewResponseValidator builds a validator from the embedded document.
func NewResponseValidator() (*ResponseValidator, error) {
	spec, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(spec)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	return &ResponseValidator{
		router: router,
	}, nil
}

// Validate checks a response to the given request.  Only JSON bodies are
// checked, and requests for paths the document doesn't know about are
// ignored.
func (v *ResponseValidator) Validate(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	if mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type")); err != nil || mediaType != ContentTypeJSON {
		return nil
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		var routeErr *routers.RouteError

		if errors.As(err, &routeErr) {
			return nil
		}

		return fmt.Errorf("finding route: %w", err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s: response does not match schema: %w", req.Method, req.URL.Path, err)
	}

	return nil
}
