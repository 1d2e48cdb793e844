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

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/handler"
	"github.com/storebook/api-tests/pkg/server/middleware"
)

// handleBindError reports path and query parameters the generated router
// could not bind, e.g. a repeated query parameter.
func handleBindError(w http.ResponseWriter, r *http.Request, err error) {
	errors.HandleError(w, r, errors.New(openapi.ErrorBodyInvalid).WithError(err))
}

// Routes builds the API router.
func Routes(log logr.Logger, h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)

	return openapi.HandlerWithOptions(h, openapi.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handleBindError,
	})
}
