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

package handler

import (
	"context"
	"net/http"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/util"
	"github.com/storebook/api-tests/pkg/store"
)

const (
	seriesNameMinLength = 2
	seriesNameMaxLength = 50
)

// seriesRequest is a validated series creation body.
type seriesRequest struct {
	author      string
	name        string
	language    string
	collections []string
}

// present returns the value of a key, treating null as absent.
func present(body map[string]any, key string) (any, bool) {
	v, ok := body[key]

	return v, ok && v != nil
}

// validateSeries checks every field, returning all problems in field order.
// Only admins and publishers name the author, authors create series for
// themselves.
//
//nolint:cyclop
func validateSeries(body map[string]any, withAuthor bool) (*seriesRequest, error) {
	request := &seriesRequest{}

	var codes []openapi.ErrorCode

	if withAuthor {
		if raw, ok := present(body, "author"); !ok {
			codes = append(codes, openapi.ErrorAuthorMissing)
		} else if request.author, ok = raw.(string); !ok {
			codes = append(codes, openapi.ErrorAuthorWrongType)
		}
	}

	if raw, ok := present(body, "name"); !ok {
		codes = append(codes, openapi.ErrorNameMissing)
	} else if request.name, ok = raw.(string); !ok {
		codes = append(codes, openapi.ErrorNameWrongType)
	} else if n := utf8.RuneCountInString(request.name); n < seriesNameMinLength {
		codes = append(codes, openapi.ErrorNameTooShort)
	} else if n > seriesNameMaxLength {
		codes = append(codes, openapi.ErrorNameTooLong)
	}

	if raw, ok := present(body, "language"); !ok {
		codes = append(codes, openapi.ErrorLanguageMissing)
	} else if request.language, ok = raw.(string); !ok {
		codes = append(codes, openapi.ErrorLanguageWrongType)
	} else if !slices.Contains(openapi.SupportedLanguages, request.language) {
		codes = append(codes, openapi.ErrorLanguageNotSupported)
	}

	if raw, ok := present(body, "collections"); ok {
		collections, ok := stringSlice(raw)
		if !ok {
			codes = append(codes, openapi.ErrorCollectionsWrongType)
		}

		request.collections = collections
	}

	if len(codes) > 0 {
		return nil, errors.New(codes...)
	}

	return request, nil
}

func stringSlice(raw any) ([]string, bool) {
	values, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	out := make([]string, len(values))

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}

		out[i] = s
	}

	return out, true
}

// seriesAuthor resolves who the series is for.
func (h *Handler) seriesAuthor(ctx context.Context, r *http.Request, u *store.User, request *seriesRequest) (*store.Author, error) {
	if request.author == "" {
		authors, err := h.store.Authors(ctx, store.AuthorFilter{Owner: &u.ID})
		if err != nil {
			return nil, err
		}

		if len(authors) == 0 {
			return nil, errors.New(openapi.ErrorAuthorDoesNotExist)
		}

		return authors[0], nil
	}

	author, err := h.store.Author(ctx, request.author)
	if err != nil {
		return nil, notFound(err, openapi.ErrorAuthorDoesNotExist)
	}

	ok, err := h.canManage(r, u, author.UUID)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errors.ActionNotAllowed()
	}

	return author, nil
}

func (h *Handler) checkSeriesCollections(ctx context.Context, author string, ids []string) error {
	collections := make([]*store.Collection, len(ids))

	for i, id := range ids {
		c, err := h.store.Collection(ctx, id)
		if err != nil {
			return notFound(err, openapi.ErrorStoreBookCollectionDoesNotExist)
		}

		collections[i] = c
	}

	for _, c := range collections {
		if c.Author != author {
			return errors.ActionNotAllowed()
		}
	}

	return nil
}

func (h *Handler) PostStoreBookSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	u, err := h.authenticate(r, true)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := util.RequireContentType(r, openapi.ContentTypeJSON); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if u.Role == string(fixtures.RoleUser) {
		errors.HandleError(w, r, errors.ActionNotAllowed())
		return
	}

	var body map[string]any

	if err := util.ReadJSONBody(r, &body); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request, err := validateSeries(body, u.IsAdmin() || u.Role == string(fixtures.RolePublisher))
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	author, err := h.seriesAuthor(ctx, r, u, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.checkSeriesCollections(ctx, author.UUID, request.collections); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	sr := &store.Series{
		UUID:   uuid.NewString(),
		Author: author.UUID,
		Names: []store.Localized{
			{Language: request.language, Value: request.name},
		},
		Collections: request.collections,
	}

	if err := h.store.CreateSeries(ctx, sr); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := seriesFields().render(&seriesView{series: sr, languages: []string{request.language}})
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}
