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

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/util"
	"github.com/storebook/api-tests/pkg/store"
)

type authorView struct {
	author    *store.Author
	languages []string
}

func (h *Handler) authorFields(ctx context.Context) fields[*authorView] {
	return fields[*authorView]{
		{"uuid", func(v *authorView) (any, error) { return v.author.UUID, nil }},
		{"publisher", func(v *authorView) (any, error) { return nullable(v.author.Publisher), nil }},
		{"first_name", func(v *authorView) (any, error) { return v.author.FirstName, nil }},
		{"last_name", func(v *authorView) (any, error) { return v.author.LastName, nil }},
		{"bio", func(v *authorView) (any, error) { return pick(v.author.Bios, v.languages), nil }},
		{"website_url", func(v *authorView) (any, error) { return nullable(v.author.WebsiteURL), nil }},
		{"facebook_username", func(v *authorView) (any, error) { return nullable(v.author.FacebookUsername), nil }},
		{"instagram_username", func(v *authorView) (any, error) { return nullable(v.author.InstagramUsername), nil }},
		{"twitter_username", func(v *authorView) (any, error) { return nullable(v.author.TwitterUsername), nil }},
		{"profile_image", func(v *authorView) (any, error) { return h.imageItem(ctx, v.author.ProfileImage) }},
	}
}

func (h *Handler) GetAuthors(w http.ResponseWriter, r *http.Request, params openapi.GetAuthorsParams) {
	ctx := r.Context()

	p := &queryParams{Fields: params.Fields, Languages: params.Languages, Mine: params.Mine, Latest: params.Latest, Publisher: params.Publisher, Limit: params.Limit, Page: params.Page}

	u, err := h.authenticate(r, enabled(p.Mine))
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	q, err := p.list()
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	filter := store.AuthorFilter{
		Publisher: value(p.Publisher),
	}

	if filter.Publisher != "" {
		if _, err := h.store.Publisher(ctx, filter.Publisher); err != nil {
			errors.HandleError(w, r, notFound(err, openapi.ErrorPublisherDoesNotExist))
			return
		}
	}

	if enabled(p.Mine) {
		filter.Owner = &u.ID
	}

	authors, err := h.store.Authors(ctx, filter)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	authors, pages := pageOf(authors, enabled(p.Latest), q)

	views := make([]*authorView, len(authors))

	for i := range authors {
		views[i] = &authorView{author: authors[i], languages: q.languages}
	}

	items, err := renderAll(h.authorFields(ctx).selection(value(p.Fields)), views)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, &pageResponse{Pages: pages, Items: items})
}

func (h *Handler) GetAuthorsAuthorID(w http.ResponseWriter, r *http.Request, authorID openapi.AuthorIDParameter, params openapi.GetAuthorsAuthorIDParams) {
	ctx := r.Context()

	p := &queryParams{Fields: params.Fields, Languages: params.Languages}

	if _, err := h.authenticate(r, false); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	languages, err := p.languages()
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	author, err := h.store.Author(ctx, authorID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorAuthorDoesNotExist))
		return
	}

	result, err := h.authorFields(ctx).selection(value(p.Fields)).render(&authorView{author: author, languages: languages})
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

type publisherView = store.Publisher

func (h *Handler) publisherFields(ctx context.Context) fields[*publisherView] {
	return fields[*publisherView]{
		{"uuid", func(v *publisherView) (any, error) { return v.UUID, nil }},
		{"name", func(v *publisherView) (any, error) { return v.Name, nil }},
		{"description", func(v *publisherView) (any, error) { return v.Description, nil }},
		{"website_url", func(v *publisherView) (any, error) { return nullable(v.WebsiteURL), nil }},
		{"facebook_username", func(v *publisherView) (any, error) { return nullable(v.FacebookUsername), nil }},
		{"instagram_username", func(v *publisherView) (any, error) { return nullable(v.InstagramUsername), nil }},
		{"twitter_username", func(v *publisherView) (any, error) { return nullable(v.TwitterUsername), nil }},
		{"logo", func(v *publisherView) (any, error) { return h.imageItem(ctx, v.Logo) }},
		{"authors", func(v *publisherView) (any, error) { return nonNil(v.Authors), nil }},
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func (h *Handler) GetPublishers(w http.ResponseWriter, r *http.Request, params openapi.GetPublishersParams) {
	ctx := r.Context()

	p := &queryParams{Fields: params.Fields, Languages: params.Languages, Mine: params.Mine, Latest: params.Latest, Limit: params.Limit, Page: params.Page}

	u, err := h.authenticate(r, enabled(p.Mine))
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	q, err := p.list()
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	var owner *int

	if enabled(p.Mine) {
		owner = &u.ID
	}

	publishers, err := h.store.Publishers(ctx, owner)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	publishers, pages := pageOf(publishers, enabled(p.Latest), q)

	items, err := renderAll(h.publisherFields(ctx).selection(value(p.Fields)), publishers)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, &pageResponse{Pages: pages, Items: items})
}

func (h *Handler) GetPublishersPublisherID(w http.ResponseWriter, r *http.Request, publisherID openapi.PublisherIDParameter, params openapi.GetPublishersPublisherIDParams) {
	ctx := r.Context()

	p := &queryParams{Fields: params.Fields}

	if _, err := h.authenticate(r, false); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	publisher, err := h.store.Publisher(ctx, publisherID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorPublisherDoesNotExist))
		return
	}

	result, err := h.publisherFields(ctx).selection(value(p.Fields)).render(publisher)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}
