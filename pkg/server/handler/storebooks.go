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
	goerrors "errors"
	"net/http"
	"slices"
	"strings"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/util"
	"github.com/storebook/api-tests/pkg/store"
)

// access is how much of a store book a caller may see.
type access int

const (
	accessPublic access = iota
	accessUser
	accessOwner
)

type storeBookView struct {
	book *store.StoreBook
	user *store.User
}

func (v *storeBookView) release() *store.Release {
	return v.book.Release
}

func (h *Handler) storeBookFields(ctx context.Context, level access) fields[*storeBookView] {
	f := fields[*storeBookView]{
		{"uuid", func(v *storeBookView) (any, error) { return v.book.UUID, nil }},
		{"collection", func(v *storeBookView) (any, error) { return v.book.Collection, nil }},
		{"title", func(v *storeBookView) (any, error) {
			if r := v.release(); r != nil {
				return r.Title, nil
			}

			return nil, nil
		}},
		{"description", func(v *storeBookView) (any, error) {
			if r := v.release(); r != nil {
				return r.Description, nil
			}

			return nil, nil
		}},
		{"language", func(v *storeBookView) (any, error) { return v.book.Language, nil }},
		{"price", func(v *storeBookView) (any, error) {
			if r := v.release(); r != nil {
				return nullable(r.Price), nil
			}

			return nil, nil
		}},
		{"currency", func(v *storeBookView) (any, error) { return openapi.Currency, nil }},
		{"isbn", func(v *storeBookView) (any, error) {
			if r := v.release(); r != nil {
				return nullable(r.ISBN), nil
			}

			return nil, nil
		}},
		{"status", func(v *storeBookView) (any, error) { return v.book.Status, nil }},
		{"categories", func(v *storeBookView) (any, error) {
			if r := v.release(); r != nil {
				return nonNil(r.Categories), nil
			}

			return []string{}, nil
		}},
		{"cover", func(v *storeBookView) (any, error) {
			if r := v.release(); r != nil {
				return h.imageItem(ctx, r.Cover)
			}

			return nil, nil
		}},
	}

	if level >= accessUser {
		f = append(f,
			field[*storeBookView]{"in_library", func(v *storeBookView) (any, error) { return h.store.InLibrary(ctx, v.user.ID, v.book.UUID) }},
			field[*storeBookView]{"purchased", func(v *storeBookView) (any, error) { return h.store.Purchased(ctx, v.user.ID, v.book.UUID) }},
		)
	}

	if level >= accessOwner {
		f = append(f, field[*storeBookView]{"file", func(v *storeBookView) (any, error) {
			if r := v.release(); r != nil && r.File != nil {
				return map[string]any{"uuid": *r.File, "file_name": value(r.FileName)}, nil
			}

			return nil, nil
		}})
	}

	return f
}

// accessTo returns how much of the book the user may see.
func accessTo(u *store.User, b *store.StoreBook) access {
	switch {
	case u == nil:
		return accessPublic
	case u.IsAdmin() || b.Owner(u.ID):
		return accessOwner
	}

	return accessUser
}

func (h *Handler) renderStoreBooks(ctx context.Context, u *store.User, books []*store.StoreBook, selection string) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(books))

	for _, b := range books {
		item, err := h.storeBookFields(ctx, accessTo(u, b)).selection(selection).render(&storeBookView{book: b, user: u})
		if err != nil {
			return nil, err
		}

		out = append(out, item)
	}

	return out, nil
}

// isPublished returns true if the book is in the public catalogue.
func isPublished(b *store.StoreBook) bool {
	return b.Status == string(fixtures.StatusPublished) && b.Release != nil
}

// storeBookScope is the entity filtering part of a store book listing.
type storeBookScope struct {
	author     *store.Author
	publisher  *store.Publisher
	collection *store.Collection
	series     *store.Series
}

func (h *Handler) storeBookScope(ctx context.Context, p *queryParams) (*storeBookScope, error) {
	s := &storeBookScope{}

	var err error

	if id := value(p.Author); id != "" {
		if s.author, err = h.store.Author(ctx, id); err != nil {
			return nil, notFound(err, openapi.ErrorAuthorDoesNotExist)
		}
	}

	if id := value(p.Publisher); id != "" {
		if s.publisher, err = h.store.Publisher(ctx, id); err != nil {
			return nil, notFound(err, openapi.ErrorPublisherDoesNotExist)
		}
	}

	if id := value(p.Collection); id != "" {
		if s.collection, err = h.store.Collection(ctx, id); err != nil {
			return nil, notFound(err, openapi.ErrorStoreBookCollectionDoesNotExist)
		}
	}

	if id := value(p.Series); id != "" {
		if s.series, err = h.store.Series(ctx, id); err != nil {
			return nil, notFound(err, openapi.ErrorStoreBookSeriesDoesNotExist)
		}
	}

	return s, nil
}

// unrestricted returns true when the caller may see books of every status
// for the scope, as an admin or the owner of the filtered entity.
func (h *Handler) unrestricted(ctx context.Context, u *store.User, s *storeBookScope) (bool, error) {
	if u == nil {
		return false, nil
	}

	if u.IsAdmin() {
		return true, nil
	}

	switch {
	case s.author != nil:
		return h.store.OwnsAuthor(ctx, u.ID, s.author.UUID)
	case s.publisher != nil:
		return s.publisher.User == u.ID, nil
	case s.collection != nil:
		return h.store.OwnsAuthor(ctx, u.ID, s.collection.Author)
	}

	return false, nil
}

// categoryIDs resolves category keys.
func (h *Handler) categoryIDs(ctx context.Context, keys string) ([]string, error) {
	if keys == "" {
		return nil, nil
	}

	var ids []string

	for _, key := range strings.Split(keys, ",") {
		c, err := h.store.CategoryByKey(ctx, strings.TrimSpace(key))
		if err != nil {
			return nil, notFound(err, openapi.ErrorCategoryDoesNotExist)
		}

		ids = append(ids, c.UUID)
	}

	return ids, nil
}

// seriesBooks picks a book per series collection, failing if the series is
// incomplete for the languages.
func (h *Handler) seriesBooks(ctx context.Context, sr *store.Series, languages []string) ([]*store.StoreBook, error) {
	books := make([]*store.StoreBook, 0, len(sr.Collections))

	for _, c := range sr.Collections {
		id, err := h.store.SeriesPick(ctx, c, languages)
		if err != nil {
			if goerrors.Is(err, store.ErrNotFound) {
				return nil, errors.New(openapi.ErrorStoreBookSeriesIncomplete)
			}

			return nil, err
		}

		b, err := h.store.StoreBook(ctx, id)
		if err != nil {
			return nil, err
		}

		books = append(books, b)
	}

	return books, nil
}

// hasCategoryKeys returns true if the latest release has every category.
func hasCategoryKeys(b *store.StoreBook, keys []string) bool {
	if b.Release == nil {
		return false
	}

	for _, key := range keys {
		if !slices.Contains(b.Release.Categories, strings.TrimSpace(key)) {
			return false
		}
	}

	return true
}

func (h *Handler) listStoreBooks(ctx context.Context, r *http.Request, p *queryParams) (*pageResponse, error) {
	mine, review := enabled(p.Mine), enabled(p.Review)

	u, err := h.authenticate(r, mine || review)
	if err != nil {
		return nil, err
	}

	q, err := p.list()
	if err != nil {
		return nil, err
	}

	if review && !u.IsAdmin() {
		return nil, errors.ActionNotAllowed()
	}

	scope, err := h.storeBookScope(ctx, p)
	if err != nil {
		return nil, err
	}

	categories, err := h.categoryIDs(ctx, value(p.Categories))
	if err != nil {
		return nil, err
	}

	var books []*store.StoreBook

	if scope.series != nil {
		picked, err := h.seriesBooks(ctx, scope.series, q.languages)
		if err != nil {
			return nil, err
		}

		for _, b := range picked {
			if categories == nil || hasCategoryKeys(b, strings.Split(value(p.Categories), ",")) {
				books = append(books, b)
			}
		}
	} else {
		filter := store.StoreBookFilter{
			Languages:  q.languages,
			Categories: categories,
		}

		if scope.author != nil {
			filter.Author = scope.author.UUID
		}

		if scope.publisher != nil {
			filter.Publisher = scope.publisher.UUID
		}

		if scope.collection != nil {
			filter.Collection = scope.collection.UUID
		}

		all, err := h.unrestricted(ctx, u, scope)
		if err != nil {
			return nil, err
		}

		switch {
		case review:
			filter.Statuses = []string{string(fixtures.StatusReview)}
		case mine:
			filter.Owner = &u.ID
		case !all:
			filter.Statuses = []string{string(fixtures.StatusPublished)}
			filter.Released = true
		}

		if books, err = h.store.StoreBooks(ctx, filter); err != nil {
			return nil, err
		}
	}

	books, pages := pageOf(books, enabled(p.Latest), q)

	items, err := h.renderStoreBooks(ctx, u, books, value(p.Fields))
	if err != nil {
		return nil, err
	}

	return &pageResponse{Pages: pages, Items: items}, nil
}

func (h *Handler) GetStoreBooks(w http.ResponseWriter, r *http.Request, params openapi.GetStoreBooksParams) {
	p := &queryParams{
		Fields:     params.Fields,
		Languages:  params.Languages,
		Mine:       params.Mine,
		Latest:     params.Latest,
		Review:     params.Review,
		Author:     params.Author,
		Publisher:  params.Publisher,
		Collection: params.Collection,
		Series:     params.Series,
		Categories: params.Categories,
		Limit:      params.Limit,
		Page:       params.Page,
	}

	result, err := h.listStoreBooks(r.Context(), r, p)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) GetStoreBooksStoreBookID(w http.ResponseWriter, r *http.Request, storeBookID openapi.StoreBookIDParameter, params openapi.GetStoreBooksStoreBookIDParams) {
	ctx := r.Context()

	p := &queryParams{Fields: params.Fields}

	u, err := h.authenticate(r, false)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	b, err := h.store.StoreBook(ctx, storeBookID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorStoreBookDoesNotExist))
		return
	}

	level := accessTo(u, b)

	if !isPublished(b) && level != accessOwner {
		errors.HandleError(w, r, errors.ActionNotAllowed())
		return
	}

	result, err := h.storeBookFields(ctx, level).selection(value(p.Fields)).render(&storeBookView{book: b, user: u})
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}
