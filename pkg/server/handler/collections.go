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

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/util"
	"github.com/storebook/api-tests/pkg/store"
)

type collectionView struct {
	collection *store.Collection
	languages  []string
	all        bool
}

func (h *Handler) collectionFields(ctx context.Context) fields[*collectionView] {
	return fields[*collectionView]{
		{"uuid", func(v *collectionView) (any, error) { return v.collection.UUID, nil }},
		{"author", func(v *collectionView) (any, error) { return v.collection.Author, nil }},
		{"name", func(v *collectionView) (any, error) { return pick(v.collection.Names, v.languages), nil }},
		{"store_books", func(v *collectionView) (any, error) {
			books, err := h.store.CollectionBooks(ctx, v.collection.UUID, v.all)
			if err != nil {
				return nil, err
			}

			return nonNil(books), nil
		}},
	}
}

func (h *Handler) GetStoreBookCollectionsCollectionID(w http.ResponseWriter, r *http.Request, collectionID openapi.CollectionIDParameter, params openapi.GetStoreBookCollectionsCollectionIDParams) {
	ctx := r.Context()

	p := &queryParams{Fields: params.Fields, Languages: params.Languages}

	u, err := h.authenticate(r, false)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	languages, err := p.languages()
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	collection, err := h.store.Collection(ctx, collectionID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorStoreBookCollectionDoesNotExist))
		return
	}

	all, err := h.canManage(r, u, collection.Author)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.collectionFields(ctx).selection(value(p.Fields)).render(&collectionView{collection: collection, languages: languages, all: all})
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

type seriesView struct {
	series    *store.Series
	languages []string
}

type seriesName struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

func seriesFields() fields[*seriesView] {
	return fields[*seriesView]{
		{"uuid", func(v *seriesView) (any, error) { return v.series.UUID, nil }},
		{"author", func(v *seriesView) (any, error) { return v.series.Author, nil }},
		{"name", func(v *seriesView) (any, error) { return pick(v.series.Names, v.languages), nil }},
		{"names", func(v *seriesView) (any, error) {
			names := make([]seriesName, len(v.series.Names))

			for i, n := range v.series.Names {
				names[i] = seriesName{Name: n.Value, Language: n.Language}
			}

			return names, nil
		}},
		{"collections", func(v *seriesView) (any, error) { return nonNil(v.series.Collections), nil }},
	}
}

// complete returns true if every collection of the series has a book that
// can be shown in one of the languages.
func (h *Handler) complete(ctx context.Context, sr *store.Series, languages []string) (bool, error) {
	for _, c := range sr.Collections {
		if _, err := h.store.SeriesPick(ctx, c, languages); err != nil {
			if goerrors.Is(err, store.ErrNotFound) {
				return false, nil
			}

			return false, err
		}
	}

	return true, nil
}

func (h *Handler) listSeries(ctx context.Context, r *http.Request, p *queryParams) (*pageResponse, error) {
	u, err := h.authenticate(r, false)
	if err != nil {
		return nil, err
	}

	q, err := p.list()
	if err != nil {
		return nil, err
	}

	author := value(p.Author)

	all := false

	if author != "" {
		if _, err := h.store.Author(ctx, author); err != nil {
			return nil, notFound(err, openapi.ErrorAuthorDoesNotExist)
		}

		if all, err = h.canManage(r, u, author); err != nil {
			return nil, err
		}
	}

	series, err := h.store.SeriesList(ctx, author)
	if err != nil {
		return nil, err
	}

	visible := make([]*seriesView, 0, len(series))

	for _, sr := range series {
		if !all {
			ok, err := h.complete(ctx, sr, q.languages)
			if err != nil {
				return nil, err
			}

			if !ok {
				continue
			}
		}

		visible = append(visible, &seriesView{series: sr, languages: q.languages})
	}

	visible, pages := pageOf(visible, enabled(p.Latest), q)

	items, err := renderAll(seriesFields().selection(value(p.Fields)), visible)
	if err != nil {
		return nil, err
	}

	return &pageResponse{Pages: pages, Items: items}, nil
}

func (h *Handler) GetStoreBookSeries(w http.ResponseWriter, r *http.Request, params openapi.GetStoreBookSeriesParams) {
	p := &queryParams{Fields: params.Fields, Languages: params.Languages, Author: params.Author, Latest: params.Latest, Limit: params.Limit, Page: params.Page}

	result, err := h.listSeries(r.Context(), r, p)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) GetStoreBookSeriesSeriesID(w http.ResponseWriter, r *http.Request, seriesID openapi.SeriesIDParameter, params openapi.GetStoreBookSeriesSeriesIDParams) {
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

	sr, err := h.store.Series(ctx, seriesID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorStoreBookSeriesDoesNotExist))
		return
	}

	result, err := seriesFields().selection(value(p.Fields)).render(&seriesView{series: sr, languages: languages})
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

type categoryView struct {
	category  *store.Category
	languages []string
}

func categoryFields() fields[*categoryView] {
	return fields[*categoryView]{
		{"uuid", func(v *categoryView) (any, error) { return v.category.UUID, nil }},
		{"key", func(v *categoryView) (any, error) { return v.category.Key, nil }},
		{"name", func(v *categoryView) (any, error) { return pick(v.category.Names, v.languages), nil }},
	}
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, params openapi.GetCategoriesParams) {
	ctx := r.Context()

	p := &queryParams{Languages: params.Languages}

	if _, err := h.authenticate(r, false); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	languages, err := p.languages()
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	categories, err := h.store.Categories(ctx)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	views := make([]*categoryView, len(categories))

	for i := range categories {
		views[i] = &categoryView{category: categories[i], languages: languages}
	}

	items, err := renderAll(categoryFields(), views)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) GetCategoriesCategoryKey(w http.ResponseWriter, r *http.Request, key string, params openapi.GetCategoriesCategoryKeyParams) {
	ctx := r.Context()

	p := &queryParams{Languages: params.Languages}

	if _, err := h.authenticate(r, false); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	languages, err := p.languages()
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	category, err := h.store.CategoryByKey(ctx, key)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorCategoryDoesNotExist))
		return
	}

	result, err := categoryFields().render(&categoryView{category: category, languages: languages})
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}
