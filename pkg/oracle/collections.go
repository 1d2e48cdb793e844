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

package oracle

import (
	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
)

// Collection simulates GET /store_book_collections/{uuid}.
func (s *Simulator) Collection(c Caller, id string, p Params) (map[string]any, error) {
	u, err := s.authenticate(c, false)
	if err != nil {
		return nil, err
	}

	languages, err := parseLanguages(p)
	if err != nil {
		return nil, err
	}

	col := s.data.Collection(id)
	if col == nil {
		return nil, reject(openapi.ErrorStoreBookCollectionDoesNotExist)
	}

	return project(s.collection(u, col, languages), selectFields(p.Fields, CollectionKeys)), nil
}

// SeriesList simulates GET /store_book_series.  Only series that are complete
// for the languages are listed, unless the caller asks for the series of an
// author they manage.
func (s *Simulator) SeriesList(c Caller, p Params) (*Page, error) {
	u, err := s.authenticate(c, false)
	if err != nil {
		return nil, err
	}

	q, err := parseQuery(p)
	if err != nil {
		return nil, err
	}

	var author *fixtures.Author

	if p.Author != "" {
		if author = s.data.Author(p.Author); author == nil {
			return nil, reject(openapi.ErrorAuthorDoesNotExist)
		}
	}

	all := author != nil && s.canManage(u, author)

	var series []*fixtures.Series

	for i := range s.data.Series {
		sr := &s.data.Series[i]

		if author != nil && sr.Author != author.UUID {
			continue
		}

		if !all && !s.Complete(sr, q.languages) {
			continue
		}

		series = append(series, sr)
	}

	series, pages := paginate(series, p.Latest, q.limit, q.page)

	keys := selectFields(p.Fields, SeriesKeys)

	out := &Page{
		Pages: pages,
		Items: make([]map[string]any, 0, len(series)),
	}

	for _, sr := range series {
		out.Items = append(out.Items, project(s.series(sr, q.languages), keys))
	}

	return out, nil
}

// Series simulates GET /store_book_series/{uuid}.
func (s *Simulator) Series(c Caller, id string, p Params) (map[string]any, error) {
	if _, err := s.authenticate(c, false); err != nil {
		return nil, err
	}

	languages, err := parseLanguages(p)
	if err != nil {
		return nil, err
	}

	sr := s.data.StoreBookSeries(id)
	if sr == nil {
		return nil, reject(openapi.ErrorStoreBookSeriesDoesNotExist)
	}

	return project(s.series(sr, languages), selectFields(p.Fields, SeriesKeys)), nil
}

// Categories simulates GET /categories, which isn't paginated.
func (s *Simulator) Categories(c Caller, p Params) (map[string]any, error) {
	if _, err := s.authenticate(c, false); err != nil {
		return nil, err
	}

	languages, err := parseLanguages(p)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, 0, len(s.data.Categories))

	for i := range s.data.Categories {
		items = append(items, s.category(&s.data.Categories[i], languages))
	}

	return map[string]any{
		"items": items,
	}, nil
}

// Category simulates GET /categories/{key}.
func (s *Simulator) Category(c Caller, key string, p Params) (map[string]any, error) {
	if _, err := s.authenticate(c, false); err != nil {
		return nil, err
	}

	languages, err := parseLanguages(p)
	if err != nil {
		return nil, err
	}

	cat := s.data.CategoryByKey(key)
	if cat == nil {
		return nil, reject(openapi.ErrorCategoryDoesNotExist)
	}

	return s.category(cat, languages), nil
}
