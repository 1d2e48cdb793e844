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
	"slices"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
)

// published returns true if the book is in the published view.
func published(b *fixtures.StoreBook) bool {
	return b.Status == fixtures.StatusPublished && b.LatestRelease() != nil
}

// eligible returns true if the book can represent its collection in a
// series for the languages.
func eligible(b *fixtures.StoreBook, languages []string) bool {
	r := b.LatestRelease()

	return b.Status == fixtures.StatusPublished && r != nil && r.Status == fixtures.ReleasePublished && slices.Contains(languages, b.Language)
}

// SeriesBooks picks one book per member collection of the series, preferring
// earlier requested languages and then earlier books.  It returns false if
// any collection has nothing eligible, the series is then incomplete.
func (s *Simulator) SeriesBooks(sr *fixtures.Series, languages []string) ([]*fixtures.StoreBook, bool) {
	out := make([]*fixtures.StoreBook, 0, len(sr.Collections))

	for _, c := range sr.Collections {
		var pick *fixtures.StoreBook

		rank := len(languages)

		for _, b := range s.data.CollectionBooks(c) {
			if !eligible(b, languages) {
				continue
			}

			if r := slices.Index(languages, b.Language); r < rank {
				pick, rank = b, r
			}
		}

		if pick == nil {
			return nil, false
		}

		out = append(out, pick)
	}

	return out, true
}

// Complete returns true if the series is servable for the languages.
func (s *Simulator) Complete(sr *fixtures.Series, languages []string) bool {
	_, ok := s.SeriesBooks(sr, languages)

	return ok
}

// categoryFilter maps category keys to their storage identifiers.
func (s *Simulator) categoryFilter(keys string) (set.Set[string], error) {
	if keys == "" {
		return nil, nil
	}

	var ids []string

	for _, key := range strings.Split(keys, ",") {
		c := s.data.CategoryByKey(strings.TrimSpace(key))
		if c == nil {
			return nil, reject(openapi.ErrorCategoryDoesNotExist)
		}

		ids = append(ids, c.UUID)
	}

	return set.New[string](ids...), nil
}

// hasCategories returns true if the latest release has every requested
// category.
func hasCategories(b *fixtures.StoreBook, requested set.Set[string]) bool {
	r := b.LatestRelease()
	if r == nil {
		return false
	}

	missing := requested.Difference(set.New[string](r.Categories...))

	return len(slices.Collect(missing.All())) == 0
}

// narrowing holds the entity filters of a store book query.
type narrowing struct {
	author     *fixtures.Author
	publisher  *fixtures.Publisher
	collection *fixtures.Collection
	series     *fixtures.Series
}

func (s *Simulator) narrowing(p Params) (*narrowing, error) {
	n := &narrowing{}

	if p.Author != "" {
		if n.author = s.data.Author(p.Author); n.author == nil {
			return nil, reject(openapi.ErrorAuthorDoesNotExist)
		}
	}

	if p.Publisher != "" {
		if n.publisher = s.data.Publisher(p.Publisher); n.publisher == nil {
			return nil, reject(openapi.ErrorPublisherDoesNotExist)
		}
	}

	if p.Collection != "" {
		if n.collection = s.data.Collection(p.Collection); n.collection == nil {
			return nil, reject(openapi.ErrorStoreBookCollectionDoesNotExist)
		}
	}

	if p.Series != "" {
		if n.series = s.data.StoreBookSeries(p.Series); n.series == nil {
			return nil, reject(openapi.ErrorStoreBookSeriesDoesNotExist)
		}
	}

	return n, nil
}

func (n *narrowing) admits(s *Simulator, b *fixtures.StoreBook) bool {
	a := s.data.BookAuthor(b)

	if n.author != nil && a.UUID != n.author.UUID {
		return false
	}

	if n.publisher != nil && (a.Publisher == nil || *a.Publisher != n.publisher.UUID) {
		return false
	}

	if n.collection != nil && b.Collection != n.collection.UUID {
		return false
	}

	return true
}

// selfView returns true when the user may see unpublished books for the
// filters, either by owning the filtered entity or by being an admin.
func (n *narrowing) selfView(s *Simulator, u *fixtures.User) bool {
	if u.IsAdmin() {
		return true
	}

	switch {
	case n.author != nil:
		return s.data.OwnsAuthor(u, n.author)
	case n.publisher != nil:
		return s.data.OwnsPublisher(u, n.publisher)
	case n.collection != nil:
		return s.data.OwnsAuthor(u, s.data.Author(n.collection.Author))
	}

	return false
}

// StoreBooks simulates GET /store_books.
//
//nolint:cyclop,gocognit
func (s *Simulator) StoreBooks(c Caller, p Params) (*Page, error) {
	u, err := s.authenticate(c, p.Mine || p.Review)
	if err != nil {
		return nil, err
	}

	q, err := parseQuery(p)
	if err != nil {
		return nil, err
	}

	if p.Review && !u.IsAdmin() {
		return nil, reject(openapi.ErrorActionNotAllowed)
	}

	n, err := s.narrowing(p)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryFilter(p.Categories)
	if err != nil {
		return nil, err
	}

	var books []*fixtures.StoreBook

	switch {
	case n.series != nil:
		picked, ok := s.SeriesBooks(n.series, q.languages)
		if !ok {
			return nil, reject(openapi.ErrorStoreBookSeriesIncomplete)
		}

		books = picked
	default:
		self := n.selfView(s, u)

		for i := range s.data.StoreBooks {
			b := &s.data.StoreBooks[i]

			if !n.admits(s, b) {
				continue
			}

			switch {
			case p.Review:
				if b.Status != fixtures.StatusReview {
					continue
				}
			case p.Mine:
				if !s.data.OwnsAuthor(u, s.data.BookAuthor(b)) {
					continue
				}
			case !self:
				if !published(b) {
					continue
				}
			}

			books = append(books, b)
		}
	}

	filtered := make([]*fixtures.StoreBook, 0, len(books))

	for _, b := range books {
		if !slices.Contains(q.languages, b.Language) {
			continue
		}

		if categories != nil && !hasCategories(b, categories) {
			continue
		}

		filtered = append(filtered, b)
	}

	filtered, pages := paginate(filtered, p.Latest, q.limit, q.page)

	out := &Page{
		Pages: pages,
		Items: make([]map[string]any, 0, len(filtered)),
	}

	for _, b := range filtered {
		out.Items = append(out.Items, project(s.storeBook(u, b), selectFields(p.Fields, s.storeBookKeys(u, b))))
	}

	return out, nil
}

// StoreBook simulates GET /store_books/{uuid}.  Books outside the published
// view are only visible to their owner and admins.
func (s *Simulator) StoreBook(c Caller, id string, p Params) (map[string]any, error) {
	u, err := s.authenticate(c, false)
	if err != nil {
		return nil, err
	}

	b := s.data.StoreBook(id)
	if b == nil {
		return nil, reject(openapi.ErrorStoreBookDoesNotExist)
	}

	if !published(b) && !s.canManage(u, s.data.BookAuthor(b)) {
		return nil, reject(openapi.ErrorActionNotAllowed)
	}

	return project(s.storeBook(u, b), selectFields(p.Fields, s.storeBookKeys(u, b))), nil
}
