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

// Kind is a resource type whose key count can be predicted.
type Kind int

const (
	KindAuthor Kind = iota
	KindPublisher
	KindStoreBook
	KindCollection
	KindSeries
	KindCategory
)

//nolint:gochecknoglobals
var (
	AuthorKeys = []string{
		"uuid", "publisher", "first_name", "last_name", "bio", "website_url",
		"facebook_username", "instagram_username", "twitter_username", "profile_image",
	}

	PublisherKeys = []string{
		"uuid", "name", "description", "website_url", "facebook_username",
		"instagram_username", "twitter_username", "logo", "authors",
	}

	// StoreBookKeys are visible to everyone.
	StoreBookKeys = []string{
		"uuid", "collection", "title", "description", "language", "price",
		"currency", "isbn", "status", "categories", "cover",
	}

	// StoreBookUserKeys are additionally visible to authenticated callers.
	StoreBookUserKeys = []string{"in_library", "purchased"}

	// StoreBookOwnerKeys are additionally visible to the owner and admins.
	StoreBookOwnerKeys = []string{"file"}

	CollectionKeys = []string{"uuid", "author", "name", "store_books"}

	SeriesKeys = []string{"uuid", "author", "name", "names", "collections"}

	CategoryKeys = []string{"uuid", "key", "name"}
)

// Localize picks the value for the first requested language that has one,
// falling back to English and then to nothing.
func Localize(values []fixtures.Localized, languages []string) *fixtures.Localized {
	for _, l := range languages {
		for i := range values {
			if values[i].Language == l {
				return &values[i]
			}
		}
	}

	for i := range values {
		if values[i].Language == openapi.DefaultLanguage {
			return &values[i]
		}
	}

	return nil
}

func localized(values []fixtures.Localized, languages []string) any {
	l := Localize(values, languages)
	if l == nil {
		return nil
	}

	return map[string]any{
		"language": l.Language,
		"value":    l.Value,
	}
}

func optional(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func imageItem(i *fixtures.Image) any {
	if i == nil {
		return nil
	}

	return map[string]any{
		"uuid":     i.UUID,
		"url":      openapi.TableObjectFileURL(i.UUID),
		"blurhash": optional(i.Blurhash),
	}
}

func (s *Simulator) author(a *fixtures.Author, languages []string) map[string]any {
	return map[string]any{
		"uuid":               a.UUID,
		"publisher":          optional(a.Publisher),
		"first_name":         a.FirstName,
		"last_name":          a.LastName,
		"bio":                localized(a.Bios, languages),
		"website_url":        optional(a.WebsiteURL),
		"facebook_username":  optional(a.FacebookUsername),
		"instagram_username": optional(a.InstagramUsername),
		"twitter_username":   optional(a.TwitterUsername),
		"profile_image":      imageItem(a.ProfileImage),
	}
}

func (s *Simulator) publisher(p *fixtures.Publisher) map[string]any {
	authors := []string{}

	for _, a := range s.data.PublisherAuthors(p.UUID) {
		authors = append(authors, a.UUID)
	}

	return map[string]any{
		"uuid":               p.UUID,
		"name":               p.Name,
		"description":        p.Description,
		"website_url":        optional(p.WebsiteURL),
		"facebook_username":  optional(p.FacebookUsername),
		"instagram_username": optional(p.InstagramUsername),
		"twitter_username":   optional(p.TwitterUsername),
		"logo":               imageItem(p.Logo),
		"authors":            authors,
	}
}

// canManage returns true if the user can see everything about the author's
// books.
func (s *Simulator) canManage(u *fixtures.User, a *fixtures.Author) bool {
	return u.IsAdmin() || s.data.OwnsAuthor(u, a)
}

func (s *Simulator) storeBookKeys(u *fixtures.User, b *fixtures.StoreBook) []string {
	keys := StoreBookKeys

	if u != nil {
		keys = append(append([]string{}, keys...), StoreBookUserKeys...)

		if s.canManage(u, s.data.BookAuthor(b)) {
			keys = append(keys, StoreBookOwnerKeys...)
		}
	}

	return keys
}

func (s *Simulator) storeBook(u *fixtures.User, b *fixtures.StoreBook) map[string]any {
	out := map[string]any{
		"uuid":        b.UUID,
		"collection":  b.Collection,
		"title":       nil,
		"description": nil,
		"language":    b.Language,
		"price":       nil,
		"currency":    openapi.Currency,
		"isbn":        nil,
		"status":      string(b.Status),
		"categories":  []string{},
		"cover":       nil,
		"file":        nil,
		"in_library":  s.data.InLibrary(u, b.UUID),
		"purchased":   s.data.Purchased(u, b.UUID),
	}

	r := b.LatestRelease()
	if r == nil {
		return out
	}

	categories := []string{}

	for _, id := range r.Categories {
		categories = append(categories, s.data.Category(id).Key)
	}

	out["title"] = r.Title
	out["description"] = r.Description
	out["isbn"] = optional(r.ISBN)
	out["categories"] = categories
	out["cover"] = imageItem(r.Cover)

	if r.Price != nil {
		out["price"] = *r.Price
	}

	if r.File != nil {
		out["file"] = map[string]any{
			"uuid":      r.File.UUID,
			"file_name": r.File.FileName,
		}
	}

	return out
}

// visibleBooks returns the books of a collection the user may see.
func (s *Simulator) visibleBooks(u *fixtures.User, c *fixtures.Collection) []string {
	manage := s.canManage(u, s.data.Author(c.Author))

	out := []string{}

	for _, b := range s.data.CollectionBooks(c.UUID) {
		if manage || published(b) {
			out = append(out, b.UUID)
		}
	}

	return out
}

func (s *Simulator) collection(u *fixtures.User, c *fixtures.Collection, languages []string) map[string]any {
	return map[string]any{
		"uuid":        c.UUID,
		"author":      c.Author,
		"name":        localized(c.Names, languages),
		"store_books": s.visibleBooks(u, c),
	}
}

func (s *Simulator) series(sr *fixtures.Series, languages []string) map[string]any {
	names := make([]map[string]any, len(sr.Names))

	for i, n := range sr.Names {
		names[i] = map[string]any{
			"name":     n.Value,
			"language": n.Language,
		}
	}

	collections := append([]string{}, sr.Collections...)

	return map[string]any{
		"uuid":        sr.UUID,
		"author":      sr.Author,
		"name":        localized(sr.Names, languages),
		"names":       names,
		"collections": collections,
	}
}

func (s *Simulator) category(c *fixtures.Category, languages []string) map[string]any {
	return map[string]any{
		"uuid": c.UUID,
		"key":  c.Key,
		"name": localized(c.Names, languages),
	}
}

// KeyCount predicts how many top level keys an item has when requested with
// fields=* by the caller.  Only store books vary by caller, id is ignored for
// every other kind.
func (s *Simulator) KeyCount(kind Kind, c Caller, id string) (int, error) {
	switch kind {
	case KindAuthor:
		return len(AuthorKeys), nil
	case KindPublisher:
		return len(PublisherKeys), nil
	case KindCollection:
		return len(CollectionKeys), nil
	case KindSeries:
		return len(SeriesKeys), nil
	case KindCategory:
		return len(CategoryKeys), nil
	case KindStoreBook:
	}

	u, err := s.authenticate(c, false)
	if err != nil {
		return 0, err
	}

	b := s.data.StoreBook(id)
	if b == nil {
		return 0, reject(openapi.ErrorStoreBookDoesNotExist)
	}

	return len(s.storeBookKeys(u, b)), nil
}
