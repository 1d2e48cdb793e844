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

package store

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

type Collection struct {
	UUID   string
	Author string
	Names  []Localized
}

// Release is the latest release of a store book.
type Release struct {
	UUID        string
	Title       string
	Description string
	Price       *int
	ISBN        *string
	Cover       *string
	File        *string
	FileName    *string
	Status      string
	// Categories are category keys.
	Categories []string
}

// StoreBook is a store book joined with its ownership chain and latest
// release.
type StoreBook struct {
	UUID          string
	Collection    string
	Language      string
	Status        string
	Author        string
	AuthorUser    *int
	Publisher     *string
	PublisherUser *int
	PaymentSetup  bool
	Release       *Release
}

// Owner returns true if the user owns the book's author.
func (b *StoreBook) Owner(user int) bool {
	return (b.AuthorUser != nil && *b.AuthorUser == user) || (b.PublisherUser != nil && *b.PublisherUser == user)
}

func (s *Store) Collection(ctx context.Context, id string) (*Collection, error) {
	c := &Collection{}

	if err := s.db.QueryRowContext(ctx, `SELECT uuid, author FROM collections WHERE uuid = ?`, id).Scan(&c.UUID, &c.Author); err != nil {
		return nil, notFound(err)
	}

	names, err := s.Localized(ctx, c.UUID)
	if err != nil {
		return nil, err
	}

	c.Names = names

	return c, nil
}

// CollectionBooks returns the books of a collection in insertion order,
// limited to the published view unless all is set.
func (s *Store) CollectionBooks(ctx context.Context, id string, all bool) ([]string, error) {
	query := `SELECT b.uuid FROM store_books b WHERE b.collection = ?`

	if !all {
		query += ` AND b.status = 'published' AND EXISTS (SELECT 1 FROM releases r WHERE r.store_book = b.uuid)`
	}

	return collect(ctx, s.db, scanString, query+` ORDER BY b.position`, id)
}

// latestRelease joins the last release of the book aliased b as r.
const latestRelease = `LEFT JOIN releases r ON r.store_book = b.uuid AND r.position = (SELECT MAX(position) FROM releases WHERE store_book = b.uuid)`

const storeBookQuery = `SELECT b.uuid, b.collection, b.language, b.status, a.uuid, a.user_id, a.publisher, p.user_id, a.payment_setup,
	r.uuid, r.title, r.description, r.price, r.isbn, r.cover, r.file, r.file_name, r.status
FROM store_books b
JOIN collections c ON c.uuid = b.collection
JOIN authors a ON a.uuid = c.author
LEFT JOIN publishers p ON p.uuid = a.publisher
` + latestRelease

func scanStoreBook(row scanner) (*StoreBook, error) {
	b := &StoreBook{}

	var (
		release             *string
		title, description  *string
		price               *int
		isbn, cover, file   *string
		fileName, relStatus *string
	)

	if err := row.Scan(&b.UUID, &b.Collection, &b.Language, &b.Status, &b.Author, &b.AuthorUser, &b.Publisher, &b.PublisherUser, &b.PaymentSetup,
		&release, &title, &description, &price, &isbn, &cover, &file, &fileName, &relStatus); err != nil {
		return nil, err
	}

	if release != nil {
		b.Release = &Release{
			UUID:        *release,
			Title:       *title,
			Description: *description,
			Price:       price,
			ISBN:        isbn,
			Cover:       cover,
			File:        file,
			FileName:    fileName,
			Status:      *relStatus,
		}
	}

	return b, nil
}

func scanStoreBookRows(rows *sql.Rows) (*StoreBook, error) {
	return scanStoreBook(rows)
}

func (s *Store) releaseCategories(ctx context.Context, books []*StoreBook) error {
	for _, b := range books {
		if b.Release == nil {
			continue
		}

		keys, err := collect(ctx, s.db, scanString, `SELECT c.key FROM release_categories rc JOIN categories c ON c.uuid = rc.category WHERE rc.release = ? ORDER BY rc.position`, b.Release.UUID)
		if err != nil {
			return err
		}

		b.Release.Categories = keys
	}

	return nil
}

func (s *Store) StoreBook(ctx context.Context, id string) (*StoreBook, error) {
	b, err := scanStoreBook(s.db.QueryRowContext(ctx, storeBookQuery+` WHERE b.uuid = ?`, id))
	if err != nil {
		return nil, notFound(err)
	}

	if err := s.releaseCategories(ctx, []*StoreBook{b}); err != nil {
		return nil, err
	}

	return b, nil
}

// StoreBookFilter narrows a store book listing.  Zero values don't filter.
type StoreBookFilter struct {
	Statuses []string
	// Released requires a latest release to exist.
	Released   bool
	Languages  []string
	Author     string
	Publisher  string
	Collection string
	// Owner requires the book's author to be owned by the user.
	Owner *int
	// Categories are category uuids the latest release must all have.
	Categories []string
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func strings2any(values []string) []any {
	out := make([]any, len(values))

	for i := range values {
		out[i] = values[i]
	}

	return out
}

// StoreBooks lists store books matching the filter in insertion order.
func (s *Store) StoreBooks(ctx context.Context, filter StoreBookFilter) ([]*StoreBook, error) {
	var (
		where []string
		args  []any
	)

	if len(filter.Statuses) > 0 {
		where = append(where, `b.status IN (`+placeholders(len(filter.Statuses))+`)`)
		args = append(args, strings2any(filter.Statuses)...)
	}

	if filter.Released {
		where = append(where, `r.uuid IS NOT NULL`)
	}

	if len(filter.Languages) > 0 {
		where = append(where, `b.language IN (`+placeholders(len(filter.Languages))+`)`)
		args = append(args, strings2any(filter.Languages)...)
	}

	if filter.Author != "" {
		where = append(where, `a.uuid = ?`)
		args = append(args, filter.Author)
	}

	if filter.Publisher != "" {
		where = append(where, `a.publisher = ?`)
		args = append(args, filter.Publisher)
	}

	if filter.Collection != "" {
		where = append(where, `b.collection = ?`)
		args = append(args, filter.Collection)
	}

	if filter.Owner != nil {
		where = append(where, `(a.user_id = ? OR p.user_id = ?)`)
		args = append(args, *filter.Owner, *filter.Owner)
	}

	for _, c := range filter.Categories {
		where = append(where, `EXISTS (SELECT 1 FROM release_categories rc WHERE rc.release = r.uuid AND rc.category = ?)`)
		args = append(args, c)
	}

	query := storeBookQuery

	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}

	books, err := collect(ctx, s.db, scanStoreBookRows, query+` ORDER BY b.position`, args...)
	if err != nil {
		return nil, err
	}

	if err := s.releaseCategories(ctx, books); err != nil {
		return nil, err
	}

	return books, nil
}

// SeriesPick returns the book that represents a collection in a series: a
// published book whose latest release is published, in the earliest of the
// requested languages and then the earliest inserted.
func (s *Store) SeriesPick(ctx context.Context, collection string, languages []string) (string, error) {
	if len(languages) == 0 {
		return "", ErrNotFound
	}

	rank := make([]string, len(languages))

	for i := range languages {
		rank[i] = "WHEN ? THEN " + strconv.Itoa(i)
	}

	query := `SELECT b.uuid FROM store_books b ` + latestRelease + `
WHERE b.collection = ? AND b.status = 'published' AND r.status = 'published' AND b.language IN (` + placeholders(len(languages)) + `)
ORDER BY CASE b.language ` + strings.Join(rank, " ") + ` END, b.position
LIMIT 1`

	args := append([]any{collection}, strings2any(languages)...)
	args = append(args, strings2any(languages)...)

	var id string

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", notFound(err)
	}

	return id, nil
}

// InLibrary returns true if the book is in the user's library.
func (s *Store) InLibrary(ctx context.Context, user int, book string) (bool, error) {
	var n int

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM library WHERE user_id = ? AND store_book = ?`, user, book).Scan(&n); err != nil {
		return false, err
	}

	return n > 0, nil
}

// Purchased returns true if the user has a completed purchase of the book.
func (s *Store) Purchased(ctx context.Context, user int, book string) (bool, error) {
	var n int

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchases WHERE user_id = ? AND store_book = ? AND completed = 1`, user, book).Scan(&n); err != nil {
		return false, err
	}

	return n > 0, nil
}
