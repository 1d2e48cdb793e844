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
	"fmt"
	"strings"
)

// User is an API user resolved from a session token.
type User struct {
	ID   int
	App  int
	Role string
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// Localized is a value in one language.
type Localized struct {
	Language string
	Value    string
}

type Author struct {
	UUID              string
	User              *int
	Publisher         *string
	FirstName         string
	LastName          string
	WebsiteURL        *string
	FacebookUsername  *string
	InstagramUsername *string
	TwitterUsername   *string
	ProfileImage      *string
	PaymentSetup      bool
	Bios              []Localized
}

type Publisher struct {
	UUID              string
	User              int
	Name              string
	Description       string
	WebsiteURL        *string
	FacebookUsername  *string
	InstagramUsername *string
	TwitterUsername   *string
	Logo              *string
	Authors           []string
}

type Category struct {
	UUID  string
	Key   string
	Names []Localized
}

func (s *Store) UserByToken(ctx context.Context, token string) (*User, error) {
	u := &User{}

	if err := s.db.QueryRowContext(ctx, `SELECT id, app, role FROM users WHERE token = ?`, token).Scan(&u.ID, &u.App, &u.Role); err != nil {
		return nil, notFound(err)
	}

	return u, nil
}

func scanLocalized(rows *sql.Rows) (Localized, error) {
	var l Localized

	if err := rows.Scan(&l.Language, &l.Value); err != nil {
		return l, err
	}

	return l, nil
}

// Localized returns the localized values of an entity in insertion order.
func (s *Store) Localized(ctx context.Context, owner string) ([]Localized, error) {
	return collect(ctx, s.db, scanLocalized, `SELECT language, value FROM localized WHERE owner = ? ORDER BY position`, owner)
}

const authorColumns = `uuid, user_id, publisher, first_name, last_name, website_url, facebook_username, instagram_username, twitter_username, profile_image, payment_setup`

type scanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row scanner) (*Author, error) {
	a := &Author{}

	if err := row.Scan(&a.UUID, &a.User, &a.Publisher, &a.FirstName, &a.LastName, &a.WebsiteURL, &a.FacebookUsername, &a.InstagramUsername, &a.TwitterUsername, &a.ProfileImage, &a.PaymentSetup); err != nil {
		return nil, err
	}

	return a, nil
}

func scanAuthorRows(rows *sql.Rows) (*Author, error) {
	return scanAuthor(rows)
}

func (s *Store) Author(ctx context.Context, id string) (*Author, error) {
	a, err := scanAuthor(s.db.QueryRowContext(ctx, `SELECT `+authorColumns+` FROM authors WHERE uuid = ?`, id))
	if err != nil {
		return nil, notFound(err)
	}

	if a.Bios, err = s.Localized(ctx, a.UUID); err != nil {
		return nil, err
	}

	return a, nil
}

// AuthorFilter narrows an author listing.
type AuthorFilter struct {
	// Owner limits to authors owned by the user, directly or through
	// a publisher.
	Owner *int
	// Publisher limits to authors of a publisher.
	Publisher string
}

// ownedAuthorClause matches authors owned by a user, the author's uuid
// column is given by the caller.
func ownedAuthorClause(column string) string {
	return fmt.Sprintf(`(EXISTS (SELECT 1 FROM authors oa LEFT JOIN publishers op ON op.uuid = oa.publisher WHERE oa.uuid = %s AND (oa.user_id = ? OR op.user_id = ?)))`, column)
}

func (s *Store) Authors(ctx context.Context, filter AuthorFilter) ([]*Author, error) {
	var (
		where []string
		args  []any
	)

	if filter.Owner != nil {
		where = append(where, ownedAuthorClause("authors.uuid"))
		args = append(args, *filter.Owner, *filter.Owner)
	}

	if filter.Publisher != "" {
		where = append(where, `publisher = ?`)
		args = append(args, filter.Publisher)
	}

	query := `SELECT ` + authorColumns + ` FROM authors`

	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}

	authors, err := collect(ctx, s.db, scanAuthorRows, query+` ORDER BY position`, args...)
	if err != nil {
		return nil, err
	}

	for _, a := range authors {
		if a.Bios, err = s.Localized(ctx, a.UUID); err != nil {
			return nil, err
		}
	}

	return authors, nil
}

// OwnsAuthor returns true if the user owns the author directly or through
// its publisher.
func (s *Store) OwnsAuthor(ctx context.Context, user int, author string) (bool, error) {
	var n int

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM authors WHERE uuid = ? AND `+ownedAuthorClause("authors.uuid"), author, user, user).Scan(&n); err != nil {
		return false, err
	}

	return n > 0, nil
}

const publisherColumns = `uuid, user_id, name, description, website_url, facebook_username, instagram_username, twitter_username, logo`

func scanPublisher(row scanner) (*Publisher, error) {
	p := &Publisher{}

	if err := row.Scan(&p.UUID, &p.User, &p.Name, &p.Description, &p.WebsiteURL, &p.FacebookUsername, &p.InstagramUsername, &p.TwitterUsername, &p.Logo); err != nil {
		return nil, err
	}

	return p, nil
}

func scanPublisherRows(rows *sql.Rows) (*Publisher, error) {
	return scanPublisher(rows)
}

func (s *Store) publisherAuthors(ctx context.Context, p *Publisher) error {
	authors, err := collect(ctx, s.db, scanString, `SELECT uuid FROM authors WHERE publisher = ? ORDER BY position`, p.UUID)
	if err != nil {
		return err
	}

	p.Authors = authors

	return nil
}

func (s *Store) Publisher(ctx context.Context, id string) (*Publisher, error) {
	p, err := scanPublisher(s.db.QueryRowContext(ctx, `SELECT `+publisherColumns+` FROM publishers WHERE uuid = ?`, id))
	if err != nil {
		return nil, notFound(err)
	}

	if err := s.publisherAuthors(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Publishers lists publishers, optionally only those owned by a user.
func (s *Store) Publishers(ctx context.Context, owner *int) ([]*Publisher, error) {
	query := `SELECT ` + publisherColumns + ` FROM publishers`

	var args []any

	if owner != nil {
		query += ` WHERE user_id = ?`
		args = append(args, *owner)
	}

	publishers, err := collect(ctx, s.db, scanPublisherRows, query+` ORDER BY position`, args...)
	if err != nil {
		return nil, err
	}

	for _, p := range publishers {
		if err := s.publisherAuthors(ctx, p); err != nil {
			return nil, err
		}
	}

	return publishers, nil
}

func scanCategory(rows *sql.Rows) (*Category, error) {
	c := &Category{}

	if err := rows.Scan(&c.UUID, &c.Key); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Store) categoryNames(ctx context.Context, categories []*Category) error {
	for _, c := range categories {
		names, err := s.Localized(ctx, c.UUID)
		if err != nil {
			return err
		}

		c.Names = names
	}

	return nil
}

func (s *Store) Categories(ctx context.Context) ([]*Category, error) {
	categories, err := collect(ctx, s.db, scanCategory, `SELECT uuid, key FROM categories ORDER BY position`)
	if err != nil {
		return nil, err
	}

	if err := s.categoryNames(ctx, categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *Store) CategoryByKey(ctx context.Context, key string) (*Category, error) {
	c := &Category{}

	if err := s.db.QueryRowContext(ctx, `SELECT uuid, key FROM categories WHERE key = ?`, key).Scan(&c.UUID, &c.Key); err != nil {
		return nil, notFound(err)
	}

	if err := s.categoryNames(ctx, []*Category{c}); err != nil {
		return nil, err
	}

	return c, nil
}
