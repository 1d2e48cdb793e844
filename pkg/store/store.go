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

// Package store is the SQLite backed storage of the reference API.  It
// filters with SQL rather than walking the fixtures, so it's a genuinely
// independent implementation the oracle can be checked against.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a row doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidData is returned when stored or supplied data is malformed.
	ErrInvalidData = errors.New("invalid data")
)

const schema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY,
	token TEXT NOT NULL UNIQUE,
	app INTEGER NOT NULL,
	role TEXT NOT NULL
);
CREATE TABLE library (
	user_id INTEGER NOT NULL REFERENCES users(id),
	store_book TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (user_id, store_book)
);
CREATE TABLE localized (
	owner TEXT NOT NULL,
	position INTEGER NOT NULL,
	language TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (owner, position)
);
CREATE TABLE publishers (
	uuid TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	website_url TEXT,
	facebook_username TEXT,
	instagram_username TEXT,
	twitter_username TEXT,
	logo TEXT
);
CREATE TABLE authors (
	uuid TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	user_id INTEGER REFERENCES users(id),
	publisher TEXT REFERENCES publishers(uuid),
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	website_url TEXT,
	facebook_username TEXT,
	instagram_username TEXT,
	twitter_username TEXT,
	profile_image TEXT,
	payment_setup INTEGER NOT NULL
);
CREATE TABLE categories (
	uuid TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	key TEXT NOT NULL UNIQUE
);
CREATE TABLE collections (
	uuid TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	author TEXT NOT NULL REFERENCES authors(uuid)
);
CREATE TABLE store_books (
	uuid TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	collection TEXT NOT NULL REFERENCES collections(uuid),
	language TEXT NOT NULL,
	status TEXT NOT NULL
);
CREATE TABLE releases (
	uuid TEXT PRIMARY KEY,
	store_book TEXT NOT NULL REFERENCES store_books(uuid),
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	price INTEGER,
	isbn TEXT,
	cover TEXT,
	file TEXT,
	file_name TEXT,
	release_name TEXT NOT NULL,
	release_notes TEXT,
	status TEXT NOT NULL
);
CREATE TABLE release_categories (
	release TEXT NOT NULL REFERENCES releases(uuid),
	category TEXT NOT NULL REFERENCES categories(uuid),
	position INTEGER NOT NULL,
	PRIMARY KEY (release, category)
);
CREATE TABLE series (
	uuid TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	author TEXT NOT NULL REFERENCES authors(uuid)
);
CREATE TABLE series_collections (
	series TEXT NOT NULL REFERENCES series(uuid),
	collection TEXT NOT NULL REFERENCES collections(uuid),
	position INTEGER NOT NULL,
	PRIMARY KEY (series, position)
);
CREATE TABLE purchases (
	uuid TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	store_book TEXT NOT NULL,
	price INTEGER NOT NULL,
	currency TEXT NOT NULL,
	completed INTEGER NOT NULL,
	payment_intent_id TEXT,
	granted INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE table_objects (
	uuid TEXT PRIMARY KEY,
	table_id TEXT NOT NULL,
	data BLOB,
	properties TEXT NOT NULL
);
`

// Store provides access to the reference database.
type Store struct {
	db *sql.DB
}

// Open creates a new in-memory database with the schema applied.  The
// database lives as long as its single connection, so the pool is limited
// to one connection that's never recycled.  Callers must read result sets
// to completion before issuing another query.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// inTransaction runs the callback in a transaction, committing if it
// succeeds and rolling back otherwise.
func (s *Store) inTransaction(ctx context.Context, callback func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := callback(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// queryer is satisfied by both the database and transactions.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// collect reads every row with the scanner, closing the result set before
// returning so the connection is free again.
func collect[T any](ctx context.Context, q queryer, scan func(*sql.Rows) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []T

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func scanString(rows *sql.Rows) (string, error) {
	var s string

	if err := rows.Scan(&s); err != nil {
		return "", err
	}

	return s, nil
}

// notFound maps a missing row to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return err
}
