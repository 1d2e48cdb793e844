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

	"github.com/storebook/api-tests/pkg/openapi"
)

type Series struct {
	UUID        string
	Author      string
	Names       []Localized
	Collections []string
}

func scanSeries(rows *sql.Rows) (*Series, error) {
	sr := &Series{}

	if err := rows.Scan(&sr.UUID, &sr.Author); err != nil {
		return nil, err
	}

	return sr, nil
}

func (s *Store) seriesDetails(ctx context.Context, series []*Series) error {
	for _, sr := range series {
		names, err := s.Localized(ctx, sr.UUID)
		if err != nil {
			return err
		}

		collections, err := collect(ctx, s.db, scanString, `SELECT collection FROM series_collections WHERE series = ? ORDER BY position`, sr.UUID)
		if err != nil {
			return err
		}

		sr.Names = names
		sr.Collections = collections
	}

	return nil
}

func (s *Store) Series(ctx context.Context, id string) (*Series, error) {
	sr := &Series{}

	if err := s.db.QueryRowContext(ctx, `SELECT uuid, author FROM series WHERE uuid = ?`, id).Scan(&sr.UUID, &sr.Author); err != nil {
		return nil, notFound(err)
	}

	if err := s.seriesDetails(ctx, []*Series{sr}); err != nil {
		return nil, err
	}

	return sr, nil
}

// SeriesList lists every series in insertion order, optionally only those
// of one author.
func (s *Store) SeriesList(ctx context.Context, author string) ([]*Series, error) {
	query := `SELECT uuid, author FROM series`

	var args []any

	if author != "" {
		query += ` WHERE author = ?`
		args = append(args, author)
	}

	series, err := collect(ctx, s.db, scanSeries, query+` ORDER BY position`, args...)
	if err != nil {
		return nil, err
	}

	if err := s.seriesDetails(ctx, series); err != nil {
		return nil, err
	}

	return series, nil
}

// CreateSeries appends a series.  Series are table objects too, so the
// table object service can delete them.
func (s *Store) CreateSeries(ctx context.Context, sr *Series) error {
	return s.inTransaction(ctx, func(tx *sql.Tx) error {
		var position int

		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM series`).Scan(&position); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO series VALUES (?, ?, ?)`, sr.UUID, position, sr.Author); err != nil {
			return fmt.Errorf("inserting series: %w", err)
		}

		for i, n := range sr.Names {
			if _, err := tx.ExecContext(ctx, `INSERT INTO localized VALUES (?, ?, ?, ?)`, sr.UUID, i, n.Language, n.Value); err != nil {
				return fmt.Errorf("inserting series name: %w", err)
			}
		}

		for i, c := range sr.Collections {
			if _, err := tx.ExecContext(ctx, `INSERT INTO series_collections VALUES (?, ?, ?)`, sr.UUID, c, i); err != nil {
				return fmt.Errorf("inserting series collection: %w", err)
			}
		}

		return insertTableObject(ctx, tx, sr.UUID, openapi.TableSeries, nil, map[string]any{})
	})
}
