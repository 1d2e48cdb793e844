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
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/storebook/api-tests/pkg/openapi"
)

// TableObject is a generic stored object with an optional file and a bag of
// properties.  Images and series are table objects.
type TableObject struct {
	UUID       string
	TableID    string
	File       bool
	Properties map[string]any
}

func insertTableObject(ctx context.Context, q queryer, id, table string, data []byte, properties map[string]any) error {
	encoded, err := json.Marshal(properties)
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, `INSERT INTO table_objects VALUES (?, ?, ?, ?)`, id, table, data, string(encoded)); err != nil {
		return fmt.Errorf("inserting table object %s: %w", id, err)
	}

	return nil
}

func tableObject(ctx context.Context, q queryer, id string) (*TableObject, error) {
	o := &TableObject{}

	var properties string

	if err := q.QueryRowContext(ctx, `SELECT uuid, table_id, data IS NOT NULL, properties FROM table_objects WHERE uuid = ?`, id).Scan(&o.UUID, &o.TableID, &o.File, &properties); err != nil {
		return nil, notFound(err)
	}

	if err := json.Unmarshal([]byte(properties), &o.Properties); err != nil {
		return nil, fmt.Errorf("%w: properties of %s: %w", ErrInvalidData, id, err)
	}

	return o, nil
}

func (s *Store) TableObject(ctx context.Context, id string) (*TableObject, error) {
	return tableObject(ctx, s.db, id)
}

// TableObjectFile returns the file of a table object, ErrNotFound when
// there is no object or it has no file.
func (s *Store) TableObjectFile(ctx context.Context, id string) ([]byte, error) {
	var data []byte

	if err := s.db.QueryRowContext(ctx, `SELECT data FROM table_objects WHERE uuid = ? AND data IS NOT NULL`, id).Scan(&data); err != nil {
		return nil, notFound(err)
	}

	return data, nil
}

func (s *Store) SetTableObjectFile(ctx context.Context, id string, data []byte) error {
	result, err := s.db.ExecContext(ctx, `UPDATE table_objects SET data = ? WHERE uuid = ?`, data, id)
	if err != nil {
		return err
	}

	return affected(result)
}

func affected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// SetTableObjectProperties merges properties into the object, a nil value
// removes the property.
func (s *Store) SetTableObjectProperties(ctx context.Context, id string, properties map[string]any) (*TableObject, error) {
	var out *TableObject

	err := s.inTransaction(ctx, func(tx *sql.Tx) error {
		o, err := tableObject(ctx, tx, id)
		if err != nil {
			return err
		}

		if o.Properties == nil {
			o.Properties = map[string]any{}
		}

		for k, v := range properties {
			if v == nil {
				delete(o.Properties, k)
				continue
			}

			o.Properties[k] = v
		}

		encoded, err := json.Marshal(o.Properties)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `UPDATE table_objects SET properties = ? WHERE uuid = ?`, string(encoded), id); err != nil {
			return err
		}

		out = o

		return nil
	})

	return out, err
}

// DeleteTableObject removes an object and every reference to it.  Deleting a
// series object deletes the series.
func (s *Store) DeleteTableObject(ctx context.Context, id string) error {
	return s.inTransaction(ctx, func(tx *sql.Tx) error {
		o, err := tableObject(ctx, tx, id)
		if err != nil {
			return err
		}

		statements := []string{
			`UPDATE authors SET profile_image = NULL WHERE profile_image = ?`,
			`UPDATE publishers SET logo = NULL WHERE logo = ?`,
			`UPDATE releases SET cover = NULL WHERE cover = ?`,
		}

		if o.TableID == openapi.TableSeries {
			statements = append(statements,
				`DELETE FROM series_collections WHERE series = ?`,
				`DELETE FROM localized WHERE owner = ?`,
				`DELETE FROM series WHERE uuid = ?`,
			)
		}

		statements = append(statements, `DELETE FROM table_objects WHERE uuid = ?`)

		for _, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement, id); err != nil {
				return err
			}
		}

		return nil
	})
}

// SetAuthorProfileImage stores the image of an author.  The image object is
// created on first upload and reused afterwards, so its uuid is stable.  The
// blurhash is cleared and recomputed when next read.
func (s *Store) SetAuthorProfileImage(ctx context.Context, author string, data []byte, contentType, ext string) (string, error) {
	var id string

	err := s.inTransaction(ctx, func(tx *sql.Tx) error {
		var current *string

		if err := tx.QueryRowContext(ctx, `SELECT profile_image FROM authors WHERE uuid = ?`, author).Scan(&current); err != nil {
			return notFound(err)
		}

		properties := map[string]any{
			openapi.PropertyType: contentType,
			openapi.PropertyExt:  ext,
		}

		if current != nil {
			id = *current

			encoded, err := json.Marshal(properties)
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, `UPDATE table_objects SET data = ?, properties = ? WHERE uuid = ?`, data, string(encoded), id)

			return err
		}

		id = uuid.New().String()

		if err := insertTableObject(ctx, tx, id, openapi.TableImages, data, properties); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `UPDATE authors SET profile_image = ? WHERE uuid = ?`, id, author)

		return err
	})

	return id, err
}
