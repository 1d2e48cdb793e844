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
	"slices"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
)

// New opens a database and loads the dataset into it.
func New(ctx context.Context, data *fixtures.Dataset) (*Store, error) {
	s, err := Open(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.Load(ctx, data); err != nil {
		_ = s.Close()

		return nil, err
	}

	return s, nil
}

// Load inserts the dataset in a single transaction.  Slice order becomes the
// position column, which defines insertion order for every list.
//
//nolint:cyclop,gocognit
func (s *Store) Load(ctx context.Context, data *fixtures.Dataset) error {
	return s.inTransaction(ctx, func(tx *sql.Tx) error {
		for _, u := range data.Users {
			if _, err := tx.ExecContext(ctx, `INSERT INTO users (id, token, app, role) VALUES (?, ?, ?, ?)`, u.ID, u.Token, u.App, string(u.Role)); err != nil {
				return fmt.Errorf("inserting user %d: %w", u.ID, err)
			}
		}

		for i, p := range data.Publishers {
			if err := insertImage(ctx, tx, p.Logo); err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, `INSERT INTO publishers VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.UUID, i, p.User, p.Name, p.Description, p.WebsiteURL, p.FacebookUsername, p.InstagramUsername, p.TwitterUsername, imageID(p.Logo)); err != nil {
				return fmt.Errorf("inserting publisher %s: %w", p.UUID, err)
			}
		}

		for i, a := range data.Authors {
			if err := insertImage(ctx, tx, a.ProfileImage); err != nil {
				return err
			}

			var user *int

			if a.User != 0 {
				user = &a.User
			}

			if _, err := tx.ExecContext(ctx, `INSERT INTO authors VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				a.UUID, i, user, a.Publisher, a.FirstName, a.LastName, a.WebsiteURL, a.FacebookUsername, a.InstagramUsername, a.TwitterUsername, imageID(a.ProfileImage), a.PaymentSetup); err != nil {
				return fmt.Errorf("inserting author %s: %w", a.UUID, err)
			}

			if err := insertLocalized(ctx, tx, a.UUID, a.Bios); err != nil {
				return err
			}
		}

		for i, c := range data.Categories {
			if _, err := tx.ExecContext(ctx, `INSERT INTO categories VALUES (?, ?, ?)`, c.UUID, i, c.Key); err != nil {
				return fmt.Errorf("inserting category %s: %w", c.Key, err)
			}

			if err := insertLocalized(ctx, tx, c.UUID, c.Names); err != nil {
				return err
			}
		}

		for i, c := range data.Collections {
			if _, err := tx.ExecContext(ctx, `INSERT INTO collections VALUES (?, ?, ?)`, c.UUID, i, c.Author); err != nil {
				return fmt.Errorf("inserting collection %s: %w", c.UUID, err)
			}

			if err := insertLocalized(ctx, tx, c.UUID, c.Names); err != nil {
				return err
			}
		}

		for i := range data.StoreBooks {
			if err := insertStoreBook(ctx, tx, i, &data.StoreBooks[i]); err != nil {
				return err
			}
		}

		for i := range data.Series {
			if err := insertSeries(ctx, tx, i, &data.Series[i]); err != nil {
				return err
			}
		}

		for _, u := range data.Users {
			for i, b := range u.Library {
				if _, err := tx.ExecContext(ctx, `INSERT INTO library VALUES (?, ?, ?)`, u.ID, b, i); err != nil {
					return fmt.Errorf("inserting library entry: %w", err)
				}
			}
		}

		// A completed fixture purchase accounts for the library entry of
		// its book.
		for i, p := range data.Purchases {
			granted := p.Completed && slices.Contains(data.User(p.User).Library, p.StoreBook)

			if _, err := tx.ExecContext(ctx, `INSERT INTO purchases VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.UUID, i, p.User, p.StoreBook, p.Price, p.Currency, p.Completed, p.PaymentIntentID, granted); err != nil {
				return fmt.Errorf("inserting purchase %s: %w", p.UUID, err)
			}
		}

		return nil
	})
}

func imageID(i *fixtures.Image) *string {
	if i == nil {
		return nil
	}

	return &i.UUID
}

func insertImage(ctx context.Context, q queryer, i *fixtures.Image) error {
	if i == nil {
		return nil
	}

	data, err := fixtures.RenderImage(i.Color)
	if err != nil {
		return err
	}

	properties := map[string]any{
		openapi.PropertyType: openapi.ContentTypePNG,
		openapi.PropertyExt:  "png",
	}

	if i.Blurhash != nil {
		properties[openapi.PropertyBlurhash] = *i.Blurhash
	}

	return insertTableObject(ctx, q, i.UUID, openapi.TableImages, data, properties)
}

func insertLocalized(ctx context.Context, q queryer, owner string, values []fixtures.Localized) error {
	for i, v := range values {
		if _, err := q.ExecContext(ctx, `INSERT INTO localized VALUES (?, ?, ?, ?)`, owner, i, v.Language, v.Value); err != nil {
			return fmt.Errorf("inserting localized value of %s: %w", owner, err)
		}
	}

	return nil
}

func insertStoreBook(ctx context.Context, q queryer, position int, b *fixtures.StoreBook) error {
	if _, err := q.ExecContext(ctx, `INSERT INTO store_books VALUES (?, ?, ?, ?, ?)`, b.UUID, position, b.Collection, b.Language, string(b.Status)); err != nil {
		return fmt.Errorf("inserting store book %s: %w", b.UUID, err)
	}

	for i, r := range b.Releases {
		if err := insertImage(ctx, q, r.Cover); err != nil {
			return err
		}

		var fileID, fileName *string

		if r.File != nil {
			fileID, fileName = &r.File.UUID, &r.File.FileName

			properties := map[string]any{
				"file_name":         r.File.FileName,
				openapi.PropertyExt: "epub",
			}

			if err := insertTableObject(ctx, q, r.File.UUID, "files", []byte(r.File.FileName), properties); err != nil {
				return err
			}
		}

		if _, err := q.ExecContext(ctx, `INSERT INTO releases VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.UUID, b.UUID, i, r.Title, r.Description, r.Price, r.ISBN, imageID(r.Cover), fileID, fileName, r.ReleaseName, r.ReleaseNotes, string(r.Status)); err != nil {
			return fmt.Errorf("inserting release %s: %w", r.UUID, err)
		}

		for j, c := range r.Categories {
			if _, err := q.ExecContext(ctx, `INSERT INTO release_categories VALUES (?, ?, ?)`, r.UUID, c, j); err != nil {
				return fmt.Errorf("inserting release category: %w", err)
			}
		}
	}

	return nil
}

func insertSeries(ctx context.Context, q queryer, position int, sr *fixtures.Series) error {
	if _, err := q.ExecContext(ctx, `INSERT INTO series VALUES (?, ?, ?)`, sr.UUID, position, sr.Author); err != nil {
		return fmt.Errorf("inserting series %s: %w", sr.UUID, err)
	}

	if err := insertLocalized(ctx, q, sr.UUID, sr.Names); err != nil {
		return err
	}

	for i, c := range sr.Collections {
		if _, err := q.ExecContext(ctx, `INSERT INTO series_collections VALUES (?, ?, ?)`, sr.UUID, c, i); err != nil {
			return fmt.Errorf("inserting series collection: %w", err)
		}
	}

	return insertTableObject(ctx, q, sr.UUID, openapi.TableSeries, nil, map[string]any{})
}
