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
)

type Purchase struct {
	UUID            string
	User            int
	StoreBook       string
	Price           int
	Currency        string
	Completed       bool
	PaymentIntentID *string
}

// CreatePurchase records a purchase, completed purchases put the book into
// the buyer's library.  The purchase remembers whether it added the library
// entry, a book that was already there stays when the purchase goes.
func (s *Store) CreatePurchase(ctx context.Context, p *Purchase) error {
	return s.inTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO purchases VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM purchases), ?, ?, ?, ?, ?, ?, 0)`,
			p.UUID, p.User, p.StoreBook, p.Price, p.Currency, p.Completed, p.PaymentIntentID); err != nil {
			return fmt.Errorf("inserting purchase: %w", err)
		}

		if !p.Completed {
			return nil
		}

		result, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO library VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM library WHERE user_id = ?))`, p.User, p.StoreBook, p.User)
		if err != nil {
			return fmt.Errorf("adding to library: %w", err)
		}

		added, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("adding to library: %w", err)
		}

		if added == 0 {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `UPDATE purchases SET granted = 1 WHERE uuid = ?`, p.UUID); err != nil {
			return fmt.Errorf("marking library grant: %w", err)
		}

		return nil
	})
}

func (s *Store) Purchase(ctx context.Context, id string) (*Purchase, error) {
	p := &Purchase{}

	if err := s.db.QueryRowContext(ctx, `SELECT uuid, user_id, store_book, price, currency, completed, payment_intent_id FROM purchases WHERE uuid = ?`, id).
		Scan(&p.UUID, &p.User, &p.StoreBook, &p.Price, &p.Currency, &p.Completed, &p.PaymentIntentID); err != nil {
		return nil, notFound(err)
	}

	return p, nil
}

// DeletePurchase removes a purchase, and the library entry it created, if
// any.
func (s *Store) DeletePurchase(ctx context.Context, id string) error {
	p, err := s.Purchase(ctx, id)
	if err != nil {
		return err
	}

	var granted bool

	if err := s.db.QueryRowContext(ctx, `SELECT granted FROM purchases WHERE uuid = ?`, id).Scan(&granted); err != nil {
		return notFound(err)
	}

	return s.inTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM purchases WHERE uuid = ?`, id); err != nil {
			return err
		}

		if !granted {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM library WHERE user_id = ? AND store_book = ?`, p.User, p.StoreBook); err != nil {
			return err
		}

		return nil
	})
}
