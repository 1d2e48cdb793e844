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

package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"k8s.io/utils/ptr"

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/util"
	"github.com/storebook/api-tests/pkg/store"
)

func convertPurchase(in *store.Purchase) *openapi.Purchase {
	return &openapi.Purchase{
		UUID:            in.UUID,
		User:            in.User,
		StoreBook:       in.StoreBook,
		Price:           in.Price,
		Currency:        in.Currency,
		Completed:       in.Completed,
		PaymentIntentID: in.PaymentIntentID,
	}
}

// validateCurrency checks the purchase body.
func validateCurrency(body map[string]any) error {
	raw, ok := body["currency"]
	if !ok || raw == nil {
		return errors.New(openapi.ErrorCurrencyMissing)
	}

	currency, ok := raw.(string)
	if !ok {
		return errors.New(openapi.ErrorCurrencyWrongType)
	}

	if currency != openapi.Currency {
		return errors.New(openapi.ErrorCurrencyNotSupported)
	}

	return nil
}

func (h *Handler) paymentIntentID() *string {
	return ptr.To(h.options.PaymentIntentPrefix + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// newPurchase decides how a purchase is made.  Owners get their own books
// for free, free books complete immediately and everything else waits for a
// payment.
func (h *Handler) newPurchase(u *store.User, b *store.StoreBook) (*store.Purchase, error) {
	purchase := &store.Purchase{
		UUID:      uuid.NewString(),
		User:      u.ID,
		StoreBook: b.UUID,
		Currency:  openapi.Currency,
	}

	if b.Owner(u.ID) {
		purchase.Completed = true

		return purchase, nil
	}

	if b.Release.Price == nil {
		return nil, errors.New(openapi.ErrorPriceDoesNotExist)
	}

	if *b.Release.Price == 0 {
		purchase.Completed = true

		return purchase, nil
	}

	if !b.PaymentSetup {
		return nil, errors.New(openapi.ErrorSellerPaymentSetupMissing)
	}

	purchase.Price = *b.Release.Price
	purchase.PaymentIntentID = h.paymentIntentID()

	return purchase, nil
}

func (h *Handler) PostStoreBooksStoreBookIDPurchase(w http.ResponseWriter, r *http.Request, storeBookID openapi.StoreBookIDParameter) {
	ctx := r.Context()

	u, err := h.authenticate(r, true)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	var body map[string]any

	if err := util.ReadJSONBody(r, &body); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := validateCurrency(body); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	b, err := h.store.StoreBook(ctx, storeBookID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorStoreBookDoesNotExist))
		return
	}

	if !isPublished(b) {
		errors.HandleError(w, r, errors.New(openapi.ErrorStoreBookNotPublished))
		return
	}

	purchased, err := h.store.Purchased(ctx, u.ID, b.UUID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if purchased {
		errors.HandleError(w, r, errors.New(openapi.ErrorStoreBookAlreadyPurchased))
		return
	}

	purchase, err := h.newPurchase(u, b)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.store.CreatePurchase(ctx, purchase); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, convertPurchase(purchase))
}
