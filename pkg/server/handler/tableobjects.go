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

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/util"
	"github.com/storebook/api-tests/pkg/store"
)

// requireAdmin guards the table object service, which only the test
// harness talks to with the admin token.
func (h *Handler) requireAdmin(r *http.Request) error {
	u, err := h.authenticate(r, true)
	if err != nil {
		return err
	}

	if !u.IsAdmin() {
		return errors.ActionNotAllowed()
	}

	return nil
}

func convertTableObject(in *store.TableObject) *openapi.TableObject {
	properties := in.Properties
	if properties == nil {
		properties = map[string]any{}
	}

	return &openapi.TableObject{
		UUID:       in.UUID,
		TableID:    in.TableID,
		File:       in.File,
		Properties: properties,
	}
}

func (h *Handler) GetV1TableObjectsTableObjectID(w http.ResponseWriter, r *http.Request, tableObjectID openapi.TableObjectIDParameter) {
	if err := h.requireAdmin(r); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	o, err := h.store.TableObject(r.Context(), tableObjectID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorTableObjectDoesNotExist))
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, convertTableObject(o))
}

func (h *Handler) DeleteV1TableObjectsTableObjectID(w http.ResponseWriter, r *http.Request, tableObjectID openapi.TableObjectIDParameter) {
	if err := h.requireAdmin(r); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.store.DeleteTableObject(r.Context(), tableObjectID); err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorTableObjectDoesNotExist))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTableObjectFile serves file contents.  These are the public image URLs
// so no token is needed.
func (h *Handler) GetV1TableObjectsTableObjectIDFile(w http.ResponseWriter, r *http.Request, tableObjectID openapi.TableObjectIDParameter) {
	ctx := r.Context()

	if _, err := h.authenticate(r, false); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	o, err := h.store.TableObject(ctx, tableObjectID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorTableObjectDoesNotExist))
		return
	}

	data, err := h.store.TableObjectFile(ctx, tableObjectID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorTableObjectDoesNotExist))
		return
	}

	contentType, ok := o.Properties[openapi.PropertyType].(string)
	if !ok {
		contentType = "application/octet-stream"
	}

	util.WriteBinaryResponse(w, r, contentType, data)
}

// PutTableObjectFile replaces the file.  Any derived blurhash is stale
// afterwards, so it's dropped.
func (h *Handler) PutV1TableObjectsTableObjectIDFile(w http.ResponseWriter, r *http.Request, tableObjectID openapi.TableObjectIDParameter) {
	ctx := r.Context()

	if err := h.requireAdmin(r); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	data, err := util.ReadBody(w, r, h.options.MaxImageSize)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.store.SetTableObjectFile(ctx, tableObjectID, data); err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorTableObjectDoesNotExist))
		return
	}

	o, err := h.store.SetTableObjectProperties(ctx, tableObjectID, map[string]any{
		openapi.PropertyBlurhash: nil,
	})
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorTableObjectDoesNotExist))
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, convertTableObject(o))
}

func (h *Handler) PutV1TableObjectsTableObjectIDProperties(w http.ResponseWriter, r *http.Request, tableObjectID openapi.TableObjectIDParameter) {
	if err := h.requireAdmin(r); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.TableObjectPropertiesRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	o, err := h.store.SetTableObjectProperties(r.Context(), tableObjectID, request.Properties)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorTableObjectDoesNotExist))
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, convertTableObject(o))
}

func (h *Handler) GetV1PurchasesPurchaseID(w http.ResponseWriter, r *http.Request, purchaseID openapi.PurchaseIDParameter) {
	if err := h.requireAdmin(r); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	purchase, err := h.store.Purchase(r.Context(), purchaseID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorPurchaseDoesNotExist))
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, convertPurchase(purchase))
}

func (h *Handler) DeleteV1PurchasesPurchaseID(w http.ResponseWriter, r *http.Request, purchaseID openapi.PurchaseIDParameter) {
	if err := h.requireAdmin(r); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.store.DeletePurchase(r.Context(), purchaseID); err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorPurchaseDoesNotExist))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
