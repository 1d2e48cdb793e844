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
	"bytes"
	"context"
	goerrors "errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/buckket/go-blurhash"
	"github.com/go-logr/logr"

	"k8s.io/utils/ptr"

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/server/util"
	"github.com/storebook/api-tests/pkg/store"
)

// imageItem renders an image reference with whatever blurhash is stored.
func (h *Handler) imageItem(ctx context.Context, id *string) (any, error) {
	if id == nil {
		return nil, nil
	}

	o, err := h.store.TableObject(ctx, *id)
	if err != nil {
		if goerrors.Is(err, store.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return newImageItem(o), nil
}

func newImageItem(o *store.TableObject) *openapi.ImageItem {
	item := &openapi.ImageItem{
		UUID: o.UUID,
		URL:  openapi.TableObjectFileURL(o.UUID),
	}

	if hash, ok := o.Properties[openapi.PropertyBlurhash].(string); ok {
		item.Blurhash = ptr.To(hash)
	}

	return item
}

// computeBlurhash fills in a missing blurhash from the image data.  An image
// that can't be decoded keeps a null blurhash.
func (h *Handler) computeBlurhash(ctx context.Context, id string) (*store.TableObject, error) {
	o, err := h.store.TableObject(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, ok := o.Properties[openapi.PropertyBlurhash].(string); ok {
		return o, nil
	}

	data, err := h.store.TableObjectFile(ctx, id)
	if err != nil {
		if goerrors.Is(err, store.ErrNotFound) {
			return o, nil
		}

		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logr.FromContextOrDiscard(ctx).Info("unable to decode image for blurhash", "uuid", id, "error", err.Error())

		return o, nil
	}

	hash, err := blurhash.Encode(h.options.BlurhashXComponents, h.options.BlurhashYComponents, img)
	if err != nil {
		return nil, err
	}

	return h.store.SetTableObjectProperties(ctx, id, map[string]any{
		openapi.PropertyBlurhash: hash,
	})
}

func (h *Handler) GetAuthorsAuthorIDProfileImage(w http.ResponseWriter, r *http.Request, authorID openapi.AuthorIDParameter) {
	ctx := r.Context()

	if _, err := h.authenticate(r, false); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	author, err := h.store.Author(ctx, authorID)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorAuthorDoesNotExist))
		return
	}

	if author.ProfileImage == nil {
		errors.HandleError(w, r, errors.New(openapi.ErrorProfileImageDoesNotExist))
		return
	}

	o, err := h.computeBlurhash(ctx, *author.ProfileImage)
	if err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorProfileImageDoesNotExist))
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, newImageItem(o))
}

// decodeImage checks the body really is an image of the declared type.
func decodeImage(contentType string, data []byte) (string, error) {
	var err error

	switch contentType {
	case openapi.ContentTypePNG:
		_, err = png.Decode(bytes.NewReader(data))

		return "png", err
	case openapi.ContentTypeJPEG:
		_, err = jpeg.Decode(bytes.NewReader(data))

		return "jpg", err
	}

	return "", errors.New(openapi.ErrorContentTypeNotSupported)
}

func (h *Handler) PutAuthorsAuthorIDProfileImage(w http.ResponseWriter, r *http.Request, authorID openapi.AuthorIDParameter) {
	ctx := r.Context()

	u, err := h.authenticate(r, true)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := util.RequireContentType(r, openapi.ContentTypePNG, openapi.ContentTypeJPEG); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if _, err := h.store.Author(ctx, authorID); err != nil {
		errors.HandleError(w, r, notFound(err, openapi.ErrorAuthorDoesNotExist))
		return
	}

	ok, err := h.canManage(r, u, authorID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if !ok {
		errors.HandleError(w, r, errors.ActionNotAllowed())
		return
	}

	data, err := util.ReadBody(w, r, h.options.MaxImageSize)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	contentType := util.ContentType(r)

	ext, err := decodeImage(contentType, data)
	if err != nil {
		errors.HandleError(w, r, errors.New(openapi.ErrorImageDataInvalid).WithError(err))
		return
	}

	id, err := h.store.SetAuthorProfileImage(ctx, authorID, data, contentType, ext)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, &openapi.ImageItem{
		UUID: id,
		URL:  openapi.TableObjectFileURL(id),
	})
}
