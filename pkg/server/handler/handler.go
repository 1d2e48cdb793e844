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

//nolint:revive
package handler

import (
	goerrors "errors"
	"net/http"
	"strings"

	"github.com/spf13/pflag"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/store"
)

type Options struct {
	// BlurhashXComponents and BlurhashYComponents control blurhash detail.
	BlurhashXComponents int
	BlurhashYComponents int

	// MaxImageSize limits uploaded image bodies.
	MaxImageSize int64

	// PaymentIntentPrefix prefixes generated payment intent ids.
	PaymentIntentPrefix string
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.IntVar(&o.BlurhashXComponents, "blurhash-x-components", 4, "Horizontal blurhash components computed for images")
	f.IntVar(&o.BlurhashYComponents, "blurhash-y-components", 3, "Vertical blurhash components computed for images")
	f.Int64Var(&o.MaxImageSize, "max-image-size", 4<<20, "Maximum size of uploaded images in bytes")
	f.StringVar(&o.PaymentIntentPrefix, "payment-intent-prefix", "pi_", "Prefix of generated payment intent IDs")
}

// DefaultOptions returns the options AddFlags defaults to.
func DefaultOptions() *Options {
	o := &Options{}

	o.AddFlags(pflag.NewFlagSet("", pflag.ContinueOnError))

	return o
}

type Handler struct {
	// store holds the catalogue.
	store *store.Store

	// options allows behaviour to be defined on the CLI.
	options *Options
}

func New(store *store.Store, options *Options) (*Handler, error) {
	h := &Handler{
		store:   store,
		options: options,
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// authenticate resolves the session token in the Authorization header.
// A token that is sent is always checked, even where it's optional.
func (h *Handler) authenticate(r *http.Request, required bool) (*store.User, error) {
	token := strings.TrimSpace(r.Header.Get("Authorization"))

	if token == "" {
		if required {
			return nil, errors.New(openapi.ErrorAuthenticationHeaderMissing)
		}

		return nil, nil
	}

	u, err := h.store.UserByToken(r.Context(), token)
	if err != nil {
		if goerrors.Is(err, store.ErrNotFound) {
			return nil, errors.New(openapi.ErrorSessionDoesNotExist)
		}

		return nil, err
	}

	if u.App != fixtures.StoreApp {
		return nil, errors.New(openapi.ErrorTokenOfOtherApp)
	}

	return u, nil
}

// notFound maps a missing row to the given error code.
func notFound(err error, code openapi.ErrorCode) error {
	if goerrors.Is(err, store.ErrNotFound) {
		return errors.New(code)
	}

	return err
}

// canManage returns true if the user may see everything of the author.
func (h *Handler) canManage(r *http.Request, u *store.User, author string) (bool, error) {
	if u == nil {
		return false, nil
	}

	if u.IsAdmin() {
		return true, nil
	}

	return h.store.OwnsAuthor(r.Context(), u.ID, author)
}
