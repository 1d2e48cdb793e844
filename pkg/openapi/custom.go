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

package openapi

import (
	"errors"
	"slices"
	"strings"
)

var ErrUnsupportedLanguage = errors.New("unsupported language: must be one of en, de, fr")

// DefaultLanguage is used when a request names no language, and as the
// fallback for localized values.
const DefaultLanguage = "en"

// SupportedLanguages are the language tags the API accepts.
//
//nolint:gochecknoglobals
var SupportedLanguages = []string{"en", "de", "fr"}

// Language is a validated language tag.
type Language struct {
	Value string
}

func (l *Language) UnmarshalText(text []byte) error {
	if !slices.Contains(SupportedLanguages, string(text)) {
		return ErrUnsupportedLanguage
	}

	*l = Language{
		Value: string(text),
	}

	return nil
}

// ParseLanguages splits a comma separated languages parameter, defaulting
// to English when it's empty.
func ParseLanguages(s string) ([]string, error) {
	if s == "" {
		return []string{DefaultLanguage}, nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		var l Language

		if err := l.UnmarshalText([]byte(strings.TrimSpace(part))); err != nil {
			return nil, err
		}

		out = append(out, l.Value)
	}

	return out, nil
}

// Currency is the only currency purchases can be made in.
const Currency = "eur"

// ContentTypeJSON and friends are the request content types the API knows.
const (
	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
)

// PurchaseRequest is the body of a purchase request.
type PurchaseRequest struct {
	Currency string `json:"currency"`
}

// SeriesRequest is the body of a series creation request.  Fields are
// validated individually, so clients may send anything, including values
// of the wrong type.
type SeriesRequest struct {
	Author      any `json:"author,omitempty"`
	Name        any `json:"name,omitempty"`
	Language    any `json:"language,omitempty"`
	Collections any `json:"collections,omitempty"`
}

// Well known table object properties.
const (
	PropertyBlurhash = "blurhash"
	PropertyType     = "type"
	PropertyExt      = "ext"
)

// Well known tables.
const (
	TableImages = "images"
	TableSeries = "store_book_series"
)

// TableObjectFileURL returns the public URL of a table object's file.
func TableObjectFileURL(id string) string {
	return "/v1/table_objects/" + id + "/file"
}
