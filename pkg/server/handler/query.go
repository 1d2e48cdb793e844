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
	"slices"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/server/errors"
	"github.com/storebook/api-tests/pkg/store"
)

const defaultLimit = 10

// queryParams are the query parameters understood by read endpoints,
// copied from the operation's generated parameters.  They're all strings
// and validated by the handlers, so invalid values get API error codes
// rather than a generic binding failure.
type queryParams struct {
	Fields     *string
	Languages  *string
	Mine       *string
	Latest     *string
	Review     *string
	Author     *string
	Publisher  *string
	Collection *string
	Series     *string
	Categories *string
	Limit      *string
	Page       *string
}

func value(s *string) string {
	return ptr.Deref(s, "")
}

func enabled(s *string) bool {
	return value(s) == "true"
}

func (p *queryParams) languages() ([]string, error) {
	languages, err := openapi.ParseLanguages(value(p.Languages))
	if err != nil {
		return nil, errors.New(openapi.ErrorLanguageNotSupported).WithError(err)
	}

	return languages, nil
}

// listQuery is the validated language and paging part of a list request.
type listQuery struct {
	languages []string
	limit     int
	page      int
}

func positiveInt(s *string, def int) (int, bool) {
	if s == nil || *s == "" {
		return def, true
	}

	n, err := strconv.Atoi(*s)
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}

// list validates the list parameters, every problem is reported at once.
func (p *queryParams) list() (*listQuery, error) {
	var codes []openapi.ErrorCode

	languages, err := openapi.ParseLanguages(value(p.Languages))
	if err != nil {
		codes = append(codes, openapi.ErrorLanguageNotSupported)
	}

	limit, ok := positiveInt(p.Limit, defaultLimit)
	if !ok {
		codes = append(codes, openapi.ErrorLimitInvalid)
	}

	page, ok := positiveInt(p.Page, 1)
	if !ok {
		codes = append(codes, openapi.ErrorPageInvalid)
	}

	if len(codes) > 0 {
		return nil, errors.New(codes...)
	}

	return &listQuery{
		languages: languages,
		limit:     limit,
		page:      page,
	}, nil
}

// pageOf slices out the requested page, reversing for latest first order.
func pageOf[T any](items []T, latest bool, q *listQuery) ([]T, int) {
	if latest {
		items = slices.Clone(items)
		slices.Reverse(items)
	}

	pages := len(items) / q.limit
	if len(items)%q.limit != 0 {
		pages++
	}

	if q.page > pages {
		return nil, pages
	}

	offset := (q.page - 1) * q.limit

	return items[offset : offset+min(q.limit, len(items)-offset)], pages
}

// pageResponse is the envelope of paginated lists.
type pageResponse struct {
	Pages int              `json:"pages"`
	Items []map[string]any `json:"items"`
}

// field renders one key of a resource.  Values are computed lazily so that
// expensive ones, e.g. library lookups, are only done when requested.
type field[T any] struct {
	name  string
	value func(T) (any, error)
}

type fields[T any] []field[T]

// selection parses the fields parameter: uuid by default, every field for
// "*", otherwise the named fields that exist.
func (f fields[T]) selection(raw string) fields[T] {
	if raw == "" {
		raw = "uuid"
	}

	if raw == "*" {
		return f
	}

	var out fields[T]

	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)

		i := slices.IndexFunc(f, func(x field[T]) bool { return x.name == name })
		if i < 0 {
			continue
		}

		if slices.ContainsFunc(out, func(x field[T]) bool { return x.name == name }) {
			continue
		}

		out = append(out, f[i])
	}

	return out
}

func (f fields[T]) render(v T) (map[string]any, error) {
	out := make(map[string]any, len(f))

	for _, x := range f {
		rendered, err := x.value(v)
		if err != nil {
			return nil, err
		}

		out[x.name] = rendered
	}

	return out, nil
}

func renderAll[T any](f fields[T], items []T) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))

	for _, item := range items {
		rendered, err := f.render(item)
		if err != nil {
			return nil, err
		}

		out = append(out, rendered)
	}

	return out, nil
}

// localizedValue is a value picked for the requested languages.
type localizedValue struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// pick returns the first requested language that has a value, then English,
// otherwise nil.
func pick(values []store.Localized, languages []string) any {
	for _, want := range append(slices.Clone(languages), openapi.DefaultLanguage) {
		for _, v := range values {
			if v.Language == want {
				return &localizedValue{Language: v.Language, Value: v.Value}
			}
		}
	}

	return nil
}

// nullable turns a nil pointer into an explicit null.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}
