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

// Package oracle recomputes what the API should return for a query from the
// fixture dataset.  It takes exactly the parameters the live endpoint gets,
// so a scenario can issue a request and diff the response against the
// simulated result without hand deriving expected arrays.
package oracle

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
)

const (
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 10
)

// Caller identifies who a request is made as.  The zero value is anonymous.
type Caller struct {
	Token string
}

// Anonymous is a caller without an Authorization header.
//
//nolint:gochecknoglobals
var Anonymous = Caller{}

// As returns a caller for a fixture user.
func As(u *fixtures.User) Caller {
	if u == nil {
		return Anonymous
	}

	return Caller{Token: u.Token}
}

// Params are the query parameters of a read request.  Strings are passed
// through verbatim so invalid values can be simulated too.
type Params struct {
	Fields     string
	Languages  string
	Mine       bool
	Latest     bool
	Review     bool
	Author     string
	Publisher  string
	Collection string
	Series     string
	Categories string
	Limit      string
	Page       string
}

// Values encodes the parameters into the query the client sends.
func (p Params) Values() url.Values {
	v := url.Values{}

	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}

	setBool := func(key string, value bool) {
		if value {
			v.Set(key, "true")
		}
	}

	set("fields", p.Fields)
	set("languages", p.Languages)
	setBool("mine", p.Mine)
	setBool("latest", p.Latest)
	setBool("review", p.Review)
	set("author", p.Author)
	set("publisher", p.Publisher)
	set("collection", p.Collection)
	set("series", p.Series)
	set("categories", p.Categories)
	set("limit", p.Limit)
	set("page", p.Page)

	return v
}

// Page is a paginated list response.
type Page struct {
	Pages int              `json:"pages"`
	Items []map[string]any `json:"items"`
}

// Rejection is returned when the API is expected to reject a request.
type Rejection struct {
	Status int
	Codes  []openapi.ErrorCode
}

func (r *Rejection) Error() string {
	codes := make([]string, len(r.Codes))

	for i := range r.Codes {
		codes[i] = r.Codes[i].String()
	}

	return fmt.Sprintf("status %d: %s", r.Status, strings.Join(codes, ", "))
}

func reject(codes ...openapi.ErrorCode) *Rejection {
	return &Rejection{
		Status: openapi.Status(codes[0]),
		Codes:  codes,
	}
}

// Simulator answers queries from a fixture dataset.
type Simulator struct {
	data *fixtures.Dataset
}

// New returns a simulator over the dataset.  The dataset is read, never
// modified.
func New(data *fixtures.Dataset) *Simulator {
	return &Simulator{
		data: data,
	}
}

// Dataset returns the dataset the simulator answers from.
func (s *Simulator) Dataset() *fixtures.Dataset {
	return s.data
}

// authenticate resolves the caller.  Any token that is presented must be
// valid, whether or not the operation needs it.
func (s *Simulator) authenticate(c Caller, required bool) (*fixtures.User, error) {
	if c.Token == "" {
		if required {
			return nil, reject(openapi.ErrorAuthenticationHeaderMissing)
		}

		return nil, nil
	}

	u := s.data.UserByToken(c.Token)
	if u == nil {
		return nil, reject(openapi.ErrorSessionDoesNotExist)
	}

	if u.App != fixtures.StoreApp {
		return nil, reject(openapi.ErrorTokenOfOtherApp)
	}

	return u, nil
}

// query is the validated form of the parameters common to list endpoints.
type query struct {
	languages []string
	limit     int
	page      int
}

func positive(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}

// parseQuery validates languages and pagination, collecting every error in
// the order the API checks them.
func parseQuery(p Params) (*query, error) {
	var codes []openapi.ErrorCode

	languages, err := openapi.ParseLanguages(p.Languages)
	if err != nil {
		codes = append(codes, openapi.ErrorLanguageNotSupported)
	}

	limit, ok := positive(p.Limit, DefaultLimit)
	if !ok {
		codes = append(codes, openapi.ErrorLimitInvalid)
	}

	page, ok := positive(p.Page, 1)
	if !ok {
		codes = append(codes, openapi.ErrorPageInvalid)
	}

	if len(codes) > 0 {
		return nil, reject(codes...)
	}

	return &query{
		languages: languages,
		limit:     limit,
		page:      page,
	}, nil
}

func parseLanguages(p Params) ([]string, error) {
	languages, err := openapi.ParseLanguages(p.Languages)
	if err != nil {
		return nil, reject(openapi.ErrorLanguageNotSupported)
	}

	return languages, nil
}

// Pages returns the number of pages needed for total items.
func Pages(total, limit int) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return pages
}

// paginate orders and slices the items.  A page beyond the end is empty.
func paginate[T any](items []T, latest bool, limit, page int) ([]T, int) {
	if latest {
		items = slices.Clone(items)
		slices.Reverse(items)
	}

	pages := Pages(len(items), limit)

	// Compare page numbers first, the offset of a huge page overflows.
	if page > pages {
		return nil, pages
	}

	start := (page - 1) * limit

	return items[start : start+min(limit, len(items)-start)], pages
}

// selectFields picks the keys the caller asked for out of the keys they're
// allowed to see.  Unknown keys are ignored.
func selectFields(fields string, allowed []string) []string {
	if fields == "" {
		return []string{"uuid"}
	}

	if fields == "*" {
		return allowed
	}

	var out []string

	for _, f := range strings.Split(fields, ",") {
		f = strings.TrimSpace(f)

		if slices.Contains(allowed, f) && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}

	return out
}

// project reduces a full item to the selected keys.
func project(full map[string]any, keys []string) map[string]any {
	out := make(map[string]any, len(keys))

	for _, k := range keys {
		out[k] = full[k]
	}

	return out
}
