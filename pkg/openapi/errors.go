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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidErrorCode = errors.New("error code must be a number or a string")

// ErrorCodeKind tells the two shapes of error code apart.  The API returns
// legacy numeric codes for session errors and string slugs for everything
// else, the two are never converted into one another.
type ErrorCodeKind int

const (
	NumericCodeKind ErrorCodeKind = iota + 1
	SlugCodeKind
)

// ErrorCode is a tagged error code.  It's comparable, so can be used with
// Equal matchers and as a map key.
type ErrorCode struct {
	kind   ErrorCodeKind
	number int
	slug   string
}

// Numeric returns a legacy numeric error code.
func Numeric(n int) ErrorCode {
	return ErrorCode{kind: NumericCodeKind, number: n}
}

// Slug returns a string error code.
func Slug(s string) ErrorCode {
	return ErrorCode{kind: SlugCodeKind, slug: s}
}

func (c ErrorCode) Kind() ErrorCodeKind {
	return c.kind
}

// Number returns the numeric code, and whether the code is numeric at all.
func (c ErrorCode) Number() (int, bool) {
	return c.number, c.kind == NumericCodeKind
}

// Slug returns the string code, and whether the code is a slug at all.
func (c ErrorCode) Slug() (string, bool) {
	return c.slug, c.kind == SlugCodeKind
}

func (c ErrorCode) String() string {
	switch c.kind {
	case NumericCodeKind:
		return strconv.Itoa(c.number)
	case SlugCodeKind:
		return c.slug
	}

	return "<invalid>"
}

func (c ErrorCode) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case NumericCodeKind:
		return json.Marshal(c.number)
	case SlugCodeKind:
		return json.Marshal(c.slug)
	}

	return nil, ErrInvalidErrorCode
}

func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string

		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*c = Slug(s)

		return nil
	}

	var n int

	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidErrorCode, string(data))
	}

	*c = Numeric(n)

	return nil
}

// Codes returns the error codes in the order the server validated them.
func (r *ErrorResponse) Codes() []ErrorCode {
	out := make([]ErrorCode, len(r.Errors))

	for i := range r.Errors {
		out[i] = r.Errors[i].Code
	}

	return out
}

// NewErrorResponse builds a response from codes, filling in messages from
// the catalogue.
func NewErrorResponse(codes ...ErrorCode) *ErrorResponse {
	out := &ErrorResponse{
		Errors: make([]Error, len(codes)),
	}

	for i, code := range codes {
		out.Errors[i] = Error{
			Code:    code,
			Message: Message(code),
		}
	}

	return out
}
