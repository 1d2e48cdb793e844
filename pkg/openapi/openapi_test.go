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

package openapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storebook/api-tests/pkg/openapi"
)

func TestErrorCodeJSON(t *testing.T) {
	t.Parallel()

	in := openapi.NewErrorResponse(openapi.ErrorAuthenticationHeaderMissing, openapi.ErrorNameTooShort)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"errors":[{"code":2101,"message":"Authorization header missing"},{"code":"name_too_short","message":"name too short"}]}`, string(data))

	var out openapi.ErrorResponse

	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, []openapi.ErrorCode{openapi.ErrorAuthenticationHeaderMissing, openapi.ErrorNameTooShort}, out.Codes())

	n, ok := out.Codes()[0].Number()
	require.True(t, ok)
	require.Equal(t, 2101, n)

	_, ok = out.Codes()[0].Slug()
	require.False(t, ok)

	// Numeric and slug shapes never compare equal.
	require.NotEqual(t, openapi.Numeric(2101), openapi.Slug("2101"))

	var bad openapi.ErrorCode

	require.ErrorIs(t, json.Unmarshal([]byte(`true`), &bad), openapi.ErrInvalidErrorCode)
}

func TestStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusUnauthorized, openapi.Status(openapi.ErrorAuthenticationHeaderMissing))
	require.Equal(t, http.StatusNotFound, openapi.Status(openapi.ErrorSessionDoesNotExist))
	require.Equal(t, http.StatusForbidden, openapi.Status(openapi.ErrorTokenOfOtherApp))
	require.Equal(t, http.StatusUnsupportedMediaType, openapi.Status(openapi.ErrorContentTypeNotSupported))
	require.Equal(t, http.StatusPreconditionFailed, openapi.Status(openapi.ErrorStoreBookSeriesIncomplete))
	require.Equal(t, http.StatusUnprocessableEntity, openapi.Status(openapi.ErrorStoreBookAlreadyPurchased))
	require.Equal(t, http.StatusInternalServerError, openapi.Status(openapi.Slug("not_a_code")))
}

func TestParseLanguages(t *testing.T) {
	t.Parallel()

	langs, err := openapi.ParseLanguages("")
	require.NoError(t, err)
	require.Equal(t, []string{"en"}, langs)

	langs, err = openapi.ParseLanguages("de,fr")
	require.NoError(t, err)
	require.Equal(t, []string{"de", "fr"}, langs)

	_, err = openapi.ParseLanguages("de,xx")
	require.ErrorIs(t, err, openapi.ErrUnsupportedLanguage)
}

func validate(t *testing.T, path string, status int, body string) error {
	t.Helper()

	v, err := openapi.NewResponseValidator()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return v.Validate(context.Background(), req, status, header, []byte(body))
}

func TestResponseValidator(t *testing.T) {
	t.Parallel()

	require.NoError(t, validate(t, "/authors", http.StatusOK, `{"pages":1,"items":[{"uuid":"a","bio":null,"profile_image":null}]}`))
	require.NoError(t, validate(t, "/authors/a", http.StatusNotFound, `{"errors":[{"code":"author_does_not_exist","message":"Author does not exist"}]}`))
	require.NoError(t, validate(t, "/store_books", http.StatusUnauthorized, `{"errors":[{"code":2101}]}`))

	// Leaked keys are caught.
	require.Error(t, validate(t, "/authors", http.StatusOK, `{"pages":1,"items":[{"uuid":"a","password":"x"}]}`))

	// As are missing envelopes.
	require.Error(t, validate(t, "/store_books", http.StatusOK, `{"items":[]}`))

	// Unknown paths are not our concern.
	require.NoError(t, validate(t, "/nope", http.StatusOK, `{}`))
}
