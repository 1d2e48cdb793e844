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

package api_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/storebook/api-tests/pkg/compare"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
	"github.com/storebook/api-tests/test/api"
)

const (
	lena       = "4e7a8c1d-2b3f-4a5e-9c6d-1f2a3b4c5d01"
	freeBook   = "9f1e3d5c-7b9a-4c2e-a6d8-0f2b4d6e8a09"
	noAuthor   = "00000000-0000-4000-8000-000000000000"
	adminToken = "admin-token-7f3a"
)

func localConfig() *api.TestConfig {
	return &api.TestConfig{
		RequestTimeout: 10 * time.Second,
		ValidateSchema: true,
	}
}

func newScenario(t *testing.T) *api.Scenario {
	t.Helper()

	s, err := api.NewScenario(t.Context(), localConfig())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

// TestLocalScenario checks a local scenario talks to a reference API that
// agrees with the oracle.
func TestLocalScenario(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	params := oracle.Params{Fields: "*", Languages: "de", Mine: true}

	expected, err := s.Oracle.Authors(s.Caller("admin"), params)
	require.NoError(t, err)

	actual, err := s.As("admin").ListAuthors(t.Context(), params)
	require.NoError(t, err)

	differences, err := compare.Diff(expected, actual)
	require.NoError(t, err)
	require.Empty(t, differences)
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	_, err := s.Anonymous().GetAuthor(t.Context(), noAuthor, oracle.Params{})
	require.Error(t, err)

	apiErr, ok := api.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, []openapi.ErrorCode{openapi.ErrorAuthorDoesNotExist}, apiErr.Codes)
	require.Equal(t, http.MethodGet, apiErr.Method)
	require.Equal(t, "/authors/"+noAuthor, apiErr.Path)
	require.Regexp(t, regexp.MustCompile("^[0-9a-f]{32}$"), apiErr.TraceID)

	// Numeric codes survive the round trip as numbers.
	_, err = s.Anonymous().PurchaseStoreBook(t.Context(), freeBook, &openapi.PurchaseRequest{Currency: openapi.Currency})

	apiErr, ok = api.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, []openapi.ErrorCode{openapi.ErrorAuthenticationHeaderMissing}, apiErr.Codes)

	n, ok := apiErr.Codes[0].Number()
	require.True(t, ok)
	require.Equal(t, 2101, n)
}

// TestClientIdentity checks As never mutates the client it was called on.
func TestClientIdentity(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	lenaClient := s.As("lena")

	_, err := lenaClient.ListPublishers(t.Context(), oracle.Params{Mine: true})
	require.NoError(t, err)

	_, err = s.Client.ListPublishers(t.Context(), oracle.Params{Mine: true})

	apiErr, ok := api.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestTableObjectClient(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	author, err := s.Client.GetAuthorProfileImage(t.Context(), lena)
	require.NoError(t, err)

	id, ok := author["uuid"].(string)
	require.True(t, ok)

	object, err := s.Objects.GetTableObject(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, openapi.TableImages, object.TableID)
	require.True(t, object.File)
	require.Contains(t, object.Properties, openapi.PropertyBlurhash)

	data, err := s.Objects.GetTableObjectFile(t.Context(), id)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Snapshot, clobber then restore.
	snapshot, err := api.SnapshotImage(t.Context(), s.Objects, id)
	require.NoError(t, err)

	_, err = s.Objects.SetTableObjectFile(t.Context(), id, []byte("garbage"))
	require.NoError(t, err)

	_, err = s.Objects.UpdateTableObjectProperties(t.Context(), id, map[string]any{"extra": "value"})
	require.NoError(t, err)

	require.NoError(t, snapshot.Restore(t.Context(), s.Objects))

	restored, err := api.SnapshotImage(t.Context(), s.Objects, id)
	require.NoError(t, err)
	require.Equal(t, snapshot, restored)

	_, err = s.Objects.GetPurchase(t.Context(), noAuthor)

	apiErr, ok := api.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, []openapi.ErrorCode{openapi.ErrorPurchaseDoesNotExist}, apiErr.Codes)
}

// TestTraceContext checks every request carries a W3C trace parent and the
// raw session token.
func TestTraceContext(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 2)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()

		w.Header().Set("Content-Type", openapi.ContentTypeJSON)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	config := localConfig()
	config.ValidateSchema = false

	client, err := api.NewAPIClientWithConfig(config, server.URL)
	require.NoError(t, err)

	_, err = client.As(adminToken).ListCategories(t.Context(), oracle.Params{})
	require.NoError(t, err)

	header := <-headers
	require.Regexp(t, regexp.MustCompile("^00-[0-9a-f]{32}-[0-9a-f]{16}-01$"), header.Get("Traceparent"))
	require.Equal(t, adminToken, header.Get("Authorization"))

	_, err = client.ListCategories(t.Context(), oracle.Params{})
	require.NoError(t, err)

	header = <-headers
	require.Empty(t, header.Get("Authorization"))
}

// TestSchemaViolation checks responses that don't match the API document
// are rejected even when the status is right.
func TestSchemaViolation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", openapi.ContentTypeJSON)
		_, _ = w.Write([]byte(`{"pages":"one","items":{}}`))
	}))
	defer server.Close()

	client, err := api.NewAPIClientWithConfig(localConfig(), server.URL)
	require.NoError(t, err)

	_, err = client.ListAuthors(t.Context(), oracle.Params{})
	require.ErrorIs(t, err, api.ErrSchemaViolation)
}

func TestUnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	config := localConfig()
	config.ValidateSchema = false

	client, err := api.NewAPIClientWithConfig(config, server.URL)
	require.NoError(t, err)

	_, err = client.ListAuthors(t.Context(), oracle.Params{})
	require.ErrorIs(t, err, api.ErrUnexpectedStatus)
}
