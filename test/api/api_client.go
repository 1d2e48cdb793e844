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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
)

var (
	ErrMissingConfiguration = errors.New("missing required configuration")
	ErrUnexpectedStatus     = errors.New("unexpected status code")
	ErrSchemaViolation      = errors.New("response violates the API schema")
)

// APIError is a non-2XX response.  Codes are in the order the server
// reported them.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Codes   []openapi.ErrorCode
	Body    string
	TraceID string
}

func (e *APIError) Error() string {
	codes := make([]string, len(e.Codes))

	for i := range e.Codes {
		codes[i] = e.Codes[i].String()
	}

	return fmt.Sprintf("%s %s: status %d codes [%s] (trace ID: %s)", e.Method, e.Path, e.Status, strings.Join(codes, ", "), e.TraceID)
}

// AsAPIError unwraps an API error, if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError

	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
	validator *openapi.ResponseValidator
}

func NewAPIClientWithConfig(config *TestConfig, baseURL string) (*APIClient, error) {
	client := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateSchema {
		validator, err := openapi.NewResponseValidator()
		if err != nil {
			return nil, err
		}

		client.validator = validator
	}

	return client, nil
}

// As returns a client that authenticates with the token, an empty token
// sends no Authorization header.  The original client is unchanged.
func (c *APIClient) As(token string) *APIClient {
	clone := *c
	clone.authToken = token

	return &clone
}

// BaseURL returns the API the client talks to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// request describes a single API call.
type request struct {
	method      string
	path        string
	query       url.Values
	contentType string
	body        []byte
}

// response is the raw result of an API call.
type response struct {
	status      int
	header      http.Header
	body        []byte
	traceParent string
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, r *request) (*response, error) {
	fullURL := c.baseURL + r.path
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	// Session tokens are opaque and sent verbatim.
	if c.authToken != "" {
		req.Header.Set("Authorization", c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(r.method, r.path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(r.method, r.path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", r.method, r.path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", r.method, r.path, string(respBody))
	}

	out := &response{
		status:      resp.StatusCode,
		header:      resp.Header,
		body:        respBody,
		traceParent: traceParent,
	}

	// The response is returned with a schema violation so callers can still
	// clean up anything the request created.
	if c.validator != nil {
		if err := c.validator.Validate(ctx, req, resp.StatusCode, resp.Header, respBody); err != nil {
			c.logErrorWithStatus(r.method, r.path, duration, resp.StatusCode, traceParent, err, "validating response")
			return out, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
		}
	}

	return out, nil
}

// apiError converts an error response.
func (c *APIClient) apiError(r *request, resp *response) error {
	out := &APIError{
		Method:  r.method,
		Path:    r.path,
		Status:  resp.status,
		Body:    string(resp.body),
		TraceID: extractTraceID(resp.traceParent),
	}

	var envelope openapi.ErrorResponse

	if err := json.Unmarshal(resp.body, &envelope); err == nil {
		out.Codes = envelope.Codes()
	}

	return out
}

// call performs a request, normalizing a successful JSON response body to
// generic JSON values and failures to an *APIError.  A decodable body is
// returned alongside schema and status errors.
func (c *APIClient) call(ctx context.Context, r *request, expectedStatus int) (any, error) {
	resp, err := c.doRequest(ctx, r)
	if resp == nil {
		return nil, err
	}

	if resp.status >= http.StatusBadRequest {
		return nil, c.apiError(r, resp)
	}

	var out any

	var jsonErr error

	if len(resp.body) > 0 {
		if jsonErr = json.Unmarshal(resp.body, &out); jsonErr != nil {
			out = nil
		}
	}

	if resp.status != expectedStatus {
		c.logUnexpectedStatus(r.method, r.path, expectedStatus, resp.status, string(resp.body), resp.traceParent)
		return out, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expectedStatus, resp.status, string(resp.body), extractTraceID(resp.traceParent))
	}

	if err != nil {
		return out, err
	}

	if jsonErr != nil {
		return nil, fmt.Errorf("unmarshaling %s %s response: %w", r.method, r.path, jsonErr)
	}

	return out, nil
}

// object performs a request that returns a JSON object.  As with call, the
// object is returned alongside schema and status errors when there is one.
func (c *APIClient) object(ctx context.Context, r *request, expectedStatus int) (map[string]any, error) {
	out, err := c.call(ctx, r, expectedStatus)
	if out == nil {
		return nil, err
	}

	object, ok := out.(map[string]any)
	if !ok {
		if err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %s %s returned %T, not an object", ErrSchemaViolation, r.method, r.path, out)
	}

	return object, err
}

func (c *APIClient) get(ctx context.Context, path string, p oracle.Params) (map[string]any, error) {
	return c.object(ctx, &request{method: http.MethodGet, path: path, query: p.Values()}, http.StatusOK)
}

func (c *APIClient) postJSON(ctx context.Context, path string, body any) (map[string]any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return c.object(ctx, &request{method: http.MethodPost, path: path, contentType: openapi.ContentTypeJSON, body: data}, http.StatusCreated)
}

// Post sends a raw body with any content type, e.g. to check unsupported
// content types are rejected.
func (c *APIClient) Post(ctx context.Context, path, contentType string, body []byte) (map[string]any, error) {
	return c.object(ctx, &request{method: http.MethodPost, path: path, contentType: contentType, body: body}, http.StatusCreated)
}

func (c *APIClient) ListAuthors(ctx context.Context, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Authors(), p)
}

func (c *APIClient) GetAuthor(ctx context.Context, id string, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Author(id), p)
}

func (c *APIClient) GetAuthorProfileImage(ctx context.Context, id string) (map[string]any, error) {
	return c.get(ctx, c.endpoints.AuthorProfileImage(id), oracle.Params{})
}

// PutAuthorProfileImage uploads raw image bytes.
func (c *APIClient) PutAuthorProfileImage(ctx context.Context, id, contentType string, data []byte) (map[string]any, error) {
	return c.object(ctx, &request{method: http.MethodPut, path: c.endpoints.AuthorProfileImage(id), contentType: contentType, body: data}, http.StatusOK)
}

func (c *APIClient) ListPublishers(ctx context.Context, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Publishers(), p)
}

func (c *APIClient) GetPublisher(ctx context.Context, id string, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Publisher(id), p)
}

func (c *APIClient) ListStoreBooks(ctx context.Context, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.StoreBooks(), p)
}

func (c *APIClient) GetStoreBook(ctx context.Context, id string, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.StoreBook(id), p)
}

// PurchaseStoreBook purchases a store book.  The body is sent as is so
// invalid bodies can be tested too.
func (c *APIClient) PurchaseStoreBook(ctx context.Context, id string, body any) (map[string]any, error) {
	return c.postJSON(ctx, c.endpoints.StoreBookPurchase(id), body)
}

func (c *APIClient) GetCollection(ctx context.Context, id string, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Collection(id), p)
}

func (c *APIClient) ListSeries(ctx context.Context, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.SeriesList(), p)
}

func (c *APIClient) GetSeries(ctx context.Context, id string, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Series(id), p)
}

// CreateSeries creates a series.  The body is sent as is so invalid bodies
// can be tested too.
func (c *APIClient) CreateSeries(ctx context.Context, body any) (map[string]any, error) {
	return c.postJSON(ctx, c.endpoints.SeriesList(), body)
}

func (c *APIClient) ListCategories(ctx context.Context, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Categories(), p)
}

func (c *APIClient) GetCategory(ctx context.Context, key string, p oracle.Params) (map[string]any, error) {
	return c.get(ctx, c.endpoints.Category(key), p)
}
