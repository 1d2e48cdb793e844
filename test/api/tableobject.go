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

//go:generate mockgen -source=tableobject.go -destination=mock/interfaces.go -package=mock

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/storebook/api-tests/pkg/openapi"
)

// TableObjects is the out of band access scenarios use to verify and revert
// side effects that the public API cannot.
type TableObjects interface {
	GetTableObject(ctx context.Context, id string) (*openapi.TableObject, error)
	GetTableObjectFile(ctx context.Context, id string) ([]byte, error)
	SetTableObjectFile(ctx context.Context, id string, data []byte) (*openapi.TableObject, error)
	UpdateTableObjectProperties(ctx context.Context, id string, properties map[string]any) (*openapi.TableObject, error)
	DeleteTableObject(ctx context.Context, id string) error
	GetPurchase(ctx context.Context, id string) (*openapi.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
}

// TableObjectClient talks to the table object service.
type TableObjectClient struct {
	client *APIClient
}

// Ensure the interface is implemented.
var _ TableObjects = &TableObjectClient{}

// NewTableObjectClient creates a client authenticated with the service
// token from the configuration.
func NewTableObjectClient(config *TestConfig, baseURL, token string) (*TableObjectClient, error) {
	client, err := NewAPIClientWithConfig(config, baseURL)
	if err != nil {
		return nil, err
	}

	return &TableObjectClient{
		client: client.As(token),
	}, nil
}

// raw performs a request and returns the response body of an expected
// status untouched.
func (c *TableObjectClient) raw(ctx context.Context, r *request, expectedStatus int) ([]byte, error) {
	resp, err := c.client.doRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	if resp.status >= http.StatusBadRequest {
		return nil, c.client.apiError(r, resp)
	}

	if resp.status != expectedStatus {
		c.client.logUnexpectedStatus(r.method, r.path, expectedStatus, resp.status, string(resp.body), resp.traceParent)
		return nil, fmt.Errorf("%w: expected %d, got %d (trace ID: %s)", ErrUnexpectedStatus, expectedStatus, resp.status, extractTraceID(resp.traceParent))
	}

	return resp.body, nil
}

func decode[T any](data []byte) (*T, error) {
	out := new(T)

	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("unmarshaling %T: %w", out, err)
	}

	return out, nil
}

func (c *TableObjectClient) GetTableObject(ctx context.Context, id string) (*openapi.TableObject, error) {
	data, err := c.raw(ctx, &request{method: http.MethodGet, path: c.client.endpoints.TableObject(id)}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return decode[openapi.TableObject](data)
}

func (c *TableObjectClient) GetTableObjectFile(ctx context.Context, id string) ([]byte, error) {
	return c.raw(ctx, &request{method: http.MethodGet, path: c.client.endpoints.TableObjectFile(id)}, http.StatusOK)
}

// SetTableObjectFile replaces the file, which clears any derived blurhash.
func (c *TableObjectClient) SetTableObjectFile(ctx context.Context, id string, data []byte) (*openapi.TableObject, error) {
	body, err := c.raw(ctx, &request{method: http.MethodPut, path: c.client.endpoints.TableObjectFile(id), contentType: "application/octet-stream", body: data}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return decode[openapi.TableObject](body)
}

// UpdateTableObjectProperties merges properties, a nil value deletes one.
func (c *TableObjectClient) UpdateTableObjectProperties(ctx context.Context, id string, properties map[string]any) (*openapi.TableObject, error) {
	data, err := json.Marshal(&openapi.TableObjectPropertiesRequest{Properties: properties})
	if err != nil {
		return nil, err
	}

	body, err := c.raw(ctx, &request{method: http.MethodPut, path: c.client.endpoints.TableObjectProperties(id), contentType: openapi.ContentTypeJSON, body: data}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return decode[openapi.TableObject](body)
}

func (c *TableObjectClient) DeleteTableObject(ctx context.Context, id string) error {
	_, err := c.raw(ctx, &request{method: http.MethodDelete, path: c.client.endpoints.TableObject(id)}, http.StatusNoContent)

	return err
}

func (c *TableObjectClient) GetPurchase(ctx context.Context, id string) (*openapi.Purchase, error) {
	data, err := c.raw(ctx, &request{method: http.MethodGet, path: c.client.endpoints.Purchase(id)}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return decode[openapi.Purchase](data)
}

func (c *TableObjectClient) DeletePurchase(ctx context.Context, id string) error {
	_, err := c.raw(ctx, &request{method: http.MethodDelete, path: c.client.endpoints.Purchase(id)}, http.StatusNoContent)

	return err
}
