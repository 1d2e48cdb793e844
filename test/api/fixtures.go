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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"maps"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
)

var ErrUnknownUser = errors.New("unknown fixture user")

// Scenario is the explicitly constructed state shared by the specs of a
// suite: the dataset the API is seeded with, an oracle over it and clients
// for the API and the table object service.
type Scenario struct {
	Config  *TestConfig
	Data    *fixtures.Dataset
	Oracle  *oracle.Simulator
	Client  *APIClient
	Objects TableObjects

	local *LocalServer
}

func loadDataset(config *TestConfig) (*fixtures.Dataset, error) {
	if config.FixturesFile == "" {
		return fixtures.Default()
	}

	return fixtures.Load(config.FixturesFile)
}

// NewScenario loads the fixtures and connects to the API, starting a local
// reference API first if none is configured.
func NewScenario(ctx context.Context, config *TestConfig) (*Scenario, error) {
	data, err := loadDataset(config)
	if err != nil {
		return nil, err
	}

	s := &Scenario{
		Config: config,
		Data:   data,
		Oracle: oracle.New(data),
	}

	baseURL := config.BaseURL
	objectsURL := config.TableObjectBaseURL
	objectsToken := config.TableObjectToken

	if config.Local() {
		// The server gets its own copy, it must never share state with the
		// oracle.
		seed, err := data.Clone()
		if err != nil {
			return nil, err
		}

		local, err := StartLocalServer(ctx, seed, config.DebugLogging)
		if err != nil {
			return nil, err
		}

		s.local = local

		baseURL = local.URL()
		objectsURL = local.URL()

		if objectsToken == "" {
			admin := data.UserByName("admin")
			if admin == nil {
				_ = local.Close()

				return nil, fmt.Errorf("%w: admin is required for local table object access", ErrUnknownUser)
			}

			objectsToken = admin.Token
		}
	}

	if s.Client, err = NewAPIClientWithConfig(config, baseURL); err != nil {
		_ = s.Close()

		return nil, err
	}

	if s.Objects, err = NewTableObjectClient(config, objectsURL, objectsToken); err != nil {
		_ = s.Close()

		return nil, err
	}

	return s, nil
}

// Close stops the local reference API, if any.
func (s *Scenario) Close() error {
	if s.local == nil {
		return nil
	}

	return s.local.Close()
}

// User returns a fixture user by name, failing the spec if there is none.
func (s *Scenario) User(name string) *fixtures.User {
	user := s.Data.UserByName(name)
	if user == nil {
		Fail(fmt.Sprintf("%v: %s", ErrUnknownUser, name))
	}

	return user
}

// Caller returns the oracle caller for a fixture user.
func (s *Scenario) Caller(name string) oracle.Caller {
	return oracle.As(s.User(name))
}

// As returns an API client authenticated as a fixture user.
func (s *Scenario) As(name string) *APIClient {
	return s.Client.As(s.User(name).Token)
}

// Anonymous returns an API client without credentials.
func (s *Scenario) Anonymous() *APIClient {
	return s.Client.As("")
}

// Teardown reverts a side effect.
type Teardown func(ctx context.Context) error

// release registers a teardown with Ginkgo so it runs whether the spec
// passes or fails.
func release(description string, teardown Teardown) {
	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Cleaning up %s\n", description)

		if err := teardown(ctx); err != nil {
			GinkgoWriter.Printf("Warning: Failed to clean up %s: %v\n", description, err)
			return
		}

		GinkgoWriter.Printf("Successfully cleaned up %s\n", description)
	})
}

// ImageSnapshot is the state of an image table object before a scenario
// replaces it.
type ImageSnapshot struct {
	UUID       string
	Data       []byte
	Properties map[string]any
}

func SnapshotImage(ctx context.Context, objects TableObjects, id string) (*ImageSnapshot, error) {
	object, err := objects.GetTableObject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting image %s: %w", id, err)
	}

	data, err := objects.GetTableObjectFile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting image %s file: %w", id, err)
	}

	return &ImageSnapshot{
		UUID:       id,
		Data:       data,
		Properties: maps.Clone(object.Properties),
	}, nil
}

// Restore puts the snapshotted file back and resets the properties,
// deleting any that were added since.
func (i *ImageSnapshot) Restore(ctx context.Context, objects TableObjects) error {
	if _, err := objects.SetTableObjectFile(ctx, i.UUID, i.Data); err != nil {
		return fmt.Errorf("restoring image %s file: %w", i.UUID, err)
	}

	current, err := objects.GetTableObject(ctx, i.UUID)
	if err != nil {
		return fmt.Errorf("getting image %s: %w", i.UUID, err)
	}

	properties := map[string]any{}

	for k := range current.Properties {
		properties[k] = nil
	}

	maps.Copy(properties, i.Properties)

	if _, err := objects.UpdateTableObjectProperties(ctx, i.UUID, properties); err != nil {
		return fmt.Errorf("restoring image %s properties: %w", i.UUID, err)
	}

	return nil
}

// ProfileImageTeardown reverts a profile image upload.  An image that
// existed before is restored from its snapshot, one created by the upload
// is deleted, which unlinks it from the author.
func ProfileImageTeardown(objects TableObjects, snapshot *ImageSnapshot, uploaded string) Teardown {
	return func(ctx context.Context) error {
		if snapshot != nil {
			return snapshot.Restore(ctx, objects)
		}

		if uploaded == "" {
			return nil
		}

		return objects.DeleteTableObject(ctx, uploaded)
	}
}

// PurchaseTeardown deletes a purchase, which also removes the store book
// from the buyer's library.
func PurchaseTeardown(objects TableObjects, id string) Teardown {
	return func(ctx context.Context) error {
		return objects.DeletePurchase(ctx, id)
	}
}

// SeriesTeardown deletes a created series through its table object.
func SeriesTeardown(objects TableObjects, id string) Teardown {
	return func(ctx context.Context) error {
		return objects.DeleteTableObject(ctx, id)
	}
}

// createdID returns the uuid a response names, if any.
func createdID(object map[string]any) string {
	id, _ := object["uuid"].(string)

	return id
}

// UploadProfileImage uploads a profile image for an author that has none.
// The teardown deleting the new image is returned whenever the response
// names it, even alongside an error.
func UploadProfileImage(ctx context.Context, client *APIClient, objects TableObjects, authorID, contentType string, data []byte) (map[string]any, Teardown, error) {
	image, err := client.PutAuthorProfileImage(ctx, authorID, contentType, data)

	id := createdID(image)
	if id == "" {
		return image, nil, err
	}

	return image, ProfileImageTeardown(objects, nil, id), err
}

// Purchase purchases a store book in euros.  The teardown deleting the
// purchase is returned whenever the response names it, even alongside an
// error.
func Purchase(ctx context.Context, client *APIClient, objects TableObjects, storeBookID string) (map[string]any, Teardown, error) {
	purchase, err := client.PurchaseStoreBook(ctx, storeBookID, &openapi.PurchaseRequest{Currency: openapi.Currency})

	id := createdID(purchase)
	if id == "" {
		return purchase, nil, err
	}

	return purchase, PurchaseTeardown(objects, id), err
}

// CreateSeries creates a series.  The teardown deleting the series is
// returned whenever the response names it, even alongside an error.
func CreateSeries(ctx context.Context, client *APIClient, objects TableObjects, body any) (map[string]any, Teardown, error) {
	series, err := client.CreateSeries(ctx, body)

	id := createdID(series)
	if id == "" {
		return series, nil, err
	}

	return series, SeriesTeardown(objects, id), err
}

// UploadProfileImageWithCleanup uploads a profile image and schedules the
// author's previous image to be restored.  Cleanup of a replaced image is
// registered before the upload, cleanup of a new one before the response
// is checked, so both are reverted even if the response is unusable.
func (s *Scenario) UploadProfileImageWithCleanup(ctx context.Context, client *APIClient, authorID, contentType string, data []byte) map[string]any {
	if author := s.Data.Author(authorID); author != nil && author.ProfileImage != nil {
		snapshot, err := SnapshotImage(ctx, s.Objects, author.ProfileImage.UUID)
		Expect(err).NotTo(HaveOccurred())

		release(fmt.Sprintf("profile image of author %s", authorID), ProfileImageTeardown(s.Objects, snapshot, ""))

		image, err := client.PutAuthorProfileImage(ctx, authorID, contentType, data)
		Expect(err).NotTo(HaveOccurred())

		return image
	}

	image, teardown, err := UploadProfileImage(ctx, client, s.Objects, authorID, contentType, data)
	if teardown != nil {
		release(fmt.Sprintf("profile image %s of author %s", createdID(image), authorID), teardown)
	}

	Expect(err).NotTo(HaveOccurred())
	Expect(teardown).NotTo(BeNil(), "profile image response has no uuid")

	return image
}

// PurchaseWithCleanup purchases a store book in euros and schedules the
// purchase to be deleted.
func (s *Scenario) PurchaseWithCleanup(ctx context.Context, client *APIClient, storeBookID string) map[string]any {
	purchase, teardown, err := Purchase(ctx, client, s.Objects, storeBookID)
	if teardown != nil {
		id := createdID(purchase)

		GinkgoWriter.Printf("Created purchase with ID: %s\n", id)

		release("purchase "+id, teardown)
	}

	Expect(err).NotTo(HaveOccurred())
	Expect(teardown).NotTo(BeNil(), "purchase response has no uuid")

	return purchase
}

// CreateSeriesWithCleanup creates a series and schedules its deletion.
func (s *Scenario) CreateSeriesWithCleanup(ctx context.Context, client *APIClient, body any) map[string]any {
	series, teardown, err := CreateSeries(ctx, client, s.Objects, body)
	if teardown != nil {
		id := createdID(series)

		GinkgoWriter.Printf("Created series with ID: %s\n", id)

		release("series "+id, teardown)
	}

	Expect(err).NotTo(HaveOccurred())
	Expect(teardown).NotTo(BeNil(), "series response has no uuid")

	return series
}

// StringField returns a string field of a response object, failing the spec
// if it is missing or not a string.
func StringField(object map[string]any, key string) string {
	GinkgoHelper()

	Expect(object).To(HaveKey(key))

	value, ok := object[key].(string)
	Expect(ok).To(BeTrue(), "expected %s to be a string, got %T", key, object[key])

	return value
}

// Items returns the items of a list response.
func Items(page map[string]any) []map[string]any {
	GinkgoHelper()

	Expect(page).To(HaveKey("items"))

	raw, ok := page["items"].([]any)
	Expect(ok).To(BeTrue(), "expected items to be an array, got %T", page["items"])

	items := make([]map[string]any, len(raw))

	for i := range raw {
		item, ok := raw[i].(map[string]any)
		Expect(ok).To(BeTrue(), "expected item %d to be an object, got %T", i, raw[i])

		items[i] = item
	}

	return items
}

// VerifyRejected verifies a request failed with the status and error codes,
// in order.
func VerifyRejected(err error, status int, codes ...openapi.ErrorCode) {
	GinkgoHelper()

	Expect(err).To(HaveOccurred())

	apiErr, ok := AsAPIError(err)
	Expect(ok).To(BeTrue(), "expected an API error, got %v", err)

	Expect(apiErr.Status).To(Equal(status), "unexpected status, body: %s", apiErr.Body)
	Expect(apiErr.Codes).To(Equal(codes), "unexpected error codes, body: %s", apiErr.Body)
}

// VerifyRejection verifies a request failed the way the oracle predicted.
func VerifyRejection(err error, expected error) {
	GinkgoHelper()

	var rejection *oracle.Rejection

	Expect(errors.As(expected, &rejection)).To(BeTrue(), "expected an oracle rejection, got %v", expected)

	VerifyRejected(err, rejection.Status, rejection.Codes...)
}
