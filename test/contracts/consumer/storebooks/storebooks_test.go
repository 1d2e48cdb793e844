//go:build contract

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

package storebooks_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/pact-foundation/pact-go/v2/models"

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
	"github.com/storebook/api-tests/test/api"
)

const (
	authorID      = "4e7a8c1d-2b3f-4a5e-9c6d-1f2a3b4c5d01"
	storeBookID   = "9f1e3d5c-7b9a-4c2e-a6d8-0f2b4d6e8a01"
	purchaseID    = "3e5a7c9b-1d3f-4b6d-8a2c-4e6a8c0e2a01"
	purchasedBook = "9f1e3d5c-7b9a-4c2e-a6d8-0f2b4d6e8a07"
	readerToken   = "reader-token-3c6a"
	adminToken    = "admin-token-7f3a"
)

var testingT *testing.T //nolint:gochecknoglobals

func TestContracts(t *testing.T) { //nolint:paralleltest
	testingT = t

	RegisterFailHandler(Fail)
	RunSpecs(t, "Storebook Consumer Contract Suite")
}

func mockURL(config consumer.MockServerConfig) string {
	return fmt.Sprintf("http://%s", net.JoinHostPort(config.Host, fmt.Sprintf("%d", config.Port)))
}

// createClient creates an API client for the mock server.  Schema validation
// is left to provider verification, the mock only replays examples.
func createClient(config consumer.MockServerConfig) (*api.APIClient, error) {
	return api.NewAPIClientWithConfig(&api.TestConfig{RequestTimeout: 10 * time.Second}, mockURL(config))
}

func errorBody(code string) map[string]interface{} {
	return map[string]interface{}{
		"errors": matchers.EachLike(map[string]interface{}{
			"code":    matchers.String(code),
			"message": matchers.String("error message"),
		}, 1),
	}
}

var _ = Describe("Storebook API Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		pact, err = consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
			Consumer: "storebook-api-tests",
			Provider: "storebook-api",
			PactDir:  "../pacts",
		})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("Authors", func() {
		Context("when the author exists", func() {
			It("returns the author in the requested language", func() {
				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "author exists",
						Parameters: map[string]interface{}{
							"authorID": authorID,
						},
					}).
					UponReceiving("a request for an author").
					WithRequest("GET", "/authors/"+authorID, func(b *consumer.V4RequestBuilder) {
						b.Query("fields", matchers.String("uuid,first_name,bio"))
						b.Query("languages", matchers.String("de"))
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"uuid":       matchers.String(authorID),
							"first_name": matchers.String("Lena"),
							"bio": map[string]interface{}{
								"value":    matchers.String("Schreibt Kriminalromane."),
								"language": matchers.String("de"),
							},
						})
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					author, err := client.GetAuthor(ctx, authorID, oracle.Params{Fields: "uuid,first_name,bio", Languages: "de"})
					if err != nil {
						return fmt.Errorf("getting author: %w", err)
					}

					Expect(author).To(HaveKeyWithValue("uuid", authorID))
					Expect(author["bio"]).To(HaveKeyWithValue("language", "de"))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when the author does not exist", func() {
			It("returns a not found error", func() {
				missing := "00000000-0000-4000-8000-000000000000"

				pact.AddInteraction().
					Given("author does not exist").
					UponReceiving("a request for a missing author").
					WithRequest("GET", "/authors/"+missing).
					WillRespondWith(404, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(errorBody("author_does_not_exist"))
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					_, err = client.GetAuthor(ctx, missing, oracle.Params{})

					apiErr, ok := api.AsAPIError(err)
					Expect(ok).To(BeTrue())
					Expect(apiErr.Status).To(Equal(http.StatusNotFound))
					Expect(apiErr.Codes).To(ConsistOf(openapi.ErrorAuthorDoesNotExist))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("StoreBooks", func() {
		Context("when store books are published", func() {
			It("returns a page of store books", func() {
				pact.AddInteraction().
					Given("store books are published").
					UponReceiving("a request for the latest store books").
					WithRequest("GET", "/store_books", func(b *consumer.V4RequestBuilder) {
						b.Query("latest", matchers.String("true"))
						b.Query("limit", matchers.String("2"))
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"pages": matchers.Integer(4),
							"items": matchers.EachLike(map[string]interface{}{
								"uuid":  matchers.UUID(),
								"title": matchers.String("The Night Shift"),
							}, 2),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					page, err := client.ListStoreBooks(ctx, oracle.Params{Latest: true, Limit: "2"})
					if err != nil {
						return fmt.Errorf("listing store books: %w", err)
					}

					Expect(page["pages"]).To(BeNumerically("==", 4))
					Expect(api.Items(page)).To(HaveLen(2))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when the query is invalid", func() {
			It("returns every error in order", func() {
				pact.AddInteraction().
					Given("store books are published").
					UponReceiving("a request for store books with an invalid query").
					WithRequest("GET", "/store_books", func(b *consumer.V4RequestBuilder) {
						b.Query("languages", matchers.String("xx"))
						b.Query("page", matchers.String("0"))
					}).
					WillRespondWith(400, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"errors": []map[string]interface{}{
								{
									"code":    matchers.String("language_not_supported"),
									"message": matchers.String("language not supported"),
								},
								{
									"code":    matchers.String("page_invalid"),
									"message": matchers.String("page invalid"),
								},
							},
						})
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					_, err = client.ListStoreBooks(ctx, oracle.Params{Languages: "xx", Page: "0"})

					apiErr, ok := api.AsAPIError(err)
					Expect(ok).To(BeTrue())
					Expect(apiErr.Status).To(Equal(http.StatusBadRequest))
					Expect(apiErr.Codes).To(Equal([]openapi.ErrorCode{openapi.ErrorLanguageNotSupported, openapi.ErrorPageInvalid}))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("Purchases", func() {
		Context("when a reader purchases a priced store book", func() {
			It("creates a pending purchase", func() {
				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "store book is for sale",
						Parameters: map[string]interface{}{
							"storeBookID": storeBookID,
						},
					}).
					UponReceiving("a request to purchase a store book").
					WithRequest("POST", "/store_books/"+storeBookID+"/purchase", func(b *consumer.V4RequestBuilder) {
						b.Header("Authorization", matchers.String(readerToken))
						b.JSONBody(map[string]interface{}{
							"currency": matchers.String(openapi.Currency),
						})
					}).
					WillRespondWith(201, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"uuid":              matchers.UUID(),
							"price":             matchers.Integer(1299),
							"currency":          matchers.String(openapi.Currency),
							"completed":         matchers.Like(false),
							"payment_intent_id": matchers.String("pi_3e5a7c9b1d2f4a6b"),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					client, err := createClient(config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					purchase, err := client.As(readerToken).PurchaseStoreBook(ctx, storeBookID, &openapi.PurchaseRequest{Currency: openapi.Currency})
					if err != nil {
						return fmt.Errorf("purchasing store book: %w", err)
					}

					Expect(purchase).To(HaveKeyWithValue("completed", false))
					Expect(purchase).To(HaveKeyWithValue("currency", openapi.Currency))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when cleaning up a purchase", func() {
			It("reads and deletes the purchase record", func() {
				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "purchase exists",
						Parameters: map[string]interface{}{
							"purchaseID": purchaseID,
						},
					}).
					UponReceiving("a request for a purchase record").
					WithRequest("GET", "/v1/purchases/"+purchaseID, func(b *consumer.V4RequestBuilder) {
						b.Header("Authorization", matchers.String(adminToken))
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"uuid":              matchers.String(purchaseID),
							"user":              matchers.Integer(5),
							"store_book":        matchers.String(purchasedBook),
							"price":             matchers.Integer(999),
							"currency":          matchers.String(openapi.Currency),
							"completed":         matchers.Like(true),
							"payment_intent_id": matchers.String("pi_3Nk2fixture0001"),
						})
					})

				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "purchase exists",
						Parameters: map[string]interface{}{
							"purchaseID": purchaseID,
						},
					}).
					UponReceiving("a request to delete a purchase record").
					WithRequest("DELETE", "/v1/purchases/"+purchaseID, func(b *consumer.V4RequestBuilder) {
						b.Header("Authorization", matchers.String(adminToken))
					}).
					WillRespondWith(204)

				test := func(config consumer.MockServerConfig) error {
					objects, err := api.NewTableObjectClient(&api.TestConfig{RequestTimeout: 10 * time.Second}, mockURL(config), adminToken)
					if err != nil {
						return fmt.Errorf("creating table object client: %w", err)
					}

					purchase, err := objects.GetPurchase(ctx, purchaseID)
					if err != nil {
						return fmt.Errorf("getting purchase: %w", err)
					}

					Expect(purchase.StoreBook).To(Equal(purchasedBook))
					Expect(purchase.Completed).To(BeTrue())

					if err := objects.DeletePurchase(ctx, purchaseID); err != nil {
						return fmt.Errorf("deleting purchase: %w", err)
					}

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})
})
