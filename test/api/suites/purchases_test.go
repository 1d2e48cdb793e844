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
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storebook/api-tests/pkg/compare"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
	"github.com/storebook/api-tests/test/api"
)

var _ = Describe("Purchases", func() {
	Context("When purchasing a store book", func() {
		DescribeTable("invalid purchases are rejected",
			func(user, id string, body any, status int, codes ...openapi.ErrorCode) {
				client := scenario.Anonymous()
				if user != "" {
					client = scenario.As(user)
				}

				_, err := client.PurchaseStoreBook(ctx, id, body)
				api.VerifyRejected(err, status, codes...)
			},
			Entry("without a session", "", storeBookID("01"), &openapi.PurchaseRequest{Currency: openapi.Currency},
				http.StatusUnauthorized, openapi.ErrorAuthenticationHeaderMissing),
			Entry("without a currency", "reader", storeBookID("01"), map[string]any{},
				http.StatusBadRequest, openapi.ErrorCurrencyMissing),
			Entry("with a numeric currency", "reader", storeBookID("01"), map[string]any{"currency": 978},
				http.StatusBadRequest, openapi.ErrorCurrencyWrongType),
			Entry("in dollars", "reader", storeBookID("01"), map[string]any{"currency": "usd"},
				http.StatusBadRequest, openapi.ErrorCurrencyNotSupported),
			Entry("of an unknown store book", "reader", nonexistentID, &openapi.PurchaseRequest{Currency: openapi.Currency},
				http.StatusNotFound, openapi.ErrorStoreBookDoesNotExist),
			Entry("of an unpublished store book", "reader", storeBookID("04"), &openapi.PurchaseRequest{Currency: openapi.Currency},
				http.StatusPreconditionFailed, openapi.ErrorStoreBookNotPublished),
			Entry("of a store book already purchased", "reader", storeBookID("07"), &openapi.PurchaseRequest{Currency: openapi.Currency},
				http.StatusUnprocessableEntity, openapi.ErrorStoreBookAlreadyPurchased),
			Entry("of a store book without a price", "reader", storeBookID("13"), &openapi.PurchaseRequest{Currency: openapi.Currency},
				http.StatusPreconditionFailed, openapi.ErrorPriceDoesNotExist),
			Entry("from a seller without payment setup", "reader", storeBookID("08"), &openapi.PurchaseRequest{Currency: openapi.Currency},
				http.StatusPreconditionFailed, openapi.ErrorSellerPaymentSetupMissing),
		)

		It("should reject bodies that aren't JSON", func() {
			_, err := scenario.As("reader").Post(ctx, "/store_books/"+storeBookID("01")+"/purchase", "text/plain", []byte("eur"))
			api.VerifyRejected(err, http.StatusUnsupportedMediaType, openapi.ErrorContentTypeNotSupported)
		})

		It("should create a pending purchase for a priced book", func() {
			// Given: a published book with a price from a seller with payment setup
			// When: a reader purchases it
			// Then: the purchase waits for payment
			reader := scenario.User("reader")

			purchase := scenario.PurchaseWithCleanup(ctx, scenario.As("reader"), storeBookID("01"))

			Expect(purchase["completed"]).To(BeFalse())
			Expect(purchase["price"]).To(BeNumerically("==", *scenario.Data.StoreBook(storeBookID("01")).LatestRelease().Price))
			Expect(purchase["currency"]).To(Equal(openapi.Currency))
			Expect(purchase["payment_intent_id"]).To(BeAssignableToTypeOf(""))

			record, err := scenario.Objects.GetPurchase(ctx, api.StringField(purchase, "uuid"))
			Expect(err).NotTo(HaveOccurred())
			Expect(record.User).To(Equal(reader.ID))
			Expect(record.StoreBook).To(Equal(storeBookID("01")))
			Expect(record.Completed).To(BeFalse())

			// Pending purchases don't grant the book.
			book, err := scenario.As("reader").GetStoreBook(ctx, storeBookID("01"), oracle.Params{Fields: "in_library,purchased"})
			Expect(err).NotTo(HaveOccurred())
			Expect(book["in_library"]).To(BeFalse())
			Expect(book["purchased"]).To(BeFalse())
		})

		It("should complete a purchase of a free book", func() {
			purchase := scenario.PurchaseWithCleanup(ctx, scenario.As("reader"), storeBookID("09"))

			Expect(purchase["completed"]).To(BeTrue())
			Expect(purchase["price"]).To(BeNumerically("==", 0))
			Expect(purchase).To(compare.HaveNullKey("payment_intent_id"))

			book, err := scenario.As("reader").GetStoreBook(ctx, storeBookID("09"), oracle.Params{Fields: "in_library,purchased"})
			Expect(err).NotTo(HaveOccurred())
			Expect(book["in_library"]).To(BeTrue())
			Expect(book["purchased"]).To(BeTrue())

			_, err = scenario.As("reader").PurchaseStoreBook(ctx, storeBookID("09"), &openapi.PurchaseRequest{Currency: openapi.Currency})
			api.VerifyRejected(err, http.StatusUnprocessableEntity, openapi.ErrorStoreBookAlreadyPurchased)
		})

		It("should give owners their own books for free", func() {
			// Given: lena owns a priced book
			// When: lena purchases it
			// Then: it completes at no cost without a payment intent
			purchase := scenario.PurchaseWithCleanup(ctx, scenario.As("lena"), storeBookID("01"))

			Expect(purchase["completed"]).To(BeTrue())
			Expect(purchase["price"]).To(BeNumerically("==", 0))
			Expect(purchase).To(compare.HaveNullKey("payment_intent_id"))
		})
	})

	Context("When reading purchase records", func() {
		It("should return fixture purchases", func() {
			expected := scenario.Data.Purchases[0]

			record, err := scenario.Objects.GetPurchase(ctx, purchaseID)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.UUID).To(Equal(expected.UUID))
			Expect(record.StoreBook).To(Equal(expected.StoreBook))
			Expect(record.Price).To(Equal(expected.Price))
			Expect(record.Completed).To(Equal(expected.Completed))
		})

		It("should reject unknown purchases", func() {
			_, err := scenario.Objects.GetPurchase(ctx, nonexistentID)
			api.VerifyRejected(err, http.StatusNotFound, openapi.ErrorPurchaseDoesNotExist)
		})
	})
})
