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

	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
	"github.com/storebook/api-tests/test/api"
)

var _ = Describe("Security and Authentication", func() {
	Context("When accessing API with different authentication states", func() {
		Describe("Given invalid authentication", func() {
			It("should reject requests with unknown sessions", func() {
				// Given: a token that no session was issued for
				// When: I make any API request
				// Then: the request is rejected as a missing session
				_, err := scenario.Client.As("not-a-session").ListAuthors(ctx, oracle.Params{})
				api.VerifyRejected(err, http.StatusNotFound, openapi.ErrorSessionDoesNotExist)
			})

			It("should reject tokens of another application", func() {
				_, err := scenario.As("foreign").ListStoreBooks(ctx, oracle.Params{})
				api.VerifyRejected(err, http.StatusForbidden, openapi.ErrorTokenOfOtherApp)
			})

			It("should reject requests with missing authentication", func() {
				_, err := scenario.Anonymous().ListPublishers(ctx, oracle.Params{Mine: true})
				api.VerifyRejected(err, http.StatusUnauthorized, openapi.ErrorAuthenticationHeaderMissing)
			})

			It("should keep numeric and slug codes distinct", func() {
				_, err := scenario.Anonymous().ListAuthors(ctx, oracle.Params{Mine: true})

				apiErr, ok := api.AsAPIError(err)
				Expect(ok).To(BeTrue())
				Expect(apiErr.Codes).To(HaveLen(1))
				Expect(apiErr.Codes[0].Kind()).To(Equal(openapi.NumericCodeKind))
			})
		})

		Describe("Given role-based access control", func() {
			It("should only show review books to admins", func() {
				_, err := scenario.As("lena").ListStoreBooks(ctx, oracle.Params{Review: true})
				api.VerifyRejected(err, http.StatusForbidden, openapi.ErrorActionNotAllowed)

				_, err = scenario.As("admin").ListStoreBooks(ctx, oracle.Params{Review: true})
				Expect(err).NotTo(HaveOccurred())
			})

			It("should hide files of books the caller doesn't manage", func() {
				for _, user := range []string{"reader", "theo"} {
					book, err := scenario.As(user).GetStoreBook(ctx, storeBookID("01"), oracle.Params{Fields: "*"})
					Expect(err).NotTo(HaveOccurred())
					Expect(book).NotTo(HaveKey("file"), "as %s", user)
				}

				book, err := scenario.As("lena").GetStoreBook(ctx, storeBookID("01"), oracle.Params{Fields: "*"})
				Expect(err).NotTo(HaveOccurred())
				Expect(book).To(HaveKey("file"))
			})

			It("should restrict table objects to the service account", func() {
				if !config.Local() {
					Skip("service account permissions are only known for the reference API")
				}

				client, err := api.NewTableObjectClient(config, scenario.Client.BaseURL(), scenario.User("lena").Token)
				Expect(err).NotTo(HaveOccurred())

				_, err = client.GetPurchase(ctx, purchaseID)
				api.VerifyRejected(err, http.StatusForbidden, openapi.ErrorActionNotAllowed)
			})
		})
	})

	Context("When submitting malicious input", func() {
		Describe("Given security testing", func() {
			It("should treat SQL in identifiers as an unknown resource", func() {
				_, err := scenario.Client.GetAuthor(ctx, "x' OR '1'='1", oracle.Params{})
				api.VerifyRejected(err, http.StatusNotFound, openapi.ErrorAuthorDoesNotExist)

				_, err = scenario.Client.GetCategory(ctx, "fantasy' --", oracle.Params{})
				api.VerifyRejected(err, http.StatusNotFound, openapi.ErrorCategoryDoesNotExist)
			})

			It("should store series names verbatim", func() {
				name := "<script>alert('x')</script>"

				created := scenario.CreateSeriesWithCleanup(ctx, scenario.As("lena"), api.NewSeriesPayload().WithName(name).Build())
				Expect(created["names"]).To(ConsistOf(map[string]any{"name": name, "language": "en"}))
			})

			It("should handle path traversal attempts", func() {
				_, err := scenario.Client.GetAuthor(ctx, "../publishers", oracle.Params{})
				api.VerifyRejected(err, http.StatusNotFound, openapi.ErrorAuthorDoesNotExist)
			})
		})

		Describe("Given encoding and Unicode issues", func() {
			It("should count name length in characters", func() {
				created := scenario.CreateSeriesWithCleanup(ctx, scenario.As("lena"), api.NewSeriesPayload().WithName("ßü").Build())
				Expect(created["names"]).To(ConsistOf(map[string]any{"name": "ßü", "language": "en"}))
			})
		})
	})
})
