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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storebook/api-tests/pkg/compare"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
	"github.com/storebook/api-tests/test/api"
)

var _ = Describe("Store Books", func() {
	Context("When listing store books", func() {
		DescribeTable("the response matches the fixtures",
			func(user string, params oracle.Params) {
				caller := oracle.Anonymous
				client := scenario.Anonymous()

				if user != "" {
					caller = scenario.Caller(user)
					client = scenario.As(user)
				}

				expected, expectedErr := scenario.Oracle.StoreBooks(caller, params)
				actual, err := client.ListStoreBooks(ctx, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("with all fields", "", oracle.Params{Fields: "*"}),
			Entry("in several languages", "reader", oracle.Params{Fields: "*", Languages: "de,en"}),
			Entry("with the latest first, paged", "", oracle.Params{Languages: "en,de,fr", Latest: true, Limit: "3", Page: "2"}),
			Entry("in review as an admin", "admin", oracle.Params{Review: true, Fields: "*"}),
			Entry("in review as an author", "lena", oracle.Params{Review: true}),
			Entry("in review without a session", "", oracle.Params{Review: true}),
			Entry("owned by an author", "lena", oracle.Params{Mine: true, Fields: "*", Languages: "en,de"}),
			Entry("of my own author", "lena", oracle.Params{Author: lenaID, Fields: "uuid,status", Languages: "en,de"}),
			Entry("of another author", "reader", oracle.Params{Author: lenaID, Languages: "en,de"}),
			Entry("of an unknown author", "", oracle.Params{Author: nonexistentID}),
			Entry("of a publisher", "quill", oracle.Params{Publisher: quillID, Fields: "*", Languages: "de,en"}),
			Entry("of a collection", "", oracle.Params{Collection: ashesID, Languages: "en,de"}),
			Entry("of an unknown collection", "", oracle.Params{Collection: nonexistentID}),
			Entry("of a complete series", "", oracle.Params{Series: nightShiftID, Languages: "de,en", Fields: "uuid,title"}),
			Entry("of an incomplete series", "", oracle.Params{Series: tidesID, Languages: "en"}),
			Entry("of a series filtered by category", "", oracle.Params{Series: nightShiftID, Categories: "thriller"}),
			Entry("with several categories", "", oracle.Params{Categories: "mystery,thriller", Languages: "en,de"}),
			Entry("with an unknown category", "", oracle.Params{Categories: "mystery,poetry"}),
		)

		DescribeTable("category filters match every requested category",
			func(keys string) {
				requested := strings.Split(keys, ",")

				page, err := scenario.Client.ListStoreBooks(ctx, oracle.Params{Categories: keys, Languages: "en,de,fr", Fields: "uuid,categories", Limit: "100"})
				Expect(err).NotTo(HaveOccurred())

				items := api.Items(page)
				Expect(items).NotTo(BeEmpty())

				for _, item := range items {
					Expect(item["categories"]).To(ContainElements(toAny(requested)...), "store book %v", item["uuid"])
				}
			},
			Entry("with one category", "fantasy"),
			Entry("with two categories", "mystery,thriller"),
			Entry("with categories shared by one store book", "fantasy,mystery"),
		)

		It("should reject an incomplete series", func() {
			_, err := scenario.Client.ListStoreBooks(ctx, oracle.Params{Series: tidesID, Languages: "en"})
			api.VerifyRejected(err, http.StatusPreconditionFailed, openapi.ErrorStoreBookSeriesIncomplete)
		})

		It("should collect every query error in order", func() {
			_, err := scenario.Client.ListStoreBooks(ctx, oracle.Params{Languages: "xx", Limit: "none", Page: "0"})
			api.VerifyRejected(err, http.StatusBadRequest, openapi.ErrorLanguageNotSupported, openapi.ErrorLimitInvalid, openapi.ErrorPageInvalid)
		})
	})

	Context("When getting a store book", func() {
		DescribeTable("the response matches the fixtures",
			func(user, id string) {
				caller := oracle.Anonymous
				client := scenario.Anonymous()

				if user != "" {
					caller = scenario.Caller(user)
					client = scenario.As(user)
				}

				params := oracle.Params{Fields: "*"}

				expected, expectedErr := scenario.Oracle.StoreBook(caller, id, params)
				actual, err := client.GetStoreBook(ctx, id, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("as a buyer", "reader", storeBookID("07")),
			Entry("as the owner", "lena", storeBookID("02")),
			Entry("without a release as an admin", "admin", storeBookID("04")),
			Entry("that is unpublished", "", storeBookID("04")),
			Entry("without a price", "", storeBookID("13")),
			Entry("that does not exist", "", nonexistentID),
		)

		DescribeTable("the visible keys depend on the caller",
			func(user string) {
				caller := oracle.Anonymous
				client := scenario.Anonymous()

				if user != "" {
					caller = scenario.Caller(user)
					client = scenario.As(user)
				}

				expected, err := scenario.Oracle.KeyCount(oracle.KindStoreBook, caller, storeBookID("01"))
				Expect(err).NotTo(HaveOccurred())

				book, err := client.GetStoreBook(ctx, storeBookID("01"), oracle.Params{Fields: "*"})
				Expect(err).NotTo(HaveOccurred())
				Expect(book).To(compare.HaveKeyCount(expected))
			},
			Entry("anonymously", ""),
			Entry("as a reader", "reader"),
			Entry("as the owner", "lena"),
			Entry("as an admin", "admin"),
		)
	})

	Context("When getting a collection", func() {
		DescribeTable("the response matches the fixtures",
			func(user, id string, params oracle.Params) {
				caller := oracle.Anonymous
				client := scenario.Anonymous()

				if user != "" {
					caller = scenario.Caller(user)
					client = scenario.As(user)
				}

				expected, expectedErr := scenario.Oracle.Collection(caller, id, params)
				actual, err := client.GetCollection(ctx, id, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("in German", "", tideID, oracle.Params{Fields: "*", Languages: "de"}),
			Entry("with unpublished books hidden", "", ashesID, oracle.Params{Fields: "*"}),
			Entry("with unpublished books shown to the owner", "lena", ashesID, oracle.Params{Fields: "*"}),
			Entry("with a name in French only", "", winterID, oracle.Params{Fields: "name", Languages: "de"}),
			Entry("that does not exist", "", nonexistentID, oracle.Params{}),
		)
	})

	Context("When listing categories", func() {
		It("should list every category", func() {
			params := oracle.Params{Languages: "de"}

			expected, expectedErr := scenario.Oracle.Categories(oracle.Anonymous, params)
			actual, err := scenario.Client.ListCategories(ctx, params)

			verifyAgainstOracle(actual, err, expected, expectedErr)
		})

		DescribeTable("a single category matches the fixtures",
			func(key, languages string) {
				params := oracle.Params{Languages: languages}

				expected, expectedErr := scenario.Oracle.Category(oracle.Anonymous, key, params)
				actual, err := scenario.Client.GetCategory(ctx, key, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("in German", "fantasy", "de"),
			Entry("falling back to English", "thriller", "de"),
			Entry("that does not exist", "poetry", ""),
		)
	})
})

func toAny(values []string) []any {
	out := make([]any, len(values))

	for i := range values {
		out[i] = values[i]
	}

	return out
}
