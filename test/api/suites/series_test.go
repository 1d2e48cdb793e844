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

var _ = Describe("Store Book Series", func() {
	Context("When reading series", func() {
		DescribeTable("lists match the fixtures",
			func(user string, params oracle.Params) {
				caller := oracle.Anonymous
				client := scenario.Anonymous()

				if user != "" {
					caller = scenario.Caller(user)
					client = scenario.As(user)
				}

				expected, expectedErr := scenario.Oracle.SeriesList(caller, params)
				actual, err := client.ListSeries(ctx, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("with all fields", "", oracle.Params{Fields: "*", Languages: "de,en"}),
			Entry("of my own author", "lena", oracle.Params{Author: lenaID, Fields: "*"}),
			Entry("of another author", "reader", oracle.Params{Author: lenaID, Languages: "en,de"}),
			Entry("with the latest first", "", oracle.Params{Latest: true, Languages: "en,de"}),
			Entry("of an unknown author", "", oracle.Params{Author: nonexistentID}),
		)

		DescribeTable("single series match the fixtures",
			func(id string, params oracle.Params) {
				expected, expectedErr := scenario.Oracle.Series(oracle.Anonymous, id, params)
				actual, err := scenario.Client.GetSeries(ctx, id, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("in French falling back to nothing", flutID, oracle.Params{Fields: "*", Languages: "fr"}),
			Entry("in German", nightShiftID, oracle.Params{Fields: "*", Languages: "de"}),
			Entry("that does not exist", nonexistentID, oracle.Params{}),
		)
	})

	Context("When creating a series", func() {
		It("should round trip the name and language", func() {
			// Given: a series name in German
			// When: lena creates a series with it
			// Then: fetching the series returns exactly that name
			name := "Lighthouse " + api.GenerateTestID()

			body := api.NewSeriesPayload().
				WithName(name).
				WithLanguage("de").
				WithCollections(tideID, ashesID).
				Build()

			created := scenario.CreateSeriesWithCleanup(ctx, scenario.As("lena"), body)

			Expect(created).To(compare.HaveKeyCount(len(oracle.SeriesKeys)))
			Expect(created["author"]).To(Equal(lenaID))
			Expect(created["name"]).To(compare.BeLocalized("de", name))
			Expect(created["collections"]).To(Equal([]any{tideID, ashesID}))

			fetched, err := scenario.Client.GetSeries(ctx, api.StringField(created, "uuid"), oracle.Params{Fields: "names"})
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched["names"]).To(ConsistOf(map[string]any{"name": name, "language": "de"}))
		})

		It("should only list incomplete series to their owner", func() {
			created := scenario.CreateSeriesWithCleanup(ctx, scenario.As("lena"), api.NewSeriesPayload().WithCollections(ashesID).Build())

			id := api.StringField(created, "uuid")
			params := oracle.Params{Author: lenaID, Languages: "en,de", Fields: "uuid", Limit: "100"}

			owned, err := scenario.As("lena").ListSeries(ctx, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(api.Items(owned)).To(ContainElement(HaveKeyWithValue("uuid", id)))

			public, err := scenario.As("reader").ListSeries(ctx, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(api.Items(public)).NotTo(ContainElement(HaveKeyWithValue("uuid", id)))
		})

		It("should let a publisher create a series for their author", func() {
			created := scenario.CreateSeriesWithCleanup(ctx, scenario.As("quill"), api.NewSeriesPayload().WithAuthor(inesID).Build())

			Expect(created["author"]).To(Equal(inesID))
			Expect(created["collections"]).To(BeEmpty())
		})

		DescribeTable("invalid requests are rejected with every error in order",
			func(user string, body map[string]any, status int, codes ...openapi.ErrorCode) {
				client := scenario.Anonymous()
				if user != "" {
					client = scenario.As(user)
				}

				_, err := client.CreateSeries(ctx, body)
				api.VerifyRejected(err, status, codes...)
			},
			Entry("without a session", "", api.NewSeriesPayload().Build(),
				http.StatusUnauthorized, openapi.ErrorAuthenticationHeaderMissing),
			Entry("as a plain user", "reader", api.NewSeriesPayload().Build(),
				http.StatusForbidden, openapi.ErrorActionNotAllowed),
			Entry("as an admin with nothing", "admin", api.NewSeriesPayload().Without("name").Without("language").Build(),
				http.StatusBadRequest, openapi.ErrorAuthorMissing, openapi.ErrorNameMissing, openapi.ErrorLanguageMissing),
			Entry("with wrong types", "lena", api.NewSeriesPayload().WithName(7).WithLanguage(true).WithRawCollections("x").Build(),
				http.StatusBadRequest, openapi.ErrorNameWrongType, openapi.ErrorLanguageWrongType, openapi.ErrorCollectionsWrongType),
			Entry("with a short name", "lena", api.NewSeriesPayload().WithName("S").WithLanguage("xx").Build(),
				http.StatusBadRequest, openapi.ErrorNameTooShort, openapi.ErrorLanguageNotSupported),
			Entry("with a long name", "quill", api.NewSeriesPayload().WithAuthor(1).WithName(strings.Repeat("ß", 51)).WithRawCollections([]any{1}).Build(),
				http.StatusBadRequest, openapi.ErrorAuthorWrongType, openapi.ErrorNameTooLong, openapi.ErrorCollectionsWrongType),
			Entry("with an unknown author", "admin", api.NewSeriesPayload().WithAuthor(nonexistentID).Build(),
				http.StatusNotFound, openapi.ErrorAuthorDoesNotExist),
			Entry("for another publisher's author", "quill", api.NewSeriesPayload().WithAuthor(lenaID).Build(),
				http.StatusForbidden, openapi.ErrorActionNotAllowed),
			Entry("with an unknown collection", "lena", api.NewSeriesPayload().WithCollections(tideID, nonexistentID).Build(),
				http.StatusNotFound, openapi.ErrorStoreBookCollectionDoesNotExist),
			Entry("with another author's collection", "lena", api.NewSeriesPayload().WithCollections(tideID, trainsID).Build(),
				http.StatusForbidden, openapi.ErrorActionNotAllowed),
		)

		It("should reject bodies that aren't JSON", func() {
			_, err := scenario.As("lena").Post(ctx, "/store_book_series", "text/plain", []byte("name=Saga"))
			api.VerifyRejected(err, http.StatusUnsupportedMediaType, openapi.ErrorContentTypeNotSupported)
		})
	})
})
