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
	"math"
	"net/http"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storebook/api-tests/pkg/compare"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
	"github.com/storebook/api-tests/test/api"
)

var _ = Describe("Authors", func() {
	Context("When listing authors", func() {
		DescribeTable("the response matches the fixtures",
			func(user string, params oracle.Params) {
				caller := oracle.Anonymous
				client := scenario.Anonymous()

				if user != "" {
					caller = scenario.Caller(user)
					client = scenario.As(user)
				}

				expected, expectedErr := scenario.Oracle.Authors(caller, params)
				actual, err := client.ListAuthors(ctx, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("with default fields", "", oracle.Params{}),
			Entry("with all fields in German", "", oracle.Params{Fields: "*", Languages: "de"}),
			Entry("with the latest first", "", oracle.Params{Fields: "uuid,first_name,last_name", Latest: true}),
			Entry("with a second page", "", oracle.Params{Limit: "4", Page: "2"}),
			Entry("owned by an admin", "admin", oracle.Params{Mine: true, Fields: "*"}),
			Entry("owned by a publisher", "quill", oracle.Params{Mine: true, Fields: "*"}),
			Entry("of a publisher", "", oracle.Params{Publisher: quillID, Fields: "*"}),
			Entry("of an unknown publisher", "", oracle.Params{Publisher: nonexistentID}),
			Entry("owned without a session", "", oracle.Params{Mine: true}),
			Entry("with every query parameter invalid", "", oracle.Params{Languages: "en,xx", Limit: "0", Page: "one"}),
		)

		It("should fall back to English bios for an owning admin", func() {
			// Given: an admin whose authors have English bios only
			// When: I list my authors in German
			// Then: every bio is the English one
			admin := scenario.User("admin")

			page, err := scenario.As("admin").ListAuthors(ctx, oracle.Params{Mine: true, Fields: "*", Languages: "de"})
			Expect(err).NotTo(HaveOccurred())

			items := api.Items(page)
			owned := scenario.Data.OwnedAuthors(admin)
			Expect(items).To(HaveLen(len(owned)))

			for i := range owned {
				Expect(items[i]["uuid"]).To(Equal(owned[i].UUID))
				Expect(items[i]["bio"]).To(compare.HaveLocalizedFallback(owned[i].Bios, []string{"de"}))
			}
		})

		It("should paginate consistently for every limit", func() {
			// Given: the full author list
			// When: I page through it with each possible limit
			// Then: item counts and page counts follow from the total
			all, err := scenario.Client.ListAuthors(ctx, oracle.Params{Limit: "100"})
			Expect(err).NotTo(HaveOccurred())

			total := len(api.Items(all))
			Expect(total).To(BeNumerically(">", 0))

			for limit := 1; limit <= total; limit++ {
				pages := int(math.Ceil(float64(total) / float64(limit)))

				for page := 1; page <= pages+1; page++ {
					params := oracle.Params{Limit: strconv.Itoa(limit), Page: strconv.Itoa(page)}

					result, err := scenario.Client.ListAuthors(ctx, params)
					Expect(err).NotTo(HaveOccurred())

					Expect(result["pages"]).To(BeNumerically("==", pages))
					Expect(api.Items(result)).To(HaveLen(max(0, min(limit, total-(page-1)*limit))))
				}
			}
		})
	})

	Context("When getting an author", func() {
		DescribeTable("the response matches the fixtures",
			func(id string, params oracle.Params) {
				expected, expectedErr := scenario.Oracle.Author(oracle.Anonymous, id, params)
				actual, err := scenario.Client.GetAuthor(ctx, id, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("with all fields", lenaID, oracle.Params{Fields: "*", Languages: "fr,de"}),
			Entry("with unknown fields ignored", theoID, oracle.Params{Fields: "bio,website_url,nonsense"}),
			Entry("with a publisher", inesID, oracle.Params{Fields: "*"}),
			Entry("that does not exist", nonexistentID, oracle.Params{}),
		)

		It("should return null for absent social accounts", func() {
			author, err := scenario.Client.GetAuthor(ctx, theoID, oracle.Params{Fields: "*"})
			Expect(err).NotTo(HaveOccurred())

			Expect(author).To(compare.HaveNullKey("facebook_username"))
			Expect(author).To(compare.HaveNullKey("profile_image"))
		})
	})

	Context("When listing publishers", func() {
		DescribeTable("the response matches the fixtures",
			func(user string, params oracle.Params) {
				caller := oracle.Anonymous
				client := scenario.Anonymous()

				if user != "" {
					caller = scenario.Caller(user)
					client = scenario.As(user)
				}

				expected, expectedErr := scenario.Oracle.Publishers(caller, params)
				actual, err := client.ListPublishers(ctx, params)

				verifyAgainstOracle(actual, err, expected, expectedErr)
			},
			Entry("with all fields", "", oracle.Params{Fields: "*"}),
			Entry("owned by a publisher", "quill", oracle.Params{Mine: true}),
			Entry("owned by an author", "lena", oracle.Params{Mine: true}),
			Entry("with an invalid limit", "", oracle.Params{Limit: "-1"}),
		)

		It("should get a single publisher", func() {
			expected, expectedErr := scenario.Oracle.Publisher(oracle.Anonymous, northID, oracle.Params{Fields: "*"})
			actual, err := scenario.Client.GetPublisher(ctx, northID, oracle.Params{Fields: "*"})

			verifyAgainstOracle(actual, err, expected, expectedErr)
		})

		It("should reject an unknown publisher", func() {
			_, err := scenario.Client.GetPublisher(ctx, nonexistentID, oracle.Params{})
			api.VerifyRejected(err, http.StatusNotFound, openapi.ErrorPublisherDoesNotExist)
		})
	})
})
