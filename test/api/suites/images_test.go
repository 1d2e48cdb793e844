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
	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
	"github.com/storebook/api-tests/pkg/oracle"
	"github.com/storebook/api-tests/test/api"
)

func renderImage(color string) []byte {
	GinkgoHelper()

	data, err := fixtures.RenderImage(color)
	Expect(err).NotTo(HaveOccurred())

	return data
}

var _ = Describe("Profile Images", func() {
	Context("When uploading a profile image", func() {
		DescribeTable("invalid uploads are rejected",
			func(user, author, contentType string, data []byte, status int, codes ...openapi.ErrorCode) {
				client := scenario.Anonymous()
				if user != "" {
					client = scenario.As(user)
				}

				_, err := client.PutAuthorProfileImage(ctx, author, contentType, data)
				api.VerifyRejected(err, status, codes...)
			},
			Entry("without a session", "", lenaID, openapi.ContentTypePNG, []byte("png"),
				http.StatusUnauthorized, openapi.ErrorAuthenticationHeaderMissing),
			Entry("with an unsupported content type", "lena", lenaID, "image/gif", []byte("gif"),
				http.StatusUnsupportedMediaType, openapi.ErrorContentTypeNotSupported),
			Entry("for an unknown author", "lena", nonexistentID, openapi.ContentTypePNG, []byte("png"),
				http.StatusNotFound, openapi.ErrorAuthorDoesNotExist),
			Entry("for another author", "theo", lenaID, openapi.ContentTypePNG, []byte("png"),
				http.StatusForbidden, openapi.ErrorActionNotAllowed),
			Entry("that isn't an image", "lena", lenaID, openapi.ContentTypePNG, []byte("definitely not a png"),
				http.StatusBadRequest, openapi.ErrorImageDataInvalid),
		)

		It("should keep the image identity and recompute the blurhash", func() {
			// Given: lena has a profile image with a blurhash
			// When: she uploads different bytes
			// Then: the image uuid is unchanged and the blurhash is reset,
			// then recomputed when next read
			before, err := scenario.Client.GetAuthorProfileImage(ctx, lenaID)
			Expect(err).NotTo(HaveOccurred())
			Expect(before["blurhash"]).NotTo(BeNil())

			image := scenario.UploadProfileImageWithCleanup(ctx, scenario.As("lena"), lenaID, openapi.ContentTypePNG, renderImage("#2a9d8f"))

			Expect(image["uuid"]).To(Equal(before["uuid"]))
			Expect(image).To(compare.HaveNullKey("blurhash"))

			after, err := scenario.Client.GetAuthorProfileImage(ctx, lenaID)
			Expect(err).NotTo(HaveOccurred())
			Expect(after["uuid"]).To(Equal(before["uuid"]))
			Expect(after["blurhash"]).To(BeAssignableToTypeOf(""))
		})

		It("should let an admin upload for any author", func() {
			image := scenario.UploadProfileImageWithCleanup(ctx, scenario.As("admin"), lenaID, openapi.ContentTypePNG, renderImage("#e76f51"))

			Expect(image["uuid"]).To(Equal(scenario.Data.Author(lenaID).ProfileImage.UUID))
		})

		It("should create an image for an author without one", func() {
			_, err := scenario.Client.GetAuthorProfileImage(ctx, theoID)
			api.VerifyRejected(err, http.StatusNotFound, openapi.ErrorProfileImageDoesNotExist)

			image := scenario.UploadProfileImageWithCleanup(ctx, scenario.As("theo"), theoID, openapi.ContentTypePNG, renderImage("#264653"))

			Expect(image["url"]).To(Equal(openapi.TableObjectFileURL(api.StringField(image, "uuid"))))

			author, err := scenario.Client.GetAuthor(ctx, theoID, oracle.Params{Fields: "profile_image"})
			Expect(err).NotTo(HaveOccurred())
			Expect(author["profile_image"]).To(HaveKeyWithValue("uuid", image["uuid"]))
		})

		It("should serve the uploaded bytes", func() {
			data := renderImage("#f4a261")

			image := scenario.UploadProfileImageWithCleanup(ctx, scenario.As("lena"), lenaID, openapi.ContentTypePNG, data)

			file, err := scenario.Objects.GetTableObjectFile(ctx, api.StringField(image, "uuid"))
			Expect(err).NotTo(HaveOccurred())
			Expect(file).To(Equal(data))
		})
	})
})
