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

package openapi

import (
	"net/http"
)

//nolint:gochecknoglobals
var (
	// Authentication.
	ErrorAuthenticationHeaderMissing = Numeric(2101)
	ErrorSessionDoesNotExist         = Numeric(2814)
	ErrorTokenOfOtherApp             = Numeric(1103)

	// Authorization.
	ErrorActionNotAllowed = Slug("action_not_allowed")

	// Validation.
	ErrorContentTypeNotSupported = Slug("content_type_not_supported")
	ErrorAuthorMissing           = Slug("author_missing")
	ErrorAuthorWrongType         = Slug("author_wrong_type")
	ErrorNameMissing             = Slug("name_missing")
	ErrorNameWrongType           = Slug("name_wrong_type")
	ErrorNameTooShort            = Slug("name_too_short")
	ErrorNameTooLong             = Slug("name_too_long")
	ErrorLanguageMissing         = Slug("language_missing")
	ErrorLanguageWrongType       = Slug("language_wrong_type")
	ErrorLanguageNotSupported    = Slug("language_not_supported")
	ErrorCollectionsWrongType    = Slug("collections_wrong_type")
	ErrorCurrencyMissing         = Slug("currency_missing")
	ErrorCurrencyWrongType       = Slug("currency_wrong_type")
	ErrorCurrencyNotSupported    = Slug("currency_not_supported")
	ErrorLimitInvalid            = Slug("limit_invalid")
	ErrorPageInvalid             = Slug("page_invalid")
	ErrorImageDataInvalid        = Slug("image_data_invalid")
	ErrorBodyInvalid             = Slug("body_invalid")
	ErrorBodyTooLarge            = Slug("body_too_large")

	// Existence.
	ErrorAuthorDoesNotExist              = Slug("author_does_not_exist")
	ErrorPublisherDoesNotExist           = Slug("publisher_does_not_exist")
	ErrorStoreBookDoesNotExist           = Slug("store_book_does_not_exist")
	ErrorStoreBookCollectionDoesNotExist = Slug("store_book_collection_does_not_exist")
	ErrorStoreBookSeriesDoesNotExist     = Slug("store_book_series_does_not_exist")
	ErrorCategoryDoesNotExist            = Slug("category_does_not_exist")
	ErrorProfileImageDoesNotExist        = Slug("profile_image_does_not_exist")
	ErrorTableObjectDoesNotExist         = Slug("table_object_does_not_exist")
	ErrorPurchaseDoesNotExist            = Slug("purchase_does_not_exist")

	// State and preconditions.
	ErrorStoreBookSeriesIncomplete   = Slug("store_book_series_incomplete")
	ErrorStoreBookNotPublished       = Slug("store_book_not_published")
	ErrorStoreBookAlreadyPurchased   = Slug("store_book_already_purchased")
	ErrorPriceDoesNotExist           = Slug("price_does_not_exist")
	ErrorSellerPaymentSetupMissing   = Slug("seller_payment_setup_missing")
	ErrorUnexpected                  = Slug("unexpected_error")
	ErrorResourceTemporarilyUnusable = Slug("resource_temporarily_unusable")
)

type codeInfo struct {
	status  int
	message string
}

//nolint:gochecknoglobals
var catalogue = map[ErrorCode]codeInfo{
	ErrorAuthenticationHeaderMissing: {http.StatusUnauthorized, "Authorization header missing"},
	ErrorSessionDoesNotExist:         {http.StatusNotFound, "Session does not exist"},
	ErrorTokenOfOtherApp:             {http.StatusForbidden, "Action not allowed for the app of this session"},

	ErrorActionNotAllowed: {http.StatusForbidden, "Action not allowed"},

	ErrorContentTypeNotSupported: {http.StatusUnsupportedMediaType, "Content-Type not supported"},
	ErrorAuthorMissing:           {http.StatusBadRequest, "author missing"},
	ErrorAuthorWrongType:         {http.StatusBadRequest, "author has the wrong type"},
	ErrorNameMissing:             {http.StatusBadRequest, "name missing"},
	ErrorNameWrongType:           {http.StatusBadRequest, "name has the wrong type"},
	ErrorNameTooShort:            {http.StatusBadRequest, "name too short"},
	ErrorNameTooLong:             {http.StatusBadRequest, "name too long"},
	ErrorLanguageMissing:         {http.StatusBadRequest, "language missing"},
	ErrorLanguageWrongType:       {http.StatusBadRequest, "language has the wrong type"},
	ErrorLanguageNotSupported:    {http.StatusBadRequest, "language not supported"},
	ErrorCollectionsWrongType:    {http.StatusBadRequest, "collections has the wrong type"},
	ErrorCurrencyMissing:         {http.StatusBadRequest, "currency missing"},
	ErrorCurrencyWrongType:       {http.StatusBadRequest, "currency has the wrong type"},
	ErrorCurrencyNotSupported:    {http.StatusBadRequest, "currency not supported"},
	ErrorLimitInvalid:            {http.StatusBadRequest, "limit must be a positive integer"},
	ErrorPageInvalid:             {http.StatusBadRequest, "page must be a positive integer"},
	ErrorImageDataInvalid:        {http.StatusBadRequest, "image data could not be decoded"},
	ErrorBodyInvalid:             {http.StatusBadRequest, "request body is not a JSON object"},
	ErrorBodyTooLarge:            {http.StatusRequestEntityTooLarge, "request body is too large"},

	ErrorAuthorDoesNotExist:              {http.StatusNotFound, "Author does not exist"},
	ErrorPublisherDoesNotExist:           {http.StatusNotFound, "Publisher does not exist"},
	ErrorStoreBookDoesNotExist:           {http.StatusNotFound, "StoreBook does not exist"},
	ErrorStoreBookCollectionDoesNotExist: {http.StatusNotFound, "StoreBookCollection does not exist"},
	ErrorStoreBookSeriesDoesNotExist:     {http.StatusNotFound, "StoreBookSeries does not exist"},
	ErrorCategoryDoesNotExist:            {http.StatusNotFound, "Category does not exist"},
	ErrorProfileImageDoesNotExist:        {http.StatusNotFound, "Profile image does not exist"},
	ErrorTableObjectDoesNotExist:         {http.StatusNotFound, "TableObject does not exist"},
	ErrorPurchaseDoesNotExist:            {http.StatusNotFound, "Purchase does not exist"},

	ErrorStoreBookSeriesIncomplete:   {http.StatusPreconditionFailed, "StoreBookSeries has no published book for every collection in the requested languages"},
	ErrorStoreBookNotPublished:       {http.StatusPreconditionFailed, "StoreBook is not published"},
	ErrorStoreBookAlreadyPurchased:   {http.StatusUnprocessableEntity, "StoreBook already purchased"},
	ErrorPriceDoesNotExist:           {http.StatusPreconditionFailed, "Price does not exist"},
	ErrorSellerPaymentSetupMissing:   {http.StatusPreconditionFailed, "Seller cannot receive payments"},
	ErrorUnexpected:                  {http.StatusInternalServerError, "Unexpected error"},
	ErrorResourceTemporarilyUnusable: {http.StatusServiceUnavailable, "Resource temporarily unusable"},
}

// Status returns the HTTP status code the API responds with for an error code.
func Status(code ErrorCode) int {
	if info, ok := catalogue[code]; ok {
		return info.status
	}

	return http.StatusInternalServerError
}

// Message returns the human readable message for an error code.
func Message(code ErrorCode) string {
	return catalogue[code].message
}
