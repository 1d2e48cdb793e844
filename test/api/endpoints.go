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

package api

import (
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Author endpoints.
func (e *Endpoints) Authors() string {
	return "/authors"
}

func (e *Endpoints) Author(authorID string) string {
	return fmt.Sprintf("/authors/%s", url.PathEscape(authorID))
}

func (e *Endpoints) AuthorProfileImage(authorID string) string {
	return fmt.Sprintf("/authors/%s/profile_image", url.PathEscape(authorID))
}

// Publisher endpoints.
func (e *Endpoints) Publishers() string {
	return "/publishers"
}

func (e *Endpoints) Publisher(publisherID string) string {
	return fmt.Sprintf("/publishers/%s", url.PathEscape(publisherID))
}

// Store book endpoints.
func (e *Endpoints) StoreBooks() string {
	return "/store_books"
}

func (e *Endpoints) StoreBook(storeBookID string) string {
	return fmt.Sprintf("/store_books/%s", url.PathEscape(storeBookID))
}

func (e *Endpoints) StoreBookPurchase(storeBookID string) string {
	return fmt.Sprintf("/store_books/%s/purchase", url.PathEscape(storeBookID))
}

func (e *Endpoints) Collection(collectionID string) string {
	return fmt.Sprintf("/store_book_collections/%s", url.PathEscape(collectionID))
}

// Series endpoints.
func (e *Endpoints) SeriesList() string {
	return "/store_book_series"
}

func (e *Endpoints) Series(seriesID string) string {
	return fmt.Sprintf("/store_book_series/%s", url.PathEscape(seriesID))
}

// Category endpoints.
func (e *Endpoints) Categories() string {
	return "/categories"
}

func (e *Endpoints) Category(key string) string {
	return fmt.Sprintf("/categories/%s", url.PathEscape(key))
}

// Table object service endpoints.
func (e *Endpoints) TableObject(id string) string {
	return fmt.Sprintf("/v1/table_objects/%s", url.PathEscape(id))
}

func (e *Endpoints) TableObjectFile(id string) string {
	return fmt.Sprintf("/v1/table_objects/%s/file", url.PathEscape(id))
}

func (e *Endpoints) TableObjectProperties(id string) string {
	return fmt.Sprintf("/v1/table_objects/%s/properties", url.PathEscape(id))
}

func (e *Endpoints) Purchase(id string) string {
	return fmt.Sprintf("/v1/purchases/%s", url.PathEscape(id))
}
