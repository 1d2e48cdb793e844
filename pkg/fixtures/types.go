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

package fixtures

// StoreApp is the application the API accepts session tokens of.
const StoreApp = 1

// Role is the role flag attached to a user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAuthor    Role = "author"
	RolePublisher Role = "publisher"
	RoleUser      Role = "user"
)

// Status is the publication status of a store book.
type Status string

const (
	StatusUnpublished Status = "unpublished"
	StatusReview      Status = "review"
	StatusHidden      Status = "hidden"
	StatusPublished   Status = "published"
)

// ReleaseStatus is the publication status of a single store book release.
type ReleaseStatus string

const (
	ReleaseUnpublished ReleaseStatus = "unpublished"
	ReleasePublished   ReleaseStatus = "published"
)

// Localized is a value in a specific language, e.g. a bio or a collection name.
type Localized struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Image is an image table object, e.g. a profile image, logo or cover.
type Image struct {
	UUID     string  `json:"uuid"`
	Blurhash *string `json:"blurhash,omitempty"`
	// Color is used to render the fixture image bytes.
	Color string `json:"color,omitempty"`
}

// File is the ebook file of a release.
type File struct {
	UUID     string `json:"uuid"`
	FileName string `json:"file_name"`
}

type User struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Token   string   `json:"token"`
	App     int      `json:"app"`
	Role    Role     `json:"role"`
	Library []string `json:"library,omitempty"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Publisher struct {
	UUID              string  `json:"uuid"`
	User              int     `json:"user"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	WebsiteURL        *string `json:"website_url,omitempty"`
	FacebookUsername  *string `json:"facebook_username,omitempty"`
	InstagramUsername *string `json:"instagram_username,omitempty"`
	TwitterUsername   *string `json:"twitter_username,omitempty"`
	Logo              *Image  `json:"logo,omitempty"`
}

type Author struct {
	UUID string `json:"uuid"`
	// User is the directly owning user, zero when the author is owned
	// through a publisher.
	User              int         `json:"user,omitempty"`
	Publisher         *string     `json:"publisher,omitempty"`
	FirstName         string      `json:"first_name"`
	LastName          string      `json:"last_name"`
	Bios              []Localized `json:"bios,omitempty"`
	WebsiteURL        *string     `json:"website_url,omitempty"`
	FacebookUsername  *string     `json:"facebook_username,omitempty"`
	InstagramUsername *string     `json:"instagram_username,omitempty"`
	TwitterUsername   *string     `json:"twitter_username,omitempty"`
	ProfileImage      *Image      `json:"profile_image,omitempty"`
	// PaymentSetup is set when the author can receive payments for
	// priced books.
	PaymentSetup bool `json:"payment_setup,omitempty"`
}

type Category struct {
	UUID  string      `json:"uuid"`
	Key   string      `json:"key"`
	Names []Localized `json:"names"`
}

type Collection struct {
	UUID   string      `json:"uuid"`
	Author string      `json:"author"`
	Names  []Localized `json:"names"`
}

type Release struct {
	UUID         string        `json:"uuid"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Price        *int          `json:"price,omitempty"`
	ISBN         *string       `json:"isbn,omitempty"`
	Categories   []string      `json:"categories,omitempty"`
	Cover        *Image        `json:"cover,omitempty"`
	File         *File         `json:"file,omitempty"`
	ReleaseName  string        `json:"release_name"`
	ReleaseNotes *string       `json:"release_notes,omitempty"`
	Status       ReleaseStatus `json:"status"`
}

type StoreBook struct {
	UUID       string    `json:"uuid"`
	Collection string    `json:"collection"`
	Language   string    `json:"language"`
	Status     Status    `json:"status"`
	Releases   []Release `json:"releases,omitempty"`
}

// LatestRelease returns the last release of the book, or nil when there is none.
func (b *StoreBook) LatestRelease() *Release {
	if len(b.Releases) == 0 {
		return nil
	}

	return &b.Releases[len(b.Releases)-1]
}

type Series struct {
	UUID        string      `json:"uuid"`
	Author      string      `json:"author"`
	Names       []Localized `json:"names"`
	Collections []string    `json:"collections,omitempty"`
}

type Purchase struct {
	UUID            string  `json:"uuid"`
	User            int     `json:"user"`
	StoreBook       string  `json:"store_book"`
	Price           int     `json:"price"`
	Currency        string  `json:"currency"`
	Completed       bool    `json:"completed"`
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
}
