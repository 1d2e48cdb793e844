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

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"sigs.k8s.io/yaml"
)

var (
	// ErrInvalidReference is raised when an entity refers to another
	// entity that is not part of the dataset.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrDuplicate is raised when two entities share an identifier.
	ErrDuplicate = errors.New("duplicate identifier")

	// ErrInvalidUUID is raised when an identifier is not a UUID.
	ErrInvalidUUID = errors.New("invalid uuid")
)

//go:embed dataset.yaml
var defaultDataset []byte

// Dataset is the full set of fixture data a test run is based on.  Slices are
// in insertion order.  A dataset is built once per suite and passed to
// whatever needs it, there is no package level instance.
type Dataset struct {
	Users       []User       `json:"users"`
	Publishers  []Publisher  `json:"publishers"`
	Authors     []Author     `json:"authors"`
	Categories  []Category   `json:"categories"`
	Collections []Collection `json:"collections"`
	StoreBooks  []StoreBook  `json:"store_books"`
	Series      []Series     `json:"series"`
	Purchases   []Purchase   `json:"purchases"`

	usersByID          map[int]*User
	usersByToken       map[string]*User
	publishers         map[string]*Publisher
	authors            map[string]*Author
	categories         map[string]*Category
	categoriesByKey    map[string]*Category
	collections        map[string]*Collection
	storeBooks         map[string]*StoreBook
	series             map[string]*Series
	collectionBooks    map[string][]*StoreBook
	authorCollections  map[string][]*Collection
	publisherAuthors   map[string][]*Author
	completedPurchases map[int]map[string]bool
}

// Default returns a fresh copy of the embedded dataset.
func Default() (*Dataset, error) {
	return Parse(defaultDataset)
}

// Load reads a dataset from a YAML file, or returns the embedded dataset
// when the path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	d := &Dataset{}

	if err := yaml.UnmarshalStrict(data, d); err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}

	if err := d.index(); err != nil {
		return nil, err
	}

	return d, nil
}

// Clone returns a deep copy of the dataset that can be modified without
// affecting the original.
func (d *Dataset) Clone() (*Dataset, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	out := &Dataset{}

	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}

	if err := out.index(); err != nil {
		return nil, err
	}

	return out, nil
}

// AddSeries appends a series, as though it had been created through the API.
func (d *Dataset) AddSeries(s Series) error {
	d.Series = append(d.Series, s)

	return d.index()
}

func checkUUID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidUUID, kind, id)
	}

	return nil
}

//nolint:cyclop,gocognit
func (d *Dataset) index() error {
	d.usersByID = map[int]*User{}
	d.usersByToken = map[string]*User{}
	d.publishers = map[string]*Publisher{}
	d.authors = map[string]*Author{}
	d.categories = map[string]*Category{}
	d.categoriesByKey = map[string]*Category{}
	d.collections = map[string]*Collection{}
	d.storeBooks = map[string]*StoreBook{}
	d.series = map[string]*Series{}
	d.collectionBooks = map[string][]*StoreBook{}
	d.authorCollections = map[string][]*Collection{}
	d.publisherAuthors = map[string][]*Author{}
	d.completedPurchases = map[int]map[string]bool{}

	for i := range d.Users {
		u := &d.Users[i]

		if _, ok := d.usersByID[u.ID]; ok {
			return fmt.Errorf("%w: user %d", ErrDuplicate, u.ID)
		}

		d.usersByID[u.ID] = u
		d.usersByToken[u.Token] = u
	}

	for i := range d.Publishers {
		p := &d.Publishers[i]

		if err := checkUUID("publisher", p.UUID); err != nil {
			return err
		}

		if _, ok := d.usersByID[p.User]; !ok {
			return fmt.Errorf("%w: publisher %s user %d", ErrInvalidReference, p.UUID, p.User)
		}

		d.publishers[p.UUID] = p
	}

	for i := range d.Authors {
		a := &d.Authors[i]

		if err := checkUUID("author", a.UUID); err != nil {
			return err
		}

		if _, ok := d.authors[a.UUID]; ok {
			return fmt.Errorf("%w: author %s", ErrDuplicate, a.UUID)
		}

		if a.User != 0 {
			if _, ok := d.usersByID[a.User]; !ok {
				return fmt.Errorf("%w: author %s user %d", ErrInvalidReference, a.UUID, a.User)
			}
		}

		if a.Publisher != nil {
			if _, ok := d.publishers[*a.Publisher]; !ok {
				return fmt.Errorf("%w: author %s publisher %s", ErrInvalidReference, a.UUID, *a.Publisher)
			}

			d.publisherAuthors[*a.Publisher] = append(d.publisherAuthors[*a.Publisher], a)
		}

		d.authors[a.UUID] = a
	}

	for i := range d.Categories {
		c := &d.Categories[i]

		if err := checkUUID("category", c.UUID); err != nil {
			return err
		}

		if _, ok := d.categoriesByKey[c.Key]; ok {
			return fmt.Errorf("%w: category key %s", ErrDuplicate, c.Key)
		}

		d.categories[c.UUID] = c
		d.categoriesByKey[c.Key] = c
	}

	for i := range d.Collections {
		c := &d.Collections[i]

		if err := checkUUID("collection", c.UUID); err != nil {
			return err
		}

		if _, ok := d.authors[c.Author]; !ok {
			return fmt.Errorf("%w: collection %s author %s", ErrInvalidReference, c.UUID, c.Author)
		}

		d.collections[c.UUID] = c
		d.authorCollections[c.Author] = append(d.authorCollections[c.Author], c)
	}

	for i := range d.StoreBooks {
		b := &d.StoreBooks[i]

		if err := checkUUID("store book", b.UUID); err != nil {
			return err
		}

		if _, ok := d.storeBooks[b.UUID]; ok {
			return fmt.Errorf("%w: store book %s", ErrDuplicate, b.UUID)
		}

		if _, ok := d.collections[b.Collection]; !ok {
			return fmt.Errorf("%w: store book %s collection %s", ErrInvalidReference, b.UUID, b.Collection)
		}

		for _, r := range b.Releases {
			for _, c := range r.Categories {
				if _, ok := d.categories[c]; !ok {
					return fmt.Errorf("%w: release %s category %s", ErrInvalidReference, r.UUID, c)
				}
			}
		}

		d.storeBooks[b.UUID] = b
		d.collectionBooks[b.Collection] = append(d.collectionBooks[b.Collection], b)
	}

	for i := range d.Series {
		s := &d.Series[i]

		if err := checkUUID("series", s.UUID); err != nil {
			return err
		}

		if _, ok := d.authors[s.Author]; !ok {
			return fmt.Errorf("%w: series %s author %s", ErrInvalidReference, s.UUID, s.Author)
		}

		for _, c := range s.Collections {
			if _, ok := d.collections[c]; !ok {
				return fmt.Errorf("%w: series %s collection %s", ErrInvalidReference, s.UUID, c)
			}
		}

		d.series[s.UUID] = s
	}

	for _, u := range d.Users {
		for _, b := range u.Library {
			if _, ok := d.storeBooks[b]; !ok {
				return fmt.Errorf("%w: user %d library %s", ErrInvalidReference, u.ID, b)
			}
		}
	}

	for _, p := range d.Purchases {
		if _, ok := d.storeBooks[p.StoreBook]; !ok {
			return fmt.Errorf("%w: purchase %s store book %s", ErrInvalidReference, p.UUID, p.StoreBook)
		}

		if !p.Completed {
			continue
		}

		if d.completedPurchases[p.User] == nil {
			d.completedPurchases[p.User] = map[string]bool{}
		}

		d.completedPurchases[p.User][p.StoreBook] = true
	}

	return nil
}

// UserByToken looks up the user an access token belongs to.
func (d *Dataset) UserByToken(token string) *User {
	return d.usersByToken[token]
}

func (d *Dataset) User(id int) *User {
	return d.usersByID[id]
}

// UserByName looks up a user by its fixture name, e.g. "admin".
func (d *Dataset) UserByName(name string) *User {
	for i := range d.Users {
		if d.Users[i].Name == name {
			return &d.Users[i]
		}
	}

	return nil
}

func (d *Dataset) Publisher(id string) *Publisher {
	return d.publishers[id]
}

func (d *Dataset) Author(id string) *Author {
	return d.authors[id]
}

func (d *Dataset) Category(id string) *Category {
	return d.categories[id]
}

func (d *Dataset) CategoryByKey(key string) *Category {
	return d.categoriesByKey[key]
}

func (d *Dataset) Collection(id string) *Collection {
	return d.collections[id]
}

func (d *Dataset) StoreBook(id string) *StoreBook {
	return d.storeBooks[id]
}

func (d *Dataset) StoreBookSeries(id string) *Series {
	return d.series[id]
}

// CollectionBooks returns the books of a collection in insertion order.
func (d *Dataset) CollectionBooks(collection string) []*StoreBook {
	return d.collectionBooks[collection]
}

// AuthorCollections returns the collections of an author in insertion order.
func (d *Dataset) AuthorCollections(author string) []*Collection {
	return d.authorCollections[author]
}

// PublisherAuthors returns the authors of a publisher in insertion order.
func (d *Dataset) PublisherAuthors(publisher string) []*Author {
	return d.publisherAuthors[publisher]
}

// BookAuthor returns the author that a store book belongs to.
func (d *Dataset) BookAuthor(b *StoreBook) *Author {
	c := d.collections[b.Collection]
	if c == nil {
		return nil
	}

	return d.authors[c.Author]
}

// OwnsAuthor returns true if the user owns the author, either directly or
// through the author's publisher.  Admin rights are not ownership.
func (d *Dataset) OwnsAuthor(u *User, a *Author) bool {
	if u == nil || a == nil {
		return false
	}

	if a.User != 0 && a.User == u.ID {
		return true
	}

	if a.Publisher != nil {
		if p := d.publishers[*a.Publisher]; p != nil && p.User == u.ID {
			return true
		}
	}

	return false
}

// OwnsPublisher returns true if the user owns the publisher.
func (d *Dataset) OwnsPublisher(u *User, p *Publisher) bool {
	return u != nil && p != nil && p.User == u.ID
}

// OwnedAuthors returns every author owned by the user in insertion order.
func (d *Dataset) OwnedAuthors(u *User) []*Author {
	var out []*Author

	for i := range d.Authors {
		if d.OwnsAuthor(u, &d.Authors[i]) {
			out = append(out, &d.Authors[i])
		}
	}

	return out
}

// Purchased returns true if the user has a completed purchase of the book.
func (d *Dataset) Purchased(u *User, book string) bool {
	if u == nil {
		return false
	}

	return d.completedPurchases[u.ID][book]
}

// InLibrary returns true if the book is in the user's library.
func (d *Dataset) InLibrary(u *User, book string) bool {
	if u == nil {
		return false
	}

	for _, b := range u.Library {
		if b == book {
			return true
		}
	}

	return false
}
