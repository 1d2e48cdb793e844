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

package oracle

import (
	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/openapi"
)

// Authors simulates GET /authors.
func (s *Simulator) Authors(c Caller, p Params) (*Page, error) {
	u, err := s.authenticate(c, p.Mine)
	if err != nil {
		return nil, err
	}

	q, err := parseQuery(p)
	if err != nil {
		return nil, err
	}

	var publisher *fixtures.Publisher

	if p.Publisher != "" {
		if publisher = s.data.Publisher(p.Publisher); publisher == nil {
			return nil, reject(openapi.ErrorPublisherDoesNotExist)
		}
	}

	var authors []*fixtures.Author

	for i := range s.data.Authors {
		a := &s.data.Authors[i]

		if p.Mine && !s.data.OwnsAuthor(u, a) {
			continue
		}

		if publisher != nil && (a.Publisher == nil || *a.Publisher != publisher.UUID) {
			continue
		}

		authors = append(authors, a)
	}

	authors, pages := paginate(authors, p.Latest, q.limit, q.page)

	keys := selectFields(p.Fields, AuthorKeys)

	out := &Page{
		Pages: pages,
		Items: make([]map[string]any, 0, len(authors)),
	}

	for _, a := range authors {
		out.Items = append(out.Items, project(s.author(a, q.languages), keys))
	}

	return out, nil
}

// Author simulates GET /authors/{uuid}.
func (s *Simulator) Author(c Caller, id string, p Params) (map[string]any, error) {
	if _, err := s.authenticate(c, false); err != nil {
		return nil, err
	}

	languages, err := parseLanguages(p)
	if err != nil {
		return nil, err
	}

	a := s.data.Author(id)
	if a == nil {
		return nil, reject(openapi.ErrorAuthorDoesNotExist)
	}

	return project(s.author(a, languages), selectFields(p.Fields, AuthorKeys)), nil
}

// AuthorProfileImage simulates GET /authors/{uuid}/profile_image.  The
// blurhash is whatever the fixtures say, servers compute missing ones on
// read so callers should only compare it when the fixture has one.
func (s *Simulator) AuthorProfileImage(c Caller, id string) (map[string]any, error) {
	if _, err := s.authenticate(c, false); err != nil {
		return nil, err
	}

	a := s.data.Author(id)
	if a == nil {
		return nil, reject(openapi.ErrorAuthorDoesNotExist)
	}

	if a.ProfileImage == nil {
		return nil, reject(openapi.ErrorProfileImageDoesNotExist)
	}

	//nolint:forcetypeassert
	return imageItem(a.ProfileImage).(map[string]any), nil
}

// Publishers simulates GET /publishers.
func (s *Simulator) Publishers(c Caller, p Params) (*Page, error) {
	u, err := s.authenticate(c, p.Mine)
	if err != nil {
		return nil, err
	}

	q, err := parseQuery(p)
	if err != nil {
		return nil, err
	}

	var publishers []*fixtures.Publisher

	for i := range s.data.Publishers {
		pub := &s.data.Publishers[i]

		if p.Mine && !s.data.OwnsPublisher(u, pub) {
			continue
		}

		publishers = append(publishers, pub)
	}

	publishers, pages := paginate(publishers, p.Latest, q.limit, q.page)

	keys := selectFields(p.Fields, PublisherKeys)

	out := &Page{
		Pages: pages,
		Items: make([]map[string]any, 0, len(publishers)),
	}

	for _, pub := range publishers {
		out.Items = append(out.Items, project(s.publisher(pub), keys))
	}

	return out, nil
}

// Publisher simulates GET /publishers/{uuid}.
func (s *Simulator) Publisher(c Caller, id string, p Params) (map[string]any, error) {
	if _, err := s.authenticate(c, false); err != nil {
		return nil, err
	}

	pub := s.data.Publisher(id)
	if pub == nil {
		return nil, reject(openapi.ErrorPublisherDoesNotExist)
	}

	return project(s.publisher(pub), selectFields(p.Fields, PublisherKeys)), nil
}
