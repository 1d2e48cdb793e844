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
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// SeriesPayloadBuilder builds series creation bodies.  Fields hold raw JSON
// values so wrong types can be sent too.
type SeriesPayloadBuilder struct {
	payload map[string]any
}

// NewSeriesPayload creates a valid English series body with a unique name
// and no collections.
func NewSeriesPayload() *SeriesPayloadBuilder {
	return &SeriesPayloadBuilder{
		payload: map[string]any{
			"name":     generateRandomName("series"),
			"language": "en",
		},
	}
}

// WithAuthor sets the author, required for admins and publishers.
func (b *SeriesPayloadBuilder) WithAuthor(author any) *SeriesPayloadBuilder {
	b.payload["author"] = author
	return b
}

func (b *SeriesPayloadBuilder) WithName(name any) *SeriesPayloadBuilder {
	b.payload["name"] = name
	return b
}

func (b *SeriesPayloadBuilder) WithLanguage(language any) *SeriesPayloadBuilder {
	b.payload["language"] = language
	return b
}

func (b *SeriesPayloadBuilder) WithCollections(collections ...string) *SeriesPayloadBuilder {
	b.payload["collections"] = collections
	return b
}

// WithRawCollections sets collections to anything, e.g. a string.
func (b *SeriesPayloadBuilder) WithRawCollections(collections any) *SeriesPayloadBuilder {
	b.payload["collections"] = collections
	return b
}

// Without removes a field.
func (b *SeriesPayloadBuilder) Without(field string) *SeriesPayloadBuilder {
	delete(b.payload, field)
	return b
}

// Build returns the completed series payload.
func (b *SeriesPayloadBuilder) Build() map[string]any {
	return b.payload
}
