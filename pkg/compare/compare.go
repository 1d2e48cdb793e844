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

// Package compare diffs simulated API results against live responses.
package compare

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// DifferenceKind classifies a difference.
type DifferenceKind string

const (
	// Missing means an expected key is absent.  A key that is present
	// with a null value is not missing.
	Missing DifferenceKind = "missing"
	// Unexpected means a key is present that shouldn't be.
	Unexpected DifferenceKind = "unexpected"
	// KeyCount means an object has the wrong number of keys.
	KeyCount DifferenceKind = "key count"
	// Length means an array has the wrong number of elements.
	Length DifferenceKind = "length"
	// Type means the JSON types differ, e.g. null vs a string.
	Type DifferenceKind = "type"
	// Value means two leaves differ.
	Value DifferenceKind = "value"
)

// Difference is a single mismatch.
type Difference struct {
	Path     string
	Kind     DifferenceKind
	Expected any
	Actual   any
}

func (d Difference) String() string {
	switch d.Kind {
	case Missing:
		return fmt.Sprintf("%s: missing, expected %s", d.Path, encode(d.Expected))
	case Unexpected:
		return fmt.Sprintf("%s: unexpected key with value %s", d.Path, encode(d.Actual))
	case KeyCount, Length:
		return fmt.Sprintf("%s: %s expected %v, got %v", d.Path, d.Kind, d.Expected, d.Actual)
	case Type, Value:
	}

	return fmt.Sprintf("%s: %s mismatch (-expected +actual):\n%s", d.Path, d.Kind, cmp.Diff(d.Expected, d.Actual))
}

// Option modifies how values are compared.
type Option func(*options)

type options struct {
	unordered []string
}

// Unordered compares the arrays at the path as multisets.  Paths are dot
// separated keys and indices, and * matches any single segment, e.g.
// "items.*.categories".
func Unordered(path string) Option {
	return func(o *options) {
		o.unordered = append(o.unordered, path)
	}
}

func (o *options) isUnordered(path string) bool {
	for _, pattern := range o.unordered {
		if match(pattern, path) {
			return true
		}
	}

	return false
}

func match(pattern, path string) bool {
	p := strings.Split(pattern, ".")
	s := strings.Split(path, ".")

	if len(p) != len(s) {
		return false
	}

	for i := range p {
		if p[i] != "*" && p[i] != s[i] {
			return false
		}
	}

	return true
}

// Normalize converts any JSON encodable value into the generic form decoded
// JSON has, so typed simulator output and decoded responses compare cleanly.
func Normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("normalizing value: %w", err)
	}

	var out any

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("normalizing value: %w", err)
	}

	return out, nil
}

// Diff compares expected and actual, returning every difference found.
func Diff(expected, actual any, opts ...Option) ([]Difference, error) {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	e, err := Normalize(expected)
	if err != nil {
		return nil, err
	}

	a, err := Normalize(actual)
	if err != nil {
		return nil, err
	}

	var out []Difference

	o.walk("", e, a, &out)

	return out, nil
}

func join(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + "." + segment
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	}

	return fmt.Sprintf("%T", v)
}

func (o *options) walk(path string, expected, actual any, out *[]Difference) {
	if typeName(expected) != typeName(actual) {
		*out = append(*out, Difference{Path: path, Kind: Type, Expected: expected, Actual: actual})
		return
	}

	switch e := expected.(type) {
	case map[string]any:
		//nolint:forcetypeassert
		o.walkObject(path, e, actual.(map[string]any), out)
	case []any:
		//nolint:forcetypeassert
		o.walkArray(path, e, actual.([]any), out)
	default:
		if !cmp.Equal(expected, actual) {
			*out = append(*out, Difference{Path: path, Kind: Value, Expected: expected, Actual: actual})
		}
	}
}

func (o *options) walkObject(path string, expected, actual map[string]any, out *[]Difference) {
	if len(expected) != len(actual) {
		*out = append(*out, Difference{Path: path, Kind: KeyCount, Expected: len(expected), Actual: len(actual)})
	}

	keys := make([]string, 0, len(expected))

	for k := range expected {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		a, ok := actual[k]
		if !ok {
			*out = append(*out, Difference{Path: join(path, k), Kind: Missing, Expected: expected[k]})
			continue
		}

		o.walk(join(path, k), expected[k], a, out)
	}

	extra := make([]string, 0, len(actual))

	for k := range actual {
		if _, ok := expected[k]; !ok {
			extra = append(extra, k)
		}
	}

	sort.Strings(extra)

	for _, k := range extra {
		*out = append(*out, Difference{Path: join(path, k), Kind: Unexpected, Actual: actual[k]})
	}
}

func (o *options) walkArray(path string, expected, actual []any, out *[]Difference) {
	if len(expected) != len(actual) {
		*out = append(*out, Difference{Path: path, Kind: Length, Expected: len(expected), Actual: len(actual)})
		return
	}

	if o.isUnordered(path) {
		expected = sorted(expected)
		actual = sorted(actual)
	}

	for i := range expected {
		o.walk(join(path, strconv.Itoa(i)), expected[i], actual[i], out)
	}
}

// sorted orders values by their canonical encoding, encoding/json sorts
// object keys so equal values encode identically.
func sorted(values []any) []any {
	out := slices.Clone(values)

	slices.SortFunc(out, func(a, b any) int {
		return strings.Compare(encode(a), encode(b))
	})

	return out
}

func encode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}
