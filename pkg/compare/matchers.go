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

package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/storebook/api-tests/pkg/fixtures"
	"github.com/storebook/api-tests/pkg/oracle"
)

var ErrNotAnObject = errors.New("value is not a JSON object")

func object(actual any) (map[string]any, error) {
	n, err := Normalize(actual)
	if err != nil {
		return nil, err
	}

	m, ok := n.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAnObject, format.Object(actual, 1))
	}

	return m, nil
}

type oracleMatcher struct {
	expected    any
	options     []Option
	differences []Difference
}

// MatchOracle succeeds when the actual value has no differences from the
// simulated one.  On failure every difference is reported, not just the
// first.
func MatchOracle(expected any, opts ...Option) types.GomegaMatcher {
	return &oracleMatcher{
		expected: expected,
		options:  opts,
	}
}

func (m *oracleMatcher) Match(actual any) (bool, error) {
	differences, err := Diff(m.expected, actual, m.options...)
	if err != nil {
		return false, err
	}

	m.differences = differences

	return len(differences) == 0, nil
}

func (m *oracleMatcher) FailureMessage(actual any) string {
	lines := make([]string, len(m.differences))

	for i := range m.differences {
		lines[i] = "  " + m.differences[i].String()
	}

	return fmt.Sprintf("Expected response to match the oracle, found %d differences:\n%s", len(m.differences), strings.Join(lines, "\n"))
}

func (m *oracleMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to match the oracle", m.expected)
}

type keyCountMatcher struct {
	count int
}

// HaveKeyCount succeeds when an object has exactly count top level keys.
func HaveKeyCount(count int) types.GomegaMatcher {
	return &keyCountMatcher{
		count: count,
	}
}

func (m *keyCountMatcher) Match(actual any) (bool, error) {
	o, err := object(actual)
	if err != nil {
		return false, err
	}

	return len(o) == m.count, nil
}

func (m *keyCountMatcher) FailureMessage(actual any) string {
	return format.Message(actual, fmt.Sprintf("to have %d keys", m.count))
}

func (m *keyCountMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, fmt.Sprintf("not to have %d keys", m.count))
}

type nullKeyMatcher struct {
	key string
}

// HaveNullKey succeeds when the key is present with an explicit null, an
// absent key fails.
func HaveNullKey(key string) types.GomegaMatcher {
	return &nullKeyMatcher{
		key: key,
	}
}

func (m *nullKeyMatcher) Match(actual any) (bool, error) {
	o, err := object(actual)
	if err != nil {
		return false, err
	}

	v, ok := o[m.key]

	return ok && v == nil, nil
}

func (m *nullKeyMatcher) FailureMessage(actual any) string {
	return format.Message(actual, fmt.Sprintf("to have key %q set to null", m.key))
}

func (m *nullKeyMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, fmt.Sprintf("not to have key %q set to null", m.key))
}

type localizedMatcher struct {
	language string
	value    string
}

// BeLocalized succeeds when the value is a {language, value} pair with the
// given contents.
func BeLocalized(language, value string) types.GomegaMatcher {
	return &localizedMatcher{
		language: language,
		value:    value,
	}
}

func (m *localizedMatcher) Match(actual any) (bool, error) {
	o, err := object(actual)
	if err != nil {
		return false, err
	}

	return len(o) == 2 && o["language"] == m.language && o["value"] == m.value, nil
}

func (m *localizedMatcher) FailureMessage(actual any) string {
	return format.Message(actual, "to be localized as", map[string]string{"language": m.language, "value": m.value})
}

func (m *localizedMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to be localized as", map[string]string{"language": m.language, "value": m.value})
}

// HaveLocalizedFallback succeeds when the value is what the fallback rule
// picks out of values for the requested languages: the first requested
// language that exists, then English, then null.
func HaveLocalizedFallback(values []fixtures.Localized, languages []string) types.GomegaMatcher {
	l := oracle.Localize(values, languages)
	if l == nil {
		return &nilMatcher{}
	}

	return BeLocalized(l.Language, l.Value)
}

type nilMatcher struct{}

func (m *nilMatcher) Match(actual any) (bool, error) {
	n, err := Normalize(actual)
	if err != nil {
		return false, err
	}

	return n == nil, nil
}

func (m *nilMatcher) FailureMessage(actual any) string {
	return format.Message(actual, "to be null as no requested language or English exists")
}

func (m *nilMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to be null")
}
