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

//nolint:paralleltest // environment variables are process wide
package api_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/storebook/api-tests/test/api"
)

func clearEnvironment(t *testing.T) {
	t.Helper()

	for _, key := range []string{"API_BASE_URL", "TABLE_OBJECT_BASE_URL", "TABLE_OBJECT_TOKEN", "FIXTURES_FILE", "REQUEST_TIMEOUT", "TEST_TIMEOUT", "VALIDATE_SCHEMA"} {
		t.Setenv(key, "")
	}
}

func TestLoadTestConfigLocal(t *testing.T) {
	clearEnvironment(t)

	config, err := api.LoadTestConfig()
	require.NoError(t, err)
	require.True(t, config.Local())
	require.True(t, config.ValidateSchema)
	require.Equal(t, 30*time.Second, config.RequestTimeout)
	require.Equal(t, 5*time.Minute, config.TestTimeout)
}

func TestLoadTestConfigRemote(t *testing.T) {
	clearEnvironment(t)

	t.Setenv("API_BASE_URL", "https://api.storebook.example/")

	_, err := api.LoadTestConfig()
	require.ErrorIs(t, err, api.ErrMissingConfiguration)

	t.Setenv("TABLE_OBJECT_TOKEN", "secret")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("VALIDATE_SCHEMA", "false")

	config, err := api.LoadTestConfig()
	require.NoError(t, err)
	require.False(t, config.Local())
	require.Equal(t, "https://api.storebook.example", config.BaseURL)
	require.Equal(t, config.BaseURL, config.TableObjectBaseURL)
	require.Equal(t, 5*time.Second, config.RequestTimeout)
	require.False(t, config.ValidateSchema)
}

func TestLoadTestConfigBadValues(t *testing.T) {
	clearEnvironment(t)

	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("VALIDATE_SCHEMA", "perhaps")

	config, err := api.LoadTestConfig()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, config.RequestTimeout)
	require.True(t, config.ValidateSchema)
}
