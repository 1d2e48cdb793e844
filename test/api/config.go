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
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type TestConfig struct {
	// BaseURL is the API under test.  When empty the suites start a local
	// reference API loaded with the fixtures.
	BaseURL string
	// TableObjectBaseURL is the table object service used for cleanup,
	// defaulting to BaseURL.
	TableObjectBaseURL string
	// TableObjectToken authenticates against the table object service.
	TableObjectToken string
	// FixturesFile overrides the embedded fixture dataset.  It must
	// describe what the remote API is seeded with.
	FixturesFile    string
	RequestTimeout  time.Duration
	TestTimeout     time.Duration
	ValidateSchema  bool
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// Local returns true when the suites run against an in process reference
// API rather than a deployed one.
func (c *TestConfig) Local() bool {
	return c.BaseURL == ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:            strings.TrimSuffix(os.Getenv("API_BASE_URL"), "/"),
		TableObjectBaseURL: strings.TrimSuffix(os.Getenv("TABLE_OBJECT_BASE_URL"), "/"),
		TableObjectToken:   os.Getenv("TABLE_OBJECT_TOKEN"),
		FixturesFile:       os.Getenv("FIXTURES_FILE"),
		RequestTimeout:     getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:        getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		ValidateSchema:     getBoolWithDefault("VALIDATE_SCHEMA", true),
		SkipIntegration:    getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:       getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:        getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:       getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.TableObjectBaseURL == "" {
		config.TableObjectBaseURL = config.BaseURL
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api directory
		"../../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
// Nothing is required locally, a remote API needs the cleanup token.
func validateRequiredFields(config *TestConfig) error {
	if config.Local() {
		return nil
	}

	var missing []string

	required := map[string]string{
		"TABLE_OBJECT_TOKEN": config.TableObjectToken,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
