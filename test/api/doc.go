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

// Package api provides integration test utilities for the Storebook API.
//
// # Oracle Comparison
//
// Scenarios don't hand derive expected payloads.  Each read is issued twice:
// once against the live API and once against the oracle (pkg/oracle), which
// recomputes the response from the same fixtures with the same query
// parameters.  The two are then diffed by pkg/compare.  Rejections work the
// same way, the oracle predicts the status and the ordered error codes.
//
// # Separate Client Implementation
//
// The APIClient is written by hand rather than generated from the OpenAPI
// document.  Any change to the API contract must have a compensating change
// here, which makes API evolution explicit and reviewable.  The client
// includes features tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Per request authentication with opaque session tokens
//   - Optional validation of every response against the OpenAPI document
//   - Direct access to HTTP status codes and error codes
//
// # Side Effects
//
// Uploads, purchases and created series are reverted out of band through the
// table object service.  Teardown is registered with Ginkgo when the resource
// is acquired, so it runs even when an assertion fails.
//
// # Local Mode
//
// When API_BASE_URL is unset the suites start the reference API in process,
// seeded from the same fixtures, so they run hermetically.
package api
