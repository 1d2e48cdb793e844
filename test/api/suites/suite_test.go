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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/storebook/api-tests/pkg/compare"
	"github.com/storebook/api-tests/test/api"
)

// Identifiers from the default fixture dataset.
const (
	lenaID        = "4e7a8c1d-2b3f-4a5e-9c6d-1f2a3b4c5d01"
	theoID        = "4e7a8c1d-2b3f-4a5e-9c6d-1f2a3b4c5d02"
	adaID         = "4e7a8c1d-2b3f-4a5e-9c6d-1f2a3b4c5d03"
	inesID        = "4e7a8c1d-2b3f-4a5e-9c6d-1f2a3b4c5d05"
	quillID       = "7c2e9b4a-5d1f-4e8a-b3c6-2a4d6f8e0101"
	northID       = "7c2e9b4a-5d1f-4e8a-b3c6-2a4d6f8e0102"
	tideID        = "5b3d7f9a-1c2e-4d6f-8a0b-3c5e7a9b1d01"
	ashesID       = "5b3d7f9a-1c2e-4d6f-8a0b-3c5e7a9b1d02"
	winterID      = "5b3d7f9a-1c2e-4d6f-8a0b-3c5e7a9b1d03"
	trainsID      = "5b3d7f9a-1c2e-4d6f-8a0b-3c5e7a9b1d04"
	nightShiftID  = "6a8c0e2b-4d6f-4a1c-8e3b-5d7f9a1c3e01"
	tidesID       = "6a8c0e2b-4d6f-4a1c-8e3b-5d7f9a1c3e02"
	flutID        = "6a8c0e2b-4d6f-4a1c-8e3b-5d7f9a1c3e03"
	purchaseID    = "3e5a7c9b-1d3f-4b6d-8a2c-4e6a8c0e2a01"
	nonexistentID = "00000000-0000-4000-8000-000000000000"
)

func storeBookID(n string) string {
	return "9f1e3d5c-7b9a-4c2e-a6d8-0f2b4d6e8a" + n
}

var (
	scenario *api.Scenario
	ctx      context.Context
	config   *api.TestConfig
)

var _ = BeforeSuite(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	scenario, err = api.NewScenario(context.Background(), config)
	Expect(err).NotTo(HaveOccurred())

	DeferCleanup(scenario.Close)
})

var _ = BeforeEach(func() {
	ctx = context.Background()
})

// verifyAgainstOracle checks a live response matches what the oracle
// computed, or that both rejected the request the same way.
func verifyAgainstOracle(actual map[string]any, err error, expected any, expectedErr error, opts ...compare.Option) {
	GinkgoHelper()

	if expectedErr != nil {
		api.VerifyRejection(err, expectedErr)
		return
	}

	Expect(err).NotTo(HaveOccurred())
	Expect(actual).To(compare.MatchOracle(expected, opts...))
}

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Test Suites")
}
