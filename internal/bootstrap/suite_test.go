package bootstrap_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestBootstrapScenarios is the entry point for the Ginkgo scenario suite.
func TestBootstrapScenarios(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bootstrap Scenario Suite")
}
