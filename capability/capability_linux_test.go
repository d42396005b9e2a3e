//go:build linux

package capability_test

import (
	"code.cloudfoundry.org/execas/capability"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The mutation paths need privilege the test environment does not have; the
// runner's fake-based tests cover their ordering. What can be asserted here
// is that an unprivileged process is refused cleanly and that the post-switch
// query sees no lingering setuid/setgid capability.
var _ = Describe("Manager", func() {
	var manager *capability.Manager

	BeforeEach(func() {
		manager = capability.NewManager()
	})

	Describe("Restrict", func() {
		It("fails rather than proceeding with a partially configured set", func() {
			Expect(manager.Restrict()).NotTo(Succeed())
		})
	})

	Describe("SwitchIdentity", func() {
		It("fails at the supplementary group step when unprivileged", func() {
			err := manager.SwitchIdentity(12001, 12001, []int{12001})
			Expect(err).To(MatchError(ContainSubstring("initializing supplementary groups")))
		})
	})

	Describe("VerifyDropped", func() {
		It("finds no identity-change capability on an unprivileged process", func() {
			Expect(manager.VerifyDropped()).To(Succeed())
		})
	})
})
