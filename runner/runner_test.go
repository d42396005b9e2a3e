package runner_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/execas/runner"
	"code.cloudfoundry.org/execas/runner/runnerfakes"
	"code.cloudfoundry.org/execas/users"
	"code.cloudfoundry.org/lager/v3/lagertest"
)

var _ = Describe("Runner", func() {
	var (
		logger      *lagertest.TestLogger
		userLookup  *runnerfakes.FakeUserLookupper
		capsManager *runnerfakes.FakeCapabilityManager
		execer      *runnerfakes.FakeExecer
		r           *runner.Runner

		username string
		argv     []string
		env      []string
		runErr   error
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("runner-test")
		userLookup = new(runnerfakes.FakeUserLookupper)
		capsManager = new(runnerfakes.FakeCapabilityManager)
		execer = new(runnerfakes.FakeExecer)
		r = runner.New(userLookup, capsManager, execer)

		userLookup.LookupReturns(&users.ExecUser{
			Uid:   1000,
			Gid:   1000,
			Sgids: []int{1000, 20, 1001},
			Home:  "/home/alice",
		}, nil)

		username = "alice"
		argv = []string{"/bin/echo", "hello"}
		env = []string{"HOME=/home/caller", "PATH=/usr/bin:/bin"}
	})

	JustBeforeEach(func() {
		runErr = r.Run(logger, username, argv, env)
	})

	It("execs the command as the resolved user and reports no error", func() {
		// the fake exec "returns", which a real image replacement never does
		Expect(runErr).NotTo(HaveOccurred())
	})

	It("looks up the requested user name", func() {
		Expect(userLookup.LookupCallCount()).To(Equal(1))
		Expect(userLookup.LookupArgsForCall(0)).To(Equal("alice"))
	})

	It("restricts capabilities, switches identity, verifies the drop, then execs, in that order", func() {
		var steps []string
		capsManager.RestrictStub = func() error {
			steps = append(steps, "restrict")
			return nil
		}
		capsManager.SwitchIdentityStub = func(int, int, []int) error {
			steps = append(steps, "switch")
			return nil
		}
		capsManager.VerifyDroppedStub = func() error {
			steps = append(steps, "verify")
			return nil
		}
		execer.ExecStub = func(string, []string, []string) error {
			steps = append(steps, "exec")
			return nil
		}

		Expect(r.Run(logger, username, argv, env)).To(Succeed())
		Expect(steps).To(Equal([]string{"restrict", "switch", "verify", "exec"}))
	})

	It("switches to the resolved uid, gid and supplementary groups", func() {
		Expect(capsManager.SwitchIdentityCallCount()).To(Equal(1))
		uid, gid, sgids := capsManager.SwitchIdentityArgsForCall(0)
		Expect(uid).To(Equal(1000))
		Expect(gid).To(Equal(1000))
		Expect(sgids).To(Equal([]int{1000, 20, 1001}))
	})

	It("execs the command with itself as argv[0] and the caller environment", func() {
		Expect(execer.ExecCallCount()).To(Equal(1))
		command, args, execEnv := execer.ExecArgsForCall(0)
		Expect(command).To(Equal("/bin/echo"))
		Expect(args).To(Equal([]string{"hello"}))
		Expect(execEnv).To(Equal(env))
	})

	When("no command is given", func() {
		BeforeEach(func() {
			argv = nil
		})

		It("returns a usage error without resolving or mutating anything", func() {
			Expect(runErr).To(MatchError(runner.ErrUsage))
			Expect(userLookup.LookupCallCount()).To(Equal(0))
			Expect(capsManager.Invocations()).To(BeEmpty())
			Expect(execer.ExecCallCount()).To(Equal(0))
		})
	})

	When("no user name is given", func() {
		BeforeEach(func() {
			username = ""
		})

		It("returns a usage error without resolving or mutating anything", func() {
			Expect(runErr).To(MatchError(runner.ErrUsage))
			Expect(userLookup.LookupCallCount()).To(Equal(0))
			Expect(capsManager.Invocations()).To(BeEmpty())
		})
	})

	When("the user cannot be found", func() {
		BeforeEach(func() {
			userLookup.LookupReturns(nil, users.ErrNotFound)
		})

		It("fails before any capability mutation", func() {
			Expect(runErr).To(MatchError(users.ErrNotFound))
			Expect(capsManager.Invocations()).To(BeEmpty())
			Expect(execer.ExecCallCount()).To(Equal(0))
		})
	})

	When("the user database cannot be read", func() {
		BeforeEach(func() {
			userLookup.LookupReturns(nil, errors.New("reading the passwd database: boom"))
		})

		It("surfaces the underlying error before any capability mutation", func() {
			Expect(runErr).To(MatchError(ContainSubstring("boom")))
			Expect(capsManager.Invocations()).To(BeEmpty())
		})
	})

	When("the user name resolves to uid 0", func() {
		BeforeEach(func() {
			userLookup.LookupReturns(&users.ExecUser{Uid: 0, Gid: 0}, nil)
		})

		It("rejects the target before any capability mutation", func() {
			Expect(runErr).To(MatchError(runner.ErrRootTarget))
			Expect(capsManager.Invocations()).To(BeEmpty())
			Expect(execer.ExecCallCount()).To(Equal(0))
		})
	})

	When("restricting capabilities fails", func() {
		BeforeEach(func() {
			capsManager.RestrictReturns(errors.New("capset-err"))
		})

		It("stops before the identity switch", func() {
			Expect(runErr).To(MatchError(ContainSubstring("capset-err")))
			Expect(capsManager.SwitchIdentityCallCount()).To(Equal(0))
			Expect(execer.ExecCallCount()).To(Equal(0))
		})
	})

	When("the identity switch fails", func() {
		BeforeEach(func() {
			capsManager.SwitchIdentityReturns(errors.New("setuid-err"))
		})

		It("stops before the exec", func() {
			Expect(runErr).To(MatchError(ContainSubstring("setuid-err")))
			Expect(capsManager.VerifyDroppedCallCount()).To(Equal(0))
			Expect(execer.ExecCallCount()).To(Equal(0))
		})
	})

	When("a privileged capability survives the switch", func() {
		BeforeEach(func() {
			capsManager.VerifyDroppedReturns(errors.New("cap_setuid survived the identity switch"))
		})

		It("treats it as fatal and never execs", func() {
			Expect(runErr).To(MatchError(ContainSubstring("cap_setuid survived")))
			Expect(execer.ExecCallCount()).To(Equal(0))
		})
	})

	When("the exec fails", func() {
		BeforeEach(func() {
			execer.ExecReturns(errors.New("no such binary"))
		})

		It("reports the failure after the full transition", func() {
			Expect(runErr).To(MatchError(ContainSubstring("no such binary")))
			Expect(capsManager.RestrictCallCount()).To(Equal(1))
			Expect(capsManager.SwitchIdentityCallCount()).To(Equal(1))
			Expect(capsManager.VerifyDroppedCallCount()).To(Equal(1))
		})
	})

	It("logs the transition steps", func() {
		logs := logger.LogMessages()
		Expect(logs).To(ContainElement(ContainSubstring("exec-as.start")))
		Expect(logs).To(ContainElement(ContainSubstring("exec-as.exec")))
	})
})
