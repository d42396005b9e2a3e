package runner

import (
	"errors"

	"code.cloudfoundry.org/execas/users"
	"code.cloudfoundry.org/lager/v3"
	pkgerrors "github.com/pkg/errors"
)

//go:generate counterfeiter . UserLookupper
type UserLookupper interface {
	Lookup(username string) (*users.ExecUser, error)
}

type LookupFunc func(username string) (*users.ExecUser, error)

func (fn LookupFunc) Lookup(username string) (*users.ExecUser, error) {
	return fn(username)
}

//go:generate counterfeiter . CapabilityManager
type CapabilityManager interface {
	Restrict() error
	SwitchIdentity(uid, gid int, sgids []int) error
	VerifyDropped() error
}

//go:generate counterfeiter . Execer
type Execer interface {
	Exec(command string, args []string, env []string) error
}

var (
	// ErrUsage means the invocation was missing the user name or the command.
	ErrUsage = errors.New("a user name and a command are required")

	// ErrRootTarget means the target user name resolved to uid 0. Allowing it
	// would turn a privilege-narrowing helper into a root-execution
	// primitive, so it is rejected no matter what name mapped to it.
	ErrRootTarget = errors.New("refusing to run as root (uid 0)")
)

// Runner drives the privilege transition. Each step either completes or the
// run stops; nothing is retried and no step is ever revisited.
type Runner struct {
	users  UserLookupper
	caps   CapabilityManager
	execer Execer
}

func New(users UserLookupper, caps CapabilityManager, execer Execer) *Runner {
	return &Runner{
		users:  users,
		caps:   caps,
		execer: execer,
	}
}

// Run resolves username, restricts the process capability sets to the two
// identity-change capabilities, switches identity, verifies the capabilities
// collapsed, and execs argv. On success it does not return: the process
// image is replaced by argv. Every returned error means the command was
// never executed.
func (r *Runner) Run(log lager.Logger, username string, argv []string, env []string) error {
	log = log.Session("exec-as", lager.Data{"username": username})
	log.Info("start")

	if username == "" || len(argv) == 0 {
		return ErrUsage
	}

	user, err := r.users.Lookup(username)
	if err != nil {
		log.Error("lookup-user-failed", err)
		return err
	}

	if user.Uid == 0 {
		log.Error("root-target-rejected", ErrRootTarget)
		return ErrRootTarget
	}

	if err := r.caps.Restrict(); err != nil {
		log.Error("restrict-capabilities-failed", err)
		return pkgerrors.Wrap(err, "restricting capabilities")
	}

	if err := r.caps.SwitchIdentity(user.Uid, user.Gid, user.Sgids); err != nil {
		log.Error("switch-identity-failed", err)
		return pkgerrors.Wrap(err, "switching identity")
	}

	if err := r.caps.VerifyDropped(); err != nil {
		log.Error("capabilities-not-dropped", err)
		return pkgerrors.Wrap(err, "verifying privilege was dropped")
	}

	log.Info("exec", lager.Data{"command": argv[0]})
	if err := r.execer.Exec(argv[0], argv[1:], env); err != nil {
		log.Error("exec-failed", err)
		return pkgerrors.Wrapf(err, "executing %q", argv[0])
	}

	return nil // not reached: Exec only returns on failure
}
