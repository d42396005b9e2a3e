//go:build linux

package capability

import (
	"syscall"

	"github.com/pkg/errors"
	"kernel.org/pub/linux/libs/security/libcap/cap"
)

// switchCaps are the only capabilities ever held between process start and
// exec: the two needed to change the process identity.
var switchCaps = []cap.Value{cap.SETUID, cap.SETGID}

// Restrict discards every capability the process inherited and grants back
// exactly CAP_SETUID and CAP_SETGID in the effective, permitted, inheritable
// and ambient sets. The bounding set is emptied first: dropping bounding
// entries needs CAP_SETPCAP in the effective set, which is gone once the
// working sets are lowered.
func (m *Manager) Restrict() error {
	for c := cap.Value(0); c < cap.MaxBits(); c++ {
		if err := cap.DropBound(c); err != nil {
			return errors.Wrapf(err, "dropping %v from the bounding set", c)
		}
	}

	restricted := cap.NewSet()
	for _, flag := range []cap.Flag{cap.Effective, cap.Permitted, cap.Inheritable} {
		if err := restricted.SetFlag(flag, true, switchCaps...); err != nil {
			return errors.Wrap(err, "building the restricted capability set")
		}
	}
	if err := restricted.SetProc(); err != nil {
		return errors.Wrap(err, "applying the restricted capability set")
	}

	if err := cap.ResetAmbient(); err != nil {
		return errors.Wrap(err, "clearing the ambient set")
	}
	if err := cap.SetAmbient(true, switchCaps...); err != nil {
		return errors.Wrap(err, "raising setuid/setgid in the ambient set")
	}
	return nil
}

// SwitchIdentity moves the process to the target identity: supplementary
// groups and gid first, uid last, so there is no window where the new uid
// carries the caller's groups. The uid change away from 0 is also what makes
// the kernel collapse the two remaining capabilities. The syscalls below are
// applied to all OS threads by the Go runtime.
func (m *Manager) SwitchIdentity(uid, gid int, sgids []int) error {
	if err := syscall.Setgroups(sgids); err != nil {
		return errors.Wrap(err, "initializing supplementary groups")
	}
	if err := syscall.Setresgid(gid, gid, gid); err != nil {
		return errors.Wrapf(err, "switching to gid %d", gid)
	}
	if err := syscall.Setresuid(uid, uid, uid); err != nil {
		return errors.Wrapf(err, "switching to uid %d", uid)
	}
	return nil
}

// VerifyDropped re-queries the capability state after the identity switch.
// The switch is expected to have collapsed the setuid/setgid capabilities;
// finding one still present means the process did not start from an identity
// the kernel strips capabilities for, and running user code would be unsafe.
func (m *Manager) VerifyDropped() error {
	current := cap.GetProc()
	for _, c := range switchCaps {
		for _, flag := range []cap.Flag{cap.Effective, cap.Permitted} {
			on, err := current.GetFlag(flag, c)
			if err != nil {
				return errors.Wrap(err, "querying the capability state")
			}
			if on {
				return errors.Errorf("%v survived the identity switch", c)
			}
		}

		on, err := cap.GetAmbient(c)
		if err != nil {
			return errors.Wrap(err, "querying the ambient set")
		}
		if on {
			return errors.Errorf("%v is still ambient after the identity switch", c)
		}
	}
	return nil
}
