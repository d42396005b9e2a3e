//go:build !linux

package capability

import "github.com/pkg/errors"

func (m *Manager) Restrict() error {
	return errors.New("capability restriction is only supported on Linux")
}

func (m *Manager) SwitchIdentity(uid, gid int, sgids []int) error {
	return errors.New("identity switching is only supported on Linux")
}

func (m *Manager) VerifyDropped() error {
	return errors.New("capability queries are only supported on Linux")
}
