// Package capability is the only place the process touches its
// kernel-managed capability and identity state. Mutations happen in a fixed
// order: Restrict, then SwitchIdentity, then VerifyDropped; the runner is
// responsible for never reordering them.
package capability

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}
