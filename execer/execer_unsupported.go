//go:build !linux

package execer

import "github.com/pkg/errors"

func (e *Execer) Exec(command string, args []string, env []string) error {
	return errors.New("process image replacement is only supported on Linux")
}
