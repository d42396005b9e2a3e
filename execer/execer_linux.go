//go:build linux

package execer

import (
	"os/exec"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Exec resolves command via $PATH when it is a bare name and replaces the
// process image with it. The command becomes argv[0] of the new image and
// env is handed over verbatim, as are the inherited stdio descriptors.
func (e *Execer) Exec(command string, args []string, env []string) error {
	path, err := exec.LookPath(command)
	if err != nil {
		return errors.Wrapf(err, "command %q is not executable", command)
	}

	if err := unix.Exec(path, append([]string{command}, args...), env); err != nil {
		return errors.Wrapf(err, "exec %s", path)
	}
	return nil // not reached: Exec does not return on success
}
