// Package execer replaces the current process image. Exec returning is
// itself the failure signal: on success the calling program no longer
// exists.
package execer

type Execer struct{}

func New() *Execer {
	return &Execer{}
}
