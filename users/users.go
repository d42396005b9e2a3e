package users

import "errors"

// ErrNotFound is returned by LookupUser when the passwd database was read
// successfully but contains no entry for the requested user name. Any other
// lookup error means the database itself could not be read.
var ErrNotFound = errors.New("no matching entry in the passwd database")

// ExecUser is the identity a command will be executed as. Sgids always
// contains the primary gid plus the gids of every group the user is a member
// of, taken from the group database rather than the calling process.
type ExecUser struct {
	Uid   int
	Gid   int
	Sgids []int
	Home  string
}
