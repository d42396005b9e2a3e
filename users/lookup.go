package users

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencontainers/runc/libcontainer/user"
	"github.com/pkg/errors"
)

// LookupUser resolves userName against the passwd and group databases found
// under rootPath (normally "/"). A missing or unreadable passwd database is
// reported as-is; a readable database with no matching entry is reported as
// ErrNotFound so callers can tell the two apart.
func LookupUser(rootPath, userName string) (*ExecUser, error) {
	passwdPath := filepath.Join(rootPath, "etc", "passwd")
	groupPath := filepath.Join(rootPath, "etc", "group")

	matches, err := user.ParsePasswdFileFilter(passwdPath, func(u user.User) bool {
		return u.Name == userName
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading the passwd database")
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("unable to find user %s: %w", userName, ErrNotFound)
	}
	usr := matches[0]

	sgids, err := supplementaryGids(groupPath, userName, usr.Gid)
	if err != nil {
		return nil, err
	}

	return &ExecUser{Uid: usr.Uid, Gid: usr.Gid, Sgids: sgids, Home: usr.Home}, nil
}

// supplementaryGids returns the primary gid followed by the gid of every
// group listing userName as a member. A missing group database yields just
// the primary gid, mirroring what initgroups does on such systems.
func supplementaryGids(groupPath, userName string, primaryGid int) ([]int, error) {
	sgids := []int{primaryGid}

	groups, err := user.ParseGroupFileFilter(groupPath, func(g user.Group) bool {
		for _, member := range g.List {
			if member == userName {
				return true
			}
		}
		return false
	})
	if err != nil {
		if os.IsNotExist(err) {
			return sgids, nil
		}
		return nil, errors.Wrap(err, "reading the group database")
	}

	for _, g := range groups {
		if g.Gid != primaryGid {
			sgids = append(sgids, g.Gid)
		}
	}
	return sgids, nil
}
