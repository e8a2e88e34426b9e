package account

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrPrivilege reports a failed identity switch. The process may be left
// with some steps applied and some not; there is no rollback, so callers
// must treat this as fatal to their intended privilege level.
var ErrPrivilege = errors.New("assuming account identity failed")

// test seams; privilege drops are irreversible in-process
var (
	setgroups = unix.Setgroups
	setgid    = unix.Setgid
	setuid    = unix.Setuid
)

// AssumeIdentity applies this account's identity to the running process:
// supplementary groups, then primary group, then uid, strictly in that
// order — group identity must be settled while the process still holds the
// privilege to change it. This is the only entry point; there is no
// partial application.
func (a *Account) AssumeIdentity() error {
	if err := setgroups(a.extraGIDs); err != nil {
		return fmt.Errorf("%w: setgroups: %v", ErrPrivilege, err)
	}
	if err := setgid(a.gid); err != nil {
		return fmt.Errorf("%w: setgid %d: %v", ErrPrivilege, a.gid, err)
	}
	if err := setuid(a.uid); err != nil {
		return fmt.Errorf("%w: setuid %d: %v", ErrPrivilege, a.uid, err)
	}
	return nil
}
