package account

import (
	"errors"
	"fmt"

	"github.com/hnrobert/hostacct/internal/hostfs"
	"github.com/hnrobert/hostacct/internal/logger"
	"github.com/hnrobert/hostacct/userdb"
)

var (
	// ErrWriteFailed reports a sync failure that left both stores
	// untouched on disk. Safe to retry.
	ErrWriteFailed = errors.New("account store write failed")

	// ErrPartialInstall reports that the attribute store was installed but
	// the credential store was not: the two stores are now inconsistent
	// and the caller should retry or alert.
	ErrPartialInstall = errors.New("account stores partially installed")
)

// test seam for the final rename step
var installStore = func(s *hostfs.StagedFile) error { return s.Install() }

// Sync rewrites both backing stores with this account's in-memory state
// substituted in. Every other record is re-emitted byte-identical in its
// original order. Both new files are fully staged before either store is
// touched, then installed passwd first, shadow second.
//
// There is no cross-process locking: concurrent syncs against the same
// stores are last-writer-wins, and external advisory locking is the
// caller's responsibility.
func (a *Account) Sync() error {
	pwContent, err := a.regeneratePasswd()
	if err != nil {
		return err
	}
	shContent, err := a.regenerateShadow()
	if err != nil {
		return err
	}

	pwStaged, err := hostfs.Stage(a.dir.PasswdPath, pwContent, 0o644)
	if err != nil {
		return fmt.Errorf("%w: staging passwd store: %v", ErrWriteFailed, err)
	}
	defer pwStaged.Discard()
	shStaged, err := hostfs.Stage(a.dir.ShadowPath, shContent, 0o600)
	if err != nil {
		return fmt.Errorf("%w: staging shadow store: %v", ErrWriteFailed, err)
	}
	defer shStaged.Discard()

	if err := installStore(pwStaged); err != nil {
		return fmt.Errorf("%w: installing passwd store: %v", ErrWriteFailed, err)
	}
	if err := installStore(shStaged); err != nil {
		logger.Error("shadow store install failed after passwd store was replaced: %v", err)
		return fmt.Errorf("%w: installing shadow store: %v", ErrPartialInstall, err)
	}
	return nil
}

// regeneratePasswd re-reads the attribute store and substitutes this
// account's current fields for the record matching its uid. The credential
// field is always rendered as the locked placeholder; real credential
// material never appears in the attribute store.
func (a *Account) regeneratePasswd() ([]byte, error) {
	pw, err := userdb.LoadPasswd(a.dir.PasswdPath)
	if err != nil {
		return nil, fmt.Errorf("regenerating passwd store: %w", err)
	}
	replaced := pw.Replace(userdb.PasswdEntry{
		Name:   a.username,
		Passwd: "!",
		UID:    a.uid,
		GID:    a.gid,
		Gecos:  a.gecos,
		Home:   a.home,
		Shell:  a.shell,
	})
	if !replaced {
		return nil, fmt.Errorf("regenerating passwd store: uid %d: %w", a.uid, userdb.ErrNotFound)
	}
	return pw.Bytes(), nil
}

// regenerateShadow re-reads the credential store and substitutes the
// in-memory hash for this account's record, carrying all aging fields over
// from the record on disk. An absent credential leaves the store content
// unchanged; there is no record to update.
func (a *Account) regenerateShadow() ([]byte, error) {
	sh, err := userdb.LoadShadow(a.dir.ShadowPath)
	if err != nil {
		return nil, fmt.Errorf("regenerating shadow store: %w", err)
	}
	if a.cred.IsAbsent() {
		return sh.Bytes(), nil
	}
	se, ok := sh.Find(a.username)
	if !ok {
		return nil, fmt.Errorf("regenerating shadow store: %s: %w", a.username, userdb.ErrNotFound)
	}
	se.Hash = a.cred.shadowField()
	sh.Replace(se)
	return sh.Bytes(), nil
}
