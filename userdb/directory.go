package userdb

import (
	"errors"
	"fmt"

	"github.com/hnrobert/hostacct/internal/logger"
)

// ErrNotFound reports an identity absent from the passwd or shadow store.
// Any other lookup failure is an I/O or parse fault and is returned wrapped,
// never as ErrNotFound.
var ErrNotFound = errors.New("no such user")

// Directory resolves accounts against a set of flat-file stores. Every
// lookup re-reads the files, so external edits are visible on the next call
// and concurrent lookups never share scan state.
type Directory struct {
	PasswdPath string
	ShadowPath string
	GroupPath  string
}

// NewDirectory returns a Directory over the standard system paths.
func NewDirectory() *Directory {
	return &Directory{
		PasswdPath: "/etc/passwd",
		ShadowPath: "/etc/shadow",
		GroupPath:  "/etc/group",
	}
}

// LookupByName resolves the attribute and credential records for name.
// Both records must exist; a missing credential record is ErrNotFound even
// when the attribute record is present.
func (d *Directory) LookupByName(name string) (PasswdEntry, ShadowEntry, error) {
	if !validUsername(name) {
		return PasswdEntry{}, ShadowEntry{}, ErrNotFound
	}
	pw, err := LoadPasswd(d.PasswdPath)
	if err != nil {
		return PasswdEntry{}, ShadowEntry{}, fmt.Errorf("reading passwd store: %w", err)
	}
	pe, ok := pw.Find(name)
	if !ok {
		return PasswdEntry{}, ShadowEntry{}, ErrNotFound
	}
	se, err := d.lookupShadow(name)
	if err != nil {
		return PasswdEntry{}, ShadowEntry{}, err
	}
	return pe, se, nil
}

// LookupByUID resolves the attribute record by uid, then the credential
// record by the resolved username.
func (d *Directory) LookupByUID(uid int) (PasswdEntry, ShadowEntry, error) {
	pw, err := LoadPasswd(d.PasswdPath)
	if err != nil {
		return PasswdEntry{}, ShadowEntry{}, fmt.Errorf("reading passwd store: %w", err)
	}
	pe, ok := pw.FindByUID(uid)
	if !ok {
		return PasswdEntry{}, ShadowEntry{}, ErrNotFound
	}
	se, err := d.lookupShadow(pe.Name)
	if err != nil {
		return PasswdEntry{}, ShadowEntry{}, err
	}
	return pe, se, nil
}

func (d *Directory) lookupShadow(name string) (ShadowEntry, error) {
	sh, err := LoadShadow(d.ShadowPath)
	if err != nil {
		return ShadowEntry{}, fmt.Errorf("reading shadow store: %w", err)
	}
	se, ok := sh.Find(name)
	if !ok {
		return ShadowEntry{}, ErrNotFound
	}
	return se, nil
}

// SupplementaryGroups scans the whole group store and collects the gid of
// every group listing name as a member, in file order. The scan never
// fails: an unreadable group store yields an empty set.
func (d *Directory) SupplementaryGroups(name string) []int {
	gr, err := LoadGroup(d.GroupPath)
	if err != nil {
		logger.Warn("group store %s unreadable, assuming no supplementary groups: %v", d.GroupPath, err)
		return []int{}
	}
	gids := []int{}
	for _, g := range gr.pf.entries() {
		for _, m := range g.Members {
			if m == name {
				gids = append(gids, g.GID)
				break
			}
		}
	}
	return gids
}
