package account

import (
	"github.com/hnrobert/hostacct/auth"
	"github.com/hnrobert/hostacct/userdb"
)

// Account is an in-memory snapshot of one host account: its attribute
// record, credential record and resolved supplementary groups. Username and
// uid are fixed at construction; changing identity means resolving a new
// Account.
type Account struct {
	dir *userdb.Directory

	username string
	uid      int
	gid      int
	gecos    string
	home     string
	shell    string

	cred      Credential
	extraGIDs []int
}

// FromName resolves an Account by username. Both the attribute and the
// credential record must exist; supplementary groups are resolved as part
// of the same snapshot.
func FromName(dir *userdb.Directory, name string) (*Account, error) {
	pe, se, err := dir.LookupByName(name)
	if err != nil {
		return nil, err
	}
	return New(dir, pe, &se), nil
}

// FromUID resolves an Account by numeric identity.
func FromUID(dir *userdb.Directory, uid int) (*Account, error) {
	pe, se, err := dir.LookupByUID(uid)
	if err != nil {
		return nil, err
	}
	return New(dir, pe, &se), nil
}

// New builds an Account from already-resolved records. A nil shadow entry
// yields the absent credential state, for callers operating on systems
// without a credential store; FromName and FromUID never pass nil.
func New(dir *userdb.Directory, pe userdb.PasswdEntry, se *userdb.ShadowEntry) *Account {
	cred := AbsentCredential()
	if se != nil {
		cred = NewCredential(se.Hash)
	}
	return &Account{
		dir:       dir,
		username:  pe.Name,
		uid:       pe.UID,
		gid:       pe.GID,
		gecos:     pe.Gecos,
		home:      pe.Home,
		shell:     pe.Shell,
		cred:      cred,
		extraGIDs: dir.SupplementaryGroups(pe.Name),
	}
}

// Authenticate checks secret against the in-memory credential. An absent
// credential always fails and an empty one always succeeds; otherwise the
// stored hash is verified as-is, so a !-locked hash can never be matched by
// any real secret.
func (a *Account) Authenticate(secret string) bool {
	if a.cred.IsAbsent() {
		return false
	}
	if a.cred.IsEmpty() {
		return true
	}
	hash, _ := a.cred.Hash()
	return auth.VerifyPassword(secret, hash)
}

// SetPassword hashes secret under a fresh salt and replaces the in-memory
// credential. Call Sync to make it durable.
func (a *Account) SetPassword(secret string) error {
	salt, err := auth.GenerateSalt()
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(secret, salt)
	if err != nil {
		return err
	}
	a.cred = NewCredential(hash)
	return nil
}

// SetPasswordEnabled locks or unlocks the credential via the ! marker.
// Idempotent in both directions.
func (a *Account) SetPasswordEnabled(enabled bool) {
	a.cred = a.cred.withEnabled(enabled)
}

// DeletePassword switches the credential to the empty state: until a new
// password is set, authentication succeeds unconditionally.
func (a *Account) DeletePassword() {
	a.cred = EmptyCredential()
}

// HasPassword reports whether authentication requires a secret. An absent
// credential counts as having one, since authentication can never succeed.
func (a *Account) HasPassword() bool {
	return !a.cred.IsEmpty()
}

func (a *Account) Username() string      { return a.username }
func (a *Account) UID() int              { return a.uid }
func (a *Account) GID() int              { return a.gid }
func (a *Account) Gecos() string         { return a.gecos }
func (a *Account) HomeDirectory() string { return a.home }
func (a *Account) Shell() string         { return a.shell }

// Credential returns the current in-memory credential state.
func (a *Account) Credential() Credential { return a.cred }

// ExtraGIDs returns the supplementary group ids resolved at construction,
// in group-file order.
func (a *Account) ExtraGIDs() []int { return a.extraGIDs }
