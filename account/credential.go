package account

import "strings"

type credKind int

const (
	credAbsent credKind = iota
	credEmpty
	credSet
)

// Credential is the three-state password field of an account:
//
//   - absent: no credential record existed; authentication always fails.
//   - empty: no secret is required; authentication always succeeds.
//   - set: a tagged hash string, possibly prefixed with the ! lock marker.
//
// The zero value is the absent state.
type Credential struct {
	kind credKind
	hash string
}

// AbsentCredential is the state of an account with no credential record.
func AbsentCredential() Credential { return Credential{kind: credAbsent} }

// EmptyCredential is the no-password-required state.
func EmptyCredential() Credential { return Credential{kind: credEmpty} }

// NewCredential builds the credential held in a shadow hash field. An empty
// field means no password is required; anything else, including a bare or
// prefixed lock marker, is a set hash.
func NewCredential(hash string) Credential {
	if hash == "" {
		return Credential{kind: credEmpty}
	}
	return Credential{kind: credSet, hash: hash}
}

func (c Credential) IsAbsent() bool { return c.kind == credAbsent }
func (c Credential) IsEmpty() bool  { return c.kind == credEmpty }

// Hash returns the stored hash string and whether the credential is in the
// set state. The bool is false for both absent and empty.
func (c Credential) Hash() (string, bool) {
	return c.hash, c.kind == credSet
}

// Disabled reports whether the credential carries the ! lock marker.
func (c Credential) Disabled() bool {
	return c.kind == credSet && strings.HasPrefix(c.hash, "!")
}

// withEnabled toggles the lock marker. Both directions are idempotent, and
// a disable/enable round trip restores the exact prior hash. Absent stays
// absent: with no credential record there is nothing to mark.
func (c Credential) withEnabled(enabled bool) Credential {
	switch c.kind {
	case credAbsent:
		return c
	case credEmpty:
		if enabled {
			return c
		}
		return Credential{kind: credSet, hash: "!"}
	default:
		if enabled {
			if strings.HasPrefix(c.hash, "!") {
				return NewCredential(c.hash[1:])
			}
			return c
		}
		if strings.HasPrefix(c.hash, "!") {
			return c
		}
		return Credential{kind: credSet, hash: "!" + c.hash}
	}
}

// shadowField renders the credential into a shadow hash field. Only valid
// for empty and set states; absent accounts have no shadow record to
// render into.
func (c Credential) shadowField() string {
	return c.hash
}
