package userdb

// PasswdEntry is one account-attribute record (passwd(5)).
type PasswdEntry struct {
	Name   string
	Passwd string
	UID    int
	GID    int
	Gecos  string
	Home   string
	Shell  string
}

// ShadowEntry is one credential record (shadow(5)). All fields after Hash
// are opaque aging metadata and are carried through unchanged.
type ShadowEntry struct {
	Name       string
	Hash       string
	LastChange string
	Min        string
	Max        string
	Warn       string
	Inactive   string
	Expire     string
	Reserved   string
}

// GroupEntry is one group record (group(5)).
type GroupEntry struct {
	Name    string
	Passwd  string
	GID     int
	Members []string
}
