package userdb

import (
	"fmt"
	"strings"
)

// PasswdFile is a fully parsed snapshot of an account-attribute store.
type PasswdFile struct {
	pf parsedFile[PasswdEntry]
}

// LoadPasswd parses the file at path. A record whose uid/gid fields are not
// numeric is an enumeration fault and fails the whole load; comment and
// blank lines are preserved verbatim.
func LoadPasswd(path string) (*PasswdFile, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}

	var pf parsedFile[PasswdEntry]
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			pf.lines = append(pf.lines, rawLine[PasswdEntry]{raw: line})
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 7 {
			// Preserve unknown line as-is.
			pf.lines = append(pf.lines, rawLine[PasswdEntry]{raw: line})
			continue
		}
		uid, err := atoi(parts[2], "passwd.uid")
		if err != nil {
			return nil, err
		}
		gid, err := atoi(parts[3], "passwd.gid")
		if err != nil {
			return nil, err
		}
		e := PasswdEntry{
			Name:   parts[0],
			Passwd: parts[1],
			UID:    uid,
			GID:    gid,
			Gecos:  parts[4],
			Home:   parts[5],
			Shell:  parts[6],
		}
		pf.lines = append(pf.lines, rawLine[PasswdEntry]{raw: line, entry: &e})
	}

	return &PasswdFile{pf: pf}, nil
}

// Find returns a copy of the entry named name, or false.
func (f *PasswdFile) Find(name string) (PasswdEntry, bool) {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return *e, true
		}
	}
	return PasswdEntry{}, false
}

// FindByUID returns a copy of the entry with the given uid, or false.
func (f *PasswdFile) FindByUID(uid int) (PasswdEntry, bool) {
	for _, e := range f.pf.entries() {
		if e.UID == uid {
			return *e, true
		}
	}
	return PasswdEntry{}, false
}

// List returns all parsed entries in file order.
func (f *PasswdFile) List() []PasswdEntry {
	out := make([]PasswdEntry, 0)
	for _, e := range f.pf.entries() {
		out = append(out, *e)
	}
	return out
}

// Replace substitutes the entry whose uid matches e.UID. The replaced line
// is re-rendered on serialization; every other line stays verbatim.
// Returns false if no entry matched.
func (f *PasswdFile) Replace(e PasswdEntry) bool {
	for i := range f.pf.lines {
		cur := f.pf.lines[i].entry
		if cur != nil && cur.UID == e.UID {
			ne := e
			f.pf.lines[i].entry = &ne
			f.pf.lines[i].dirty = true
			return true
		}
	}
	return false
}

// Bytes serializes the file. Untouched lines are emitted exactly as read.
func (f *PasswdFile) Bytes() []byte {
	var buf strings.Builder
	for _, ln := range f.pf.lines {
		if ln.dirty && ln.entry != nil {
			e := ln.entry
			buf.WriteString(fmt.Sprintf("%s:%s:%d:%d:%s:%s:%s\n",
				e.Name, e.Passwd, e.UID, e.GID, e.Gecos, e.Home, e.Shell))
			continue
		}
		buf.WriteString(ln.raw)
		buf.WriteString("\n")
	}
	return []byte(buf.String())
}
