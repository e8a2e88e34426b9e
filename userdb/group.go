package userdb

import "strings"

// GroupFile is a fully parsed snapshot of a group store. Groups are
// read-only input; there is no serialization path.
type GroupFile struct {
	pf parsedFile[GroupEntry]
}

func LoadGroup(path string) (*GroupFile, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}

	var pf parsedFile[GroupEntry]
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			pf.lines = append(pf.lines, rawLine[GroupEntry]{raw: line})
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 4 {
			pf.lines = append(pf.lines, rawLine[GroupEntry]{raw: line})
			continue
		}
		gid, err := atoi(parts[2], "group.gid")
		if err != nil {
			return nil, err
		}
		members := []string{}
		if parts[3] != "" {
			members = strings.Split(parts[3], ",")
		}
		e := GroupEntry{Name: parts[0], Passwd: parts[1], GID: gid, Members: members}
		pf.lines = append(pf.lines, rawLine[GroupEntry]{raw: line, entry: &e})
	}
	return &GroupFile{pf: pf}, nil
}

// Find returns a copy of the group named name, or false.
func (f *GroupFile) Find(name string) (GroupEntry, bool) {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return *e, true
		}
	}
	return GroupEntry{}, false
}

// FindByGID returns a copy of the group with the given gid, or false.
func (f *GroupFile) FindByGID(gid int) (GroupEntry, bool) {
	for _, e := range f.pf.entries() {
		if e.GID == gid {
			return *e, true
		}
	}
	return GroupEntry{}, false
}

// List returns all parsed groups in file order.
func (f *GroupFile) List() []GroupEntry {
	out := make([]GroupEntry, 0)
	for _, e := range f.pf.entries() {
		out = append(out, *e)
	}
	return out
}
