package userdb

import (
	"fmt"
	"strings"
)

// ShadowFile is a fully parsed snapshot of a credential store.
type ShadowFile struct {
	pf parsedFile[ShadowEntry]
}

func LoadShadow(path string) (*ShadowFile, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}

	var pf parsedFile[ShadowEntry]
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			pf.lines = append(pf.lines, rawLine[ShadowEntry]{raw: line})
			continue
		}

		parts := parseColonLine(line)
		if len(parts) < 2 {
			pf.lines = append(pf.lines, rawLine[ShadowEntry]{raw: line})
			continue
		}

		for len(parts) < 9 {
			parts = append(parts, "")
		}

		e := ShadowEntry{
			Name:       parts[0],
			Hash:       parts[1],
			LastChange: parts[2],
			Min:        parts[3],
			Max:        parts[4],
			Warn:       parts[5],
			Inactive:   parts[6],
			Expire:     parts[7],
			Reserved:   parts[8],
		}
		pf.lines = append(pf.lines, rawLine[ShadowEntry]{raw: line, entry: &e})
	}

	return &ShadowFile{pf: pf}, nil
}

// Find returns a copy of the entry named name, or false.
func (f *ShadowFile) Find(name string) (ShadowEntry, bool) {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return *e, true
		}
	}
	return ShadowEntry{}, false
}

// Replace substitutes the entry whose name matches e.Name; see
// (*PasswdFile).Replace.
func (f *ShadowFile) Replace(e ShadowEntry) bool {
	for i := range f.pf.lines {
		cur := f.pf.lines[i].entry
		if cur != nil && cur.Name == e.Name {
			ne := e
			f.pf.lines[i].entry = &ne
			f.pf.lines[i].dirty = true
			return true
		}
	}
	return false
}

// Bytes serializes the file. Untouched lines are emitted exactly as read.
func (f *ShadowFile) Bytes() []byte {
	var buf strings.Builder
	for _, ln := range f.pf.lines {
		if ln.dirty && ln.entry != nil {
			e := ln.entry
			buf.WriteString(fmt.Sprintf("%s:%s:%s:%s:%s:%s:%s:%s:%s\n",
				e.Name, e.Hash, e.LastChange, e.Min, e.Max, e.Warn, e.Inactive, e.Expire, e.Reserved))
			continue
		}
		buf.WriteString(ln.raw)
		buf.WriteString("\n")
	}
	return []byte(buf.String())
}
