package hostfs

import (
	"os"
	"path/filepath"
)

// StagedFile is a fully written, closed temporary file waiting to be
// renamed over its target path. The temporary file lives in the same
// directory as the target so the final rename stays on one filesystem.
type StagedFile struct {
	tmpName   string
	target    string
	installed bool
}

// Stage writes data to a new temporary file next to target, applies perm,
// fsyncs and closes it. The target itself is not touched.
func Stage(target string, data []byte, perm os.FileMode) (*StagedFile, error) {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".hostacct-*")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, err
	}
	return &StagedFile{tmpName: tmpName, target: target}, nil
}

// Target returns the path the staged file will be installed over.
func (s *StagedFile) Target() string { return s.target }

// Install renames the staged file over its target. On success the staged
// file no longer exists under its temporary name.
func (s *StagedFile) Install() error {
	if err := os.Rename(s.tmpName, s.target); err != nil {
		return err
	}
	s.installed = true
	if d, err := os.Open(filepath.Dir(s.target)); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}

// Discard removes the temporary file unless it was already installed.
// Safe to defer unconditionally.
func (s *StagedFile) Discard() {
	if s == nil || s.installed {
		return
	}
	_ = os.Remove(s.tmpName)
}
