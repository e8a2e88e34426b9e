package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/etc/passwd", cfg.PasswdPath)
	assert.Equal(t, "/etc/shadow", cfg.ShadowPath)
	assert.Equal(t, "/etc/group", cfg.GroupPath)
	assert.Empty(t, cfg.SessionSecret)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostacct.yaml")
	content := "passwd_path: /tmp/passwd\nshadow_path: /tmp/shadow\nsession_secret: filesecret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/passwd", cfg.PasswdPath)
	assert.Equal(t, "/tmp/shadow", cfg.ShadowPath)
	// Unset keys keep their defaults.
	assert.Equal(t, "/etc/group", cfg.GroupPath)
	assert.Equal(t, "filesecret", cfg.SessionSecret)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostacct.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passwd_path: /tmp/passwd\n"), 0o600))

	t.Setenv("HOSTACCT_PASSWD_PATH", "/env/passwd")
	t.Setenv("HOSTACCT_GROUP_PATH", "/env/group")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/passwd", cfg.PasswdPath)
	assert.Equal(t, "/env/group", cfg.GroupPath)
	assert.Equal(t, "/etc/shadow", cfg.ShadowPath)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/etc/passwd", cfg.PasswdPath)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostacct.yaml")
	require.NoError(t, os.WriteFile(path, []byte("passwd_path: [unclosed\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestConfig_Directory(t *testing.T) {
	cfg := Config{PasswdPath: "/a", ShadowPath: "/b", GroupPath: "/c"}
	d := cfg.Directory()
	require.NotNil(t, d)
	assert.Equal(t, "/a", d.PasswdPath)
	assert.Equal(t, "/b", d.ShadowPath)
	assert.Equal(t, "/c", d.GroupPath)
}
