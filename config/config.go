// Package config resolves the store paths and session parameters for the
// account core. Values come from built-in defaults, then an optional YAML
// file, then HOSTACCT_-prefixed environment variables, later sources
// winning.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/hnrobert/hostacct/userdb"
)

const envPrefix = "HOSTACCT_"

type Config struct {
	PasswdPath string `yaml:"passwd_path" env:"PASSWD_PATH"`
	ShadowPath string `yaml:"shadow_path" env:"SHADOW_PATH"`
	GroupPath  string `yaml:"group_path" env:"GROUP_PATH"`

	// SessionSecret signs session tokens. Empty means the caller must
	// generate one (auth.NewRandomSecretB64) per process.
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET"`
}

// Default returns the standard system paths.
func Default() Config {
	return Config{
		PasswdPath: "/etc/passwd",
		ShadowPath: "/etc/shadow",
		GroupPath:  "/etc/group",
	}
}

// Load builds a Config. path names an optional YAML file; a missing file is
// not an error, any other read or parse failure is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults + env only
		case err != nil:
			return Config{}, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Directory returns a userdb.Directory over the configured store paths.
func (c Config) Directory() *userdb.Directory {
	return &userdb.Directory{
		PasswdPath: c.PasswdPath,
		ShadowPath: c.ShadowPath,
		GroupPath:  c.GroupPath,
	}
}
