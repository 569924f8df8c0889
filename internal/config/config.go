// Package config resolves the configuration directory and data file paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// TaskFile is the default task document filename.
	TaskFile = "todo_list.json"

	// SpendDBFile is the default expense database filename.
	SpendDBFile = "spend_tracker.db"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Environment holds the settings read from environment variables.
type Environment struct {
	ConfigDir string `env:"TODO_CONFIG_DIR"`
	TaskFile  string `env:"TODO_FILE"`
	SpendDB   string `env:"SPEND_DB"`
}

// Overrides holds values given on the command line. Empty fields fall back
// to the environment, then to defaults.
type Overrides struct {
	ConfigDir string
	TaskFile  string
	SpendDB   string
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// TaskFile is the task document path.
	TaskFile string

	// SpendDB is the expense database path.
	SpendDB string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// ParseEnv loads the environment settings.
func ParseEnv() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// New builds a Config. Flags win over the environment, which wins over the
// defaults under the config directory.
func New(o Overrides) (*Config, error) {
	e, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	dir := first(o.ConfigDir, e.ConfigDir, DefaultConfigDir())
	return &Config{
		Dir:      dir,
		TaskFile: first(o.TaskFile, e.TaskFile, filepath.Join(dir, TaskFile)),
		SpendDB:  first(o.SpendDB, e.SpendDB, filepath.Join(dir, SpendDBFile)),
	}, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
