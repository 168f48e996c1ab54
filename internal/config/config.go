// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os/user"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	defaultHomeDir   = ".rolodex"
	defaultAliasFile = "aliases.yaml"
)

// Config holds the settings of one rolodex process.
type Config struct {
	Home           string `env:"ROLODEX_HOME"`
	AliasFile      string `env:"ROLODEX_ALIAS_FILE"`
	CatalogFile    string `env:"ROLODEX_CATALOG_FILE"`
	LogLevel       string `env:"ROLODEX_LOG_LEVEL" envDefault:"warn"`
	PersistAliases bool   `env:"ROLODEX_PERSIST_ALIASES" envDefault:"true"`
	UseFZF         bool   `env:"ROLODEX_FZF" envDefault:"true"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads settings from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Home == "" {
		usr, err := user.Current()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current user: %w", err)
		}
		cfg.Home = filepath.Join(usr.HomeDir, defaultHomeDir)
	}
	if cfg.AliasFile == "" {
		cfg.AliasFile = filepath.Join(cfg.Home, defaultAliasFile)
	}
	return cfg, nil
}
