package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactbook/internal/client/repositories/contacts"
	"github.com/dmitrijs2005/contactbook/internal/flagx"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds runtime settings for the contactbook CLI.
//
// Fields:
//   - DataPath: SQLite database file holding the contact slot.
//   - StorageKey: slot key the collection is stored under.
//   - Backend: "sqlite" for a durable slot, "memory" for a throwaway one.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DataPath   string `json:"data_path" yaml:"data_path"`
	StorageKey string `json:"storage_key" yaml:"storage_key"`
	Backend    string `json:"backend" yaml:"backend"`
	LogLevel   string `json:"log_level" yaml:"log_level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataPath = "contacts.db"
	c.StorageKey = contacts.DefaultStorageKey
	c.Backend = BackendSQLite
	c.LogLevel = "info"
}

// overlay copies the non-empty fields of o into c.
func (c *Config) overlay(o Config) {
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.StorageKey != "" {
		c.StorageKey = o.StorageKey
	}
	if o.Backend != "" {
		c.Backend = o.Backend
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DataPath == "" {
			return errors.New("data path must not be empty")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q: must be %s or %s", c.Backend, BackendSQLite, BackendMemory)
	}
	if c.StorageKey == "" {
		return errors.New("storage key must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// FlagNames lists every command-line flag consumed by LoadConfig. Callers
// strip them before handing the remaining arguments to the command parser.
var FlagNames = append(append([]string{}, flagx.ConfigFileFlags...), configFlags...)

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment and command-line flags. Later
// sources take precedence over earlier ones. args are the process arguments
// without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, flagx.ConfigFileFlag(args)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
