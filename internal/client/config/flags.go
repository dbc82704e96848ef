package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/contactbook/internal/flagx"
)

var configFlags = []string{"-d", "-k", "-s", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite data file
//	-k string   storage key of the contact collection
//	-s string   storage backend (sqlite|memory)
//	-l string   log level (debug|info|warn|error)
//
// Note: The function filters args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("contacts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataPath, "d", cfg.DataPath, "path to the data file")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "storage key")
	fs.StringVar(&cfg.Backend, "s", cfg.Backend, "storage backend (sqlite|memory)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, configFlags)); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	return nil
}
