package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CONTACTS"

// envFile is the optional dotenv file read by LoadConfig.
var envFile = ".env"

var envKeys = []string{"data_path", "storage_key", "backend", "log_level"}

// parseEnv overlays cfg with CONTACTS_* variables. Values from the process
// environment win over values from the dotenv file at path; the file is
// optional and never modifies the process environment.
func parseEnv(cfg *Config, path string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		values, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		for name, value := range values {
			if key, ok := strings.CutPrefix(name, envPrefix+"_"); ok {
				v.SetDefault(strings.ToLower(key), value)
			}
		}
	}

	cfg.overlay(Config{
		DataPath:   v.GetString(envKeys[0]),
		StorageKey: v.GetString(envKeys[1]),
		Backend:    v.GetString(envKeys[2]),
		LogLevel:   v.GetString(envKeys[3]),
	})
	return nil
}
