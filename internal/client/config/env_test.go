package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("process environment", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("CONTACTS_DATA_PATH", "/env/contacts.db")
		t.Setenv("CONTACTS_BACKEND", "memory")

		cfg := defaults()
		require.NoError(t, parseEnv(&cfg, envFile))

		want := defaults()
		want.DataPath = "/env/contacts.db"
		want.Backend = BackendMemory
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("dotenv fills unset values only", func(t *testing.T) {
		isolateEnv(t)
		path := writeFile(t, ".env", "CONTACTS_STORAGE_KEY=dotenv-key\nCONTACTS_LOG_LEVEL=warn\nOTHER=ignored\n")
		t.Setenv("CONTACTS_LOG_LEVEL", "error")

		cfg := defaults()
		require.NoError(t, parseEnv(&cfg, path))

		assert.Equal(t, "dotenv-key", cfg.StorageKey)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("missing dotenv is fine", func(t *testing.T) {
		isolateEnv(t)

		cfg := defaults()
		require.NoError(t, parseEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")))
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("unreadable dotenv", func(t *testing.T) {
		isolateEnv(t)

		cfg := defaults()
		err := parseEnv(&cfg, t.TempDir())
		require.Error(t, err)
	})
}
