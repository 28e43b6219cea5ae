package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadWithoutFileFallsBackToDefaults(t *testing.T) {
	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ".greenlight/versions", cfg.Storage.Dir)
	assert.False(t, cfg.Postgres.Enabled)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestLoadReadsExplicitFileAndFillsTheRest(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
log:
  level: debug
storage:
  dir: /tmp/greenlight-test
`)
	loader := NewLoader(path)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/greenlight-test", cfg.Storage.Dir)
	// Unset fields still get defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, cfg, loader.Current())
}

func TestLoadMissingExplicitFileIsAnError(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestLoadRejectsOutOfRangePort(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 70000\n")
	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.ApplyDefaults()
		return c
	}

	t.Run("defaults pass", func(t *testing.T) {
		c := base()
		assert.NoError(t, c.Validate())
	})

	t.Run("kafka needs brokers", func(t *testing.T) {
		c := base()
		c.Kafka.Enabled = true
		c.Kafka.Brokers = nil
		assert.Error(t, c.Validate())
	})

	t.Run("postgres needs a database name", func(t *testing.T) {
		c := base()
		c.Postgres.Enabled = true
		c.Postgres.Database = ""
		assert.Error(t, c.Validate())
	})

	t.Run("filestore needs a directory", func(t *testing.T) {
		c := base()
		c.Storage.Dir = ""
		assert.Error(t, c.Validate())
	})
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", s.Addr())
}
