package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "")

	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "https://ftapi.pythonanywhere.com", cfg.Translator.DictionaryURL)
	assert.Empty(t, cfg.BotToken)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("CONFIG_NAME", "")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("BOT_TOKEN", "secret")

	dir := writeConfig(t, `
env: production
http:
  addr: ":7070"
  shutdown_timeout: 2s
`)

	cfg, err := load(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "secret", cfg.BotToken)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONFIG_NAME", "")

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown env", body: "env: local\n"},
		{name: "unknown driver", body: "storage:\n  driver: sqlite\n"},
		{name: "postgres without credentials", body: "storage:\n  driver: postgres\n"},
		{name: "bad yaml", body: "http: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.body)
			_, err := load(dir)
			require.Error(t, err)
		})
	}
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("CONFIG_NAME", "")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "wortschatz")

	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "db", cfg.DB.Conn.Host)
	assert.Equal(t, "disable", cfg.DB.Conn.SSL)
	assert.Equal(t, 10, cfg.DB.Cfg.MaxOpenConns)
}
