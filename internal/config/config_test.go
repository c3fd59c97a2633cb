package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("database:\n  host: localhost\n"))
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "youtube", cfg.Provider.Name)
	assert.Equal(t, 50, cfg.Sync.FullPageSize)
	assert.Equal(t, 10, cfg.Sync.IncrementalPageSize)
	assert.Equal(t, 7*24*time.Hour, cfg.Sync.BootstrapLookback)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.RollingWindow)
	assert.Equal(t, 24*time.Hour, cfg.Quota.Window)
	assert.Equal(t, int64(10000), cfg.Quota.BudgetFor("youtube"))
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	t.Setenv("TEST_API_KEY", "key-123")

	cfg, err := Parse([]byte(`
database:
  host: db
  password: ${TEST_DB_PASSWORD}
provider:
  api_key: ${TEST_API_KEY}
quota:
  daily_budgets:
    youtube: 500
sync:
  page_delay: 2s
`))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "key-123", cfg.Provider.APIKey)
	assert.Equal(t, int64(500), cfg.Quota.BudgetFor("youtube"))
	assert.Equal(t, int64(10000), cfg.Quota.BudgetFor("vimeo"))
	assert.Equal(t, 2*time.Second, cfg.Sync.PageDelay)
}

func TestParse_RejectsOversizedPages(t *testing.T) {
	_, err := Parse([]byte("sync:\n  full_page_size: 500\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page sizes")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestDatabaseConfig_URL(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "app", Password: "p@ss", DBName: "sync", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss@db:5433/sync?sslmode=disable", d.URL())
	assert.Contains(t, d.DSN(), "host=db port=5433")
}
