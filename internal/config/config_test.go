package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_APP_DATABASE", "materials")
	t.Setenv("DB_APP_USER", "materials")
	t.Setenv("AUTHZ_URL", "http://localhost:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "client")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, 50, cfg.DefaultPageSize)
	assert.Equal(t, 200, cfg.MaxPageSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "http://localhost:3000", cfg.AuthzRedirectURL)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DEFAULT_PAGE_SIZE", "12")
	t.Setenv("CACHE_TTL", "90")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 12, cfg.DefaultPageSize)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTHZ_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "AUTHZ_URL")
}

func TestLoadSQLiteWithoutUser(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_TYPE", "sqlite-pure")
	t.Setenv("DB_APP_USER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsSQLite())
}

func TestLoadInvalidPageSizes(t *testing.T) {
	setRequired(t)
	t.Setenv("DEFAULT_PAGE_SIZE", "100")
	t.Setenv("MAX_PAGE_SIZE", "10")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	setRequired(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("REDIS_URL=redis://localhost:6379/0\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	t.Cleanup(func() { os.Unsetenv("REDIS_URL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}
