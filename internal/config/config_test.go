package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.RedisAddr())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "redis:6379", cfg.RedisAddr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_driver: postgres\ndb_port: \"5432\"\ngin_mode: release\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DB_NAME", "fromenv")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.DBName)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load("")
	require.Error(t, err)
}
