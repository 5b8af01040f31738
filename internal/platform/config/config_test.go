package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"INTAKE_ADDR", "SESSION_TTL", "SESSION_JANITOR_INTERVAL", "CORS_ALLOWED_ORIGINS", "MAX_UPLOAD_BYTES"} {
			t.Setenv(k, "")
		}
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("INTAKE_ADDR", ":9090")
		t.Setenv("SESSION_TTL", "5m")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test,")
		t.Setenv("MAX_UPLOAD_BYTES", "2048")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
		assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
		assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "soon")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("INTAKE_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("INTAKE_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("INTAKE_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("INTAKE_TEST_DOTENV"))
}
