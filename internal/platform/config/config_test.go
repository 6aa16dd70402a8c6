package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PDF_STORAGE_PATH", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, EnvironmentProduction, cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.UsesDatabase())
	assert.Equal(t, "/tmp/sales_notes_pdfs", cfg.PDFStoragePath)
	assert.Equal(t, 5*time.Minute, cfg.ReferenceCacheTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/sales")
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "Development")
	t.Setenv("PDF_STORAGE_PATH", "/var/lib/notes")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("REFERENCE_CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, "/var/lib/notes", cfg.PDFStoragePath)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ReferenceCacheTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadConfig_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("REFERENCE_CACHE_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.ReferenceCacheTTL)
}

func TestLoadConfig_AuthWithoutSecretIsDisabled(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.AuthEnabled)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled)
}
