package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"GEMINI_TIMEOUT_SECONDS", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-pro-latest", cfg.GeminiModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.GeminiBaseURL)
	assert.Equal(t, 30*time.Second, cfg.GeminiTimeout())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "abc")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://mi.app, http://localhost:5173,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "abc", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "http://localhost:1234/v1", cfg.GeminiBaseURL)
	assert.Equal(t, time.Duration(0), cfg.GeminiTimeout())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, []string{"https://mi.app", "http://localhost:5173"}, cfg.AllowedOrigins())
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "-1")
	_, err := Load()
	require.Error(t, err)
}

func TestSlogLevelUnknown(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "loud"}.SlogLevel())
}
