package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
)

type Config struct {
	Port               string `env:"PORT" default:"8080"`
	GeminiAPIKey       string `env:"GEMINI_API_KEY"`
	GeminiModel        string `env:"GEMINI_MODEL" default:"gemini-1.5-pro-latest"`
	GeminiBaseURL      string `env:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiTimeoutSecs  int    `env:"GEMINI_TIMEOUT_SECONDS" default:"30"`
	LogLevel           string `env:"LOG_LEVEL" default:"info"`
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load reads .env (if any) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Set(&cfg); err != nil {
		return cfg, fmt.Errorf("setting variables from environment: %w", err)
	}
	if cfg.GeminiTimeoutSecs < 0 {
		return cfg, fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be >= 0, got %d", cfg.GeminiTimeoutSecs)
	}
	return cfg, nil
}

func (c Config) GeminiTimeout() time.Duration {
	return time.Duration(c.GeminiTimeoutSecs) * time.Second
}

func (c Config) AllowedOrigins() []string {
	var out []string
	for _, part := range strings.Split(c.CORSAllowedOrigins, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// SlogLevel falls back to info on unknown input.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
