// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// Address is the HTTP listen address.
	Address string

	// APIBaseURL is the remote marketplace API root.
	APIBaseURL string

	// APITimeout bounds each outgoing API call.
	APITimeout time.Duration

	// CookieSecret signs session cookies. Must be at least 32 bytes.
	CookieSecret string

	// SecureCookies marks cookies Secure; enable behind TLS.
	SecureCookies bool

	// CategoriesTTL is how long fetched category reference data is cached.
	CategoriesTTL time.Duration

	// SentryDSN enables error reporting when set.
	SentryDSN string

	// Environment names the deployment environment for Sentry.
	Environment string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Address:       getEnv("ADDRESS", ":8080"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:5000/api/v1"),
		APITimeout:    getDuration("API_TIMEOUT", 30*time.Second),
		CookieSecret:  os.Getenv("COOKIE_SECRET"),
		SecureCookies: getEnv("SECURE_COOKIES", "false") == "true",
		CategoriesTTL: getDuration("CATEGORIES_TTL", 5*time.Minute),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		Environment:   getEnv("ENVIRONMENT", "development"),
	}

	if len(cfg.CookieSecret) < 32 {
		return Config{}, fmt.Errorf("config: COOKIE_SECRET must be at least 32 bytes, got %d", len(cfg.CookieSecret))
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return d
}
