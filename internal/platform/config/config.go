// Package config loads runtime settings from the environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultMaxRequestBytes = 1 << 20 // 1 MB
	defaultShutdownTimeout = 10 * time.Second
	defaultEnvFile         = ".env"
)

// Config holds the server settings.
type Config struct {
	Port            string
	LogLevel        string
	AllowedOrigins  []string
	MaxRequestBytes int64
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the given .env files (".env" when none are given) and then
// resolves settings from the process environment. Missing files are skipped.
// Variables already present in the environment are never overridden.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:            envOr("PORT", defaultPort),
		LogLevel:        strings.ToLower(envOr("LOG_LEVEL", defaultLogLevel)),
		AllowedOrigins:  splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
		MaxRequestBytes: defaultMaxRequestBytes,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	if v := os.Getenv("MAX_REQUEST_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MAX_REQUEST_BYTES %q: %w", v, err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_REQUEST_BYTES %q: must be positive", v)
		}
		cfg.MaxRequestBytes = n
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
