package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// API key for the compare endpoints; empty disables auth
	APIKey string

	// Remote text recovery service
	RemoteURL         string
	RemoteAPIKey      string
	RemoteModes       []string
	RemoteModeTimeout time.Duration

	// Worker pool
	WorkerCount int

	// Upload limits
	MaxUploadBytes int64

	// Category catalog overrides (YAML), empty means built-in defaults
	CatalogPath string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("API_KEY"),

		RemoteURL:         envOr("REMOTE_EXTRACTOR_URL", ""),
		RemoteAPIKey:      os.Getenv("REMOTE_EXTRACTOR_API_KEY"),
		RemoteModes:       envList("REMOTE_EXTRACTOR_MODES", nil),
		RemoteModeTimeout: envDuration("REMOTE_MODE_TIMEOUT", 2*time.Minute),

		WorkerCount: envInt("WORKER_COUNT", 4),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		CatalogPath: os.Getenv("CATALOG_PATH"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.RemoteModeTimeout <= 0 {
		cfg.RemoteModeTimeout = 2 * time.Minute
	}

	return cfg
}

// RemoteEnabled reports whether a remote extraction tier is configured.
// Without a URL the pipeline starts at the local tiers.
func (c Config) RemoteEnabled() bool {
	return c.RemoteURL != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
