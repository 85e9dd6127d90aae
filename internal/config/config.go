// Package config loads the harness configuration from environment
// variables. Engine heuristics (thresholds, weights, keyword tables)
// are compiled-in defaults injected at component construction, not
// environment-driven.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Output formats the harness can write.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatXLSX     = "xlsx"
)

// Config represents the complete harness configuration.
type Config struct {
	SnapshotDir   string
	OutDir        string
	Format        string
	MaxParallel   int
	Deterministic bool
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		SnapshotDir:   getEnv("CIVITRACK_SNAPSHOT_DIR", "./snapshots"),
		OutDir:        getEnv("CIVITRACK_OUT_DIR", "./out"),
		Format:        getEnv("CIVITRACK_FORMAT", FormatJSON),
		MaxParallel:   getEnvInt("CIVITRACK_MAX_PARALLEL", 4),
		Deterministic: getEnvBool("CIVITRACK_DETERMINISTIC", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatMarkdown, FormatXLSX:
	default:
		return fmt.Errorf("invalid output format %q (want json, markdown or xlsx)", c.Format)
	}
	if c.MaxParallel < 1 {
		return fmt.Errorf("max parallel must be at least 1, got %d", c.MaxParallel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
