package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures library-level configuration for the NIK client.
type Config struct {
	Regions RegionConfig
	Logging Logging
	// MetricsEnabled registers collectors with the default prometheus registry.
	MetricsEnabled bool
}

// RegionConfig selects where administrative region data comes from.
// When both paths are empty the embedded sample dataset is used.
type RegionConfig struct {
	// DataDir points at a split layout: provinces.json, regencies/<PP>.json,
	// districts/<PP>/<RR>.json.
	DataDir string
	// Dataset points at a single nested dataset file. Takes precedence over DataDir.
	Dataset string
	// Warm resolves every regency and district list at startup.
	Warm bool
}

// Logging configures the slog handler. An empty Level turns logging off.
type Logging struct {
	Level  string
	Format string
}

// Default returns the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: "json",
		},
	}
}

// FromEnv builds a Config from environment variables so callers stay lean.
func FromEnv() Config {
	cfg := Default()
	cfg.Regions.DataDir = strings.TrimSpace(os.Getenv("NIK_REGION_DATA_DIR"))
	cfg.Regions.Dataset = strings.TrimSpace(os.Getenv("NIK_REGION_DATASET"))
	cfg.Regions.Warm = envBool("NIK_WARM_REGIONS", false)
	if level := os.Getenv("NIK_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("NIK_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	cfg.MetricsEnabled = envBool("NIK_METRICS_ENABLED", false)
	return cfg
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
