// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// OCIConfigFile is the SDK configuration file. Empty uses the SDK default
	// chain (~/.oci/config and OCI_* environment variables).
	OCIConfigFile string
	// OCIConfigProfile is the profile read from OCIConfigFile.
	OCIConfigProfile string
	// OCIRegion overrides the region of the selected profile.
	OCIRegion string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// LogFormat is either "text" or "json".
	LogFormat string

	// RequestTimeout bounds a single command invocation.
	RequestTimeout time.Duration

	// BulkParallelism is the number of objects transferred concurrently by bulk commands.
	BulkParallelism int
	// BulkRequestsPerSec throttles bulk requests; zero disables throttling.
	BulkRequestsPerSec float64
	// BulkBurst is the burst size of the bulk throttle.
	BulkBurst int

	// MetricsEnabled indicates whether operation metrics are collected.
	MetricsEnabled bool
	// MetricsNamespace is the prefix of every metric name.
	MetricsNamespace string
	// MetricsTextfilePath is where the metrics are written on exit, in the
	// Prometheus textfile collector format.
	MetricsTextfilePath string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// SDK configuration
		OCIConfigFile:    env.GetString("OCI_CONFIG_FILE", ""),
		OCIConfigProfile: env.GetString("OCI_CONFIG_PROFILE", "DEFAULT"),
		OCIRegion:        env.GetString("OCI_REGION", ""),

		// Logging
		LogLevel:  env.GetString("LOG_LEVEL", "warn"),
		LogFormat: env.GetString("LOG_FORMAT", "text"),

		RequestTimeout: env.GetDuration("REQUEST_TIMEOUT_SECONDS", 3600, time.Second),

		// Bulk transfers
		BulkParallelism:    env.GetInt("BULK_PARALLELISM", 10),
		BulkRequestsPerSec: env.GetFloat64("BULK_REQUESTS_PER_SEC", 0),
		BulkBurst:          env.GetInt("BULK_BURST", 1),

		// Metrics
		MetricsEnabled:      env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace:    env.GetString("METRICS_NAMESPACE", "oscli"),
		MetricsTextfilePath: env.GetString("METRICS_TEXTFILE_PATH", ""),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
