package config

import (
	"os"
	"strconv"

	"namesake/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Data     DataConfig
	Analysis AnalysisConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// DataConfig holds data file paths
type DataConfig struct {
	RosterFile string
	OutputDir  string
}

// AnalysisConfig holds extraction and analysis settings
type AnalysisConfig struct {
	BatchConcurrency int
	FDRAlpha         float64
	ClusterK         int
}

// Load reads configuration from environment variables and validates it.
// The database is optional: with no DATABASE_URL the persistence adapters
// are simply skipped.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Data: DataConfig{
			RosterFile: getEnv("ROSTER_FILE", "data/roster.xlsx"),
			OutputDir:  getEnv("OUTPUT_DIR", "reports"),
		},
		Analysis: AnalysisConfig{
			BatchConcurrency: getEnvInt("BATCH_CONCURRENCY", 8),
			FDRAlpha:         getEnvFloat("FDR_ALPHA", 0.05),
			ClusterK:         getEnvInt("CLUSTER_K", 4),
		},
	}
	cfg.Database.Enabled = cfg.Database.URL != ""

	if cfg.Analysis.BatchConcurrency < 1 {
		return nil, errors.New(errors.CodeConfigInvalid, "BATCH_CONCURRENCY must be at least 1")
	}
	if cfg.Analysis.FDRAlpha <= 0 || cfg.Analysis.FDRAlpha >= 1 {
		return nil, errors.New(errors.CodeConfigInvalid, "FDR_ALPHA must be in (0, 1)")
	}
	if cfg.Analysis.ClusterK < 2 {
		return nil, errors.New(errors.CodeConfigInvalid, "CLUSTER_K must be at least 2")
	}
	return cfg, nil
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

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
