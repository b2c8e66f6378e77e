// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/eliaath/triviahoard/internal/opentdb"
	"github.com/eliaath/triviahoard/internal/scraper"
)

// Environment variable names.
const (
	EnvDBPath    = "TRIVIAHOARD_DB"
	EnvCSVPath   = "TRIVIAHOARD_CSV"
	EnvBaseURL   = "TRIVIAHOARD_BASE_URL"
	EnvInterval  = "TRIVIAHOARD_INTERVAL"
	EnvBatchSize = "TRIVIAHOARD_BATCH"
)

// Config holds everything the commands need to run.
type Config struct {
	// DBPath is the JSON store file.
	DBPath string
	// CSVPath is the tabular export target.
	CSVPath string
	// BaseURL is the API endpoint.
	BaseURL string
	// Interval is the pause between fetch cycles.
	Interval time.Duration
	// BatchSize is the number of questions per fetch (API max 50).
	BatchSize int
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		DBPath:    "db.json",
		CSVPath:   "db.csv",
		BaseURL:   opentdb.DefaultBaseURL,
		Interval:  scraper.DefaultInterval,
		BatchSize: opentdb.DefaultBatchSize,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvCSVPath); v != "" {
		cfg.CSVPath = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvInterval, err)
		}
		cfg.Interval = d
	}
	if v := os.Getenv(EnvBatchSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvBatchSize, err)
		}
		cfg.BatchSize = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the scraper cannot run with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("store path must not be empty")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.BatchSize <= 0 || c.BatchSize > opentdb.DefaultBatchSize {
		return fmt.Errorf("batch size must be between 1 and %d, got %d", opentdb.DefaultBatchSize, c.BatchSize)
	}
	return nil
}
