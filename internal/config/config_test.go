package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DBPath != "db.json" {
		t.Errorf("DBPath = %q, want db.json", cfg.DBPath)
	}
	if cfg.CSVPath != "db.csv" {
		t.Errorf("CSVPath = %q, want db.csv", cfg.CSVPath)
	}
	if cfg.BaseURL != "https://opentdb.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Interval != 5500*time.Millisecond {
		t.Errorf("Interval = %s, want 5.5s", cfg.Interval)
	}
	if cfg.BatchSize != 50 {
		t.Errorf("BatchSize = %d, want 50", cfg.BatchSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/questions.json")
	t.Setenv(EnvCSVPath, "/tmp/questions.csv")
	t.Setenv(EnvBaseURL, "http://localhost:8080")
	t.Setenv(EnvInterval, "10s")
	t.Setenv(EnvBatchSize, "25")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.DBPath != "/tmp/questions.json" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CSVPath != "/tmp/questions.csv" {
		t.Errorf("CSVPath = %q", cfg.CSVPath)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Interval != 10*time.Second {
		t.Errorf("Interval = %s", cfg.Interval)
	}
	if cfg.BatchSize != 25 {
		t.Errorf("BatchSize = %d", cfg.BatchSize)
	}
}

func TestFromEnvBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad interval", EnvInterval, "soon"},
		{"bad batch size", EnvBatchSize, "five"},
		{"zero interval", EnvInterval, "0s"},
		{"oversized batch", EnvBatchSize, "51"},
		{"negative batch", EnvBatchSize, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv with %s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DBPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty DBPath must not validate")
	}
}
