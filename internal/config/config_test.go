package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ROSTER_FILE", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("BATCH_CONCURRENCY", "")
	t.Setenv("FDR_ALPHA", "")
	t.Setenv("CLUSTER_K", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected defaults to validate, got error: %v", err)
	}
	if cfg.Database.Enabled {
		t.Error("Database should be disabled without DATABASE_URL")
	}
	if cfg.Data.RosterFile != "data/roster.xlsx" {
		t.Errorf("Expected default roster file, got %s", cfg.Data.RosterFile)
	}
	if cfg.Data.OutputDir != "reports" {
		t.Errorf("Expected default output dir, got %s", cfg.Data.OutputDir)
	}
	if cfg.Analysis.BatchConcurrency != 8 {
		t.Errorf("Expected default concurrency 8, got %d", cfg.Analysis.BatchConcurrency)
	}
	if cfg.Analysis.FDRAlpha != 0.05 {
		t.Errorf("Expected default alpha 0.05, got %f", cfg.Analysis.FDRAlpha)
	}
	if cfg.Analysis.ClusterK != 4 {
		t.Errorf("Expected default cluster count 4, got %d", cfg.Analysis.ClusterK)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/namesake")
	t.Setenv("ROSTER_FILE", "custom/roster.csv")
	t.Setenv("BATCH_CONCURRENCY", "16")
	t.Setenv("FDR_ALPHA", "0.1")
	t.Setenv("CLUSTER_K", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected valid overrides, got error: %v", err)
	}
	if !cfg.Database.Enabled {
		t.Error("Database should be enabled with DATABASE_URL set")
	}
	if cfg.Data.RosterFile != "custom/roster.csv" {
		t.Errorf("Expected overridden roster file, got %s", cfg.Data.RosterFile)
	}
	if cfg.Analysis.BatchConcurrency != 16 {
		t.Errorf("Expected concurrency 16, got %d", cfg.Analysis.BatchConcurrency)
	}
	if cfg.Analysis.FDRAlpha != 0.1 {
		t.Errorf("Expected alpha 0.1, got %f", cfg.Analysis.FDRAlpha)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"concurrency below one", "BATCH_CONCURRENCY", "0"},
		{"alpha at zero", "FDR_ALPHA", "0"},
		{"alpha at one", "FDR_ALPHA", "1"},
		{"cluster count below two", "CLUSTER_K", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BATCH_CONCURRENCY", "")
			t.Setenv("FDR_ALPHA", "")
			t.Setenv("CLUSTER_K", "")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadIgnoresUnparseableNumbers(t *testing.T) {
	t.Setenv("BATCH_CONCURRENCY", "not-a-number")
	t.Setenv("FDR_ALPHA", "")
	t.Setenv("CLUSTER_K", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unparseable value should fall back to the default: %v", err)
	}
	if cfg.Analysis.BatchConcurrency != 8 {
		t.Errorf("Expected fallback concurrency 8, got %d", cfg.Analysis.BatchConcurrency)
	}
}
