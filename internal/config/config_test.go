package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ImportReportAll {
		t.Error("ImportReportAll should default to false")
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRADEBOOK_SERVER_PORT", "9090")
	t.Setenv("GRADEBOOK_LOG_LEVEL", "debug")
	t.Setenv("GRADEBOOK_IMPORT_REPORT_ALL", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.ImportReportAll {
		t.Error("ImportReportAll should be true")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GRADEBOOK_SEED_FILE=configs/seed.yaml\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv does not override variables that are already set; register
	// cleanup for the one it is about to set.
	t.Setenv("GRADEBOOK_SEED_FILE", "")
	os.Unsetenv("GRADEBOOK_SEED_FILE")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SeedFile != "configs/seed.yaml" {
		t.Errorf("SeedFile = %q, want configs/seed.yaml", cfg.SeedFile)
	}
}

func TestLoadMissingDotEnv(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("GRADEBOOK_SERVER_PORT", "70000")
	if _, err := Load(""); err == nil {
		t.Error("expected error for out-of-range port")
	}
}
