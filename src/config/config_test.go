package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.URL != "http://localhost:5000" {
		t.Errorf("default URL = %q", cfg.Service.URL)
	}
	if cfg.Timeout() != 0 {
		t.Errorf("default timeout = %v, want 0 (none)", cfg.Timeout())
	}
	if cfg.Chart.Width != 900 || cfg.Chart.Height != 320 {
		t.Errorf("default chart size = %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "service:\n  url: http://calc.example:8080\n  timeout_seconds: 30\nlanguage: fr\nchart:\n  width: 1200\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.URL != "http://calc.example:8080" {
		t.Errorf("URL = %q", cfg.Service.URL)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
	if cfg.Language != "fr" {
		t.Errorf("language = %q", cfg.Language)
	}
	// unset chart height falls back to default
	if cfg.Chart.Width != 1200 || cfg.Chart.Height != 320 {
		t.Errorf("chart = %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("service: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverridesServiceURL(t *testing.T) {
	t.Setenv("VISCOBAT_SERVICE_URL", "http://override:9000")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.URL != "http://override:9000" {
		t.Errorf("URL = %q, want env override", cfg.Service.URL)
	}
}
