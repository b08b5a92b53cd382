package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.RecordDriver != "jsonl" {
		t.Errorf("RecordDriver = %q, want jsonl", cfg.RecordDriver)
	}
	if cfg.LMTimeout() != 30*time.Second {
		t.Errorf("LMTimeout = %v, want 30s", cfg.LMTimeout())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"port": 6000, "lm_model": "file-model", "record_driver": "sqlite"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LM_MODEL", "env-model")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 6000 {
		t.Errorf("Port = %d, want file value 6000", cfg.Port)
	}
	if cfg.RecordDriver != "sqlite" {
		t.Errorf("RecordDriver = %q, want sqlite", cfg.RecordDriver)
	}
	if cfg.LMModel != "env-model" {
		t.Errorf("LMModel = %q, env must win over file", cfg.LMModel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
