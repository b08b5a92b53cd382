// Package config loads service configuration from an optional JSON file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

type Config struct {
	// Port is the first port tried; the server scans PortRange ports from
	// here for a free one.
	Port      int `json:"port"`
	PortRange int `json:"port_range"`

	LogLevel string `json:"log_level"`

	// Language-model backend (any OpenAI-compatible server).
	LMBaseURL   string `json:"lm_base_url"`
	LMAPIKey    string `json:"lm_api_key"`
	LMModel     string `json:"lm_model"`
	LMTimeoutMS int    `json:"lm_timeout_ms"`

	// Transcription server. Empty disables the audio endpoint.
	TranscriberURL    string `json:"transcriber_url"`
	TranscriberAPIKey string `json:"transcriber_api_key"`

	// Complaint record store: "jsonl" or "sqlite".
	RecordDriver string `json:"record_driver"`
	RecordPath   string `json:"record_path"`

	StaticDir    string `json:"static_dir"`
	TemplatesDir string `json:"templates_dir"`
}

func defaults() Config {
	return Config{
		Port:         5000,
		PortRange:    10,
		LogLevel:     "info",
		LMBaseURL:    "http://localhost:1234/v1",
		LMModel:      "hermes-llama",
		LMTimeoutMS:  30000,
		RecordDriver: "jsonl",
		RecordPath:   "complaints.json",
		StaticDir:    "static",
		TemplatesDir: "templates",
	}
}

// Load builds the config: defaults, then the JSON file at path when given,
// then environment variables.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := sonic.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = envInt("FRAUDINTAKE_PORT", cfg.Port)
	cfg.PortRange = envInt("FRAUDINTAKE_PORT_RANGE", cfg.PortRange)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)
	cfg.LMBaseURL = envStr("LM_BASE_URL", cfg.LMBaseURL)
	cfg.LMAPIKey = envStr("LM_API_KEY", cfg.LMAPIKey)
	cfg.LMModel = envStr("LM_MODEL", cfg.LMModel)
	cfg.LMTimeoutMS = envInt("LM_TIMEOUT_MS", cfg.LMTimeoutMS)
	cfg.TranscriberURL = envStr("TRANSCRIBER_URL", cfg.TranscriberURL)
	cfg.TranscriberAPIKey = envStr("TRANSCRIBER_API_KEY", cfg.TranscriberAPIKey)
	cfg.RecordDriver = envStr("RECORD_DRIVER", cfg.RecordDriver)
	cfg.RecordPath = envStr("RECORD_PATH", cfg.RecordPath)
	cfg.StaticDir = envStr("STATIC_DIR", cfg.StaticDir)
	cfg.TemplatesDir = envStr("TEMPLATES_DIR", cfg.TemplatesDir)

	return cfg, nil
}

// LMTimeout returns the language-model call timeout as a duration.
func (c Config) LMTimeout() time.Duration {
	return time.Duration(c.LMTimeoutMS) * time.Millisecond
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
