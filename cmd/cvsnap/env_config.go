package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-cvsnap/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides scripting-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CVSNAP_CONFIG: config file path
	Ledger     string        // CVSNAP_LEDGER: ledger file path
	OutputDir  string        // CVSNAP_OUTPUT_DIR: default output directory
	Converter  string        // CVSNAP_CONVERTER: pandoc or goldmark
	Style      string        // CVSNAP_STYLE: stylesheet path
	Timeout    time.Duration // CVSNAP_TIMEOUT: PDF generation timeout
}

// knownEnvVars lists valid CVSNAP_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CVSNAP_CONFIG":     true,
	"CVSNAP_LEDGER":     true,
	"CVSNAP_OUTPUT_DIR": true,
	"CVSNAP_CONVERTER":  true,
	"CVSNAP_STYLE":      true,
	"CVSNAP_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CVSNAP_CONFIG"),
		Ledger:     os.Getenv("CVSNAP_LEDGER"),
		OutputDir:  os.Getenv("CVSNAP_OUTPUT_DIR"),
		Converter:  os.Getenv("CVSNAP_CONVERTER"),
		Style:      os.Getenv("CVSNAP_STYLE"),
	}

	if timeout := os.Getenv("CVSNAP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CVSNAP_* variables.
// Helps catch typos like CVSNAP_LEGDER instead of CVSNAP_LEDGER.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CVSNAP_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Ledger != "" && cfg.Ledger.Path == "" {
		cfg.Ledger.Path = env.Ledger
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Converter != "" && cfg.Render.Converter == "" {
		cfg.Render.Converter = env.Converter
	}
	if env.Style != "" && cfg.Render.Style == "" {
		cfg.Render.Style = env.Style
	}
}
