// Package config loads cvsnap configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cvsnap/internal/fileutil"
	"github.com/alnah/go-cvsnap/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Generous, but bounded: the ledger is forever.
const (
	MaxPathLength     = 4096 // PATH_MAX on common filesystems
	MaxRefLength      = 255  // git ref name limit
	MaxPositionLength = 10   // "left", "center", "right"
	MaxTimeoutLength  = 30   // "30s", "2m30s"
)

// Config holds all configuration for snapshot generation.
type Config struct {
	Repo   RepoConfig   `yaml:"repo"`
	Ledger LedgerConfig `yaml:"ledger"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Stamp  StampConfig  `yaml:"stamp"`
}

// RepoConfig defines the default resume repository.
type RepoConfig struct {
	Path string `yaml:"path"` // Default repository path (empty = must specify)
	Ref  string `yaml:"ref"`  // Default ref (empty = must specify)
}

// LedgerConfig defines ledger persistence options.
type LedgerConfig struct {
	Path string `yaml:"path"` // Ledger file path (empty = ledger.json)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = next to repo)
}

// RenderConfig defines rendering options.
type RenderConfig struct {
	Converter string `yaml:"converter"` // "pandoc" (default) or "goldmark"
	Style     string `yaml:"style"`     // Stylesheet path (empty = <repo>/style.css)
	Timeout   string `yaml:"timeout"`   // PDF generation timeout, e.g. "30s"
}

// StampConfig defines how the snapshot ID appears in the PDF footer.
type StampConfig struct {
	Position   string `yaml:"position"`   // "left", "center", "right" (default: "right")
	ShowRef    bool   `yaml:"showRef"`    // Print the ref next to the ID
	ShowDate   bool   `yaml:"showDate"`   // Print the snapshot date
	DisableCSS bool   `yaml:"disableCss"` // Skip the stylesheet stamp
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("repo.path", c.Repo.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("repo.ref", c.Repo.Ref, MaxRefLength); err != nil {
		return err
	}
	if err := validateFieldLength("ledger.path", c.Ledger.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.style", c.Render.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.timeout", c.Render.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("stamp.position", c.Stamp.Position, MaxPositionLength); err != nil {
		return err
	}

	if c.Render.Converter != "" {
		switch strings.ToLower(c.Render.Converter) {
		case "pandoc", "goldmark":
			// valid
		default:
			return fmt.Errorf("render.converter: invalid value %q (must be pandoc or goldmark)", c.Render.Converter)
		}
	}

	if c.Stamp.Position != "" {
		switch strings.ToLower(c.Stamp.Position) {
		case "left", "center", "right":
			// valid
		default:
			return fmt.Errorf("stamp.position: invalid value %q (must be left, center, or right)", c.Stamp.Position)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/cvsnap/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "cvsnap", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
