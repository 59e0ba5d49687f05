// Package config loads and saves project-local dlg settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const configFile = ".dlg/config.json"

// Environment overrides. They take priority over the config file.
const (
	EnvWidth   = "DLG_WIDTH"
	EnvTheme   = "DLG_THEME"
	EnvVariant = "DLG_VARIANT"
	EnvJournal = "DLG_JOURNAL"
)

// Config holds the user-tunable settings.
type Config struct {
	Width     int    `json:"width,omitempty"`
	Variant   string `json:"variant,omitempty"`    // default, danger, warning, info
	Theme     string `json:"theme,omitempty"`      // glamour style for markdown bodies
	HideHints bool   `json:"hide_hints,omitempty"` // hide the "esc close" line
	Journal   bool   `json:"journal,omitempty"`    // record outcomes in the journal
}

// Keys lists the settable keys in display order.
var Keys = []string{"width", "variant", "theme", "hide_hints", "journal"}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Resolve loads the config file and applies environment overrides.
// Priority: env > project-local config > defaults.
func Resolve(baseDir string) (*Config, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvWidth); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvWidth, err)
		}
		cfg.Width = w
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvVariant); v != "" {
		cfg.Variant = v
	}
	if v := os.Getenv(EnvJournal); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvJournal, err)
		}
		cfg.Journal = b
	}
	return cfg, nil
}

// Get returns the string form of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "width":
		return strconv.Itoa(c.Width), nil
	case "variant":
		return c.Variant, nil
	case "theme":
		return c.Theme, nil
	case "hide_hints":
		return strconv.FormatBool(c.HideHints), nil
	case "journal":
		return strconv.FormatBool(c.Journal), nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
}

// Set parses value and assigns it to key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "width":
		w, err := strconv.Atoi(value)
		if err != nil || w < 0 {
			return fmt.Errorf("width must be a non-negative integer, got %q", value)
		}
		c.Width = w
	case "variant":
		switch value {
		case "", "default", "danger", "warning", "info":
			c.Variant = value
		default:
			return fmt.Errorf("variant must be one of default, danger, warning, info, got %q", value)
		}
	case "theme":
		c.Theme = value
	case "hide_hints", "journal":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		if key == "journal" {
			c.Journal = b
		} else {
			c.HideHints = b
		}
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}
