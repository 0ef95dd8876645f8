package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"tagmore/log"
	"time"
)

const (
	ConfigFileName = "config.json"

	// homeEnv overrides the configuration directory.
	homeEnv = "TAGMORE_HOME"
)

// Defaults
const (
	DefaultGap              = 1
	DefaultMaxItemWidth     = 16
	DefaultResizeDebounceMs = 50
	DefaultMeasurer         = "cells"
)

// measurerNames mirrors layout.MeasurerNames; config does not import ui packages.
var measurerNames = []string{"cells", "runewidth", "styled"}

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(homeEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tagmore"), nil
}

// Config represents the application configuration
type Config struct {
	// Gap is the number of cells between chips and before the "+N" indicator.
	Gap int `json:"gap"`
	// MaxItemWidth caps the width of a single chip, padding included.
	MaxItemWidth int `json:"max_item_width"`
	// ResizeDebounceMs is the quiet period (ms) before a resize triggers a relayout.
	ResizeDebounceMs int `json:"resize_debounce_ms"`
	// Measurer selects the width oracle: "cells", "runewidth" or "styled".
	Measurer string `json:"measurer"`
	// EastAsianWidth counts ambiguous-width runes as two cells (runewidth measurer).
	EastAsianWidth bool `json:"east_asian_width"`
	// WatchFile reloads the tag file when it changes on disk.
	WatchFile bool `json:"watch_file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Gap:              DefaultGap,
		MaxItemWidth:     DefaultMaxItemWidth,
		ResizeDebounceMs: DefaultResizeDebounceMs,
		Measurer:         DefaultMeasurer,
		EastAsianWidth:   false,
		WatchFile:        true,
	}
}

// ResizeDebounce returns the resize quiet period.
func (c *Config) ResizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMs) * time.Millisecond
}

// Normalize clamps out-of-range values and replaces an unknown measurer with
// the default. It returns a description of every field it changed.
func (c *Config) Normalize() []string {
	var fixed []string
	if c.Gap < 0 {
		fixed = append(fixed, fmt.Sprintf("gap %d clamped to 0", c.Gap))
		c.Gap = 0
	}
	if c.MaxItemWidth < 0 {
		fixed = append(fixed, fmt.Sprintf("max_item_width %d clamped to 0", c.MaxItemWidth))
		c.MaxItemWidth = 0
	}
	if c.ResizeDebounceMs < 0 {
		fixed = append(fixed, fmt.Sprintf("resize_debounce_ms %d clamped to 0", c.ResizeDebounceMs))
		c.ResizeDebounceMs = 0
	}
	if c.Measurer == "" {
		c.Measurer = DefaultMeasurer
	} else if !slices.Contains(measurerNames, c.Measurer) {
		fixed = append(fixed, fmt.Sprintf("unknown measurer %q replaced with %q", c.Measurer, DefaultMeasurer))
		c.Measurer = DefaultMeasurer
	}
	return fixed
}

// LoadConfig reads the config file, writing the defaults on first run. A
// corrupt file is backed up and replaced by the defaults in memory.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Start from the defaults so fields missing from older files keep sane values.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	for _, msg := range config.Normalize() {
		log.WarningLog.Printf("config: %s", msg)
	}

	return config
}

// SaveConfig writes the configuration to disk.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0644)
}
