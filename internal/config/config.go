// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for murmur.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.murmur/config.toml
//   - ~/.murmur/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/murmur-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete murmur configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Voice input configuration
	Voice VoiceConfig `toml:"voice" json:"voice"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// VoiceConfig contains voice capture configuration.
type VoiceConfig struct {
	// Enabled toggles voice input. When false the microphone control is
	// hidden even if a recorder binary is installed.
	Enabled bool `toml:"enabled" json:"enabled"`
	// Recorder names a preferred capture binary ("sox", "rec", "arecord",
	// "ffmpeg"). Empty means autodetect in that order.
	Recorder string `toml:"recorder" json:"recorder"`
	// RecordingDir is where captured audio lands (empty = ~/.murmur/recordings)
	RecordingDir string `toml:"recording_dir" json:"recording_dir"`
}

// StorageConfig contains conversation persistence configuration.
type StorageConfig struct {
	// Dir is the conversation directory (empty = ~/.murmur/conversations)
	Dir string `toml:"dir" json:"dir"`
	// MaxConversations caps stored history; oldest conversations are pruned
	// past the limit. 0 means the default of 200.
	MaxConversations int `toml:"max_conversations" json:"max_conversations"`
	// WatchEnabled refreshes the picker when other processes write
	// conversations.
	WatchEnabled bool `toml:"watch_enabled" json:"watch_enabled"`
	// IndexEnabled maintains the full-text search index.
	IndexEnabled bool `toml:"index_enabled" json:"index_enabled"`
	// IndexPath is the search index database (empty = ~/.murmur/index.db)
	IndexPath string `toml:"index_path" json:"index_path"`
}

// UIConfig contains user interface configuration.
type UIConfig struct {
	// Theme selects the color theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme"`
	// ShowTimestamps displays per-message timestamps in the transcript
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// Markdown renders assistant messages as markdown
	Markdown bool `toml:"markdown" json:"markdown"`
	// CompactMode reduces padding for small terminals
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Voice: VoiceConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			MaxConversations: 200,
			WatchEnabled:     true,
			IndexEnabled:     true,
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: true,
			Markdown:       true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

var (
	loadOnce sync.Once
	loaded   *Config
	loadErr  error
)

// Load returns the process-wide configuration, reading it on first call.
func Load() (*Config, error) {
	loadOnce.Do(func() {
		loaded, loadErr = LoadFrom(ConfigDir())
	})
	return loaded, loadErr
}

// LoadFrom reads configuration from dir, falling back through config.toml,
// config.json, then defaults. Environment overrides apply last.
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	tomlPath := filepath.Join(dir, "config.toml")
	jsonPath := filepath.Join(dir, "config.json")

	switch {
	case fileExists(tomlPath):
		if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", tomlPath, err)
		}
	case fileExists(jsonPath):
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", jsonPath, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", jsonPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigDir returns the murmur configuration directory (~/.murmur).
func ConfigDir() string {
	if dir := os.Getenv("MURMUR_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".murmur"
	}
	return filepath.Join(home, ".murmur")
}

// applyEnvOverrides maps MURMUR_* environment variables onto the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MURMUR_VOICE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Voice.Enabled = b
		}
	}
	if v := os.Getenv("MURMUR_VOICE_RECORDER"); v != "" {
		cfg.Voice.Recorder = v
	}
	if v := os.Getenv("MURMUR_STORAGE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("MURMUR_MAX_CONVERSATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Storage.MaxConversations = n
		}
	}
	if v := os.Getenv("MURMUR_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values, normalizing where
// reasonable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.UI.Theme) {
	case "", "auto", "dark", "light":
		if c.UI.Theme == "" {
			c.UI.Theme = "auto"
		}
	default:
		return fmt.Errorf("invalid ui.theme %q (expected auto, dark, or light)", c.UI.Theme)
	}

	if c.Storage.MaxConversations < 0 {
		return fmt.Errorf("storage.max_conversations must be >= 0, got %d", c.Storage.MaxConversations)
	}
	if c.Storage.MaxConversations == 0 {
		c.Storage.MaxConversations = 200
	}

	if c.Voice.Recorder != "" {
		valid := map[string]bool{"sox": true, "rec": true, "arecord": true, "ffmpeg": true}
		if !valid[c.Voice.Recorder] {
			return fmt.Errorf("invalid voice.recorder %q", c.Voice.Recorder)
		}
	}

	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration as TOML to dir/config.toml.
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	if err := util.AtomicWriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// StorageDir resolves the conversation directory, expanding the default.
func (c *Config) StorageDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return filepath.Join(ConfigDir(), "conversations")
}

// RecordingDir resolves the voice recording directory.
func (c *Config) RecordingDir() string {
	if c.Voice.RecordingDir != "" {
		return c.Voice.RecordingDir
	}
	return filepath.Join(ConfigDir(), "recordings")
}

// IndexPath resolves the search index database path.
func (c *Config) IndexPath() string {
	if c.Storage.IndexPath != "" {
		return c.Storage.IndexPath
	}
	return filepath.Join(ConfigDir(), "index.db")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
