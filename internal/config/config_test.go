// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for murmur.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// LOADING TESTS
// =============================================================================

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Voice.Enabled)
	assert.Equal(t, 200, cfg.Storage.MaxConversations)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.True(t, cfg.UI.Markdown)
}

func TestLoadFromTOML(t *testing.T) {
	dir := t.TempDir()
	content := `
[voice]
enabled = false
recorder = "ffmpeg"

[storage]
max_conversations = 50

[ui]
theme = "dark"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Voice.Enabled)
	assert.Equal(t, "ffmpeg", cfg.Voice.Recorder)
	assert.Equal(t, 50, cfg.Storage.MaxConversations)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadFromJSON(t *testing.T) {
	dir := t.TempDir()
	content := `{"ui": {"theme": "light", "compact_mode": true}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.CompactMode)
}

func TestTOMLTakesPrecedenceOverJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ntheme = \"dark\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"ui":{"theme":"light"}}`), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MURMUR_THEME", "light")
	t.Setenv("MURMUR_VOICE_ENABLED", "false")
	t.Setenv("MURMUR_MAX_CONVERSATIONS", "25")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.Voice.Enabled)
	assert.Equal(t, 25, cfg.Storage.MaxConversations)
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidateRejectsBadTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.Theme = "solarized"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadRecorder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Voice.Recorder = "parec"
	assert.Error(t, cfg.Validate())
}

func TestValidateNormalizesZeroLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.MaxConversations = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200, cfg.Storage.MaxConversations)
}

func TestValidateRejectsNegativeLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.MaxConversations = -1
	assert.Error(t, cfg.Validate())
}

// =============================================================================
// SAVE / PATH TESTS
// =============================================================================

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.UI.Theme = "dark"
	cfg.Voice.Recorder = "sox"
	require.NoError(t, cfg.Save(dir))

	reloaded, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", reloaded.UI.Theme)
	assert.Equal(t, "sox", reloaded.Voice.Recorder)
}

func TestPathResolution(t *testing.T) {
	t.Setenv("MURMUR_CONFIG_DIR", "/tmp/murmur-test")

	cfg := DefaultConfig()
	assert.Equal(t, "/tmp/murmur-test/conversations", cfg.StorageDir())
	assert.Equal(t, "/tmp/murmur-test/recordings", cfg.RecordingDir())
	assert.Equal(t, "/tmp/murmur-test/index.db", cfg.IndexPath())

	cfg.Storage.Dir = "/data/convs"
	assert.Equal(t, "/data/convs", cfg.StorageDir())
}
