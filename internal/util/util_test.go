// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the murmur TUI.
package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"empty string", "", 10, ""},
		{"shorter than max", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -1, ""},
		{"max of three", "hello", 3, "hel"},
		{"unicode", "héllo wörld", 8, "héllo..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.input, tc.maxRunes); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.input, tc.maxRunes, got, tc.want)
			}
		})
	}
}

func TestTruncateDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"ascii cut", "hello world", 8, "hello..."},
		{"zero width", "hello", 0, ""},
		{"cjk counts double", "日本語テキスト", 20, "日本語テキスト"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateDisplay(tc.input, tc.maxWidth); got != tc.want {
				t.Errorf("TruncateDisplay(%q, %d) = %q, want %q", tc.input, tc.maxWidth, got, tc.want)
			}
		})
	}

	// A CJK string cut to 8 columns must not exceed 8 columns once the
	// ellipsis is counted.
	got := TruncateDisplay("日本語テキスト", 8)
	if DisplayWidth(got) > 8 {
		t.Errorf("TruncateDisplay cjk width = %d, want <= 8 (%q)", DisplayWidth(got), got)
	}
}

func TestPadDisplay(t *testing.T) {
	if got := PadDisplay("ab", 5); got != "ab   " {
		t.Errorf("PadDisplay(%q, 5) = %q, want %q", "ab", got, "ab   ")
	}
	if got := PadDisplay("abcdef", 5); got != "abcdef" {
		t.Errorf("PadDisplay should not cut long strings, got %q", got)
	}
	// Double-width characters pad by columns, not runes.
	if w := DisplayWidth(PadDisplay("日本", 6)); w != 6 {
		t.Errorf("PadDisplay cjk width = %d, want 6", w)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")
	data := []byte(`{"ok":true}`)

	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("file content = %q, want %q", got, data)
	}

	// Overwrite leaves no temp files behind.
	if err := AtomicWriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() overwrite error: %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries after overwrite, want 1", len(entries))
	}
}
