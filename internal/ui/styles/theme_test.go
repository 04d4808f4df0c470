// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for murmur TUI.
package styles

import (
	"strings"
	"testing"
)

func TestNewThemeInitializesStyles(t *testing.T) {
	theme := NewTheme()

	if !theme.VoiceButtonListening.GetBold() {
		t.Error("listening style should be bold")
	}
	if theme.VoiceButtonDisabled.GetBold() {
		t.Error("disabled style should not be bold")
	}
	if !theme.SessionGroupHeader.GetBold() {
		t.Error("group header style should be bold")
	}
}

func TestLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme()
	for _, tc := range tests {
		theme.SetSize(tc.width, 24)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("width %d: got layout %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestRenderHelpersIncludeIndicators(t *testing.T) {
	if !strings.Contains(RenderError("failed"), StatusIndicators.Error) {
		t.Error("error rendering should carry its shape indicator")
	}
	if !strings.Contains(RenderSuccess("saved"), StatusIndicators.Success) {
		t.Error("success rendering should carry its shape indicator")
	}
}
