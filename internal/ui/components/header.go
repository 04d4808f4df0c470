// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the murmur TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/murmur-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar: brand on the left, conversation title centered,
// recording state on the right.
type Header struct {
	Title     string // Conversation title, empty on the picker screen
	Width     int
	Recording bool
	theme     *styles.Theme
}

// NewHeader creates a header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTitle updates the conversation title.
func (h *Header) SetTitle(title string) {
	h.Title = title
}

// SetRecording toggles the live-microphone indicator.
func (h *Header) SetRecording(recording bool) {
	h.Recording = recording
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	brand := h.theme.HeaderBrand.Render("murmur")

	title := ""
	if h.Title != "" {
		title = h.theme.HeaderTitle.Render(h.Title)
	}

	indicator := ""
	if h.Recording {
		indicator = h.theme.VoiceButtonListening.Render(styles.StatusIndicators.Recording)
	}

	left := brand
	if title != "" {
		left += "  " + title
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(indicator) - 4
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + indicator

	return h.theme.Header.Width(width).Render(line)
}
