// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the murmur TUI.
package components

import (
	"strings"
	"time"

	"github.com/jeranaias/murmur-tui/internal/model"
	"github.com/jeranaias/murmur-tui/internal/timeline"
	"github.com/jeranaias/murmur-tui/internal/ui/styles"
	"github.com/jeranaias/murmur-tui/internal/util"
)

// =============================================================================
// SESSION LIST COMPONENT
// =============================================================================

// SessionList renders stored conversations grouped by recency, with a flat
// cursor that moves over conversations and skips group headers. Groups that
// hold no conversations are not shown.
type SessionList struct {
	groups []timeline.Group
	flat   []model.ConversationMeta

	now    time.Time // Evaluation instant, shared by grouping and rendering
	cursor int
	width  int
	theme  *styles.Theme
}

// NewSessionList creates an empty session list.
func NewSessionList(theme *styles.Theme) SessionList {
	return SessionList{
		theme: theme,
		width: 80,
	}
}

// SetConversations regroups the given conversations around now, which also
// becomes the instant timestamps are formatted against so a row never
// renders under one bucket with another bucket's label. The cursor is
// clamped so a shrinking list never leaves it out of range.
func (s *SessionList) SetConversations(now time.Time, convs []model.ConversationMeta) {
	s.now = now
	s.groups = timeline.GroupConversations(now, convs)

	s.flat = s.flat[:0]
	for _, g := range s.groups {
		s.flat = append(s.flat, g.Conversations...)
	}

	if s.cursor >= len(s.flat) {
		s.cursor = len(s.flat) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// SetWidth updates the rendering width.
func (s *SessionList) SetWidth(width int) {
	s.width = width
}

// Len returns the number of listed conversations.
func (s *SessionList) Len() int {
	return len(s.flat)
}

// =============================================================================
// NAVIGATION
// =============================================================================

// CursorUp moves the selection up one conversation.
func (s *SessionList) CursorUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// CursorDown moves the selection down one conversation.
func (s *SessionList) CursorDown() {
	if s.cursor < len(s.flat)-1 {
		s.cursor++
	}
}

// Selected returns the conversation under the cursor.
func (s *SessionList) Selected() (model.ConversationMeta, bool) {
	if len(s.flat) == 0 {
		return model.ConversationMeta{}, false
	}
	return s.flat[s.cursor], true
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the grouped list.
func (s SessionList) View() string {
	if len(s.flat) == 0 {
		return s.theme.SessionMeta.Render("No conversations yet")
	}

	var b strings.Builder
	idx := 0
	for _, g := range s.groups {
		b.WriteString(s.theme.SessionGroupHeader.Render(g.Label()))
		b.WriteString("\n")
		for _, meta := range g.Conversations {
			b.WriteString(s.renderItem(meta, idx == s.cursor))
			b.WriteString("\n")
			idx++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderItem renders one conversation row: title, then right-aligned
// timestamp, then a preview line.
func (s SessionList) renderItem(meta model.ConversationMeta, selected bool) string {
	itemWidth := s.width - 4
	if itemWidth < 20 {
		itemWidth = 20
	}

	stamp := timeline.FormatTimestamp(s.now, meta.UpdatedAt)
	titleWidth := itemWidth - util.DisplayWidth(stamp) - 1
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := util.PadDisplay(util.TruncateDisplay(meta.Title, titleWidth), titleWidth)

	line := title + " " + stamp
	preview := util.TruncateDisplay(meta.Preview, itemWidth)

	if selected {
		return s.theme.SessionItemSelected.Render(line) + "\n  " + s.theme.SessionSnippet.Render(preview)
	}
	return s.theme.SessionItem.Render(line) + "\n  " + s.theme.SessionMeta.Render(preview)
}
