// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the murmur TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/murmur-tui/internal/model"
	"github.com/jeranaias/murmur-tui/internal/timeline"
	"github.com/jeranaias/murmur-tui/internal/ui/styles"
)

// =============================================================================
// TRANSCRIPT COMPONENT
// =============================================================================

// Transcript renders a conversation's messages as alternating bubbles.
// Assistant messages pass through a markdown renderer; user and system
// messages render verbatim.
type Transcript struct {
	width          int
	showTimestamps bool
	markdown       bool
	renderer       *glamour.TermRenderer
	theme          *styles.Theme
}

// NewTranscript creates a transcript renderer. Markdown rendering degrades
// to plain text if the renderer cannot be constructed.
func NewTranscript(theme *styles.Theme, markdown, showTimestamps bool) *Transcript {
	t := &Transcript{
		width:          80,
		showTimestamps: showTimestamps,
		markdown:       markdown,
		theme:          theme,
	}
	if markdown {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(t.contentWidth()),
		)
		if err == nil {
			t.renderer = r
		}
	}
	return t
}

// SetWidth updates the rendering width and rebuilds the markdown renderer
// to match.
func (t *Transcript) SetWidth(width int) {
	if width == t.width {
		return
	}
	t.width = width
	if t.markdown {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(t.contentWidth()),
		)
		if err == nil {
			t.renderer = r
		}
	}
}

func (t *Transcript) contentWidth() int {
	w := t.width - 12
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the full conversation. Timestamps are formatted against
// now so one instant governs the whole render.
func (t *Transcript) View(now time.Time, conv *model.Conversation) string {
	if conv == nil || conv.IsEmpty() {
		return t.theme.SessionMeta.Render("No messages yet. Type below or press the mic to speak.")
	}

	var b strings.Builder
	for i, msg := range conv.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.renderMessage(now, msg))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMessage renders one message bubble with its metadata line.
func (t *Transcript) renderMessage(now time.Time, msg model.Message) string {
	content := msg.Content
	if msg.Role == model.RoleAssistant && t.renderer != nil {
		if rendered, err := t.renderer.Render(content); err == nil {
			content = strings.TrimSpace(rendered)
		}
	}

	bubbleWidth := t.contentWidth()
	var bubble string
	switch msg.Role {
	case model.RoleUser:
		bubble = t.theme.UserBubble.MaxWidth(bubbleWidth + 8).Render(content)
	case model.RoleAssistant:
		bubble = t.theme.AssistantBubble.MaxWidth(bubbleWidth + 8).Render(content)
	default:
		bubble = t.theme.SystemBubble.MaxWidth(bubbleWidth + 8).Render(content)
	}

	meta := msg.Role.DisplayName()
	if msg.Spoken {
		meta += " (spoken)"
	}
	if t.showTimestamps && msg.Timestamp != "" {
		meta += " " + timeline.FormatTimestamp(now, msg.Timestamp)
	}

	return bubble + "\n" + t.theme.MessageMeta.Render(meta)
}
