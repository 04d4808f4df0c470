// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive TUI for murmur.
//
// This file renders the picker and chat screens.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/murmur-tui/internal/ui/styles"
)

// View renders the active screen.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.header.View())
	b.WriteString("\n")

	if a.lastErr != nil {
		b.WriteString(styles.RenderError(a.lastErr.Error()))
		b.WriteString("\n")
	}

	switch a.screen {
	case screenPicker:
		b.WriteString(a.viewPicker())
	case screenChat:
		b.WriteString(a.viewChat())
	}

	b.WriteString("\n")
	b.WriteString(a.viewStatusBar())
	return b.String()
}

// viewPicker renders the conversation list, with the search field above it
// while a search is being typed.
func (a *App) viewPicker() string {
	var b strings.Builder
	if a.searching {
		b.WriteString(a.theme.InputContainer.Render(a.search.View()))
		b.WriteString("\n")
	}
	b.WriteString(a.theme.Container.Render(a.sessions.View()))
	return b.String()
}

// viewChat renders the transcript with the input row below it.
func (a *App) viewChat() string {
	var b strings.Builder
	b.WriteString(a.theme.Container.Render(a.script.View(now(), a.current)))
	b.WriteString("\n")

	inputRow := a.input.View()
	if mic := a.voiceBtn.View(); mic != "" {
		inputRow = lipgloss.JoinHorizontal(lipgloss.Center, inputRow, " ", mic)
	}
	b.WriteString(a.theme.InputContainer.Render(inputRow))
	return b.String()
}

// viewStatusBar renders the shortcut hints.
func (a *App) viewStatusBar() string {
	parts := make([]string, 0, 8)
	for _, binding := range a.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts,
			a.theme.ShortcutKey.Render(help.Key)+" "+a.theme.ShortcutDesc.Render(help.Desc))
	}

	if a.voiceBtn.Supported() {
		parts = append(parts, a.theme.VoiceHint.Render(a.voiceBtn.Hint()))
	}

	return a.theme.StatusBar.Width(a.width).Render(strings.Join(parts, "  "))
}
