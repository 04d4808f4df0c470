// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive TUI for murmur.
//
// This file contains the update loop.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/murmur-tui/internal/model"
)

// Update routes messages to the active screen.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		a.header.SetWidth(msg.Width)
		a.sessions.SetWidth(msg.Width)
		a.script.SetWidth(msg.Width)
		a.input.Width = msg.Width - 8
		a.search.Width = msg.Width - 8
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.screen == screenPicker {
			return a.updatePicker(msg)
		}
		return a.updateChat(msg)

	case conversationsLoadedMsg:
		a.sessions.SetConversations(now(), msg.metas)
		return a, nil

	case conversationOpenedMsg:
		a.current = msg.conv
		a.screen = screenChat
		a.header.SetTitle(msg.conv.GetTitle())
		a.input.Focus()
		return a, nil

	case conversationSavedMsg:
		return a, loadConversationsCmd(a.store)

	case conversationDeletedMsg:
		return a, loadConversationsCmd(a.store)

	case searchResultsMsg:
		a.searchHits = make(map[string]string, len(msg.hits))
		metas := make([]model.ConversationMeta, 0, len(msg.hits))
		for _, hit := range msg.hits {
			a.searchHits[hit.ConversationID] = hit.Snippet
			metas = append(metas, model.ConversationMeta{
				ID:        hit.ConversationID,
				Title:     hit.Title,
				UpdatedAt: hit.UpdatedAt,
				Preview:   hit.Snippet,
			})
		}
		a.sessions.SetConversations(now(), metas)
		return a, nil

	case storeChangedMsg:
		// Re-arm the watcher and refresh the list.
		return a, tea.Batch(loadConversationsCmd(a.store), watchStoreCmd(a.watcher))

	case recordingStartedMsg:
		a.header.SetRecording(true)
		return a, a.voiceBtn.SetListening(true)

	case recordingStoppedMsg:
		a.header.SetRecording(false)
		a.voiceBtn.SetListening(false)
		if a.current == nil {
			a.current = model.NewConversation()
			a.screen = screenChat
		}
		a.current.AddSpokenMessage("(voice memo)", msg.rec.ID)
		return a, saveConversationCmd(a.store, a.idx, a.current)

	case errMsg:
		a.lastErr = msg.err
		a.header.SetRecording(false)
		a.voiceBtn.SetListening(false)
		return a, nil
	}

	// Animation ticks for the voice button pulse.
	var cmd tea.Cmd
	a.voiceBtn, cmd = a.voiceBtn.Update(msg)
	return a, cmd
}

// =============================================================================
// PICKER SCREEN
// =============================================================================

func (a *App) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch {
		case key.Matches(msg, a.keys.Back):
			a.searching = false
			a.search.Reset()
			a.searchHits = nil
			return a, loadConversationsCmd(a.store)
		case key.Matches(msg, a.keys.Open):
			a.searching = false
			query := a.search.Value()
			if query == "" {
				return a, loadConversationsCmd(a.store)
			}
			return a, searchCmd(a.store, a.idx, query)
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		a.sessions.CursorUp()
	case key.Matches(msg, a.keys.Down):
		a.sessions.CursorDown()
	case key.Matches(msg, a.keys.Open):
		if meta, ok := a.sessions.Selected(); ok {
			return a, openConversationCmd(a.store, meta.ID)
		}
	case key.Matches(msg, a.keys.New):
		a.current = model.NewConversation()
		a.screen = screenChat
		a.header.SetTitle(a.current.GetTitle())
		a.input.Focus()
	case key.Matches(msg, a.keys.Delete):
		if meta, ok := a.sessions.Selected(); ok {
			return a, deleteConversationCmd(a.store, a.idx, meta.ID)
		}
	case key.Matches(msg, a.keys.Search):
		a.searching = true
		a.search.Focus()
		return a, textinput.Blink
	case key.Matches(msg, a.keys.Voice):
		return a, a.activateVoice()
	}
	return a, nil
}

// =============================================================================
// CHAT SCREEN
// =============================================================================

func (a *App) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.screen = screenPicker
		a.header.SetTitle("")
		return a, loadConversationsCmd(a.store)
	case key.Matches(msg, a.keys.Submit):
		text := a.input.Value()
		if text == "" {
			return a, nil
		}
		a.input.Reset()
		a.current.AddUserMessage(text)
		a.header.SetTitle(a.current.GetTitle())
		return a, saveConversationCmd(a.store, a.idx, a.current)
	case key.Matches(msg, a.keys.Voice):
		return a, a.activateVoice()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// =============================================================================
// VOICE TOGGLE
// =============================================================================

// activateVoice presses the voice button and, if the handler fired, issues
// the matching recorder command.
func (a *App) activateVoice() tea.Cmd {
	a.voiceToggle = false
	a.voiceBtn.Activate()
	if !a.voiceToggle {
		return nil
	}
	a.voiceToggle = false
	if a.recorder.Listening() {
		return stopRecordingCmd(a.recorder)
	}
	return startRecordingCmd(a.recorder)
}
