// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive TUI for murmur.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/murmur-tui/internal/config"
	"github.com/jeranaias/murmur-tui/internal/index"
	"github.com/jeranaias/murmur-tui/internal/model"
	"github.com/jeranaias/murmur-tui/internal/storage"
	"github.com/jeranaias/murmur-tui/internal/ui/components"
	"github.com/jeranaias/murmur-tui/internal/ui/styles"
	"github.com/jeranaias/murmur-tui/internal/voice"
)

// =============================================================================
// SCREENS
// =============================================================================

// screen identifies which view the app is showing.
type screen int

const (
	screenPicker screen = iota // Conversation list with search
	screenChat                 // One open conversation
)

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model. It owns the two screens, the storage
// and index handles, and the voice recorder.
type App struct {
	cfg      *config.Config
	store    *storage.ConversationStore
	watcher  *storage.DirWatcher
	idx      *index.Index
	recorder *voice.Recorder

	keys  KeyMap
	theme *styles.Theme

	// Components
	header   *components.Header
	sessions components.SessionList
	voiceBtn components.VoiceButton
	script   *components.Transcript
	input    textinput.Model
	search   textinput.Model

	// State
	screen      screen
	current     *model.Conversation
	searching   bool
	searchHits  map[string]string // conversation ID -> snippet
	voiceToggle bool              // Set by the voice button handler
	lastErr     error

	width  int
	height int
}

// New assembles the app from its dependencies. watcher and idx may be nil
// when the corresponding features are disabled in the config.
func New(cfg *config.Config, store *storage.ConversationStore, watcher *storage.DirWatcher, idx *index.Index, recorder *voice.Recorder) *App {
	theme := styles.NewTheme()

	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Prompt = "> "
	input.CharLimit = 4000
	input.Focus()

	search := textinput.New()
	search.Placeholder = "Search conversations..."
	search.Prompt = "/ "

	app := &App{
		cfg:      cfg,
		store:    store,
		watcher:  watcher,
		idx:      idx,
		recorder: recorder,
		keys:     DefaultKeyMap(),
		theme:    theme,
		header:   components.NewHeader(theme),
		sessions: components.NewSessionList(theme),
		script:   components.NewTranscript(theme, cfg.UI.Markdown, cfg.UI.ShowTimestamps),
		input:    input,
		search:   search,
		screen:   screenPicker,
		width:    80,
		height:   24,
	}

	supported := cfg.Voice.Enabled && recorder.Supported()
	app.voiceBtn = components.NewVoiceButton(theme, supported, func() {
		app.voiceToggle = true
	})

	return app
}

// Init loads the conversation list and arms the directory watcher.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		loadConversationsCmd(a.store),
		watchStoreCmd(a.watcher),
		textinput.Blink,
	)
}

// now is the evaluation instant for grouping; tests may override it.
var now = time.Now
