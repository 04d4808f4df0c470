// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive TUI for murmur.
//
// This file defines the Bubble Tea messages exchanged between commands
// and the update loop.
package chat

import (
	"github.com/jeranaias/murmur-tui/internal/index"
	"github.com/jeranaias/murmur-tui/internal/model"
	"github.com/jeranaias/murmur-tui/internal/voice"
)

// conversationsLoadedMsg delivers the refreshed conversation list.
type conversationsLoadedMsg struct {
	metas []model.ConversationMeta
}

// conversationOpenedMsg delivers a fully loaded conversation.
type conversationOpenedMsg struct {
	conv *model.Conversation
}

// conversationSavedMsg confirms a save and carries the stored ID.
type conversationSavedMsg struct {
	id string
}

// conversationDeletedMsg confirms a deletion.
type conversationDeletedMsg struct {
	id string
}

// searchResultsMsg delivers full-text search hits.
type searchResultsMsg struct {
	query string
	hits  []index.SearchHit
}

// storeChangedMsg signals that another process touched the conversation
// directory.
type storeChangedMsg struct{}

// recordingStartedMsg confirms the recorder is live.
type recordingStartedMsg struct{}

// recordingStoppedMsg carries the finished capture.
type recordingStoppedMsg struct {
	rec voice.Recording
}

// errMsg surfaces a failed command.
type errMsg struct {
	err error
}
