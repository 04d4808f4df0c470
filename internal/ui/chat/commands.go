// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive TUI for murmur.
//
// This file defines the asynchronous commands that back the update loop.
// Every blocking operation (disk, database, recorder) runs here so the
// UI thread never stalls.
package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/murmur-tui/internal/index"
	"github.com/jeranaias/murmur-tui/internal/model"
	"github.com/jeranaias/murmur-tui/internal/storage"
	"github.com/jeranaias/murmur-tui/internal/voice"
)

// loadConversationsCmd lists stored conversations.
func loadConversationsCmd(store *storage.ConversationStore) tea.Cmd {
	return func() tea.Msg {
		metas, err := store.List()
		if err != nil {
			return errMsg{err}
		}
		return conversationsLoadedMsg{metas}
	}
}

// openConversationCmd loads one conversation in full.
func openConversationCmd(store *storage.ConversationStore, id string) tea.Cmd {
	return func() tea.Msg {
		conv, err := store.Load(id)
		if err != nil {
			return errMsg{err}
		}
		return conversationOpenedMsg{conv}
	}
}

// saveConversationCmd persists a conversation and keeps the search index
// in step. Index failures are swallowed: search degrades, storage doesn't.
func saveConversationCmd(store *storage.ConversationStore, idx *index.Index, conv *model.Conversation) tea.Cmd {
	return func() tea.Msg {
		id, err := store.Save(conv)
		if err != nil {
			return errMsg{err}
		}
		if idx != nil {
			_ = idx.Put(context.Background(), conv)
		}
		return conversationSavedMsg{id}
	}
}

// deleteConversationCmd removes a conversation from disk and the index.
func deleteConversationCmd(store *storage.ConversationStore, idx *index.Index, id string) tea.Cmd {
	return func() tea.Msg {
		if err := store.Delete(id); err != nil {
			return errMsg{err}
		}
		if idx != nil {
			_ = idx.Remove(context.Background(), id)
		}
		return conversationDeletedMsg{id}
	}
}

// searchCmd runs a full-text query, falling back to title search when the
// index is unavailable.
func searchCmd(store *storage.ConversationStore, idx *index.Index, query string) tea.Cmd {
	return func() tea.Msg {
		if idx != nil {
			hits, err := idx.Search(context.Background(), query, 20)
			if err == nil {
				return searchResultsMsg{query: query, hits: hits}
			}
		}
		metas, err := store.Search(query)
		if err != nil {
			return errMsg{err}
		}
		hits := make([]index.SearchHit, 0, len(metas))
		for _, m := range metas {
			hits = append(hits, index.SearchHit{
				ConversationID: m.ID,
				Title:          m.Title,
				UpdatedAt:      m.UpdatedAt,
				Snippet:        m.Preview,
			})
		}
		return searchResultsMsg{query: query, hits: hits}
	}
}

// watchStoreCmd blocks until the directory watcher signals a change, then
// reports it. The update loop re-issues the command to keep listening.
func watchStoreCmd(w *storage.DirWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Refresh(); !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// startRecordingCmd begins voice capture.
func startRecordingCmd(rec *voice.Recorder) tea.Cmd {
	return func() tea.Msg {
		if _, err := rec.Start(context.Background()); err != nil {
			return errMsg{err}
		}
		return recordingStartedMsg{}
	}
}

// stopRecordingCmd finalizes voice capture and returns the recording.
func stopRecordingCmd(rec *voice.Recorder) tea.Cmd {
	return func() tea.Msg {
		recording, err := rec.Stop()
		if err != nil {
			return errMsg{err}
		}
		return recordingStoppedMsg{recording}
	}
}
