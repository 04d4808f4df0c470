// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package model contains the data structures for conversations and messages.

A Conversation is an ordered message history with identity and string
timestamps (RFC 3339). ConversationMeta is the lightweight projection used by
the session list, the timeline grouper and the search index, so listing does
not require loading full message histories.

Messages carry an optional Spoken flag and RecordingID linking them to the
voice capture that produced them.
*/
package model
