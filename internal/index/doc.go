// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package index provides full-text search over stored conversations.

The index is a single SQLite database (modernc.org/sqlite, no cgo) with an
FTS5 virtual table over message content. Conversations are indexed whole:
Put replaces the previous entry for the same conversation ID, and triggers
keep the FTS table in sync with the messages table.

Search returns one hit per matching conversation, most recently updated
first, with a snippet from the best matching message. Queries are treated
as plain text; FTS5 operator syntax is escaped.
*/
package index
