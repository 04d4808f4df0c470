// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package index provides full-text search over stored conversations.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/murmur-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrClosed        = errors.New("index closed")
	ErrDatabaseError = errors.New("database error")
)

// =============================================================================
// SEARCH INDEX
// =============================================================================

// SearchHit is one conversation matching a query.
type SearchHit struct {
	ConversationID string
	Title          string
	UpdatedAt      string
	Snippet        string // Matching message fragment with [match] markers
}

// Index is a SQLite-backed full-text index over conversation messages.
// It powers the picker's /search across message bodies; title search is
// handled by the store without touching the index.
type Index struct {
	db *sql.DB
}

// Open opens (creating if needed) the index database at path and ensures
// the schema is current.
func Open(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows one writer at a time; keep the pool at a single
	// connection to avoid SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %s: %v", ErrDatabaseError, pragma, err)
		}
	}

	idx := &Index{db: db}
	if err := idx.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

// Close releases the database.
func (idx *Index) Close() error {
	if idx.db == nil {
		return nil
	}
	err := idx.db.Close()
	idx.db = nil
	return err
}

// ensureSchema applies the schema and records the version.
func (idx *Index) ensureSchema() error {
	if _, err := idx.db.Exec(Schema); err != nil {
		return fmt.Errorf("%w: apply schema: %v", ErrDatabaseError, err)
	}
	_, err := idx.db.Exec(
		`INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)`,
		strconv.Itoa(SchemaVersion),
	)
	if err != nil {
		return fmt.Errorf("%w: record schema version: %v", ErrDatabaseError, err)
	}
	return nil
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// Put indexes a conversation, replacing any previous entry for its ID.
func (idx *Index) Put(ctx context.Context, conv *model.Conversation) error {
	if idx.db == nil {
		return ErrClosed
	}

	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	// Reindex from scratch: cascade removes old messages, triggers keep
	// the FTS table in sync.
	if _, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE conv_id = ?`, conv.ID); err != nil {
		return fmt.Errorf("%w: clear previous entry: %v", ErrDatabaseError, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO conversations (conv_id, title, updated_at, indexed_at) VALUES (?, ?, ?, ?)`,
		conv.ID, conv.GetTitle(), conv.UpdatedAt, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("%w: insert conversation: %v", ErrDatabaseError, err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: last insert id: %v", ErrDatabaseError, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO messages (conversation_id, msg_id, role, content, timestamp) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare: %v", ErrDatabaseError, err)
	}
	defer stmt.Close()

	for _, msg := range conv.Messages {
		if msg.IsEmpty() {
			continue
		}
		if _, err := stmt.ExecContext(ctx, rowID, msg.ID, string(msg.Role), msg.Content, msg.Timestamp); err != nil {
			return fmt.Errorf("%w: insert message: %v", ErrDatabaseError, err)
		}
	}

	return tx.Commit()
}

// Remove drops a conversation from the index.
func (idx *Index) Remove(ctx context.Context, convID string) error {
	if idx.db == nil {
		return ErrClosed
	}
	_, err := idx.db.ExecContext(ctx, `DELETE FROM conversations WHERE conv_id = ?`, convID)
	if err != nil {
		return fmt.Errorf("%w: remove: %v", ErrDatabaseError, err)
	}
	return nil
}

// =============================================================================
// SEARCH
// =============================================================================

// Search returns conversations with messages matching the query, most
// recently updated first. Each hit carries one snippet from its best
// matching message.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	if idx.db == nil {
		return nil, ErrClosed
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	// Snippets are computed in the inner query: FTS5 auxiliary functions
	// are only valid directly against the virtual table, not under an
	// outer aggregate. The bare frag column then rides along with
	// MIN(rank), so each conversation keeps its best match's snippet.
	// MATERIALIZED stops the query flattener from inlining the snippet
	// call under the aggregate, which SQLite rejects.
	rows, err := idx.db.QueryContext(ctx, `
		WITH f AS MATERIALIZED (
			SELECT rowid, rank,
			       snippet(messages_fts, 0, '[', ']', '...', 12) AS frag
			FROM messages_fts
			WHERE messages_fts MATCH ?
		)
		SELECT c.conv_id, c.title, c.updated_at, f.frag, MIN(f.rank) AS best
		FROM f
		JOIN messages m ON m.id = f.rowid
		JOIN conversations c ON c.id = m.conversation_id
		GROUP BY c.conv_id
		ORDER BY c.updated_at DESC
		LIMIT ?`,
		ftsQuery(query), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var hit SearchHit
		var best float64
		if err := rows.Scan(&hit.ConversationID, &hit.Title, &hit.UpdatedAt, &hit.Snippet, &best); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrDatabaseError, err)
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

// ftsQuery escapes a user query for FTS5 by quoting each term, so input
// like "can't" or "a-b" is treated as plain text rather than syntax.
func ftsQuery(query string) string {
	terms := strings.Fields(query)
	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		quoted = append(quoted, `"`+strings.ReplaceAll(term, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, " ")
}
