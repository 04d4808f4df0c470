// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package storage provides conversation persistence for the murmur TUI.

Conversations are stored one JSON file each under ~/.murmur/conversations,
written atomically so a crash never leaves a partial record. List returns
lightweight metadata sorted most recent first; full histories load on
demand.

DirWatcher layers fsnotify over the store so a running TUI notices writes
from other murmur processes, coalescing event bursts into single refresh
signals.
*/
package storage
