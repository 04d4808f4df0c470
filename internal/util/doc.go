// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the murmur TUI.
//
// String helpers are display-width aware (via go-runewidth) so layout math
// survives CJK and other double-width characters. AtomicWriteFile is the
// crash-safe write primitive used by the conversation store.
package util
