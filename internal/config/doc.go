// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package config provides unified configuration loading and management for murmur.

Configuration lives in ~/.murmur/config.toml (TOML preferred, JSON accepted),
layered over built-in defaults with MURMUR_* environment variables applied
last. Load caches the result for the life of the process; LoadFrom reads a
specific directory and is what tests use.
*/
package config
