// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for murmur TUI.

Colors are defined as Lip Gloss AdaptiveColor pairs so they read well on
both light and dark terminals without configuration. Theme bundles every
styled component the UI renders; construct one with NewTheme at startup
and pass it down to the components.

Voice states get their own palette entries: the microphone control is
muted while idle, rose while live, and faint when input is blocked.
*/
package styles
