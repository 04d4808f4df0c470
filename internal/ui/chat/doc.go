// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the interactive TUI for murmur.

App is the root Bubble Tea model with two screens: a picker listing stored
conversations grouped by recency, and a chat view for one open
conversation. All disk, database, and recorder work happens in commands
so the update loop never blocks.

Voice capture is driven through the VoiceButton component: a keypress
activates the button, the button fires its handler, and the handler issues
the recorder start/stop command. When the microphone control is
unsupported the keybinding is inert and the control invisible.
*/
package chat
