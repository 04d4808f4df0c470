// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides UI components for the murmur TUI.

Components are small, self-contained view types. Interactive ones
(VoiceButton, SessionList) follow the Bubble Tea pattern of value-receiver
Update methods returning commands; pure renderers (Header, Transcript)
just expose View.

VoiceButton is the microphone control. It renders nothing when voice
capture is unsupported, pulses while listening, and fires its press
handler exactly once per activation. SessionList groups conversations
into recency buckets and keeps a flat cursor over them.
*/
package components
