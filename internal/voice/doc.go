// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package voice provides environment detection and audio capture for voice
input.

Detect probes PATH for a known recorder binary (sox, rec, arecord, ffmpeg)
and yields a Capability. The UI's voice control takes Capability.Supported
as its render precondition; murmur never attempts capture without it.

Recorder shells out to the detected binary, writing uuid-named 16 kHz mono
WAV files under its directory. Speech-to-text is deliberately out of scope:
murmur hands finished recordings to whatever transcriber the caller wires
in.
*/
package voice
