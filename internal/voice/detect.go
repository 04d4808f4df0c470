// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voice provides audio capture for voice input.
package voice

import "os/exec"

// =============================================================================
// CAPABILITY DETECTION
// =============================================================================

// recorderBinaries are the capture programs murmur knows how to drive,
// in preference order.
var recorderBinaries = []string{"sox", "rec", "arecord", "ffmpeg"}

// Capability describes whether voice capture is available in this
// environment and which recorder backs it. The UI treats Supported as a
// hard precondition: when false, the voice control renders nothing.
type Capability struct {
	Supported bool
	Recorder  string // Absolute path of the detected recorder binary
	Name      string // Base name of the recorder ("sox", "arecord", ...)
}

// Detect probes PATH for a known recorder binary.
func Detect() Capability {
	return detect(exec.LookPath)
}

// DetectWith probes using a specific recorder name from configuration,
// falling back to full detection when the name is empty or missing.
func DetectWith(preferred string) Capability {
	if preferred != "" {
		if path, err := exec.LookPath(preferred); err == nil {
			return Capability{Supported: true, Recorder: path, Name: preferred}
		}
	}
	return Detect()
}

// detect is the lookup-injected core, split out for tests.
func detect(look func(string) (string, error)) Capability {
	for _, name := range recorderBinaries {
		path, err := look(name)
		if err != nil {
			continue
		}
		return Capability{Supported: true, Recorder: path, Name: name}
	}
	return Capability{}
}
