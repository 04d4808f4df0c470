// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voice provides audio capture for voice input.
package voice

import (
	"context"
	"errors"
	"testing"
)

// =============================================================================
// DETECTION TESTS
// =============================================================================

func TestDetectPrefersFirstAvailable(t *testing.T) {
	look := func(name string) (string, error) {
		switch name {
		case "rec", "arecord":
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}

	cap := detect(look)

	if !cap.Supported {
		t.Fatal("detect() should report supported when a recorder exists")
	}
	// "sox" is missing, so "rec" wins over "arecord" by preference order.
	if cap.Name != "rec" {
		t.Errorf("detect() name = %q, want %q", cap.Name, "rec")
	}
	if cap.Recorder != "/usr/bin/rec" {
		t.Errorf("detect() recorder = %q, want %q", cap.Recorder, "/usr/bin/rec")
	}
}

func TestDetectNothingAvailable(t *testing.T) {
	look := func(string) (string, error) { return "", errors.New("not found") }

	cap := detect(look)

	if cap.Supported {
		t.Error("detect() should report unsupported with no recorders on PATH")
	}
	if cap.Recorder != "" || cap.Name != "" {
		t.Errorf("detect() = %+v, want zero capability", cap)
	}
}

// =============================================================================
// RECORDER TESTS
// =============================================================================

func TestRecorderStartUnsupported(t *testing.T) {
	r := NewRecorder(Capability{}, t.TempDir())

	if r.Supported() {
		t.Error("Supported() should be false for zero capability")
	}

	_, err := r.Start(context.Background())
	if !errors.Is(err, ErrNotSupported) {
		t.Errorf("Start() error = %v, want ErrNotSupported", err)
	}
}

func TestRecorderStopWithoutStart(t *testing.T) {
	r := NewRecorder(Capability{}, t.TempDir())

	_, err := r.Stop()
	if !errors.Is(err, ErrNotListening) {
		t.Errorf("Stop() error = %v, want ErrNotListening", err)
	}
}

func TestRecorderListeningInitiallyFalse(t *testing.T) {
	r := NewRecorder(Capability{Supported: true, Recorder: "/bin/true", Name: "sox"}, t.TempDir())

	if r.Listening() {
		t.Error("Listening() should be false before Start()")
	}
}

// =============================================================================
// CAPTURE ARGUMENT TESTS
// =============================================================================

func TestCaptureArgs(t *testing.T) {
	tests := []struct {
		name string
		bin  string
		want []string
	}{
		{"sox", "sox", []string{"-d", "-r", "16000", "-c", "1", "-b", "16", "/tmp/x.wav"}},
		{"rec", "rec", []string{"-r", "16000", "-c", "1", "-b", "16", "/tmp/x.wav"}},
		{"arecord", "arecord", []string{"-f", "S16_LE", "-r", "16000", "-c", "1", "/tmp/x.wav"}},
		{"unknown", "mystery", []string{"/tmp/x.wav"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := captureArgs(tc.bin, "/tmp/x.wav")
			if len(got) != len(tc.want) {
				t.Fatalf("captureArgs(%q) = %v, want %v", tc.bin, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("captureArgs(%q)[%d] = %q, want %q", tc.bin, i, got[i], tc.want[i])
				}
			}
		})
	}

	// Every recorder's argument list ends with or contains the output path.
	for _, bin := range recorderBinaries {
		args := captureArgs(bin, "/tmp/out.wav")
		found := false
		for _, a := range args {
			if a == "/tmp/out.wav" {
				found = true
			}
		}
		if !found {
			t.Errorf("captureArgs(%q) does not reference the output path: %v", bin, args)
		}
	}
}
