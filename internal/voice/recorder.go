// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package voice provides audio capture for voice input.
package voice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/google/uuid"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotSupported is returned when no recorder binary is available.
	ErrNotSupported = errors.New("voice capture not supported")

	// ErrAlreadyListening is returned when Start is called mid-capture.
	ErrAlreadyListening = errors.New("already listening")

	// ErrNotListening is returned when Stop is called with no capture active.
	ErrNotListening = errors.New("not listening")
)

// =============================================================================
// RECORDER
// =============================================================================

// Recording identifies one finished capture.
type Recording struct {
	ID   string // UUID assigned at Start
	Path string // WAV file on disk
}

// Recorder drives an external capture binary. It records to uuid-named WAV
// files under Dir and reports its listening state to the UI. Transcription
// is the caller's concern; the recorder only produces audio files.
type Recorder struct {
	mu sync.Mutex

	cap Capability
	dir string

	// Active capture
	cmd       *exec.Cmd
	current   Recording
	listening bool
}

// NewRecorder creates a recorder for the detected capability, storing
// captures under dir (created on first use).
func NewRecorder(cap Capability, dir string) *Recorder {
	return &Recorder{cap: cap, dir: dir}
}

// Supported reports whether this recorder can capture at all.
func (r *Recorder) Supported() bool {
	return r.cap.Supported
}

// Listening reports whether a capture is in progress.
func (r *Recorder) Listening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listening
}

// Start begins a capture and returns its recording ID. The capture runs
// until Stop is called or ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) (Recording, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.cap.Supported {
		return Recording{}, ErrNotSupported
	}
	if r.listening {
		return Recording{}, ErrAlreadyListening
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return Recording{}, fmt.Errorf("create recordings directory: %w", err)
	}

	rec := Recording{ID: uuid.NewString()}
	rec.Path = filepath.Join(r.dir, rec.ID+".wav")

	args := captureArgs(r.cap.Name, rec.Path)
	cmd := exec.CommandContext(ctx, r.cap.Recorder, args...)
	if err := cmd.Start(); err != nil {
		return Recording{}, fmt.Errorf("start %s: %w", r.cap.Name, err)
	}

	r.cmd = cmd
	r.current = rec
	r.listening = true
	return rec, nil
}

// Stop ends the active capture and returns the finished recording.
func (r *Recorder) Stop() (Recording, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.listening {
		return Recording{}, ErrNotListening
	}

	rec := r.current
	cmd := r.cmd
	r.cmd = nil
	r.current = Recording{}
	r.listening = false

	// SIGINT lets the recorder finalize the WAV header; the exit status is
	// expected to be non-zero for interrupted captures.
	if cmd.Process != nil {
		_ = cmd.Process.Signal(syscall.SIGINT)
	}
	_ = cmd.Wait()

	if _, err := os.Stat(rec.Path); err != nil {
		return Recording{}, fmt.Errorf("capture file missing: %w", err)
	}
	return rec, nil
}

// =============================================================================
// CAPTURE ARGUMENTS
// =============================================================================

// captureArgs builds the argument list for a recorder binary writing
// 16 kHz mono WAV to out, the common input format for speech models.
func captureArgs(name, out string) []string {
	switch name {
	case "sox":
		return []string{"-d", "-r", "16000", "-c", "1", "-b", "16", out}
	case "rec":
		return []string{"-r", "16000", "-c", "1", "-b", "16", out}
	case "arecord":
		return []string{"-f", "S16_LE", "-r", "16000", "-c", "1", out}
	case "ffmpeg":
		return []string{"-f", "pulse", "-i", "default", "-ar", "16000", "-ac", "1", "-y", out}
	default:
		return []string{out}
	}
}
