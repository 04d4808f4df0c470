// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the murmur TUI.
package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/murmur-tui/internal/ui/styles"
)

// =============================================================================
// VOICE BUTTON COMPONENT
// =============================================================================

// VoiceButton is the microphone toggle control. It renders nothing at all
// when voice capture is unsupported on this system, so surrounding layout
// code can compose it unconditionally.
//
// The button holds no capture state of its own: the owner tells it whether
// listening is active via SetListening, and Activate notifies the owner's
// handler. Pressing it while disabled is a no-op.
type VoiceButton struct {
	// Pulse animation shown while listening
	pulse spinner.Model

	// Configuration
	supported bool
	onPress   func()
	theme     *styles.Theme

	// State
	listening bool
	disabled  bool
}

// NewVoiceButton creates a voice button. onPress fires exactly once per
// activation; pass the toggle handler that starts or stops capture.
func NewVoiceButton(theme *styles.Theme, supported bool, onPress func()) VoiceButton {
	p := spinner.New()
	p.Spinner = spinner.Spinner{
		Frames: []string{"( )", "(o)", "(O)", "(o)"},
		FPS:    time.Second / 8,
	}

	return VoiceButton{
		pulse:     p,
		supported: supported,
		onPress:   onPress,
		theme:     theme,
	}
}

// =============================================================================
// STATE MANAGEMENT
// =============================================================================

// Supported reports whether the control renders at all.
func (v *VoiceButton) Supported() bool {
	return v.supported
}

// Listening reports whether the button shows its active state.
func (v *VoiceButton) Listening() bool {
	return v.listening
}

// SetListening switches the visual state. Entering the listening state
// returns the command that drives the pulse animation.
func (v *VoiceButton) SetListening(listening bool) tea.Cmd {
	if v.listening == listening {
		return nil
	}
	v.listening = listening
	if listening {
		return v.pulse.Tick
	}
	return nil
}

// SetDisabled blocks or unblocks activation without hiding the control.
func (v *VoiceButton) SetDisabled(disabled bool) {
	v.disabled = disabled
}

// Disabled reports whether activation is currently blocked.
func (v *VoiceButton) Disabled() bool {
	return v.disabled
}

// Activate invokes the press handler once. It does nothing when the
// control is unsupported, disabled, or has no handler.
func (v *VoiceButton) Activate() {
	if !v.supported || v.disabled || v.onPress == nil {
		return
	}
	v.onPress()
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Update advances the pulse animation while listening.
func (v VoiceButton) Update(msg tea.Msg) (VoiceButton, tea.Cmd) {
	if !v.listening {
		return v, nil
	}
	var cmd tea.Cmd
	v.pulse, cmd = v.pulse.Update(msg)
	return v, cmd
}

// View renders the control, or an empty string when voice capture is
// unsupported.
func (v VoiceButton) View() string {
	if !v.supported {
		return ""
	}

	switch {
	case v.disabled:
		return v.theme.VoiceButtonDisabled.Render("[mic]")
	case v.listening:
		return v.theme.VoiceButtonListening.Render(v.pulse.View() + " " + styles.StatusIndicators.Recording)
	default:
		return v.theme.VoiceButtonIdle.Render("[mic]")
	}
}

// Hint returns the tooltip text for the button's current state.
func (v VoiceButton) Hint() string {
	if v.listening {
		return "Stop listening"
	}
	return "Voice input"
}
