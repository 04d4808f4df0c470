// murmur TUI - A voice-friendly terminal interface for chat transcripts.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/murmur-tui/internal/config"
	"github.com/jeranaias/murmur-tui/internal/index"
	"github.com/jeranaias/murmur-tui/internal/storage"
	"github.com/jeranaias/murmur-tui/internal/timeline"
	"github.com/jeranaias/murmur-tui/internal/ui/chat"
	"github.com/jeranaias/murmur-tui/internal/voice"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "", "tui":
		runTUI()
	case "sessions":
		if err := runSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version", "--version", "-v":
		fmt.Printf("murmur %s (%s, built %s)\n", Version, GitCommit, BuildDate)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`murmur - voice-friendly chat transcripts in the terminal

Usage:
  murmur            Start the interactive TUI
  murmur sessions   List stored conversations grouped by recency
  murmur version    Print version information
  murmur help       Show this help`)
}

// runTUI wires the storage, index, and recorder together and starts the
// Bubble Tea program.
func runTUI() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "murmur requires an interactive terminal; try 'murmur sessions'")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewConversationStoreWithDir(cfg.StorageDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store.MaxConversations = cfg.Storage.MaxConversations

	var watcher *storage.DirWatcher
	if cfg.Storage.WatchEnabled {
		// A missing watcher only disables cross-process refresh.
		watcher, _ = storage.NewDirWatcher(store)
	}
	if watcher != nil {
		defer watcher.Close()
	}

	var idx *index.Index
	if cfg.Storage.IndexEnabled {
		idx, err = index.Open(cfg.IndexPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: search index unavailable: %v\n", err)
		}
	}
	if idx != nil {
		defer idx.Close()
	}

	capability := voice.Detect()
	if cfg.Voice.Recorder != "" {
		capability = voice.DetectWith(cfg.Voice.Recorder)
	}
	recorder := voice.NewRecorder(capability, cfg.RecordingDir())

	app := chat.New(cfg, store, watcher, idx, recorder)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSessions prints the stored conversations grouped by recency, for use
// from scripts and non-interactive shells.
func runSessions() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.NewConversationStoreWithDir(cfg.StorageDir())
	if err != nil {
		return err
	}

	metas, err := store.List()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("No conversations yet.")
		return nil
	}

	now := time.Now()
	for _, group := range timeline.GroupConversations(now, metas) {
		fmt.Printf("%s\n", group.Label())
		for _, meta := range group.Conversations {
			fmt.Printf("  %-40s %s (%d messages)\n",
				meta.Title,
				timeline.FormatTimestamp(now, meta.UpdatedAt),
				meta.MessageCount)
		}
		fmt.Println()
	}
	return nil
}
