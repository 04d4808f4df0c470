// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides conversation persistence for the murmur TUI.
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// DIRECTORY WATCHER
// =============================================================================

// DirWatcher watches the conversation directory and emits a refresh signal
// when another murmur process writes or removes a conversation. Bursts of
// filesystem events (an atomic write is a create plus a rename) coalesce
// into a single signal through a rate limiter.
type DirWatcher struct {
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
	refresh chan struct{}
	cancel  context.CancelFunc
}

// NewDirWatcher starts watching the store's directory. Close the watcher to
// release resources.
func NewDirWatcher(store *ConversationStore) (*DirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(store.BaseDir); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &DirWatcher{
		watcher: fsw,
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
		refresh: make(chan struct{}, 1),
		cancel:  cancel,
	}

	go w.processEvents(ctx)
	return w, nil
}

// Refresh returns the channel that receives one signal per coalesced batch
// of conversation changes.
func (w *DirWatcher) Refresh() <-chan struct{} {
	return w.refresh
}

// Close stops watching and releases resources.
func (w *DirWatcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents forwards relevant filesystem events as refresh signals.
// Events inside the coalescing window are deferred into one trailing
// refresh, never dropped: a write landing just after a signal still
// reaches a reader that already reloaded.
func (w *DirWatcher) processEvents(ctx context.Context) {
	flush := time.NewTimer(0)
	if !flush.Stop() {
		<-flush.C
	}
	defer flush.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(event) {
				continue
			}
			if w.limiter.Allow() {
				w.signal()
				continue
			}
			if !pending {
				pending = true
				flush.Reset(w.limiter.Reserve().Delay())
			}
		case <-flush.C:
			pending = false
			w.signal()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the list can still be refreshed
			// manually.
		}
	}
}

// signal emits one refresh, unless one is already waiting to be read.
func (w *DirWatcher) signal() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// relevantEvent reports whether a filesystem event concerns a stored
// conversation. Temp files from atomic writes are ignored; only the final
// rename to *.json matters.
func relevantEvent(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".json") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
