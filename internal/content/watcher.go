// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc receives the result of each reload. On failure c is nil and
// the previous content should stay in use.
type ReloadFunc func(c *Content, err error)

// =============================================================================
// WATCHER
// =============================================================================

// Watcher reloads content when files in the override directory change.
type Watcher struct {
	dir      string
	debounce time.Duration
	onReload ReloadFunc

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	pending time.Time
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher on dir. Call Start to begin watching.
func NewWatcher(dir string, debounce time.Duration, onReload ReloadFunc) (*Watcher, error) {
	if dir == "" {
		return nil, fmt.Errorf("content watcher needs a directory")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		onReload: onReload,
		watcher:  fw,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start adds the directory and starts the event and debounce loops.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()
	log.Printf("CONTENT_WATCH | dir=%s debounce=%s", w.dir, w.debounce)
	return nil
}

// Close stops watching and waits for the loops to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isContentFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("CONTENT_WATCH_ERROR | error=%v", err)
		}
	}
}

// processPending reloads once no event has arrived for the debounce window.
func (w *Watcher) processPending() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			due := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if due {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if due {
				c, err := Load(w.dir)
				if err != nil {
					log.Printf("CONTENT_RELOAD_FAILED | dir=%s error=%v", w.dir, err)
				} else {
					log.Printf("CONTENT_RELOADED | dir=%s", w.dir)
				}
				if w.onReload != nil {
					w.onReload(c, err)
				}
			}
		}
	}
}

func isContentFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range Files {
		if base == name {
			return true
		}
	}
	return false
}
