// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads dotenv files into a store whenever one of them changes.
//
// Reloads use overload semantics, so edited values replace what the store
// holds. Variables removed from a file are left in the store.
type Watcher struct {
	store  Store
	paths  []string
	logger *slog.Logger

	// Ready is closed once the watcher is observing the files.
	Ready chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a Watcher for the given dotenv files. A Watcher is
// single use.
func NewWatcher(store Store, logger *slog.Logger, paths ...string) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		store:      store,
		paths:      paths,
		logger:     logger.With("component", "dotenv-watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch blocks until ctx is cancelled, reloading the files after each burst
// of changes and reporting the outcome to onReload. The parent directories
// are watched rather than the files so that editors replacing a file by
// rename are noticed, and so that files created later are picked up.
func (w *Watcher) Watch(ctx context.Context, onReload func(error)) error {
	fw, err := w.newWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	watched := make(map[string]struct{}, len(w.paths))
	dirs := make(map[string]struct{})
	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.logger.Info("Watching dotenv files", "paths", w.paths)
	close(w.Ready)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(watched, event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			err := LoadDotenv(w.store, true, w.paths...)
			if err != nil {
				w.logger.Error("Reloading dotenv files failed", "error", err)
			} else {
				w.logger.Debug("Reloaded dotenv files", "paths", w.paths)
			}
			if onReload != nil {
				onReload(err)
			}
		}
	}
}

func relevant(watched map[string]struct{}, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	_, ok := watched[filepath.Clean(event.Name)]
	return ok
}
