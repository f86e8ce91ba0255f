// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, w *Watcher) (<-chan error, context.CancelFunc, <-chan error) {
	t.Helper()

	reloads := make(chan error, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(err error) { reloads <- err })
	}()

	select {
	case <-w.Ready:
	case err := <-done:
		cancel()
		t.Fatalf("watcher exited early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("watcher did not become ready")
	}
	return reloads, cancel, done
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "MODE=initial\n")

	store := NewMapStore(nil)
	require.NoError(t, LoadDotenv(store, false, path))

	w := NewWatcher(store, slog.New(slog.DiscardHandler), path)
	reloads, cancel, done := startWatcher(t, w)

	require.NoError(t, os.WriteFile(path, []byte("MODE=updated\nADDED=1\n"), 0o600))

	select {
	case err := <-reloads:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	mode, _ := store.LookupEnv("MODE")
	assert.Equal(t, "updated", mode)
	added, _ := store.LookupEnv("ADDED")
	assert.Equal(t, "1", added)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcher_PicksUpCreatedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "late.env")

	store := NewMapStore(nil)
	w := NewWatcher(store, nil, path)
	reloads, cancel, done := startWatcher(t, w)
	defer func() {
		cancel()
		<-done
	}()

	writeFile(t, dir, "unrelated.txt", "ignored")
	writeFile(t, dir, "late.env", "LATE=yes\n")

	select {
	case err := <-reloads:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after create")
	}

	late, ok := store.LookupEnv("LATE")
	require.True(t, ok)
	assert.Equal(t, "yes", late)
}

func TestWatcher_ReportsReloadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "A=1\n")

	store := NewMapStore(nil)
	w := NewWatcher(store, slog.New(slog.DiscardHandler), path)
	reloads, cancel, done := startWatcher(t, w)
	defer func() {
		cancel()
		<-done
	}()

	require.NoError(t, os.WriteFile(path, []byte("=broken\n"), 0o600))

	select {
	case err := <-reloads:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcher_NewWatcherError(t *testing.T) {
	t.Parallel()

	w := NewWatcher(NewMapStore(nil), nil, ".env")
	w.newWatcher = func() (*fsnotify.Watcher, error) {
		return nil, errors.New("too many open files")
	}

	err := w.Watch(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many open files")
}

func TestWatcher_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does", "not", "exist", ".env")
	w := NewWatcher(NewMapStore(nil), nil, path)

	err := w.Watch(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}

func TestRelevant(t *testing.T) {
	t.Parallel()

	watched := map[string]struct{}{filepath.Clean("/cfg/.env"): {}}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to watched file", fsnotify.Event{Name: "/cfg/.env", Op: fsnotify.Write}, true},
		{"create of watched file", fsnotify.Event{Name: "/cfg/.env", Op: fsnotify.Create}, true},
		{"unclean path", fsnotify.Event{Name: "/cfg/./.env", Op: fsnotify.Write}, true},
		{"chmod", fsnotify.Event{Name: "/cfg/.env", Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: "/cfg/.env", Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: "/cfg/other.env", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, relevant(watched, tt.event))
		})
	}
}
