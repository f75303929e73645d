// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

// Package watch re-runs a callback whenever a schema file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long Run waits after the last write event before
// invoking the callback. Editors often emit several events per save.
const Debounce = 200 * time.Millisecond

// Run watches path and calls onChange after each settled write. The
// callback's error is reported through onError rather than stopping the
// watch, so a transiently broken schema keeps the loop alive. Run blocks
// until ctx is cancelled.
func Run(ctx context.Context, path string, onChange func() error, onError func(error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: many editors replace the file
	// on save, which would drop a direct watch.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !sameFile(event.Name, abs) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(Debounce)
			} else {
				timer.Reset(Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				onError(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}

func sameFile(eventName, abs string) bool {
	name, err := filepath.Abs(eventName)
	if err != nil {
		return false
	}
	return name == abs
}
