// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "models.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	var calls atomic.Int32
	fired := make(chan struct{}, 8)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, func() error {
			calls.Add(1)
			fired <- struct{}{}
			return nil
		}, func(error) {})
	}()

	// Give the watcher time to register before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"A"}`), 0o600))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback never fired after write")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestRun_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "models.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	var calls atomic.Int32

	ctx, cancel := context.WithTimeout(t.Context(), 600*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, func() error {
			calls.Add(1)
			return nil
		}, func(error) {})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600))

	assert.ErrorIs(t, <-done, context.DeadlineExceeded)
	assert.Zero(t, calls.Load())
}

func TestRun_CallbackErrorKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "models.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	errs := make(chan error, 8)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, func() error {
			return assert.AnError
		}, func(err error) {
			errs <- err
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"B"}`), 0o600))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(3 * time.Second):
		t.Fatal("onError never received the callback error")
	}

	// The loop must survive the error.
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
