package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

type fakeWatcher struct {
	dirs    []m.Path
	changes chan m.Path
	errs    chan error
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{changes: make(chan m.Path), errs: make(chan error)}
}

func (f *fakeWatcher) Watch(_ context.Context, dirs []m.Path) (<-chan m.Path, <-chan error, error) {
	f.dirs = dirs
	return f.changes, f.errs, nil
}

func nextStatus(t *testing.T, statuses <-chan string) string {
	t.Helper()

	select {
	case status := <-statuses:
		return status
	case <-time.After(5 * time.Second):
		t.Fatal("no watch status reported")
		return ""
	}
}

func TestWorkflow_Watch(t *testing.T) {
	root, args := projectTree(t)
	args.Manifest = root.Join("out", "lib.yaml")

	watcher := newFakeWatcher()
	ui := &recordingUI{statuses: make(chan string, 16)}
	wf := newTestWorkflow(ui, watcher)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- wf.Watch(ctx, WatchArgs{MergeArgs: args, Debounce: time.Millisecond})
	}()

	assert.Equal(t, "watching for changes", nextStatus(t, ui.statuses))
	assert.Equal(t, []m.Path{root.Join("src")}, watcher.dirs)

	header := string(args.Output) + ".h"
	source := string(args.Output) + ".cpp"

	// Our own artifacts and unknown kinds do not trigger a merge.
	watcher.changes <- m.Path(header)
	watcher.changes <- m.Path(source)
	watcher.changes <- args.Manifest
	watcher.changes <- root.Join("src", "notes.txt")

	writeTree(t, string(root), map[string]string{"src/a.h": "#pragma once\nint a(int);\n"})
	watcher.changes <- root.Join("src", "a.h")

	assert.Equal(t, "watching for changes", nextStatus(t, ui.statuses))
	assert.Equal(t, 2, ui.resultCount())

	content, err := os.ReadFile(header)
	require.NoError(t, err)
	assert.Contains(t, string(content), "int a(int);")

	writeTree(t, string(root), map[string]string{"src/a.cpp": "#include \"gone.h\"\n"})
	watcher.changes <- root.Join("src", "a.cpp")

	status := nextStatus(t, ui.statuses)
	assert.Contains(t, status, "merge failed, keeping previous output")
	assert.Contains(t, status, "gone.h")

	kept, err := os.ReadFile(header)
	require.NoError(t, err)
	assert.Equal(t, content, kept)

	watcher.errs <- errors.New("overflow")
	assert.Equal(t, "watcher error: overflow", nextStatus(t, ui.statuses))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	assert.Equal(t, 1, ui.closed)
}

func TestWorkflow_Watch_InvalidInput(t *testing.T) {
	root := t.TempDir()

	err := newTestWorkflow(&recordingUI{}, newFakeWatcher()).Watch(context.Background(), WatchArgs{
		MergeArgs: MergeArgs{Inputs: []m.Path{m.Path(filepath.Join(root, "missing"))}, Output: "out"},
	})
	require.ErrorIs(t, err, ErrInvalidInputPath)
}

func TestWorkflow_Watch_NoInputs(t *testing.T) {
	err := newTestWorkflow(&recordingUI{}, newFakeWatcher()).Watch(context.Background(), WatchArgs{})
	require.ErrorIs(t, err, ErrNoInputs)
}

func TestSettle(t *testing.T) {
	t.Run("fires after quiet period", func(t *testing.T) {
		trigger := make(chan struct{})
		assert.True(t, settle(context.Background(), trigger, time.Millisecond))
	})

	t.Run("closed trigger", func(t *testing.T) {
		trigger := make(chan struct{})
		close(trigger)
		assert.False(t, settle(context.Background(), trigger, time.Hour))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.False(t, settle(ctx, make(chan struct{}), time.Hour))
	})
}
