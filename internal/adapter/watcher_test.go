package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

func waitForChange(t *testing.T, changes <-chan m.Path, want string) {
	t.Helper()

	timeout := time.After(5 * time.Second)

	for {
		select {
		case path, ok := <-changes:
			require.True(t, ok, "changes closed before %s was seen", want)

			if string(path) == want {
				return
			}
		case <-timeout:
			t.Fatalf("no change reported for %s", want)
		}
	}
}

func TestFSNotifyWatcher_ReportsChanges(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, _, err := NewFSNotifyWatcher().Watch(ctx, []m.Path{m.Path(root)})
	require.NoError(t, err)

	file := filepath.Join(root, "a.h")
	require.NoError(t, os.WriteFile(file, []byte("int a();\n"), 0o600))
	waitForChange(t, changes, file)
}

func TestFSNotifyWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, _, err := NewFSNotifyWatcher().Watch(ctx, []m.Path{m.Path(root)})
	require.NoError(t, err)

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	file := filepath.Join(sub, "b.cpp")

	// The new directory is registered asynchronously; keep touching the file
	// until the watcher reports it.
	deadline := time.Now().Add(5 * time.Second)

	for {
		require.NoError(t, os.WriteFile(file, []byte("int b;\n"), 0o600))

		select {
		case path := <-changes:
			if string(path) == file {
				return
			}
		case <-time.After(100 * time.Millisecond):
		}

		if time.Now().After(deadline) {
			t.Fatalf("no change reported for %s", file)
		}
	}
}

func TestFSNotifyWatcher_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	changes, errs, err := NewFSNotifyWatcher().Watch(ctx, []m.Path{m.Path(t.TempDir())})
	require.NoError(t, err)

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	_, ok := <-errs
	require.False(t, ok)
}

func TestFSNotifyWatcher_MissingDirectory(t *testing.T) {
	_, _, err := NewFSNotifyWatcher().Watch(context.Background(), []m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))})
	require.Error(t, err)
}
