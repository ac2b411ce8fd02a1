package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

// Watcher streams paths that changed under a set of directories.
type Watcher interface {
	// Watch subscribes to dirs and their subdirectories. Both channels are
	// closed once ctx is done.
	Watch(ctx context.Context, dirs []m.Path) (<-chan m.Path, <-chan error, error)
}

// FSNotifyWatcher implements Watcher with fsnotify.
type FSNotifyWatcher struct{}

// NewFSNotifyWatcher constructs a FSNotifyWatcher.
func NewFSNotifyWatcher() *FSNotifyWatcher {
	return &FSNotifyWatcher{}
}

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watch implements Watcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, dirs []m.Path) (<-chan m.Path, <-chan error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := addTree(watcher, string(dir)); err != nil {
			_ = watcher.Close()
			return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	changes := make(chan m.Path)
	errs := make(chan error, 1)

	go func() {
		defer close(changes)
		defer close(errs)
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Op&relevantOps == 0 {
					continue
				}

				if event.Has(fsnotify.Create) {
					if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
						if addErr := addTree(watcher, event.Name); addErr != nil {
							slog.Warn("failed to watch new directory", "dir", event.Name, "error", addErr)
						}

						continue
					}
				}

				slog.Debug("filesystem change", "path", event.Name, "op", event.Op.String())

				select {
				case <-ctx.Done():
					return
				case changes <- m.Path(event.Name):
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					return
				case errs <- watchErr:
				}
			}
		}
	}()

	return changes, errs, nil
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		return watcher.Add(path)
	})
}
