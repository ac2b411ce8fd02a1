// Package atomicfile stages file contents in temporary files and publishes them
// with rename, so readers never observe a truncated target.
//
// Each target is replaced atomically, the batch as a whole is not. Renames run
// in staging order, so when a later rename fails the earlier targets already
// hold new content while the rest keep their previous content. Commit reports
// the failing target and leaves its staging file for Discard.
package atomicfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrCommitted is returned when a Batch is used after Commit.
var ErrCommitted = errors.New("batch already committed")

// Batch is a set of staged writes published together.
type Batch interface {
	Len() int
	Targets() []string
	Stage(target string, content []byte) error
	Commit() error
	Discard()
}

type staged struct {
	target string
	tmp    string
}

type batchImpl struct {
	mu        sync.Mutex
	entries   []staged
	committed bool
}

// NewBatch creates an empty Batch.
func NewBatch() Batch {
	return &batchImpl{}
}

// Len implements Batch.
func (b *batchImpl) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}

// Targets implements Batch.
func (b *batchImpl) Targets() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	targets := make([]string, 0, len(b.entries))
	for _, entry := range b.entries {
		targets = append(targets, entry.target)
	}

	return targets
}

// Stage writes content to a temporary file in the target's directory. Staging
// the same target twice keeps the latest content.
func (b *batchImpl) Stage(target string, content []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.committed {
		return ErrCommitted
	}

	dir := filepath.Dir(target)

	file, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		slog.Error("failed to create staging file", "target", target, "error", err)
		return fmt.Errorf("failed to create staging file: %w", err)
	}

	tmp := file.Name()

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)

		slog.Error("failed to write staging file", "target", target, "tmp", tmp, "error", err)

		return fmt.Errorf("failed to write staging file: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)

		slog.Error("failed to close staging file", "target", target, "tmp", tmp, "error", err)

		return fmt.Errorf("failed to close staging file: %w", err)
	}

	if err := os.Chmod(tmp, 0o644); err != nil { // #nosec G302 - generated sources are meant to be readable
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to chmod staging file: %w", err)
	}

	for i, entry := range b.entries {
		if entry.target == target {
			_ = os.Remove(entry.tmp)
			b.entries[i].tmp = tmp

			slog.Debug("restaged file", "target", target, "tmp", tmp)

			return nil
		}
	}

	b.entries = append(b.entries, staged{target: target, tmp: tmp})
	slog.Debug("staged file", "target", target, "tmp", tmp, "bytes", len(content))

	return nil
}

// Commit renames every staged file onto its target in staging order. On error
// the targets before the failing one stay published.
func (b *batchImpl) Commit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.committed {
		return ErrCommitted
	}

	for i, entry := range b.entries {
		if err := os.Rename(entry.tmp, entry.target); err != nil {
			slog.Error("failed to publish file", "target", entry.target, "tmp", entry.tmp, "error", err)

			// Drop what was published so Discard only removes leftovers.
			b.entries = b.entries[i:]

			return fmt.Errorf("failed to publish %s: %w", entry.target, err)
		}

		slog.Debug("published file", "target", entry.target)
	}

	b.entries = nil
	b.committed = true

	return nil
}

// Discard removes staged files that were not published. It is safe to call
// after Commit.
func (b *batchImpl) Discard() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, entry := range b.entries {
		if err := os.Remove(entry.tmp); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove staging file", "tmp", entry.tmp, "error", err)
		}
	}

	b.entries = nil
}
