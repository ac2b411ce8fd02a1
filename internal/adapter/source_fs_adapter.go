// Package adapter contains the infrastructure adapters used by the amalgam domain.
package adapter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	m "amalgam.dev/pkg/amalgam/internal/model"
	"amalgam.dev/pkg/amalgam/pkg/atomicfile"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and merging user projects. It hides direct `os`
// access so the merge logic can be tested against fixtures.
type SourceFSAdapter interface {
	// Walk traverses root depth-first. Entries of each directory are visited
	// in lexical order.
	Walk(ctx context.Context, root m.Path, fn WalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// AbsPath returns the absolute, cleaned form of path.
	AbsPath(ctx context.Context, path m.Path) (m.Path, error)

	// WriteFiles replaces every target with its content, or none of them.
	WriteFiles(ctx context.Context, files ...FileWrite) error
}

// WalkFunc mirrors the callback shape used by filepath.WalkDir. It is defined
// here to avoid leaking the standard-library type into the domain layer.
type WalkFunc func(path m.Path, d fs.DirEntry, err error) error

// FileWrite is one target of WriteFiles.
type FileWrite struct {
	Path    m.Path
	Content []byte
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over root. filepath.WalkDir already yields lexical order.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn WalkFunc) error {
	return filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fn(m.Path(path), d, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - paths come from the caller's input set
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(_ context.Context, path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// WriteFiles stages every file next to its target and renames them into
// place only once all of them were written.
func (a *LocalSourceFSAdapter) WriteFiles(ctx context.Context, files ...FileWrite) error {
	batch := atomicfile.NewBatch()
	defer batch.Discard()

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(string(file.Path)), 0o750); err != nil {
			return err
		}

		if err := batch.Stage(string(file.Path), file.Content); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return batch.Commit()
}
