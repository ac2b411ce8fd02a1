package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"amalgam.dev/pkg/amalgam/internal/adapter"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// Classifier partitions inputs into ordered header and source lists.
type Classifier interface {
	// Classify records directories as search roots, classifies explicit files,
	// then walks every root. Explicit files come first in both lists.
	Classify(ctx context.Context, inputs []m.Path, exclusions ExclusionSet) (m.Classification, error)
}

type classifier struct {
	adapter.SourceFSAdapter
}

// NewClassifier creates a Classifier backed by fsAdapter.
func NewClassifier(fsAdapter adapter.SourceFSAdapter) Classifier {
	return &classifier{SourceFSAdapter: fsAdapter}
}

// classification accumulates files while keeping discovery order and
// rejecting duplicates by Key.
type classification struct {
	m.Classification
	seen     map[m.Path]struct{}
	excluded map[m.Path]struct{}
	roots    map[m.Path]struct{}
}

func (c *classification) add(file m.File) bool {
	if _, ok := c.seen[file.Key]; ok {
		return false
	}

	c.seen[file.Key] = struct{}{}

	switch file.Kind {
	case m.KindHeader:
		c.Headers = append(c.Headers, file)
	case m.KindSource:
		c.Sources = append(c.Sources, file)
	case m.KindUnknown:
		return false
	}

	return true
}

func (cl *classifier) Classify(ctx context.Context, inputs []m.Path, exclusions ExclusionSet) (m.Classification, error) {
	state := &classification{
		seen:     make(map[m.Path]struct{}),
		excluded: make(map[m.Path]struct{}),
		roots:    make(map[m.Path]struct{}),
	}

	for _, input := range inputs {
		if err := cl.classifyInput(ctx, state, input, exclusions); err != nil {
			return m.Classification{}, err
		}
	}

	for _, root := range state.SearchRoots {
		if err := cl.walkRoot(ctx, state, root, exclusions); err != nil {
			return m.Classification{}, err
		}
	}

	slog.Info("classified inputs",
		"headers", len(state.Headers),
		"sources", len(state.Sources),
		"searchRoots", len(state.SearchRoots),
		"excluded", state.Excluded,
		"exclusions", exclusions.Patterns())

	return state.Classification, nil
}

func (cl *classifier) classifyInput(ctx context.Context, state *classification, input m.Path, exclusions ExclusionSet) error {
	info, err := cl.FileInfo(ctx, input)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		slog.Error("input is not accessible", "input", input, "error", err)

		return fmt.Errorf("%w: %s: %w", ErrInvalidInputPath, input, err)
	}

	clean := m.Path(filepath.Clean(string(input)))

	if info.IsDir() {
		key, err := cl.AbsPath(ctx, clean)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidInputPath, input, err)
		}

		if _, ok := state.roots[key]; !ok {
			state.roots[key] = struct{}{}
			state.SearchRoots = append(state.SearchRoots, clean)
		}

		return nil
	}

	if !info.Mode().IsRegular() {
		slog.Error("input is neither a file nor a directory", "input", input, "mode", info.Mode().String())
		return fmt.Errorf("%w: %s is neither a file nor a directory", ErrInvalidInputPath, input)
	}

	kind := m.KindOf(clean)
	if kind == m.KindUnknown {
		slog.Error("explicit input has an unrecognized extension", "input", input)
		return fmt.Errorf("%w: %s", ErrUnrecognizedFileKind, input)
	}

	if exclusions.Excludes(clean.Base()) {
		slog.Error("explicit input is excluded", "input", input)
		return fmt.Errorf("%w: %s", ErrExplicitExclusionConflict, input)
	}

	file, err := cl.newFile(ctx, clean, kind, m.OriginExplicit)
	if err != nil {
		return err
	}

	if exclusions.ExcludesPath(file.Key) {
		slog.Warn("explicit input is a merge target, skipping", "input", input)
		return nil
	}

	state.add(file)

	return nil
}

func (cl *classifier) walkRoot(ctx context.Context, state *classification, root m.Path, exclusions ExclusionSet) error {
	err := cl.Walk(ctx, root, func(path m.Path, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if exclusions.Excludes(d.Name()) {
			key, absErr := cl.AbsPath(ctx, path)
			if absErr != nil {
				return absErr
			}

			if _, counted := state.excluded[key]; !counted {
				state.excluded[key] = struct{}{}
				state.Excluded++

				slog.Debug("excluded file", "path", path)
			}

			return nil
		}

		kind := m.KindOf(path)
		if kind == m.KindUnknown {
			return nil
		}

		file, fileErr := cl.newFile(ctx, path, kind, m.OriginDiscovered)
		if fileErr != nil {
			return fileErr
		}

		if exclusions.ExcludesPath(file.Key) {
			slog.Debug("skipped merge target", "path", path)
			return nil
		}

		if state.add(file) {
			slog.Debug("discovered file", "path", path, "kind", kind)
		}

		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		slog.Error("failed to walk search root", "root", root, "error", err)

		return fmt.Errorf("walk %s: %w", root, err)
	}

	return nil
}

func (cl *classifier) newFile(ctx context.Context, path m.Path, kind m.FileKind, origin m.Origin) (m.File, error) {
	clean := m.Path(filepath.Clean(string(path)))

	key, err := cl.AbsPath(ctx, clean)
	if err != nil {
		return m.File{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	return m.File{Path: clean, Key: key, Kind: kind, Origin: origin}, nil
}
