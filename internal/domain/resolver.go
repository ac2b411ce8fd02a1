package domain

import (
	"context"
	"log/slog"
	"path/filepath"

	"amalgam.dev/pkg/amalgam/internal/adapter"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// Resolver locates the file named by a local include directive.
type Resolver interface {
	// Resolve tries the directory of including first, then every search root
	// in declared order. It returns a *HeaderNotFoundError when no candidate
	// is an existing regular file.
	Resolve(ctx context.Context, including m.Path, directive string, searchRoots []m.Path) (m.Path, error)
}

type resolver struct {
	adapter.SourceFSAdapter
}

// NewResolver creates a Resolver backed by fsAdapter.
func NewResolver(fsAdapter adapter.SourceFSAdapter) Resolver {
	return &resolver{SourceFSAdapter: fsAdapter}
}

func (r *resolver) Resolve(ctx context.Context, including m.Path, directive string, searchRoots []m.Path) (m.Path, error) {
	for _, candidate := range candidates(including, directive, searchRoots) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		info, err := r.FileInfo(ctx, candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		slog.Debug("resolved include", "including", including, "directive", directive, "path", candidate)

		return candidate, nil
	}

	slog.Error("include not found", "including", including, "directive", directive, "searchRoots", searchRoots)

	return "", &HeaderNotFoundError{Including: including, Directive: directive}
}

func candidates(including m.Path, directive string, searchRoots []m.Path) []m.Path {
	if filepath.IsAbs(directive) {
		return []m.Path{m.Path(filepath.Clean(directive))}
	}

	out := make([]m.Path, 0, len(searchRoots)+1)
	out = append(out, including.Dir().Join(directive))

	for _, root := range searchRoots {
		out = append(out, root.Join(directive))
	}

	return out
}
