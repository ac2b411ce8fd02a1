package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"amalgam.dev/pkg/amalgam/internal/adapter"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

var (
	// includeDirective matches a quoted include. Angle-bracket includes are
	// plain text.
	includeDirective = regexp.MustCompile(`^\s*#\s*include\s*"([^"]+)"`)
	// guardDirective matches the include-guard equivalent stripped from headers.
	guardDirective = regexp.MustCompile(`^\s*#\s*pragma\s+once\b`)
)

// parseInclude returns the raw path token of a local include line.
func parseInclude(line string) (string, bool) {
	match := includeDirective.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}

	return match[1], true
}

func isGuard(line string) bool {
	return guardDirective.MatchString(line)
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

// FileObserver is told about every file whose body is merged.
type FileObserver func(ctx context.Context, file m.File)

// MergeSession is the state of a single merge: the discovered inputs, the
// visited headers and the two output buffers. It is not safe for concurrent
// use and must not be reused across merges.
type MergeSession struct {
	fs       adapter.SourceFSAdapter
	resolver Resolver
	observer FileObserver

	classification m.Classification
	known          map[m.Path]m.File

	visited map[m.Path]struct{}
	emitted []m.File

	header *OutputBuffer
	source *OutputBuffer
}

// NewMergeSession creates a session for one merge of classification into
// targets. observer may be nil.
func NewMergeSession(
	fsAdapter adapter.SourceFSAdapter,
	resolver Resolver,
	classification m.Classification,
	targets OutputTargets,
	observer FileObserver,
) *MergeSession {
	known := make(map[m.Path]m.File, len(classification.Headers)+len(classification.Sources))
	for _, file := range classification.Files() {
		known[file.Key] = file
	}

	return &MergeSession{
		fs:             fsAdapter,
		resolver:       resolver,
		observer:       observer,
		classification: classification,
		known:          known,
		visited:        make(map[m.Path]struct{}),
		header:         NewHeaderBuffer(),
		source:         NewSourceBuffer(targets.Header),
	}
}

// Visited reports whether the header identified by key has been emitted.
func (s *MergeSession) Visited(key m.Path) bool {
	_, ok := s.visited[key]
	return ok
}

// Emitted returns headers in the order their bodies were written.
func (s *MergeSession) Emitted() []m.File {
	return append([]m.File(nil), s.emitted...)
}

// MergeHeader inlines file into the header buffer unless it was already
// visited. The header is marked before its body is scanned, so a cyclic
// include of it is a no-op.
func (s *MergeSession) MergeHeader(ctx context.Context, file m.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.Visited(file.Key) {
		return nil
	}

	s.visited[file.Key] = struct{}{}
	s.emitted = append(s.emitted, file)

	return s.mergeFile(ctx, file, s.header, true)
}

// MergeSource inlines file into the source buffer. Headers it includes go to
// the header buffer.
func (s *MergeSession) MergeSource(ctx context.Context, file m.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.mergeFile(ctx, file, s.source, false)
}

func (s *MergeSession) mergeFile(ctx context.Context, file m.File, out *OutputBuffer, stripGuard bool) error {
	slog.Debug("merging file", "path", file.Path, "kind", file.Kind)

	if s.observer != nil {
		s.observer(ctx, file)
	}

	content, err := s.fs.ReadFile(ctx, file.Path)
	if err != nil {
		slog.Error("failed to read file", "path", file.Path, "error", err)
		return fmt.Errorf("read %s: %w", file.Path, err)
	}

	out.BeginFile(file.Path)

	guardPending := stripGuard

	for _, line := range splitLines(content) {
		// Only the first guard-like line of a header is dropped.
		if guardPending && isGuard(line) {
			guardPending = false
			continue
		}

		if directive, ok := parseInclude(line); ok {
			if err := s.mergeInclude(ctx, file, directive); err != nil {
				return err
			}

			continue
		}

		out.WriteLine(line)
	}

	out.EndFile(file.Path)

	return nil
}

func (s *MergeSession) mergeInclude(ctx context.Context, including m.File, directive string) error {
	resolved, err := s.resolver.Resolve(ctx, including.Path, directive, s.classification.SearchRoots)
	if err != nil {
		return err
	}

	header, err := s.fileFor(ctx, resolved)
	if err != nil {
		return err
	}

	return s.MergeHeader(ctx, header)
}

// fileFor returns the classified file at path, or a resolved-only header.
func (s *MergeSession) fileFor(ctx context.Context, path m.Path) (m.File, error) {
	clean := m.Path(filepath.Clean(string(path)))

	key, err := s.fs.AbsPath(ctx, clean)
	if err != nil {
		return m.File{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	if file, ok := s.known[key]; ok {
		return file, nil
	}

	return m.File{Path: clean, Key: key, Kind: m.KindHeader, Origin: m.OriginResolved}, nil
}

// Run merges every source in order, then reconciles leftover headers.
func (s *MergeSession) Run(ctx context.Context) (m.MergeResult, error) {
	for _, source := range s.classification.Sources {
		if err := s.MergeSource(ctx, source); err != nil {
			return m.MergeResult{}, err
		}
	}

	leftovers, err := s.MergeLeftovers(ctx)
	if err != nil {
		return m.MergeResult{}, err
	}

	return m.MergeResult{
		Headers:     s.Emitted(),
		Leftovers:   leftovers,
		Sources:     append([]m.File(nil), s.classification.Sources...),
		SearchRoots: append([]m.Path(nil), s.classification.SearchRoots...),
		Excluded:    s.classification.Excluded,
		Header:      s.header.Bytes(),
		Source:      s.source.Bytes(),
	}, nil
}
