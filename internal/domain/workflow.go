package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"amalgam.dev/pkg/amalgam/internal/adapter"
	"amalgam.dev/pkg/amalgam/internal/controller"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// ManifestVersion is written into every manifest.
const ManifestVersion = 1

// ListArgs contains the arguments for listing classified inputs.
type ListArgs struct {
	Inputs  []m.Path
	Exclude []string
}

// MergeArgs contains the arguments for merging inputs into one header and one
// source.
type MergeArgs struct {
	Inputs  []m.Path
	Exclude []string
	// Output is the artifact base path without extension.
	Output    m.Path
	HeaderExt string
	SourceExt string
	// Manifest is written after a successful merge when set.
	Manifest m.Path
}

// Targets returns the artifact paths of args.
func (args MergeArgs) Targets() OutputTargets {
	return TargetsFor(args.Output, args.HeaderExt, args.SourceExt)
}

// WatchArgs contains the arguments for the watch loop.
type WatchArgs struct {
	MergeArgs
	Debounce time.Duration
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	Check(ctx context.Context, args MergeArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ManifestStore
	adapter.Watcher
	controller.UI
	Amalgamator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	watcher adapter.Watcher,
	ui controller.UI,
	amalgamator Amalgamator,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ManifestStore:   manifestStore,
		Watcher:         watcher,
		UI:              ui,
		Amalgamator:     amalgamator,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeList)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	classification, err := w.Classify(ctx, args.Inputs, args.Exclude)
	if err != nil {
		return fmt.Errorf("classify inputs: %w", err)
	}

	if err := w.DisplayClassification(ctx, classification); err != nil {
		slog.Error("Failed to display classification", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeMerge)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	_, err := w.mergeAndCommit(ctx, args)

	return err
}

func (w *workflow) mergeAndCommit(ctx context.Context, args MergeArgs) (m.MergeResult, error) {
	targets := args.Targets()

	result, err := w.Amalgamate(ctx, w.amalgamateArgs(args, targets))
	if err != nil {
		return m.MergeResult{}, err
	}

	err = w.WriteFiles(ctx,
		adapter.FileWrite{Path: targets.Header, Content: result.Header},
		adapter.FileWrite{Path: targets.Source, Content: result.Source},
	)
	if err != nil {
		slog.Error("Failed to write merged output", "header", targets.Header, "source", targets.Source, "error", err)
		return m.MergeResult{}, fmt.Errorf("write output: %w", err)
	}

	if args.Manifest != "" {
		if err := w.SaveManifest(ctx, args.Manifest, BuildManifest(result)); err != nil {
			slog.Error("Failed to save manifest", "path", args.Manifest, "error", err)
			return m.MergeResult{}, fmt.Errorf("save manifest: %w", err)
		}
	}

	w.DisplayMergeResult(ctx, result)

	return result, nil
}

func (w *workflow) amalgamateArgs(args MergeArgs, targets OutputTargets) AmalgamateArgs {
	return AmalgamateArgs{
		Inputs:       args.Inputs,
		Exclude:      args.Exclude,
		Targets:      targets,
		OnClassified: w.DisplayDiscovery,
		OnFile:       w.DisplayMergedFile,
	}
}

func (w *workflow) Check(ctx context.Context, args MergeArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeCheck)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	targets := args.Targets()

	result, err := w.Amalgamate(ctx, w.amalgamateArgs(args, targets))
	if err != nil {
		return err
	}

	var diffs []m.ArtifactDiff

	for _, artifact := range []struct {
		path    m.Path
		content []byte
	}{
		{targets.Header, result.Header},
		{targets.Source, result.Source},
	} {
		diff, err := w.diffArtifact(ctx, artifact.path, artifact.content)
		if err != nil {
			return err
		}

		if diff != nil {
			diffs = append(diffs, *diff)
		}
	}

	w.DisplayDiffs(ctx, diffs)

	if len(diffs) > 0 {
		return fmt.Errorf("%w: %d artifact(s) differ", ErrStaleOutput, len(diffs))
	}

	return nil
}

func (w *workflow) diffArtifact(ctx context.Context, path m.Path, merged []byte) (*m.ArtifactDiff, error) {
	committed, err := w.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &m.ArtifactDiff{Path: path, Missing: true}, nil
		}

		slog.Error("Failed to read committed artifact", "path", path, "error", err)

		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if bytes.Equal(committed, merged) {
		return nil, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(committed)),
		B:        difflib.SplitLines(string(merged)),
		FromFile: string(path) + " (committed)",
		ToFile:   string(path) + " (merged)",
		Context:  3,
	})
	if err != nil {
		return nil, fmt.Errorf("diff %s: %w", path, err)
	}

	return &m.ArtifactDiff{Path: path, Diff: diff}, nil
}

// BuildManifest converts a merge result into its persisted form.
func BuildManifest(result m.MergeResult) m.Manifest {
	manifest := m.Manifest{
		Version: ManifestVersion,
		Header:  string(result.HeaderPath),
		Source:  string(result.SourcePath),
		Headers: manifestFiles(result.Headers),
		Sources: manifestFiles(result.Sources),
		Counts: m.ManifestCounts{
			Headers:   len(result.Headers),
			Sources:   len(result.Sources),
			Leftovers: len(result.Leftovers),
			Excluded:  result.Excluded,
		},
	}

	for _, root := range result.SearchRoots {
		manifest.SearchRoots = append(manifest.SearchRoots, string(root))
	}

	for _, leftover := range result.Leftovers {
		manifest.Leftovers = append(manifest.Leftovers, string(leftover.Path))
	}

	return manifest
}

func manifestFiles(files []m.File) []m.ManifestFile {
	out := make([]m.ManifestFile, 0, len(files))
	for _, file := range files {
		out = append(out, m.ManifestFile{Path: string(file.Path), Origin: file.Origin})
	}

	return out
}
