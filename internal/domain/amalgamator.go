// Package domain contains the amalgamation workflow and its core logic.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"amalgam.dev/pkg/amalgam/internal/adapter"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// AmalgamateArgs are the inputs of one in-memory merge.
type AmalgamateArgs struct {
	Inputs  []m.Path
	Exclude []string
	Targets OutputTargets
	// OnClassified is called once before merging starts. Optional.
	OnClassified func(ctx context.Context, classification m.Classification)
	// OnFile is called for every merged file. Optional.
	OnFile FileObserver
}

// Amalgamator classifies inputs and merges them in memory. It never writes.
type Amalgamator interface {
	Classify(ctx context.Context, inputs []m.Path, exclude []string) (m.Classification, error)
	Amalgamate(ctx context.Context, args AmalgamateArgs) (m.MergeResult, error)
}

type amalgamator struct {
	adapter.SourceFSAdapter
	Classifier
	Resolver
}

// NewAmalgamator wires the classifier and resolver over fsAdapter.
func NewAmalgamator(fsAdapter adapter.SourceFSAdapter) Amalgamator {
	return &amalgamator{
		SourceFSAdapter: fsAdapter,
		Classifier:      NewClassifier(fsAdapter),
		Resolver:        NewResolver(fsAdapter),
	}
}

func (a *amalgamator) Classify(ctx context.Context, inputs []m.Path, exclude []string) (m.Classification, error) {
	if len(inputs) == 0 {
		return m.Classification{}, ErrNoInputs
	}

	return a.Classifier.Classify(ctx, inputs, NewExclusionSet(exclude...))
}

func (a *amalgamator) Amalgamate(ctx context.Context, args AmalgamateArgs) (m.MergeResult, error) {
	if len(args.Inputs) == 0 {
		return m.MergeResult{}, fmt.Errorf("classify inputs: %w", ErrNoInputs)
	}

	exclusions, err := a.targetExclusions(ctx, args)
	if err != nil {
		return m.MergeResult{}, err
	}

	classification, err := a.Classifier.Classify(ctx, args.Inputs, exclusions)
	if err != nil {
		return m.MergeResult{}, fmt.Errorf("classify inputs: %w", err)
	}

	if args.OnClassified != nil {
		args.OnClassified(ctx, classification)
	}

	session := NewMergeSession(a.SourceFSAdapter, a.Resolver, classification, args.Targets, args.OnFile)

	result, err := session.Run(ctx)
	if err != nil {
		slog.Error("merge failed", "error", err)
		return m.MergeResult{}, fmt.Errorf("merge: %w", err)
	}

	result.HeaderPath = args.Targets.Header
	result.SourcePath = args.Targets.Source

	slog.Info("merged inputs",
		"headers", len(result.Headers),
		"leftovers", len(result.Leftovers),
		"sources", len(result.Sources),
		"excluded", result.Excluded)

	return result, nil
}

// targetExclusions extends args.Exclude with the absolute keys of the merge
// targets, so output written under a search root is not merged again.
func (a *amalgamator) targetExclusions(ctx context.Context, args AmalgamateArgs) (ExclusionSet, error) {
	var keys []m.Path

	for _, target := range []m.Path{args.Targets.Header, args.Targets.Source} {
		if target == "" {
			continue
		}

		key, err := a.AbsPath(ctx, target)
		if err != nil {
			return ExclusionSet{}, fmt.Errorf("resolve %s: %w", target, err)
		}

		keys = append(keys, key)
	}

	return NewExclusionSet(args.Exclude...).WithPaths(keys...), nil
}
