package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"amalgam.dev/pkg/amalgam/internal/controller"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// DefaultWatchDebounce is used when WatchArgs.Debounce is zero.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watch merges once, then re-merges whenever a relevant input changes. A
// failed merge is reported and watching continues; it returns when ctx is
// done.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeWatch)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	dirs, err := w.watchDirs(ctx, args.Inputs)
	if err != nil {
		return err
	}

	filter, err := w.newChangeFilter(ctx, args)
	if err != nil {
		return err
	}

	changes, watchErrs, err := w.Watcher.Watch(ctx, dirs)
	if err != nil {
		slog.Error("Failed to start watcher", "error", err)
		return fmt.Errorf("watch: %w", err)
	}

	w.remerge(ctx, args.MergeArgs)

	debounce := args.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	trigger := make(chan struct{}, 1)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(trigger)

		for {
			select {
			case <-groupCtx.Done():
				return nil
			case path, ok := <-changes:
				if !ok {
					return nil
				}

				if !filter.relevant(groupCtx, path) {
					continue
				}

				slog.Debug("relevant change", "path", path)

				select {
				case trigger <- struct{}{}:
				default:
				}
			case watchErr, ok := <-watchErrs:
				if !ok {
					watchErrs = nil
					continue
				}

				slog.Warn("watcher error", "error", watchErr)
				w.DisplayWatchStatus(groupCtx, "watcher error", watchErr)
			}
		}
	})

	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return nil
			case _, ok := <-trigger:
				if !ok {
					return nil
				}

				if !settle(groupCtx, trigger, debounce) {
					return nil
				}

				w.remerge(groupCtx, args.MergeArgs)
			}
		}
	})

	return group.Wait()
}

// settle waits until no trigger arrived for debounce. It returns false when
// ctx is done or trigger was closed.
func settle(ctx context.Context, trigger <-chan struct{}, debounce time.Duration) bool {
	timer := time.NewTimer(debounce)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-trigger:
			if !ok {
				return false
			}

			timer.Reset(debounce)
		case <-timer.C:
			return true
		}
	}
}

func (w *workflow) remerge(ctx context.Context, args MergeArgs) {
	if ctx.Err() != nil {
		return
	}

	if _, err := w.mergeAndCommit(ctx, args); err != nil {
		if ctx.Err() != nil {
			return
		}

		slog.Error("re-merge failed", "error", err)
		w.DisplayWatchStatus(ctx, "merge failed, keeping previous output", err)

		return
	}

	w.DisplayWatchStatus(ctx, "watching for changes", nil)
}

// watchDirs returns every directory input plus the directory of every file
// input, in input order and without duplicates.
func (w *workflow) watchDirs(ctx context.Context, inputs []m.Path) ([]m.Path, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	seen := make(map[m.Path]struct{})

	var dirs []m.Path

	for _, input := range inputs {
		info, err := w.FileInfo(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInputPath, input, err)
		}

		dir := input
		if !info.IsDir() {
			dir = input.Dir()
		}

		dir = m.Path(filepath.Clean(string(dir)))
		if _, ok := seen[dir]; ok {
			continue
		}

		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	return dirs, nil
}

// changeFilter decides which filesystem events warrant a re-merge.
type changeFilter struct {
	abs        func(ctx context.Context, path m.Path) (m.Path, error)
	exclusions ExclusionSet
	ignored    map[m.Path]struct{}
}

func (w *workflow) newChangeFilter(ctx context.Context, args WatchArgs) (*changeFilter, error) {
	filter := &changeFilter{
		abs:        w.AbsPath,
		exclusions: NewExclusionSet(args.Exclude...),
		ignored:    make(map[m.Path]struct{}),
	}

	targets := args.Targets()
	for _, own := range []m.Path{targets.Header, targets.Source, args.Manifest} {
		if own == "" {
			continue
		}

		key, err := w.AbsPath(ctx, own)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", own, err)
		}

		filter.ignored[key] = struct{}{}
	}

	return filter, nil
}

func (f *changeFilter) relevant(ctx context.Context, path m.Path) bool {
	if m.KindOf(path) == m.KindUnknown {
		return false
	}

	if f.exclusions.Excludes(path.Base()) {
		return false
	}

	key, err := f.abs(ctx, path)
	if err != nil {
		return false
	}

	_, own := f.ignored[key]

	return !own
}
