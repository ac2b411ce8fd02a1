package domain

import (
	"context"
	"sync"

	"amalgam.dev/pkg/amalgam/internal/controller"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// recordingUI captures what workflows report. statuses receives every watch
// status message when non-nil.
type recordingUI struct {
	mu sync.Mutex

	modes          []controller.StartMode
	closed         int
	classification m.Classification
	discovered     int
	merged         []m.Path
	results        []m.MergeResult
	diffs          []m.ArtifactDiff
	diffCalls      int

	statuses chan string
}

var _ controller.UI = (*recordingUI)(nil)

func (u *recordingUI) Start(_ context.Context, options ...controller.StartOption) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	config := controller.StartConfig{}
	for _, option := range options {
		option(&config)
	}

	u.modes = append(u.modes, config.Mode())

	return nil
}

func (u *recordingUI) Close(context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.closed++
}

func (u *recordingUI) DisplayClassification(_ context.Context, classification m.Classification) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.classification = classification

	return nil
}

func (u *recordingUI) DisplayDiscovery(context.Context, m.Classification) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.discovered++
}

func (u *recordingUI) DisplayMergedFile(_ context.Context, file m.File) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.merged = append(u.merged, file.Path)
}

func (u *recordingUI) DisplayMergeResult(_ context.Context, result m.MergeResult) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.results = append(u.results, result)
}

func (u *recordingUI) DisplayDiffs(_ context.Context, diffs []m.ArtifactDiff) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.diffs = diffs
	u.diffCalls++
}

func (u *recordingUI) DisplayWatchStatus(_ context.Context, message string, err error) {
	if u.statuses == nil {
		return
	}

	if err != nil {
		message += ": " + err.Error()
	}

	u.statuses <- message
}

func (u *recordingUI) resultCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.results)
}
