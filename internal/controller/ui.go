// Package controller provides the console front ends for amalgam.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMerge StartMode = iota
	ModeList
	ModeCheck
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithMode sets the UI mode.
func WithMode(mode StartMode) StartOption {
	return func(c *StartConfig) {
		c.mode = mode
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeMerge}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines what the workflows report to the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayClassification(ctx context.Context, classification m.Classification) error
	DisplayDiscovery(ctx context.Context, classification m.Classification)
	DisplayMergedFile(ctx context.Context, file m.File)
	DisplayMergeResult(ctx context.Context, result m.MergeResult)
	DisplayDiffs(ctx context.Context, diffs []m.ArtifactDiff)
	DisplayWatchStatus(ctx context.Context, message string, err error)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// NewUI picks the TUI for terminals and the plain UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
