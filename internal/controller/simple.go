package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig()}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayClassification prints every classified file as a table.
func (s *SimpleUI) DisplayClassification(ctx context.Context, classification m.Classification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderClassificationTable(classification))

	for _, root := range classification.SearchRoots {
		s.printf("search root: %s\n", root)
	}

	return nil
}

func renderClassificationTable(classification m.Classification) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Origin", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, file := range classification.Files() {
		table.Append([]string{string(file.Kind), string(file.Origin), string(file.Path)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Headers %d", len(classification.Headers)),
		fmt.Sprintf("Sources %d", len(classification.Sources)),
		fmt.Sprintf("Excluded %d", classification.Excluded),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayDiscovery prints the counts found by the classifier.
func (s *SimpleUI) DisplayDiscovery(ctx context.Context, classification m.Classification) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d header(s), %d source(s); %d file(s) excluded\n",
		len(classification.Headers), len(classification.Sources), classification.Excluded)
}

// DisplayMergedFile prints one trace line per merged file.
func (s *SimpleUI) DisplayMergedFile(ctx context.Context, file m.File) {
	if err := ctx.Err(); err != nil {
		return
	}

	// check only reports diffs
	if s.config.Mode() == ModeCheck {
		return
	}

	s.printf("Merging %s %s\n", file.Kind, file.Path)
}

// DisplayMergeResult prints where the artifacts went.
func (s *SimpleUI) DisplayMergeResult(ctx context.Context, result m.MergeResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderResultTable(result))
}

func renderResultTable(result m.MergeResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Artifact", "Files", "Bytes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	table.Append([]string{string(result.HeaderPath), fmt.Sprintf("%d", len(result.Headers)), fmt.Sprintf("%d", len(result.Header))})
	table.Append([]string{string(result.SourcePath), fmt.Sprintf("%d", len(result.Sources)), fmt.Sprintf("%d", len(result.Source))})
	table.SetFooter([]string{"Leftover headers", fmt.Sprintf("%d", len(result.Leftovers)), ""})

	table.Render()

	return tableBuffer.String()
}

// DisplayDiffs prints a unified diff per stale artifact.
func (s *SimpleUI) DisplayDiffs(ctx context.Context, diffs []m.ArtifactDiff) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(diffs) == 0 {
		s.printf("Merged output is up to date\n")
		return
	}

	for _, diff := range diffs {
		if diff.Missing {
			s.printf("%s is missing\n", diff.Path)
			continue
		}

		s.printf("%s is stale\n%s", diff.Path, diff.Diff)
	}
}

// DisplayWatchStatus prints a watch loop event.
func (s *SimpleUI) DisplayWatchStatus(ctx context.Context, message string, err error) {
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		s.printf("%s: %v\n", message, err)
		return
	}

	s.printf("%s\n", message)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
