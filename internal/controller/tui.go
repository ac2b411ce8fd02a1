package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "amalgam.dev/pkg/amalgam/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, config: newStartConfig()}
}

func (t *TUI) output() io.Writer {
	return t.cmd.OutOrStdout()
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output(), format, args...)
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(_ context.Context) {}

// DisplayClassification shows the classified files, paging when they do not
// fit on screen.
func (t *TUI) DisplayClassification(ctx context.Context, classification m.Classification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newFileListModel(classification)

	if f, ok := t.output().(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output(), model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output()), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayDiscovery prints the counts found by the classifier.
func (t *TUI) DisplayDiscovery(ctx context.Context, classification m.Classification) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s %s, %s, %s\n",
		titleStyle.Render("amalgam"),
		headerStyle.Render(fmt.Sprintf("%d header(s)", len(classification.Headers))),
		sourceStyle.Render(fmt.Sprintf("%d source(s)", len(classification.Sources))),
		faintStyle.Render(fmt.Sprintf("%d excluded", classification.Excluded)))
}

// DisplayMergedFile prints one trace line per merged file.
func (t *TUI) DisplayMergedFile(ctx context.Context, file m.File) {
	if ctx.Err() != nil || t.config.Mode() == ModeCheck {
		return
	}

	t.printf("  %s %s\n", kindLabel(file.Kind), file.Path)
}

// DisplayMergeResult prints where the artifacts went.
func (t *TUI) DisplayMergeResult(ctx context.Context, result m.MergeResult) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s %s (%d headers, %d leftover) and %s (%d sources)\n",
		okStyle.Render("✓ wrote"),
		result.HeaderPath, len(result.Headers), len(result.Leftovers),
		result.SourcePath, len(result.Sources))
}

// DisplayDiffs prints a unified diff per stale artifact.
func (t *TUI) DisplayDiffs(ctx context.Context, diffs []m.ArtifactDiff) {
	if ctx.Err() != nil {
		return
	}

	if len(diffs) == 0 {
		t.printf("%s\n", okStyle.Render("✓ merged output is up to date"))
		return
	}

	for _, diff := range diffs {
		if diff.Missing {
			t.printf("%s %s\n", errorStyle.Render("✗ missing"), diff.Path)
			continue
		}

		t.printf("%s %s\n", errorStyle.Render("✗ stale"), diff.Path)

		for _, line := range strings.SplitAfter(diff.Diff, "\n") {
			t.printf("%s", colorDiffLine(line))
		}
	}
}

// DisplayWatchStatus prints a watch loop event.
func (t *TUI) DisplayWatchStatus(ctx context.Context, message string, err error) {
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		t.printf("%s %s: %v\n", errorStyle.Render("✗"), message, err)
		return
	}

	t.printf("%s %s\n", faintStyle.Render("•"), message)
}

func kindLabel(kind m.FileKind) string {
	if kind == m.KindSource {
		return sourceStyle.Render("source")
	}

	return headerStyle.Render("header")
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return titleStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
	case strings.HasPrefix(line, "+"):
		return okStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
	case strings.HasPrefix(line, "-"):
		return errorStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
	}

	return line
}

type fileListKeyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

func defaultFileListKeyMap() fileListKeyMap {
	return fileListKeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
	}
}

// fileListModel is the Bubble Tea model paging through classified files.
type fileListModel struct {
	classification m.Classification
	rows           []m.File
	keys           fileListKeyMap
	height         int
	width          int
	offset         int
	quitting       bool
}

func newFileListModel(classification m.Classification) fileListModel {
	return fileListModel{
		classification: classification,
		rows:           classification.Files(),
		keys:           defaultFileListKeyMap(),
	}
}

func (flm fileListModel) Init() tea.Cmd {
	return nil
}

func (flm fileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		flm.height = msg.Height
		flm.width = msg.Width

		return flm, nil

	case tea.KeyMsg:
		return flm.handleKeyPress(msg)
	}

	return flm, nil
}

func (flm fileListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, flm.keys.Quit):
		flm.quitting = true
		return flm, tea.Quit
	case key.Matches(msg, flm.keys.Down):
		flm.offset++
	case key.Matches(msg, flm.keys.Up):
		flm.offset--
	case key.Matches(msg, flm.keys.Top):
		flm.offset = 0
	case key.Matches(msg, flm.keys.Bottom):
		flm.offset = flm.maxOffset()
	case key.Matches(msg, flm.keys.PageDown):
		flm.offset += flm.itemsPerPage()
	case key.Matches(msg, flm.keys.PageUp):
		flm.offset -= flm.itemsPerPage()
	}

	flm.offset = max(0, min(flm.offset, flm.maxOffset()))

	return flm, nil
}

// itemsPerPage calculates how many rows fit on screen.
func (flm fileListModel) itemsPerPage() int {
	if flm.height == 0 {
		return 10
	}

	// title, blank, footer counts, blank, page indicator, help
	const reserved = 6

	return max(1, flm.height-reserved)
}

func (flm fileListModel) maxOffset() int {
	return max(0, len(flm.rows)-flm.itemsPerPage())
}

// needsPagination returns true if the list is too large to fit on screen.
func (flm fileListModel) needsPagination() bool {
	return len(flm.rows) > 0 && flm.height > 0 && len(flm.rows) > flm.itemsPerPage()
}

func (flm fileListModel) View() string {
	if flm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("amalgam - input files"))
	b.WriteString("\n\n")

	if len(flm.rows) == 0 {
		b.WriteString("  No headers or sources found\n")
		return b.String()
	}

	start := flm.offset
	end := len(flm.rows)

	if flm.needsPagination() {
		end = min(start+flm.itemsPerPage(), len(flm.rows))
	}

	for _, file := range flm.rows[start:end] {
		fmt.Fprintf(&b, "  %s %s %s\n", kindLabel(file.Kind), faintStyle.Render(fmt.Sprintf("%-10s", file.Origin)), file.Path)
	}

	fmt.Fprintf(&b, "\n  %d header(s), %d source(s), %d excluded, %d search root(s)\n",
		len(flm.classification.Headers), len(flm.classification.Sources),
		flm.classification.Excluded, len(flm.classification.SearchRoots))

	if flm.needsPagination() {
		fmt.Fprintf(&b, "  %s\n", faintStyle.Render(fmt.Sprintf("rows %d-%d of %d", start+1, end, len(flm.rows))))
		fmt.Fprintf(&b, "  %s\n", faintStyle.Render("↑/↓ scroll • d/u page • g/G top/bottom • q quit"))
	}

	return b.String()
}
