package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"amalgam.dev/pkg/amalgam/internal/domain"
	domainmocks "amalgam.dev/pkg/amalgam/internal/domain/mocks"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// executeCmd runs cmd with a log file inside a temp dir and returns stdout.
func executeCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-file", filepath.Join(t.TempDir(), "amalgam.log")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func withWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"src"}, []m.Path{m.Path("src")}},
		{
			"multiple",
			[]string{"include", "src/a.cpp", "third_party"},
			[]m.Path{m.Path("include"), m.Path("src/a.cpp"), m.Path("third_party")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputPaths_FallsBackToConfig(t *testing.T) {
	viper.SetDefault(inputsConfigKey, []string{"include", "src"})
	t.Cleanup(func() { viper.SetDefault(inputsConfigKey, []string{}) })

	assert.Equal(t, []m.Path{"include", "src"}, inputPaths(nil))
	assert.Equal(t, []m.Path{"lib"}, inputPaths([]string{"lib"}))
}

func TestDebounceFromConfig(t *testing.T) {
	cmd := newWatchCmd()
	require.NoError(t, cmd.Flags().Set(debounceFlagName, "350"))

	assert.Equal(t, 350*time.Millisecond, debounceFromConfig())
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "amalgam", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{outputFlagName, excludeFlagName, manifestFlagName, headerExtFlagName, sourceExtFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	output, err := executeCmd(t, newRootCmd())

	require.NoError(t, err)
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Directories are walked for inputs")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, manifestStore)
	assert.NotNil(t, watcher)
	assert.NotNil(t, amalgamator)
	assert.NotNil(t, workflow)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"merge", "list", "check", "watch", "init", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.ErrStaleOutput)

	_, err := executeCmd(t, cmd, "check", "src")
	require.ErrorIs(t, err, domain.ErrStaleOutput)
}
