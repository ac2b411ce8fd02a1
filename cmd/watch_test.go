package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"amalgam.dev/pkg/amalgam/internal/domain"
	domainmocks "amalgam.dev/pkg/amalgam/internal/domain/mocks"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

func TestWatchCmd_DebounceFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newWatchCmd())

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Debounce == 50*time.Millisecond && args.Output == m.Path(defaultOutput)
	})).Return(nil)

	_, err := executeCmd(t, cmd, "watch", "--debounce", "50", "src")
	require.NoError(t, err)
}

func TestWatchCmd_DefaultDebounce(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newWatchCmd())

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Debounce == defaultDebounceMS*time.Millisecond
	})).Return(nil)

	_, err := executeCmd(t, cmd, "watch", "src")
	require.NoError(t, err)
}
