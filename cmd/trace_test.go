package cmd

import (
	"errors"
	"testing"

	"github.com/mouse-blink/peptrace/internal/domain"
	m "github.com/mouse-blink/peptrace/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTraceCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	mockWorkflow.On("Trace", mock.Anything, mock.MatchedBy(func(args domain.TraceArgs) bool {
		return args.Input == m.Path("peaks.yaml") &&
			args.Output == m.Path(".peptrace-models") &&
			args.Config.Refine.Enabled &&
			args.Config.Build.TopFragments == 2000
	})).Return(nil)

	cmd.SetArgs([]string{"trace", "peaks.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestTraceCmd_Flags(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)

	mockWorkflow.On("Trace", mock.Anything, mock.MatchedBy(func(args domain.TraceArgs) bool {
		return args.Output == m.Path("models") &&
			args.Config.Threads == 2 &&
			!args.Config.Refine.Enabled &&
			args.Config.Build.TopFragments == 5
	})).Return(nil)

	cmd.SetArgs([]string{"trace", "--parallel", "2", "--no-refine", "-o", "models", "-f", "5", "peaks.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestTraceCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t)
	boom := errors.New("boom")

	mockWorkflow.On("Trace", mock.Anything, mock.Anything).Return(boom)

	cmd.SetArgs([]string{"trace", "peaks.yaml"})
	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestTraceCmd_RequiresInput(t *testing.T) {
	cmd, _ := newTestRoot(t)

	cmd.SetArgs([]string{"trace"})
	require.Error(t, cmd.Execute())
}

func TestTraceCmd_BadConfig(t *testing.T) {
	cmd, _ := newTestRoot(t)

	cmd.SetArgs([]string{"trace", "--config", writeConfig(t, "contact:\n  ca_ca_distance: -1\n"), "peaks.yaml"})
	require.Error(t, cmd.Execute())
}
