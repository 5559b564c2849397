package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

func TestRewriteCmd(t *testing.T) {
	cmd, mockWorkflow, buf := setupCmdTest(t, newRewriteCmd())

	mockWorkflow.On("Rewrite", mock.Anything, false, 1).
		Return([]m.Path{"models/orders.sql"}, nil)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Rewriting models...")
	assert.Contains(t, out, "models/orders.sql")
	assert.Contains(t, out, "Modified 1 file(s)")
}

func TestRewriteCmd_DryRun(t *testing.T) {
	cmd, mockWorkflow, buf := setupCmdTest(t, newRewriteCmd(), "--dry-run", "-p", "4")

	mockWorkflow.On("Rewrite", mock.Anything, true, 4).
		Return([]m.Path{"models/orders.sql", "models/users.sql"}, nil)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Previewing model rewrite...")
	assert.Contains(t, out, "Would modify 2 file(s)")
}

func TestRewriteCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow, _ := setupCmdTest(t, newRewriteCmd())

	mockWorkflow.On("Rewrite", mock.Anything, false, 1).Return(nil, assert.AnError)

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewRewriteCmd(t *testing.T) {
	cmd := newRewriteCmd()

	assert.Equal(t, "rewrite", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))

	parallelFlag := cmd.Flags().Lookup("parallel")
	require.NotNil(t, parallelFlag)
	assert.Equal(t, "p", parallelFlag.Shorthand)
	assert.Equal(t, "1", parallelFlag.DefValue)
}
