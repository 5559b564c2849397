package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

func TestScanCmd(t *testing.T) {
	cmd, mockWorkflow, buf := setupCmdTest(t, newScanCmd())

	mockWorkflow.On("Scan", mock.MatchedBy(func(cfg m.Config) bool {
		return cfg.PrimaryAdapter() == "spark" && len(cfg.Adapters) == 2
	})).Return(m.ScanResult{"COLLECT_LIST": 2, "SPLIT": 1}, nil)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Scanning project...")
	assert.Contains(t, out, "COLLECT_LIST")
	assert.Contains(t, out, "SPLIT")
}

func TestScanCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow, _ := setupCmdTest(t, newScanCmd())

	mockWorkflow.On("Scan", mock.Anything).Return(nil, assert.AnError)

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewScanCmd(t *testing.T) {
	cmd := newScanCmd()

	assert.Equal(t, "scan", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
