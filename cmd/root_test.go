package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/sqlporter/internal/config"
	"github.com/mouse-blink/sqlporter/internal/controller"
	"github.com/mouse-blink/sqlporter/internal/domain/mocks"
)

// setupCmdTest builds a fresh root command writing to a buffer, points the
// config flag at a temp project config and swaps the package workflow and ui
// for the test's lifetime.
func setupCmdTest(t *testing.T, sub *cobra.Command, extraArgs ...string) (*cobra.Command, *mocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), config.DefaultFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("adapters: [spark, duckdb]\n"), 0o644))

	buf := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow := mocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	originalUI := ui
	originalConfigPath := configPathFlag
	workflow = mockWorkflow
	ui = controller.NewSimpleUI(cmd)

	t.Cleanup(func() {
		workflow = originalWorkflow
		ui = originalUI
		configPathFlag = originalConfigPath
	})

	cmd.SetArgs(append([]string{sub.Name(), "--config", configPath}, extraArgs...))

	return cmd, mockWorkflow, buf
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "sqlporter", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, config.DefaultFileName, configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"scan", "rewrite", "generate", "generate-library", "migrate"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestSubcommand_MissingConfigFails(t *testing.T) {
	cmd, _, _ := setupCmdTest(t, newScanCmd())
	cmd.SetArgs([]string{"scan", "--config", filepath.Join(t.TempDir(), "absent.yml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}
