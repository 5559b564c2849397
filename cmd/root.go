// Package cmd provides the root command and CLI setup for sqlporter.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/sqlporter/internal/adapter"
	"github.com/mouse-blink/sqlporter/internal/config"
	"github.com/mouse-blink/sqlporter/internal/controller"
	"github.com/mouse-blink/sqlporter/internal/domain"
	m "github.com/mouse-blink/sqlporter/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui)
}

var configPathFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlporter",
		Short: "Cross-dialect SQL portability toolkit",
		Long: `Sqlporter analyzes templated SQL models, detects function calls whose
syntax or behavior differs across the configured SQL dialects, and rewrites
those call sites to dialect-dispatching portable_* macros while leaving
every template construct byte-for-byte intact.

Configuration is read from a YAML file naming at least two adapters; the
first adapter is the primary dialect used for canonical rendering.`,
	}
	cmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", config.DefaultFileName, "path to config file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig() (m.Config, error) {
	return config.Load(m.Path(configPathFlag))
}
