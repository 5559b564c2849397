package cmd

import (
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Detect non-portable SQL functions",
		Long: `Scan the configured model trees and report every function call whose
syntax or catalog entry diverges across the configured dialects, with the
number of call sites per function.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ui.Infof("Scanning project...")

			result, err := workflow.Scan(cfg)
			if err != nil {
				return err
			}

			ui.DisplayScan(result)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
