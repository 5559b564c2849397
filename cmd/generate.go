package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

// generateLibraryCmd represents the generate-library command.
var generateLibraryCmd = newGenerateLibraryCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate portable_* macros for detected functions",
		Long: `Scan the configured model trees and generate the dispatching-macro
library for exactly the divergent functions the project actually uses.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ui.Infof("Generating macros...")

			result, err := workflow.Scan(cfg)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(result))
			for name := range result {
				names = append(names, name)
			}

			outputPath, err := workflow.Generate(cfg, names)
			if err != nil {
				return err
			}

			ui.Successf("Generated macros at: %s", outputPath)

			return nil
		},
	}

	return cmd
}

func newGenerateLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-library",
		Short: "Generate macros for all known non-portable functions",
		Long: `Generate the dispatching-macro library for every function known to
diverge across the configured dialects, independent of project usage.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ui.Infof("Generating complete function library...")

			names, err := workflow.LibraryFunctions(cfg)
			if err != nil {
				return err
			}

			outputPath, err := workflow.Generate(cfg, names)
			if err != nil {
				return err
			}

			ui.Successf("Generated %d macros at: %s", len(names), outputPath)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(generateLibraryCmd)
}
