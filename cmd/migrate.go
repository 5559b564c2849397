package cmd

import (
	"github.com/spf13/cobra"
)

var migrateParallelFlag int

// migrateCmd represents the migrate command.
var migrateCmd = newMigrateCmd()

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run complete migration: scan, generate, rewrite",
		Long: `Run the full migration in one pass: scan the model trees for divergent
functions, generate the dispatching-macro library for them, then rewrite
every call site to the portable_* macros.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ui.Infof("Starting migration...")

			ui.Infof("[1/3] Scanning project...")

			result, err := workflow.Scan(cfg)
			if err != nil {
				return err
			}

			ui.Infof("      Found %d non-portable function(s)", len(result))

			ui.Infof("[2/3] Generating macros...")

			names := make([]string, 0, len(result))
			for name := range result {
				names = append(names, name)
			}

			outputPath, err := workflow.Generate(cfg, names)
			if err != nil {
				return err
			}

			ui.Infof("      Generated macros at: %s", outputPath)

			ui.Infof("[3/3] Rewriting models...")

			files, err := workflow.Rewrite(cfg, false, migrateParallelFlag)
			if err != nil {
				return err
			}

			ui.Infof("      Modified %d file(s)", len(files))
			ui.Successf("Migration complete")

			return nil
		},
	}
	cmd.Flags().IntVarP(&migrateParallelFlag, "parallel", "p", 1, "number of parallel workers for rewriting")

	return cmd
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
