package cmd

import (
	"github.com/spf13/cobra"
)

var rewriteDryRunFlag bool
var rewriteParallelFlag int

// rewriteCmd represents the rewrite command.
var rewriteCmd = newRewriteCmd()

func newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite SQL models to use portable_* macros",
		Long: `Rewrite every divergent function call in the configured model trees to a
portable_* macro invocation, in place. Files containing template constructs
outside the safe allowlist are left byte-identical.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if rewriteDryRunFlag {
				ui.Infof("Previewing model rewrite...")
			} else {
				ui.Infof("Rewriting models...")
			}

			files, err := workflow.Rewrite(cfg, rewriteDryRunFlag, rewriteParallelFlag)
			if err != nil {
				return err
			}

			ui.DisplayModified(files, rewriteDryRunFlag)

			return nil
		},
	}
	cmd.Flags().BoolVar(&rewriteDryRunFlag, "dry-run", false, "show changes without modifying files")
	cmd.Flags().IntVarP(&rewriteParallelFlag, "parallel", "p", 1, "number of parallel workers for rewriting")

	return cmd
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}
