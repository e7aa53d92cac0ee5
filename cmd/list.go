package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bird-chinese-community/bird2-autotype/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List files and per-function decisions without writing",
		Long: `List scans the selected config files and prints a table of how many
functions would be annotated, skipped, or kept per file. No file is ever
modified.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Estimate(domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: excludeFlags,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
