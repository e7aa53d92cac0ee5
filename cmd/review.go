package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bird-chinese-community/bird2-autotype/internal/domain"
)

// reviewCmd represents the review command.
var reviewCmd = newReviewCmd()

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review [paths...]",
		Short: "Interactively review planned insertions",
		Long: `Review scans the selected config files and opens an interactive session
to inspect the planned insertions file by file before applying them with
run. When stdout is not a terminal the planned insertions are printed as
diffs instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Review(domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: excludeFlags,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
