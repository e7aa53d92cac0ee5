package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bird-chinese-community/bird2-autotype/internal/domain"
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

var runBackupFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Annotate config files in place",
		Long: `Run rewrites the selected config files on disk, adding inferred return
type annotations. Equivalent to the bare command with --in-place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Process(domain.ProcessArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:   parsePaths(args),
					Exclude: excludeFlags,
				},
				InPlace: true,
				Backup:  runBackupFlag,
				Threads: parallelFlag,
				Reports: m.Path(reportsFlag),
			})
		},
	}
	cmd.Flags().BoolVar(&runBackupFlag, "backup", false, "write a .bak copy before rewriting")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
