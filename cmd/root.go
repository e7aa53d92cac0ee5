// Package cmd provides the root command and CLI setup for bird2-autotype.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bird-chinese-community/bird2-autotype/internal/adapter"
	"github.com/bird-chinese-community/bird2-autotype/internal/controller"
	"github.com/bird-chinese-community/bird2-autotype/internal/domain"
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

var fsAdapter adapter.ConfFS
var reportStore adapter.ReportStore
var engine domain.Engine
var ui controller.UI
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalConfFS()
	reportStore = adapter.NewReportStore()
	engine = domain.NewEngine()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(fsAdapter, reportStore, engine, ui)
}

var inPlaceFlag bool
var backupFlag bool
var diffFlag bool
var listFlag bool
var parallelFlag int
var excludeFlags []string
var reportsFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bird2-autotype [paths...]",
		Short: "Add return-type annotations to BIRD config functions",
		Long: `bird2-autotype rewrites BIRD (2.17+) configuration files, adding the
explicit "-> <type>" return annotation to functions that lack one. The type
is inferred from each function's return expressions; functions whose return
sites disagree are reported and left untouched, never guessed at.

Paths may be single files or directories (directories are scanned
recursively for .conf files):

  bird2-autotype bird.conf            print the rewritten file to stdout
  bird2-autotype -i /etc/bird         annotate every .conf under /etc/bird
  bird2-autotype --diff bird.conf     show planned insertions as a diff

Supported types: int, pair, ip, prefix, string, set, bool.
Void functions remain unchanged.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			paths := parsePaths(args)

			if listFlag {
				return workflow.Estimate(domain.EstimateArgs{
					Paths:   paths,
					Exclude: excludeFlags,
				})
			}

			return workflow.Process(domain.ProcessArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:   paths,
					Exclude: excludeFlags,
				},
				InPlace: inPlaceFlag,
				Backup:  backupFlag,
				Diff:    diffFlag,
				Threads: parallelFlag,
				Reports: m.Path(reportsFlag),
			})
		},
	}

	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel workers (0 = CPU count)")
	cmd.PersistentFlags().StringVar(&reportsFlag, "report", "", "directory to write a JSON run report to")
	cmd.Flags().BoolVarP(&inPlaceFlag, "in-place", "i", false, "modify files in place instead of printing to stdout")
	cmd.Flags().BoolVar(&backupFlag, "backup", false, "write a .bak copy before an in-place rewrite")
	cmd.Flags().BoolVar(&diffFlag, "diff", false, "print planned insertions as a diff")
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list files and per-function decisions without writing")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
