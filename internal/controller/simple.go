package controller

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd  *cobra.Command
	msgs Messages
}

// NewSimpleUI creates a new SimpleUI with locale-detected messages.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, msgs: DetectMessages(os.Getenv)}
}

// DisplayResults renders a processing run.
func (s *SimpleUI) DisplayResults(results []m.FileResult, opts DisplayOptions) error {
	if len(results) == 0 {
		s.printf("%s\n", s.msgs.NoFiles)
		return nil
	}

	for _, res := range results {
		switch {
		case opts.InPlace:
			format := s.msgs.UnchangedFile
			if res.Inserted() > 0 {
				format = s.msgs.ProcessedFile
			}

			s.errf(format, res.Source.Origin)
		case opts.Diff:
			s.printf("%s", RenderDiff(res.Input, res.Decisions))
		default:
			if opts.MultiFile {
				s.printf(s.msgs.FileBanner, res.Source.Origin)
			}

			s.printf("%s", res.Output)
		}
	}

	s.renderSummary(results)
	s.renderProblems(results)

	return nil
}

// DisplayEstimation renders the dry-run decision table.
func (s *SimpleUI) DisplayEstimation(results []m.FileResult) error {
	if len(results) == 0 {
		s.printf("%s\n", s.msgs.NoFiles)
		return nil
	}

	s.renderSummary(results)
	s.renderProblems(results)

	return nil
}

// Review prints estimation plus the planned insertions as diffs; the
// interactive variant lives in the TUI.
func (s *SimpleUI) Review(results []m.FileResult) error {
	planned := 0

	for _, res := range results {
		if res.Inserted() == 0 {
			continue
		}

		planned++

		s.printf(s.msgs.FileBanner, res.Source.Origin)
		s.printf("%s", RenderDiff(res.Input, res.Decisions))
	}

	if planned == 0 {
		s.printf("%s\n", s.msgs.ReviewNoEdits)
	}

	return s.DisplayEstimation(results)
}

// ReportSaved announces where a run report was written.
func (s *SimpleUI) ReportSaved(path m.Path) {
	s.errf(s.msgs.ReportSaved, path)
}

func (s *SimpleUI) renderSummary(results []m.FileResult) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{s.msgs.HeaderFile, s.msgs.HeaderFuncs, s.msgs.HeaderInserted, s.msgs.HeaderSkipped, s.msgs.HeaderKept})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalInserted := 0

	for _, res := range results {
		totalInserted += res.Inserted()
		table.Append([]string{
			string(res.Source.Origin),
			fmt.Sprintf("%d", len(res.Decisions)),
			fmt.Sprintf("%d", res.Inserted()),
			fmt.Sprintf("%d", res.Skipped()),
			fmt.Sprintf("%d", res.Kept()),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf(s.msgs.FooterTotal, len(results)),
		"",
		fmt.Sprintf("%d", totalInserted),
		"",
		"",
	})

	table.Render()
	s.errf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) renderProblems(results []m.FileResult) {
	headed := false

	for _, res := range results {
		for _, p := range res.Problems {
			if !headed {
				s.errf("%s\n", problemStyle.Render(s.msgs.ProblemsHeader))

				headed = true
			}

			where := string(res.Source.Origin)
			if p.Function != "" {
				where += " " + p.Function
			}

			s.errf("  %s: %s (offset %d): %s\n", where, p.Kind, p.Offset, p.Detail)
		}
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// errf writes status output to stderr so stdout stays clean for rewritten
// config content.
func (s *SimpleUI) errf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
