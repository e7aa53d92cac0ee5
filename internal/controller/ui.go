// Package controller provides output controllers for rendering autotype
// results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// DisplayOptions controls how a processing run is rendered.
type DisplayOptions struct {
	// InPlace switches from printing rewritten content to printing
	// per-file confirmations.
	InPlace bool
	// Diff shows planned insertions as a minimal diff instead of whole
	// files.
	Diff bool
	// MultiFile prefixes each file's output with a banner, as batch
	// stdout mode does.
	MultiFile bool
}

// UI defines the interface for presenting scan and rewrite results.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// DisplayResults renders a processing run: content, diffs, or
	// in-place confirmations, followed by a summary table and problems.
	DisplayResults(results []m.FileResult, opts DisplayOptions) error

	// DisplayEstimation renders the dry-run table of per-file decisions.
	DisplayEstimation(results []m.FileResult) error

	// Review lets the operator inspect planned insertions file by file.
	Review(results []m.FileResult) error

	// ReportSaved announces where a run report was written.
	ReportSaved(path m.Path)
}

// NewUI creates a UI based on whether interactive mode is enabled.
// When interactive is true, review sessions run a TUI (Bubble Tea);
// otherwise everything renders as plain text.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
