package controller

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// TUI implements UI with an interactive Bubble Tea review session. The
// non-interactive displays delegate to the simple printer.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Review opens the interactive review session over the scan results.
func (t *TUI) Review(results []m.FileResult) error {
	program := tea.NewProgram(
		newReviewModel(results),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}
