package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// fileItem adapts a FileResult to the bubbles list.
type fileItem struct {
	res m.FileResult
}

func (i fileItem) Title() string {
	return string(i.res.Source.Origin)
}

func (i fileItem) Description() string {
	return fmt.Sprintf("%d functions, %d to annotate, %d skipped",
		len(i.res.Decisions), i.res.Inserted(), i.res.Skipped())
}

func (i fileItem) FilterValue() string {
	return string(i.res.Source.Origin)
}

// reviewModel is the Bubble Tea model for browsing planned insertions: a
// file list, and a scrollable detail pane opened per file.
type reviewModel struct {
	files      list.Model
	detail     viewport.Model
	showDetail bool
	width      int
	height     int
}

func newReviewModel(results []m.FileResult) reviewModel {
	items := make([]list.Item, 0, len(results))
	for _, res := range results {
		items = append(items, fileItem{res: res})
	}

	files := list.New(items, list.NewDefaultDelegate(), 0, 0)
	files.Title = "bird2-autotype review"
	files.SetShowStatusBar(false)

	return reviewModel{files: files, detail: viewport.New(0, 0)}
}

// Init implements tea.Model.
func (rm reviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (rm reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.files.SetSize(msg.Width, msg.Height-2)
		rm.detail.Width = msg.Width - 4
		rm.detail.Height = msg.Height - 4

		return rm, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return rm, tea.Quit
		case "enter":
			if !rm.showDetail {
				if item, ok := rm.files.SelectedItem().(fileItem); ok {
					rm.detail.SetContent(renderDetail(item.res))
					rm.detail.GotoTop()
					rm.showDetail = true
				}

				return rm, nil
			}
		case "esc":
			if rm.showDetail {
				rm.showDetail = false
				return rm, nil
			}

			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd

	if rm.showDetail {
		rm.detail, cmd = rm.detail.Update(msg)
	} else {
		rm.files, cmd = rm.files.Update(msg)
	}

	return rm, cmd
}

// View implements tea.Model.
func (rm reviewModel) View() string {
	if rm.showDetail {
		help := helpStyle.Render("esc back · q quit · arrows scroll")
		return detailStyle.Render(rm.detail.View()) + "\n" + help
	}

	help := helpStyle.Render("enter inspect · q quit")

	return rm.files.View() + "\n" + help
}

// renderDetail builds the per-file pane: decision lines, then the diff of
// planned insertions.
func renderDetail(res m.FileResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(string(res.Source.Origin)))
	b.WriteString("\n\n")

	for _, d := range res.Decisions {
		switch d.Kind {
		case m.DecisionInsert:
			fmt.Fprintf(&b, "%s: insert -> %s\n", d.Function.Name, d.Type.Render())
		case m.DecisionSkip:
			fmt.Fprintf(&b, "%s: skip (%s)\n", d.Function.Name, d.Reason)
		default:
			fmt.Fprintf(&b, "%s: keep (%s)\n", d.Function.Name, d.Reason)
		}
	}

	for _, p := range res.Problems {
		fmt.Fprintf(&b, "%s\n", problemStyle.Render(fmt.Sprintf("%s at offset %d: %s", p.Kind, p.Offset, p.Detail)))
	}

	if diff := RenderDiff(res.Input, res.Decisions); diff != "" {
		b.WriteString("\n")
		b.WriteString(diff)
	}

	return b.String()
}
