package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

var (
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// RenderDiff renders the signature lines touched by planned insertions as a
// minimal before/after diff against the original buffer.
func RenderDiff(buf []byte, decisions []m.Decision) string {
	var b strings.Builder

	for _, d := range decisions {
		if d.Kind != m.DecisionInsert {
			continue
		}

		line, start, number := lineAround(buf, d.Function.InsertionPoint)
		col := d.Function.InsertionPoint - start
		rewritten := line[:col] + " -> " + d.Type.Render() + line[col:]

		b.WriteString(hunkStyle.Render(fmt.Sprintf("@@ %s, line %d @@", d.Function.Name, number)))
		b.WriteByte('\n')
		b.WriteString(removedStyle.Render("- " + line))
		b.WriteByte('\n')
		b.WriteString(addedStyle.Render("+ " + rewritten))
		b.WriteByte('\n')
	}

	return b.String()
}

// lineAround returns the line containing offset, its starting offset, and
// its 1-based line number.
func lineAround(buf []byte, offset int) (string, int, int) {
	if offset > len(buf) {
		offset = len(buf)
	}

	start := offset
	for start > 0 && buf[start-1] != '\n' {
		start--
	}

	end := offset
	for end < len(buf) && buf[end] != '\n' {
		end++
	}

	number := 1
	for i := 0; i < start; i++ {
		if buf[i] == '\n' {
			number++
		}
	}

	return string(buf[start:end]), start, number
}
