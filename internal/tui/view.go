package tui

import (
	"fmt"
	"strings"
)

const (
	memWidth = 12
	cpuWidth = 10
)

// View renders the TUI interface
func (m Model) View() string {
	width := m.width
	if width < 40 {
		width = 80
	}
	return panelStyle.Width(width - 4).Render(m.renderTable(width - 10))
}

// renderTable renders the stats rows, largest memory first
func (m Model) renderTable(colWidth int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("🐳 Container stats") + "\n\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n")
	case m.loading:
		s.WriteString("Loading...\n")
		return s.String()
	default:
		s.WriteString(fmt.Sprintf("%d containers, updated %s\n\n", len(m.rows), m.lastUpdate.Format("15:04:05")))
	}

	nameWidth := colWidth - memWidth - cpuWidth - 2
	if nameWidth < 10 {
		nameWidth = 10
	}
	header := fmt.Sprintf("%-*s %*s %*s", nameWidth, "NAME", memWidth, "MEM (GiB)", cpuWidth, "CPU %")
	s.WriteString(headerStyle.Render(header) + "\n")

	// Scroll so the cursor stays visible
	maxRows := m.visibleRows()
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(m.rows) && i < start+maxRows; i++ {
		r := m.rows[i]
		line := fmt.Sprintf("%-*s %*s %*s",
			nameWidth, truncate(r.Name, nameWidth),
			memWidth, r.MemoryUsage,
			cpuWidth, r.CPUPercent)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		s.WriteString(line + "\n")
	}

	s.WriteString(helpStyle.Render("↑/k ↓/j: move • r: refresh • q: quit"))
	return s.String()
}
