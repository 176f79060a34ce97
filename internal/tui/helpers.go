package tui

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// visibleRows calculates how many table rows fit in the panel
func (m Model) visibleRows() int {
	// Reserve space for borders, padding, title, header, status and help
	rows := m.height - 12
	if rows < 3 {
		rows = 3
	}
	return rows
}
