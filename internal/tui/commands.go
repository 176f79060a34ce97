package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd creates a command that sends a tick message every interval
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectRows runs one collection cycle off the update loop
func collectRows(c Collector) tea.Cmd {
	return func() tea.Msg {
		rows, err := c.Collect(context.Background())
		return rowsMsg{rows: rows, at: time.Now(), err: err}
	}
}
