package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case "r":
			if !m.inFlight {
				m.inFlight = true
				return m, collectRows(m.collector)
			}
		}

	case tickMsg:
		// Skip this tick if the previous cycle is still waiting on slow containers
		if m.inFlight {
			return m, tickCmd(m.interval)
		}
		m.inFlight = true
		return m, tea.Batch(collectRows(m.collector), tickCmd(m.interval))

	case rowsMsg:
		m.inFlight = false
		m.loading = false
		if msg.err != nil {
			// Keep the last good rows on screen
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = msg.rows
		m.lastUpdate = msg.at
		if m.cursor >= len(m.rows) {
			m.cursor = max(len(m.rows)-1, 0)
		}
	}

	return m, nil
}
