package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/docker-stats/internal/model"
)

// Collector produces one sorted snapshot per call.
type Collector interface {
	Collect(ctx context.Context) ([]model.Metric, error)
}

// Model represents the TUI application state
type Model struct {
	collector  Collector
	interval   time.Duration
	rows       []model.Metric
	cursor     int
	err        error
	loading    bool
	inFlight   bool
	lastUpdate time.Time
	width      int
	height     int
}

// Message types for Bubbletea update loop
type tickMsg time.Time

type rowsMsg struct {
	rows []model.Metric
	at   time.Time
	err  error
}

// NewModel creates a new TUI model refreshing every interval
func NewModel(c Collector, interval time.Duration) Model {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return Model{
		collector: c,
		interval:  interval,
		loading:   true,
		inFlight:  true,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(collectRows(m.collector), tickCmd(m.interval))
}
