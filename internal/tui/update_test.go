package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/docker-stats/internal/model"
)

type fakeCollector struct {
	rows  []model.Metric
	err   error
	calls int
}

func (f *fakeCollector) Collect(context.Context) ([]model.Metric, error) {
	f.calls++
	return f.rows, f.err
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

var sampleRows = []model.Metric{
	{Name: "db", MemoryUsage: "3.50", CPUPercent: "12.00"},
	{Name: "web", MemoryUsage: "1.00", CPUPercent: "0.50"},
}

func TestRowsMsgReplacesRows(t *testing.T) {
	m := NewModel(&fakeCollector{}, time.Second)

	m, _ = update(t, m, rowsMsg{rows: sampleRows, at: time.Now()})

	if m.loading || m.inFlight {
		t.Fatalf("loading=%v inFlight=%v after rows", m.loading, m.inFlight)
	}
	if len(m.rows) != 2 {
		t.Fatalf("rows = %v", m.rows)
	}
	view := m.View()
	if !strings.Contains(view, "db") || !strings.Contains(view, "3.50") {
		t.Errorf("view missing rows:\n%s", view)
	}
}

func TestCollectErrorKeepsRows(t *testing.T) {
	m := NewModel(&fakeCollector{}, time.Second)
	m, _ = update(t, m, rowsMsg{rows: sampleRows, at: time.Now()})

	m, _ = update(t, m, rowsMsg{err: errors.New("daemon unreachable")})

	if len(m.rows) != 2 {
		t.Fatalf("rows dropped after error: %v", m.rows)
	}
	if !strings.Contains(m.View(), "daemon unreachable") {
		t.Errorf("error not shown:\n%s", m.View())
	}
}

func TestTickSkippedWhileInFlight(t *testing.T) {
	fc := &fakeCollector{rows: sampleRows}
	m := NewModel(fc, time.Second)

	m, cmd := update(t, m, tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the next tick to be scheduled")
	}
	if !m.inFlight {
		t.Fatal("inFlight cleared by tick")
	}

	m, _ = update(t, m, rowsMsg{rows: sampleRows, at: time.Now()})
	m, _ = update(t, m, tickMsg(time.Now()))
	if !m.inFlight {
		t.Fatal("tick after rows did not start a new cycle")
	}
}

func TestCursorMovement(t *testing.T) {
	m := NewModel(&fakeCollector{}, time.Second)
	m, _ = update(t, m, rowsMsg{rows: sampleRows, at: time.Now()})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	m, _ = update(t, m, rowsMsg{rows: sampleRows[:1], at: time.Now()})
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after shrink, want 0", m.cursor)
	}
}

func TestRefreshRunsCollector(t *testing.T) {
	fc := &fakeCollector{rows: sampleRows}
	m := NewModel(fc, time.Second)
	m, _ = update(t, m, rowsMsg{rows: nil, at: time.Now()})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	msg := cmd()
	m, _ = update(t, m, msg)

	if fc.calls != 1 || len(m.rows) != 2 {
		t.Fatalf("calls=%d rows=%v", fc.calls, m.rows)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("verylongcontainername", 10); got != "verylon..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
}
