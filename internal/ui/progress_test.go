package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bigcalc/internal/batch"
)

func newTestModel(n int) *progressModel {
	lines := make([]batch.Line, n)
	for i := range lines {
		lines[i] = batch.Line{No: i + 1, Text: fmt.Sprintf("%d + 1", i)}
	}
	return NewProgressModel("batch", lines, nil).(*progressModel)
}

func TestApplyEventCounts(t *testing.T) {
	m := newTestModel(3)
	m.Update(eventMsg{Line: 1, Stage: batch.StageParse, Status: batch.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q, want parsing", m.items[0].status)
	}
	m.Update(eventMsg{Line: 1, Stage: batch.StageEval, Status: batch.StatusDone})
	m.Update(eventMsg{Line: 2, Stage: batch.StageEval, Status: batch.StatusError, Err: errors.New("division by zero")})
	// Events after completion and for unknown lines are ignored.
	m.Update(eventMsg{Line: 2, Stage: batch.StageEval, Status: batch.StatusDone})
	m.Update(eventMsg{Line: 99, Stage: batch.StageEval, Status: batch.StatusDone})

	if m.ok != 1 || m.failed != 1 {
		t.Fatalf("ok=%d failed=%d, want 1 and 1", m.ok, m.failed)
	}
	if m.items[1].status != "error" || m.items[2].status != "queued" {
		t.Fatalf("items = %+v", m.items)
	}
	view := m.View()
	if !strings.Contains(view, "batch (2/3, 1 failed)") {
		t.Fatalf("view header missing counts:\n%s", view)
	}
	if !strings.Contains(view, "0 + 1") || !strings.Contains(view, "1 + 1") {
		t.Fatalf("view missing recent lines:\n%s", view)
	}
}

func TestDoneQuits(t *testing.T) {
	m := newTestModel(1)
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatalf("doneMsg should finish the model")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("doneMsg should return tea.Quit")
	}
	if !strings.Contains(m.View(), "done: batch") {
		t.Fatalf("view after done:\n%s", m.View())
	}
}

func TestVisibleWindow(t *testing.T) {
	m := newTestModel(30)
	if got := len(m.visible()); got != maxVisible {
		t.Fatalf("visible before events = %d, want %d", got, maxVisible)
	}
	for i := 1; i <= 20; i++ {
		m.Update(eventMsg{Line: i, Stage: batch.StageParse, Status: batch.StatusWorking})
	}
	vis := m.visible()
	if len(vis) != maxVisible || m.items[vis[len(vis)-1]].no != 20 {
		t.Fatalf("visible = %v", vis)
	}
	// Touching an old line moves it to the end without duplicating it.
	m.Update(eventMsg{Line: 9, Stage: batch.StageEval, Status: batch.StatusWorking})
	vis = m.visible()
	if m.items[vis[len(vis)-1]].no != 9 || len(m.recent) != 20 {
		t.Fatalf("recent = %v", m.recent)
	}
}

func TestEmptyView(t *testing.T) {
	m := newTestModel(0)
	if m.View() != "" {
		t.Fatalf("empty model should render nothing")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "short", width: 10, want: "short"},
		{in: "123456789012", width: 8, want: "12345..."},
		{in: "１２３４５", width: 6, want: "１..."},
		{in: "abcdef", width: 2, want: "ab"},
		{in: "abc", width: 0, want: "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
