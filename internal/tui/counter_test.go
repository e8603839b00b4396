package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateCounter(t *testing.T, m CounterModel, msg tea.Msg) (CounterModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(CounterModel)
	if !ok {
		t.Fatalf("Update returned %T, want CounterModel", updated)
	}
	return model, cmd
}

func TestCounterStartsAtMin(t *testing.T) {
	m := NewCounterModel(5, 10)
	if m.Count != 5 {
		t.Errorf("Count = %d, want 5", m.Count)
	}
}

func TestCounterSwapsInvertedBounds(t *testing.T) {
	m := NewCounterModel(10, 5)
	if m.Min != 5 || m.Max != 10 {
		t.Errorf("bounds = (%d, %d), want (5, 10)", m.Min, m.Max)
	}
}

func TestCounterIncrementAndDecrement(t *testing.T) {
	m := NewCounterModel(0, 2)

	m, _ = updateCounter(t, m, keyType(tea.KeyRight))
	if m.Count != 1 {
		t.Errorf("Count after right = %d, want 1", m.Count)
	}

	m, _ = updateCounter(t, m, keyRune('l'))
	if m.Count != 2 {
		t.Errorf("Count after l = %d, want 2", m.Count)
	}

	m, _ = updateCounter(t, m, keyRune('h'))
	if m.Count != 1 {
		t.Errorf("Count after h = %d, want 1", m.Count)
	}
}

func TestCounterSaturatesAtBounds(t *testing.T) {
	m := NewCounterModel(0, 1)

	// Below min: no wrap, no error
	m, _ = updateCounter(t, m, keyType(tea.KeyLeft))
	if m.Count != 0 {
		t.Errorf("Count after left at min = %d, want 0", m.Count)
	}

	m, _ = updateCounter(t, m, keyType(tea.KeyRight))
	m, _ = updateCounter(t, m, keyType(tea.KeyRight))
	if m.Count != 1 {
		t.Errorf("Count after right at max = %d, want 1", m.Count)
	}
}

func TestCounterQuits(t *testing.T) {
	m := NewCounterModel(0, 10)
	_, cmd := updateCounter(t, m, keyRune('q'))
	if !isQuit(cmd) {
		t.Error("'q' should quit the counter")
	}
}

func TestCounterView(t *testing.T) {
	m := NewCounterModel(0, 10)
	m, _ = updateCounter(t, m, keyType(tea.KeyRight))

	v := m.View()
	if !strings.Contains(v, "Value:") || !strings.Contains(v, "1") {
		t.Errorf("view should show the current value, got:\n%s", v)
	}
}

func TestHelloQuitsAndRendersMessage(t *testing.T) {
	m := NewHelloModel("Hello from kvforge!")

	if v := m.View(); !strings.Contains(v, "Hello from kvforge!") {
		t.Errorf("view should render the banner message, got:\n%s", v)
	}

	updated, cmd := m.Update(keyRune('q'))
	if _, ok := updated.(HelloModel); !ok {
		t.Fatalf("Update returned %T, want HelloModel", updated)
	}
	if !isQuit(cmd) {
		t.Error("'q' should quit the hello screen")
	}
}
