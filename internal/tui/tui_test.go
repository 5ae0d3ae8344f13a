package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func submit(t *testing.T, text string) promptModel {
	t.Helper()
	m := newPromptModel("Offset")
	m.input.SetValue(text)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm, ok := updated.(promptModel)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	return pm
}

func TestPromptAcceptsValidOffset(t *testing.T) {
	m := submit(t, "15m ago")
	if !m.done {
		t.Fatal("expected prompt to finish")
	}
	if m.value == nil {
		t.Fatal("expected a parsed value")
	}
	if got := m.value.FriendlyString(); got != "15m ago" {
		t.Errorf("value = %q, want %q", got, "15m ago")
	}
}

func TestPromptEmptyMeansNoOffset(t *testing.T) {
	m := submit(t, "   ")
	if !m.done {
		t.Fatal("expected prompt to finish")
	}
	if m.value != nil {
		t.Errorf("expected nil value, got %v", m.value)
	}
}

func TestPromptRejectsInvalidOffset(t *testing.T) {
	m := submit(t, "in 5 ago")
	if m.done {
		t.Fatal("prompt should stay open on invalid input")
	}
	if m.err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(m.View(), m.err.Error()) {
		t.Errorf("view should show the error, got %q", m.View())
	}
}

func TestPromptCancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newPromptModel("Offset")
		updated, cmd := m.Update(tea.KeyMsg{Type: key})
		pm := updated.(promptModel)
		if !pm.cancelled {
			t.Errorf("key %v: expected cancelled", key)
		}
		if cmd == nil {
			t.Errorf("key %v: expected quit command", key)
		}
		if pm.View() != "" {
			t.Errorf("key %v: expected empty view after cancel", key)
		}
	}
}

func TestPromptPreview(t *testing.T) {
	m := newPromptModel("Offset")
	m.input.SetValue("in 1h 30m")
	view := m.View()
	if !strings.Contains(view, "in 1h 30m") || !strings.Contains(view, "1 hour 30 minutes") {
		t.Errorf("expected preview in view, got %q", view)
	}
}
