package tui

import (
	"strings"
	"testing"

	"keypad-calculator/internal/calculator"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func feed(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("expected Model from Update, got %T", next)
		}
	}
	return m
}

func TestModelEvaluatesTypedKeys(t *testing.T) {
	m := feed(t, NewModel(),
		runes("2"), runes("+"), runes("3"), runes("*"), runes("4"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if got := m.State().Display(); got != "20" {
		t.Fatalf("expected display 20, got %q", got)
	}
}

func TestModelEscClears(t *testing.T) {
	m := feed(t, NewModel(), runes("9"), runes("/"), tea.KeyMsg{Type: tea.KeyEsc})

	if m.State() != calculator.NewState() {
		t.Fatalf("expected cleared state, got %+v", m.State())
	}
}

func TestModelShowsPendingOperation(t *testing.T) {
	m := feed(t, NewModel(), runes("7"), runes("x"))

	view := m.View()
	if !strings.Contains(view, "7 *") {
		t.Fatalf("expected pending operation in view, got:\n%s", view)
	}
}

func TestModelReportsUnknownKeyWithoutChangingState(t *testing.T) {
	m := feed(t, NewModel(), runes("5"), runes("%"))

	if got := m.State().Display(); got != "5" {
		t.Fatalf("expected display 5, got %q", got)
	}
	if !strings.Contains(m.View(), "unknown key %") {
		t.Fatal("expected unknown key message in view")
	}

	m = feed(t, m, runes("1"))
	if strings.Contains(m.View(), "unknown key") {
		t.Fatal("expected message cleared after a valid key")
	}
}

func TestModelQuit(t *testing.T) {
	_, cmd := NewModel().Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := feed(t, NewModel(), runes("?"))
	if !m.help.ShowAll {
		t.Fatal("expected full help after ?")
	}
	m = feed(t, m, runes("?"))
	if m.help.ShowAll {
		t.Fatal("expected short help after second ?")
	}
}
