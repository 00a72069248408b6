// Package tui is an interactive terminal keypad for the calculator.
package tui

import (
	"strings"

	"keypad-calculator/internal/calculator"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model wrapping a calculator.State.
type Model struct {
	state   calculator.State
	keys    keyMap
	help    help.Model
	styles  Styles
	lastErr string
}

func NewModel() Model {
	return Model{
		state:  calculator.NewState(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
	}
}

// State returns the current calculation.
func (m Model) State() calculator.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		k, err := calculator.ParseKey(msg.String())
		if err != nil {
			m.lastErr = "unknown key " + msg.String()
			return m, nil
		}

		next, err := m.state.Apply(k)
		if err != nil {
			m.lastErr = err.Error()
			return m, nil
		}
		m.state = next
		m.lastErr = ""
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("calc"))
	sb.WriteString("\n")

	pending := ""
	if p, ok := m.state.Phase().(calculator.Pending); ok {
		pending = calculator.FormatNumber(p.Operand) + " " + string(p.Operation)
	}
	sb.WriteString(m.styles.Pending.Render(pending))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Display.Render(m.state.Display()))
	sb.WriteString("\n")

	if m.lastErr != "" {
		sb.WriteString(m.styles.Error.Render(m.lastErr))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")

	return sb.String()
}
