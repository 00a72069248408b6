package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the help footer. Digit and operator
// presses are routed through calculator.ParseKey rather than matched here.
type keyMap struct {
	Digits   key.Binding
	Operator key.Binding
	Equals   key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "digits"),
		),
		Operator: key.NewBinding(
			key.WithKeys("+", "-", "*", "/", "x"),
			key.WithHelp("+ - * /", "operator"),
		),
		Equals: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("= enter", "equals"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C", "esc"),
			key.WithHelp("c esc", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operator},
		{k.Equals, k.Clear},
		{k.Help, k.Quit},
	}
}
