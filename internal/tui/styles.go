package tui

import "github.com/charmbracelet/lipgloss"

const displayWidth = 24

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6b7280")
	danger = lipgloss.Color("#e53935")
)

// Styles groups the lipgloss styles used by the keypad view.
type Styles struct {
	Display lipgloss.Style
	Pending lipgloss.Style
	Error   lipgloss.Style
	Title   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(displayWidth).
			Align(lipgloss.Right).
			Bold(true),
		Pending: lipgloss.NewStyle().
			Foreground(muted).
			Width(displayWidth + 2).
			Align(lipgloss.Right),
		Error: lipgloss.NewStyle().Foreground(danger),
		Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}
