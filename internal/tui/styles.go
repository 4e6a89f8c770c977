package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Title     lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
	Title:     lipgloss.Color("#DFE6E9"), // Light gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	Header    lipgloss.Style
	Border    lipgloss.Style
	Assistant lipgloss.Style
	User      lipgloss.Style
	Busy      lipgloss.Style
	Status    lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Title).
			Background(Colors.Primary).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Assistant: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		User: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		Busy: lipgloss.NewStyle().
			Italic(true).
			Foreground(Colors.Warning),

		Status: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}
