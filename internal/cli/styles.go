package cli

import "github.com/charmbracelet/lipgloss"

// Output styles for the stations listing.
var (
	stylePlaying = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // green

	styleIndex = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // dim gray

	styleURL = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB"))

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))
)
