package commands

import "github.com/charmbracelet/lipgloss"

// Color theme for command output
const (
	colorSecondaryText = "#B1B8C7" // timestamps, muted detail
	colorAccent        = "#7C3AED" // headers, totals
	colorActive        = "#22C55E" // running activity
	colorPaused        = "#F59E0B" // paused activity
	colorCompleted     = "#6D7383" // finished activity
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSecondaryText))
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent))

	statusStyles = map[string]lipgloss.Style{
		"ACTIVE":    lipgloss.NewStyle().Foreground(lipgloss.Color(colorActive)),
		"PAUSED":    lipgloss.NewStyle().Foreground(lipgloss.Color(colorPaused)),
		"COMPLETED": lipgloss.NewStyle().Foreground(lipgloss.Color(colorCompleted)),
	}
)

// renderStatus colors a status label by its state.
func renderStatus(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}
