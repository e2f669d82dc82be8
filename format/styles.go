package format

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds every lipgloss style the formatter uses. Built once per
// output so colour detection matches the destination.
type Styles struct {
	Banner  lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Banner: r.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true),

		Title: r.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true),

		Label: r.NewStyle().
			Bold(true),

		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true),

		Success: r.NewStyle().
			Foreground(lipgloss.Color("#22C55E")),

		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#EF4444")),
	}
}
