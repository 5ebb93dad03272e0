package preview

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#89b4fa")
	colorMuted  = lipgloss.Color("#6c7086")
	colorText   = lipgloss.Color("#cdd6f4")
	colorKey    = lipgloss.Color("#f9e2af")
)

type styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Frame    lipgloss.Style
	Caption  lipgloss.Style
	Counter  lipgloss.Style
	Muted    lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true).MarginBottom(1),
		Item:     lipgloss.NewStyle().Foreground(colorText).PaddingLeft(2),
		Selected: lipgloss.NewStyle().Foreground(colorKey).Bold(true),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2),
		Caption: lipgloss.NewStyle().Foreground(colorText).Italic(true),
		Counter: lipgloss.NewStyle().Foreground(colorKey).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}
