package terminal

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
	Warning    lipgloss.Color
}

// portal mirrors the colours of the web stylesheet.
var portal = palette{
	Text:       lipgloss.Color("#E0E0E0"),
	Muted:      lipgloss.Color("#B0B0B0"),
	Accent:     lipgloss.Color("#00A9E0"),
	AccentAlt:  lipgloss.Color("#5DADE2"),
	Border:     lipgloss.Color("#4A5568"),
	Warning:    lipgloss.Color("#FFD479"),
}

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	text    lipgloss.Style
	card    lipgloss.Style
	heading lipgloss.Style
	button  lipgloss.Style
	warning lipgloss.Style
	rule    lipgloss.Style
	caption lipgloss.Style
}

func newStyles(p palette, width int) styles {
	cardWidth := (width - 4) / 2
	if cardWidth < 24 {
		cardWidth = width
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Width(width).Align(lipgloss.Center),
		header:  lipgloss.NewStyle().Foreground(p.Muted).Width(width).Align(lipgloss.Center),
		text:    lipgloss.NewStyle().Foreground(p.Muted).Width(width).Align(lipgloss.Center),
		card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(1, 2).Width(cardWidth),
		heading: lipgloss.NewStyle().Bold(true).Foreground(p.AccentAlt),
		button:  lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Accent).Padding(0, 2),
		warning: lipgloss.NewStyle().Foreground(p.Warning),
		rule:    lipgloss.NewStyle().Foreground(p.Border),
		caption: lipgloss.NewStyle().Italic(true).Foreground(p.Muted),
	}
}
