package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordrush/internal/theme"
)

type palette struct {
	text       lipgloss.Color
	softText   lipgloss.Color
	accent     lipgloss.Color
	accentSoft lipgloss.Color
	border     lipgloss.Color
}

var palettes = map[theme.Mode]palette{
	theme.Light: {
		text:       lipgloss.Color("#111827"),
		softText:   lipgloss.Color("#6B7280"),
		accent:     lipgloss.Color("#FF8BA7"),
		accentSoft: lipgloss.Color("#FFD6E0"),
		border:     lipgloss.Color("#D1D5DB"),
	},
	theme.Dark: {
		text:       lipgloss.Color("#F9FAFB"),
		softText:   lipgloss.Color("#9CA3AF"),
		accent:     lipgloss.Color("#A7F3D0"),
		accentSoft: lipgloss.Color("#1F4D3F"),
		border:     lipgloss.Color("#475569"),
	},
}

type styles struct {
	title     lipgloss.Style
	subtitle  lipgloss.Style
	word      lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	card      lipgloss.Style
	panel     lipgloss.Style
	gameOver  lipgloss.Style
	help      lipgloss.Style
	heading   lipgloss.Style
	tableSkin table.Styles
}

func newStyles(mode theme.Mode) styles {
	p, ok := palettes[mode]
	if !ok {
		p = palettes[theme.Default]
	}
	skin := table.DefaultStyles()
	skin.Header = skin.Header.
		Foreground(p.softText).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.border).
		BorderBottom(true).
		Bold(false)
	skin.Cell = skin.Cell.Foreground(p.text)
	skin.Selected = skin.Selected.Foreground(p.accent).Bold(true)

	return styles{
		title:    lipgloss.NewStyle().Foreground(p.text).Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(p.softText),
		word:     lipgloss.NewStyle().Foreground(p.accent).Bold(true).Padding(1, 0),
		label:    lipgloss.NewStyle().Foreground(p.softText),
		value:    lipgloss.NewStyle().Foreground(p.text).Bold(true),
		card: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border).
			Align(lipgloss.Center),
		panel: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border),
		gameOver: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.accentSoft).
			Padding(0, 1),
		help:      lipgloss.NewStyle().Foreground(p.softText),
		heading:   lipgloss.NewStyle().Foreground(p.text).Bold(true),
		tableSkin: skin,
	}
}
