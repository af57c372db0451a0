package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hanguiano/activador/internal/domain"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	code     lipgloss.Style
	detail   lipgloss.Style
	faint    lipgloss.Style
	warning  lipgloss.Style
	sage     lipgloss.Style
	user     lipgloss.Style
	section  lipgloss.Style
	status   lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	accent := lipgloss.Color("99")
	text := lipgloss.Color("252")
	muted := lipgloss.Color("245")
	if theme == domain.ThemeLight {
		accent = lipgloss.Color("55")
		text = lipgloss.Color("236")
		muted = lipgloss.Color("243")
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		header:   lipgloss.NewStyle().Foreground(muted),
		item:     lipgloss.NewStyle().Foreground(text),
		selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		code:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178")),
		detail:   lipgloss.NewStyle().Foreground(text),
		faint:    lipgloss.NewStyle().Faint(true),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		sage:     lipgloss.NewStyle().Foreground(accent),
		user:     lipgloss.NewStyle().Foreground(text).Bold(true),
		section:  lipgloss.NewStyle().MarginTop(1),
		status:   lipgloss.NewStyle().Italic(true).Foreground(muted),
	}
}

// detectTheme is the fallback when no preference is stored: follow the
// terminal background the way the eye already does.
func detectTheme() domain.Theme {
	if lipgloss.HasDarkBackground() {
		return domain.ThemeDark
	}

	return domain.ThemeLight
}
