package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"

	colorLightText   lipgloss.Color = "#4c4f69"
	colorLightMuted  lipgloss.Color = "#8c8fa1"
	colorLightBorder lipgloss.Color = "#bcc0cc"
	colorLightBase   lipgloss.Color = "#eff1f5"
)

// Theme holds the styles for one color scheme.
type Theme struct {
	Dark bool

	title   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	card    lipgloss.Style
	focused lipgloss.Style
	tab     lipgloss.Style
	tabOn   lipgloss.Style
}

// NewTheme builds the dark or light theme.
func NewTheme(dark bool) Theme {
	text, muted, border, base := colorLightText, colorLightMuted, colorLightBorder, colorLightBase
	if dark {
		text, muted, border, base = colorText, colorOverlay0, colorSurface1, colorBase
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	return Theme{
		Dark:    dark,
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorPink),
		text:    lipgloss.NewStyle().Foreground(text),
		muted:   lipgloss.NewStyle().Foreground(muted),
		ok:      lipgloss.NewStyle().Foreground(colorGreen),
		bad:     lipgloss.NewStyle().Foreground(colorRed),
		warn:    lipgloss.NewStyle().Foreground(colorYellow),
		card:    card,
		focused: card.BorderForeground(colorLavender),
		tab:     lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		tabOn:   lipgloss.NewStyle().Foreground(base).Background(colorLavender).Padding(0, 1),
	}
}

// Card renders a panel body with its title and gotchas inside a border.
func (t Theme) Card(title, body string, gotchas []string, width int, focused bool) string {
	style := t.card
	if focused {
		style = t.focused
	}
	if width > 0 {
		style = style.Width(width - style.GetHorizontalFrameSize())
	}

	var b strings.Builder
	b.WriteString(t.title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(body)
	if len(gotchas) > 0 {
		b.WriteString("\n\n")
		b.WriteString(t.warn.Render("Common gotchas"))
		for _, g := range gotchas {
			b.WriteString("\n")
			b.WriteString(t.muted.Render("• " + g))
		}
	}
	return style.Render(b.String())
}
