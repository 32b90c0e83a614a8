package tui

import tea "github.com/charmbracelet/bubbletea"

// Panel is one self-contained demo card.
//
// Panels are owned by the App and updated in place from the Bubble Tea
// event loop. Messages a panel does not recognise must be ignored, since
// every non-key message is delivered to every panel.
type Panel interface {
	Title() string
	// Init mounts the panel and runs its mount effects.
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(theme Theme, width int) string
	Gotchas() []string
	// Capturing reports whether the panel is taking text input, in which
	// case it receives every key except ctrl+c.
	Capturing() bool
	// Close runs the panel's teardown. It is safe to call twice.
	Close()
}
