package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
	Kill key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous panel")),
		Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Kill: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpLine renders bindings as "key action" pairs.
func helpLine(theme Theme, bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if i > 0 && out != "" {
			out += theme.muted.Render("  ·  ")
		}
		out += theme.text.Render(h.Key) + " " + theme.muted.Render(h.Desc)
	}
	return out
}
