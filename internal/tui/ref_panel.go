package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HarshaSuranjith/react-hooks-demo/hooks"
)

type refPanel struct {
	input   textinput.Model
	updates *hooks.Ref[int]
	mounts  *hooks.State[int]
	effects *hooks.Effects
	focus   key.Binding
	done    key.Binding
}

func newRefPanel() *refPanel {
	in := textinput.New()
	in.Placeholder = "Focus me!"
	in.CharLimit = 64
	return &refPanel{
		input:   in,
		updates: hooks.NewRef(0),
		mounts:  hooks.NewState(0),
		effects: hooks.NewEffects(),
		focus:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus input")),
		done:    key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "blur")),
	}
}

func (p *refPanel) Title() string { return "Ref" }

func (p *refPanel) Capturing() bool { return p.input.Focused() }

func (p *refPanel) Init() tea.Cmd {
	p.effects.Use("mount", []any{}, func() func() {
		p.updates.Set(p.updates.Current() + 1)
		p.mounts.Update(func(n int) int { return n + 1 })
		return nil
	})
	p.effects.Run()
	return nil
}

func (p *refPanel) Update(msg tea.Msg) tea.Cmd {
	// counted without being rendered until something else changes
	p.updates.Set(p.updates.Current() + 1)

	if p.input.Focused() {
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, p.done) {
			p.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, p.focus) {
		return p.input.Focus()
	}
	return nil
}

func (p *refPanel) Close() {
	p.input.Blur()
	p.effects.Unmount()
}

func (p *refPanel) View(theme Theme, _ int) string {
	status := theme.muted.Render("not focused")
	if p.input.Focused() {
		status = theme.ok.Render("focused")
	}
	lines := []string{
		p.input.View(),
		status,
		"",
		theme.text.Render(fmt.Sprintf("Mount count (state): %d", p.mounts.Get())),
		theme.text.Render(fmt.Sprintf("Update count (ref):  %d", p.updates.Current())),
		"",
		helpLine(theme, p.focus, p.done),
	}
	return strings.Join(lines, "\n")
}

func (p *refPanel) Gotchas() []string {
	return []string{
		"Changing a Ref never triggers a re-render",
		"A Ref to a widget is nil until the widget exists",
		"Don't keep values in a Ref that the view depends on",
		"Refs persist across updates, unlike locals",
	}
}
