package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HarshaSuranjith/react-hooks-demo/hooks"
)

// User is the record edited by the state panel.
type User struct {
	Name string
	Age  int
}

type statePanel struct {
	count   *hooks.State[int]
	user    *hooks.State[User]
	name    textinput.Model
	editing bool
	note    string
	keys    statePanelKeys
}

type statePanelKeys struct {
	Dec, Inc, Edit, AgeOK, AgeBad, Done key.Binding
}

func newStatePanel() *statePanel {
	in := textinput.New()
	in.Placeholder = "name"
	in.CharLimit = 32
	in.Prompt = "name: "
	return &statePanel{
		count: hooks.NewState(0),
		user:  hooks.NewState(User{Name: "John", Age: 25}),
		name:  in,
		keys: statePanelKeys{
			Dec:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-/+", "count")),
			Inc:    key.NewBinding(key.WithKeys("+", "=")),
			Edit:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "edit name")),
			AgeOK:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "age+1 (copy)")),
			AgeBad: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "age+1 (mutate)")),
			Done:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "done")),
		},
	}
}

func (p *statePanel) Title() string { return "State" }

func (p *statePanel) Init() tea.Cmd { return nil }

func (p *statePanel) Capturing() bool { return p.editing }

func (p *statePanel) Close() { p.name.Blur() }

func (p *statePanel) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.editing {
			var cmd tea.Cmd
			p.name, cmd = p.name.Update(msg)
			return cmd
		}
		return nil
	}

	if p.editing {
		if key.Matches(km, p.keys.Done) {
			p.editing = false
			p.name.Blur()
			p.note = ""
			return nil
		}
		var cmd tea.Cmd
		p.name, cmd = p.name.Update(km)
		value := p.name.Value()
		p.user.Update(func(u User) User {
			u.Name = value
			return u
		})
		return cmd
	}

	switch {
	case key.Matches(km, p.keys.Dec):
		p.count.Update(func(n int) int { return n - 1 })
	case key.Matches(km, p.keys.Inc):
		p.count.Update(func(n int) int { return n + 1 })
	case key.Matches(km, p.keys.Edit):
		p.editing = true
		p.name.SetValue(p.user.Get().Name)
		p.name.CursorEnd()
		return p.name.Focus()
	case key.Matches(km, p.keys.AgeOK):
		p.user.Update(func(u User) User {
			u.Age++
			return u
		})
		p.note = "stored a new copy with Update"
	case key.Matches(km, p.keys.AgeBad):
		u := p.user.Get()
		u.Age++
		p.note = fmt.Sprintf("changed a copy to %d but never stored it", u.Age)
	}
	return nil
}

func (p *statePanel) View(theme Theme, _ int) string {
	u := p.user.Get()
	lines := []string{
		theme.text.Render(fmt.Sprintf("Count: %d", p.count.Get())),
		"",
	}
	if p.editing {
		lines = append(lines, p.name.View())
	} else {
		lines = append(lines, theme.text.Render("Name: "+u.Name))
	}
	lines = append(lines,
		theme.text.Render(fmt.Sprintf("Age:  %d", u.Age)),
		theme.muted.Render(fmt.Sprintf("updates: %d", p.user.Version())),
	)
	if p.note != "" {
		lines = append(lines, theme.warn.Render(p.note))
	}
	lines = append(lines, "", helpLine(theme, p.keys.Dec, p.keys.Edit, p.keys.AgeOK, p.keys.AgeBad))
	return strings.Join(lines, "\n")
}

func (p *statePanel) Gotchas() []string {
	return []string{
		"Set replaces the value; readers of an old copy keep seeing it",
		"Structs and slices need a fresh copy before the update is stored",
		"Derive the next value from the previous one with Update",
	}
}
