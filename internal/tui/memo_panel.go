package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HarshaSuranjith/react-hooks-demo/hooks"
)

type memoPanel struct {
	n        *hooks.State[int]
	dark     *hooks.State[bool]
	memo     *hooks.Memo[int, uint64]
	maxInput int
	keys     memoPanelKeys

	calculate   *hooks.Callback[func() string]
	onCalculate func() string
	calculated  string
}

type memoPanelKeys struct {
	Dec, Inc, Theme, Calc key.Binding
}

func newMemoPanel(maxInput, cacheSize int, dark bool) (*memoPanel, error) {
	memo, err := hooks.NewMemo[int, uint64](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("memo panel: %w", err)
	}
	return &memoPanel{
		n:        hooks.NewState(min(5, maxInput)),
		dark:     hooks.NewState(dark),
		memo:      memo,
		maxInput:  maxInput,
		calculate: hooks.NewCallback[func() string](),
		keys: memoPanelKeys{
			Dec:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-/+", "number")),
			Inc:   key.NewBinding(key.WithKeys("+", "=")),
			Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
			Calc:  key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "calculate")),
		},
	}, nil
}

// factorial returns n! for n in [0, 20].
func factorial(n int) uint64 {
	out := uint64(1)
	for i := 2; i <= n; i++ {
		out *= uint64(i)
	}
	return out
}

func (p *memoPanel) Title() string { return "Memo" }

func (p *memoPanel) Init() tea.Cmd {
	p.bind()
	return nil
}

// bind rebuilds the calculate handler, which is only replaced when the
// number it closes over changes.
func (p *memoPanel) bind() {
	n := p.n.Get()
	p.onCalculate = p.calculate.Use([]any{n}, func() string {
		return fmt.Sprintf("%d! = %d", n, p.memo.Get(n, factorial))
	})
}

func (p *memoPanel) Capturing() bool { return false }

func (p *memoPanel) Close() { p.memo.Purge() }

func (p *memoPanel) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, p.keys.Dec):
		p.n.Update(func(n int) int { return max(0, n-1) })
	case key.Matches(km, p.keys.Inc):
		p.n.Update(func(n int) int { return min(p.maxInput, n+1) })
	case key.Matches(km, p.keys.Theme):
		p.dark.Update(func(d bool) bool { return !d })
	case key.Matches(km, p.keys.Calc) && p.onCalculate != nil:
		p.calculated = p.onCalculate()
	}
	p.bind()
	return nil
}

func (p *memoPanel) View(_ Theme, _ int) string {
	theme := NewTheme(p.dark.Get())
	n := p.n.Get()
	result := p.memo.Get(n, factorial)

	mode := "light"
	if p.dark.Get() {
		mode = "dark"
	}
	lines := []string{
		theme.text.Render(fmt.Sprintf("Number: %d (0-%d)", n, p.maxInput)),
		theme.ok.Render(fmt.Sprintf("Factorial: %d", result)),
		theme.muted.Render(fmt.Sprintf("computed %d times, %d cached", p.memo.Computations(), p.memo.Len())),
		"",
		theme.text.Render("Theme: " + mode),
		theme.muted.Render(fmt.Sprintf("calculate handler created %d times", p.calculate.Created())),
	}
	if p.calculated != "" {
		lines = append(lines, theme.ok.Render("calculated "+p.calculated))
	}
	lines = append(lines,
		"",
		helpLine(theme, p.keys.Dec, p.keys.Theme, p.keys.Calc),
	)
	return strings.Join(lines, "\n")
}

func (p *memoPanel) Gotchas() []string {
	return []string{
		"Memoising everything costs memory for little gain",
		"A key that misses an input returns stale results",
		"Cheap calculations are not worth a cache",
		"Memoised callbacks only help when identity is compared",
	}
}
