package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/HarshaSuranjith/react-hooks-demo/hooks"
)

// dataLoadedMsg is sent when the simulated load timer fires. gen ties it to
// the mount that started the timer.
type dataLoadedMsg struct{ gen int }

type effectPanel struct {
	logger  *zap.Logger
	delay   time.Duration
	effects *hooks.Effects
	count   *hooks.State[int]
	keys    key.Binding

	gen        int
	data       string
	loading    bool
	listening  bool
	width      int
	everyRuns  int
	lastChange string
	pending    []tea.Cmd
}

func newEffectPanel(logger *zap.Logger, delay time.Duration) *effectPanel {
	return &effectPanel{
		logger:  logger.Named("effect"),
		delay:   delay,
		effects: hooks.NewEffects(),
		count:   hooks.NewState(0),
		keys:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "count+1")),
	}
}

func (p *effectPanel) Title() string { return "Effect" }

func (p *effectPanel) Capturing() bool { return false }

func (p *effectPanel) Init() tea.Cmd { return p.commit() }

// commit declares the panel's effects for this update and runs the due ones.
func (p *effectPanel) commit() tea.Cmd {
	p.effects.Use("every-update", nil, func() func() {
		p.everyRuns++
		p.logger.Debug("effect ran after update", zap.Int("runs", p.everyRuns))
		return nil
	})
	p.effects.Use("load-data", []any{}, func() func() {
		p.gen++
		gen := p.gen
		p.loading = true
		p.logger.Debug("load started", zap.Int("generation", gen), zap.Duration("delay", p.delay))
		p.pending = append(p.pending, tea.Tick(p.delay, func(time.Time) tea.Msg {
			return dataLoadedMsg{gen: gen}
		}))
		return func() {
			// a tick already in flight is ignored once gen moves on
			p.gen++
			p.loading = false
			p.logger.Debug("load cancelled", zap.Int("generation", gen))
		}
	})
	count := p.count.Get()
	p.effects.Use("count-changed", []any{count}, func() func() {
		p.lastChange = fmt.Sprintf("count changed to %d", count)
		p.logger.Debug("count changed", zap.Int("count", count))
		return nil
	})
	p.effects.Use("resize", []any{}, func() func() {
		p.listening = true
		return func() { p.listening = false }
	})
	p.effects.Run()

	cmds := p.pending
	p.pending = nil
	return tea.Batch(cmds...)
}

func (p *effectPanel) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case dataLoadedMsg:
		if m.gen != p.gen || !p.loading {
			p.logger.Debug("stale load ignored", zap.Int("generation", m.gen))
			return nil
		}
		p.loading = false
		p.data = "Data loaded!"
	case tea.WindowSizeMsg:
		if p.listening {
			p.width = m.Width
		}
	case tea.KeyMsg:
		if !key.Matches(m, p.keys) {
			return nil
		}
		p.count.Update(func(n int) int { return n + 1 })
	default:
		return nil
	}
	return p.commit()
}

func (p *effectPanel) Close() {
	p.effects.Unmount()
}

func (p *effectPanel) View(theme Theme, _ int) string {
	data := theme.muted.Render("Loading...")
	switch {
	case p.data != "":
		data = theme.ok.Render(p.data)
	case !p.loading:
		data = theme.muted.Render("not loading")
	}
	width := "unknown"
	if p.width > 0 {
		width = fmt.Sprintf("%d columns", p.width)
	}
	lines := []string{
		theme.text.Render(fmt.Sprintf("Count: %d", p.count.Get())),
		theme.muted.Render(p.lastChange),
		"",
		theme.text.Render("Async data: ") + data,
		theme.text.Render("Window width: " + width),
		"",
		theme.muted.Render(fmt.Sprintf("every-update effect runs: %d", p.everyRuns)),
		theme.muted.Render("active: " + strings.Join(p.effects.Active(), ", ")),
		"",
		helpLine(theme, p.keys),
	}
	return strings.Join(lines, "\n")
}

func (p *effectPanel) Gotchas() []string {
	return []string{
		"Effects with nil deps run after every update",
		"A timer or subscription without a cleanup outlives the panel",
		"Running effects too often costs work on every update",
		"Slow work belongs in a tea.Cmd, not in the effect body",
	}
}
