// Package tui renders the demo panels as a Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/HarshaSuranjith/react-hooks-demo/cart"
	"github.com/HarshaSuranjith/react-hooks-demo/internal/config"
)

const snapshotWidth = 72

// App is the root model. It mounts five independent panels and routes
// input to the focused one.
type App struct {
	panels []Panel
	focus  int
	width  int
	height int
	theme  Theme
	keys   keyMap
	logger *zap.Logger
	closed bool
}

// New builds the App and its panels from cfg.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	factory, err := cart.NewFactory(cfg.Cart.MinPriceCents, cfg.Cart.MaxPriceCents)
	if err != nil {
		return nil, fmt.Errorf("cart factory: %w", err)
	}
	memo, err := newMemoPanel(cfg.Memo.MaxInput, cfg.Memo.CacheSize, cfg.UI.Dark)
	if err != nil {
		return nil, err
	}
	return &App{
		panels: []Panel{
			newStatePanel(),
			newEffectPanel(logger, cfg.Effect.LoadDelay),
			newRefPanel(),
			memo,
			newReducerPanel(ctx, logger, factory),
		},
		theme:  NewTheme(cfg.UI.Dark),
		keys:   defaultKeys(),
		logger: logger,
	}, nil
}

// Init mounts every panel.
func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.panels))
	for _, p := range a.panels {
		cmds = append(cmds, p.Init())
	}
	a.logger.Debug("panels mounted", zap.Int("count", len(a.panels)))
	return tea.Batch(cmds...)
}

// Focused returns the panel receiving key input.
func (a *App) Focused() Panel { return a.panels[a.focus] }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	}
	return a, a.broadcast(msg)
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if key.Matches(m, a.keys.Kill) {
		return a.quit()
	}
	focused := a.Focused()
	if focused.Capturing() {
		return focused.Update(m)
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a.quit()
	case key.Matches(m, a.keys.Next):
		a.focus = (a.focus + 1) % len(a.panels)
	case key.Matches(m, a.keys.Prev):
		a.focus = (a.focus + len(a.panels) - 1) % len(a.panels)
	default:
		return focused.Update(m)
	}
	return nil
}

func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.panels))
	for _, p := range a.panels {
		cmds = append(cmds, p.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (a *App) quit() tea.Cmd {
	a.Close()
	return tea.Quit
}

// Close tears down every panel once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	for _, p := range a.panels {
		p.Close()
	}
	a.logger.Debug("panels closed")
}

func (a *App) View() string {
	if a.closed {
		return ""
	}
	width := a.width
	if width <= 0 {
		width = snapshotWidth
	}

	tabs := make([]string, len(a.panels))
	for i, p := range a.panels {
		style := a.theme.tab
		if i == a.focus {
			style = a.theme.tabOn
		}
		tabs[i] = style.Render(p.Title())
	}

	p := a.Focused()
	return lipgloss.JoinVertical(lipgloss.Left,
		a.theme.title.Render("Hooks demo"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		a.theme.Card(p.Title(), p.View(a.theme, width), p.Gotchas(), width, true),
		helpLine(a.theme, a.keys.Next, a.keys.Prev, a.keys.Quit),
	)
}

// Render returns a static snapshot of every panel, for non-interactive
// output.
func (a *App) Render() string {
	width := a.width
	if width <= 0 {
		width = snapshotWidth
	}
	cards := make([]string, 0, len(a.panels)+1)
	cards = append(cards, a.theme.title.Render("Hooks demo"))
	for i, p := range a.panels {
		cards = append(cards, a.theme.Card(p.Title(), p.View(a.theme, width), p.Gotchas(), width, i == a.focus))
	}
	return strings.Join(cards, "\n")
}
