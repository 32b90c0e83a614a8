package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/HarshaSuranjith/react-hooks-demo/cart"
	"github.com/HarshaSuranjith/react-hooks-demo/hooks"
	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
	"github.com/HarshaSuranjith/react-hooks-demo/store"
)

type reducerPanel struct {
	ctx     context.Context
	store   *store.Store[cart.State]
	factory *cart.Factory
	effects *hooks.Effects
	logger  *zap.Logger
	keys    reducerPanelKeys

	cursor   int
	last     string
	err      error
	replayed string
}

type reducerPanelKeys struct {
	Add, Up, Down, Inc, Dec, Remove, Clear, Verify key.Binding
}

func newReducerPanel(ctx context.Context, logger *zap.Logger, factory *cart.Factory) *reducerPanel {
	logger = logger.Named("cart")
	s := store.New("cart", cart.Reduce, cart.Empty(),
		store.WithLogger(logger),
		store.WithMiddleware(
			store.Recovery(logger),
			store.Logging(logger),
			store.Cancellation(),
			store.Validation(cart.Validate),
		),
	)
	return &reducerPanel{
		ctx:     ctx,
		store:   s,
		factory: factory,
		effects: hooks.NewEffects(),
		logger:  logger,
		keys: reducerPanelKeys{
			Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
			Down:   key.NewBinding(key.WithKeys("down", "j")),
			Inc:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "quantity")),
			Dec:    key.NewBinding(key.WithKeys("-")),
			Remove: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
			Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
			Verify: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "replay")),
		},
	}
}

func (p *reducerPanel) Title() string { return "Reducer" }

func (p *reducerPanel) Capturing() bool { return false }

func (p *reducerPanel) Init() tea.Cmd {
	p.effects.Use("subscribe", []any{}, func() func() {
		return p.store.Subscribe(func(cart.State) {
			h := p.store.History()
			if len(h) > 0 {
				p.last = fmt.Sprintf("#%d %s", h[len(h)-1].Sequence, h[len(h)-1].Action)
			}
		})
	})
	p.effects.Run()
	return nil
}

func (p *reducerPanel) Close() { p.effects.Unmount() }

func (p *reducerPanel) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	state := p.store.State()
	selected, hasSelection := p.selected(state)

	switch {
	case key.Matches(km, p.keys.Add):
		p.dispatch(p.factory.AddItem(state))
	case key.Matches(km, p.keys.Up):
		p.cursor = max(0, p.cursor-1)
	case key.Matches(km, p.keys.Down):
		p.cursor = min(max(0, state.Len()-1), p.cursor+1)
	case key.Matches(km, p.keys.Inc) && hasSelection:
		p.dispatch(cart.IncrementQuantity{ID: selected.ID})
	case key.Matches(km, p.keys.Dec) && hasSelection:
		p.dispatch(cart.DecrementQuantity{ID: selected.ID})
	case key.Matches(km, p.keys.Remove) && hasSelection:
		p.dispatch(cart.RemoveItem{ID: selected.ID})
	case key.Matches(km, p.keys.Clear):
		p.remount()
	case key.Matches(km, p.keys.Verify):
		p.verify()
	}
	return nil
}

// dispatch sends one action for one key press.
func (p *reducerPanel) dispatch(action reducer.Action) {
	p.err = p.store.Dispatch(p.ctx, action)
	if n := p.store.State().Len(); p.cursor >= n {
		p.cursor = max(0, n-1)
	}
}

// remount discards the cart and its journal, as if the panel were
// mounted afresh. The subscription is kept.
func (p *reducerPanel) remount() {
	p.store.Reset()
	p.cursor, p.last, p.err, p.replayed = 0, "", nil, ""
}

// verify folds the journal again and compares it with the live state.
func (p *reducerPanel) verify() {
	replayed := p.store.Replay()
	if cmp.Equal(replayed, p.store.State()) {
		p.replayed = fmt.Sprintf("replay of %d actions matches", p.store.NextSequence())
		return
	}
	p.replayed = "replay diverged: " + formatCents(replayed.TotalCents)
	p.logger.Warn("replay diverged", zap.Int64("replayed_total", replayed.TotalCents))
}

func (p *reducerPanel) selected(state cart.State) (cart.Item, bool) {
	if p.cursor < 0 || p.cursor >= state.Len() {
		return cart.Item{}, false
	}
	return state.Items[p.cursor], true
}

// formatCents renders an amount as dollars.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func (p *reducerPanel) View(theme Theme, _ int) string {
	state := p.store.State()
	var lines []string
	if state.Len() == 0 {
		lines = append(lines, theme.muted.Render("Cart is empty"))
	}
	for i, item := range state.Items {
		marker := "  "
		style := theme.text
		if i == p.cursor {
			marker = "> "
			style = theme.title
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%-12s x%-3d %8s",
			marker, item.Name, item.Quantity, formatCents(item.UnitPriceCents))))
	}
	lines = append(lines, "", theme.ok.Render("Total: "+formatCents(state.TotalCents)))
	if !state.Consistent() {
		lines = append(lines, theme.warn.Render("line totals: "+formatCents(state.Subtotal())))
	}
	if p.last != "" {
		lines = append(lines, theme.muted.Render("last: "+p.last))
	}
	if p.replayed != "" {
		lines = append(lines, theme.muted.Render(p.replayed))
	}
	if p.err != nil {
		msg := p.err.Error()
		if code, ok := reducer.CodeOf(p.err); ok {
			msg = code.String() + ": " + msg
		}
		lines = append(lines, theme.bad.Render(msg))
	}
	lines = append(lines,
		"",
		theme.muted.Render("handles "+strings.Join(cart.Types(), ", ")),
		helpLine(theme, p.keys.Add, p.keys.Up, p.keys.Inc, p.keys.Remove, p.keys.Clear, p.keys.Verify),
	)
	return strings.Join(lines, "\n")
}

func (p *reducerPanel) Gotchas() []string {
	return []string{
		"Always return a new state value, never mutate the old one",
		"Keep reducers pure: no logging, clocks or randomness",
		"Don't dispatch from inside a reducer",
		"Complex state may need more than one reducer",
	}
}
