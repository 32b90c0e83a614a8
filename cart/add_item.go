package cart

import (
	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

// applyAddItem charges one unit of the payload price in both branches. A
// new item is appended with its own quantity, so a payload with
// Quantity > 1 leaves TotalCents below Subtotal.
func applyAddItem(state State, action reducer.Action) State {
	a, ok := reducer.As[AddItem](action)
	if !ok {
		return state
	}

	if _, idx, found := state.Find(a.Item.ID); found {
		next := withItems(state.Items, state.TotalCents+a.Item.UnitPriceCents)
		next.Items[idx].Quantity++
		return next
	}

	items := make([]Item, 0, len(state.Items)+1)
	items = append(items, state.Items...)
	items = append(items, a.Item)
	return State{
		Items:      items,
		TotalCents: state.TotalCents + a.Item.UnitPriceCents,
	}
}
