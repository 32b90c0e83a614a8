package cart

import (
	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

func applyRemoveItem(state State, action reducer.Action) State {
	a, ok := reducer.As[RemoveItem](action)
	if !ok {
		return state
	}

	item, idx, found := state.Find(a.ID)
	if !found {
		return state
	}

	items := make([]Item, 0, len(state.Items)-1)
	items = append(items, state.Items[:idx]...)
	items = append(items, state.Items[idx+1:]...)
	return State{
		Items:      items,
		TotalCents: state.TotalCents - item.LineTotal(),
	}
}
