package cart

import (
	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

// MinQuantity is the floor DecrementQuantity stops at.
const MinQuantity = 1

func applyIncrementQuantity(state State, action reducer.Action) State {
	a, ok := reducer.As[IncrementQuantity](action)
	if !ok {
		return state
	}

	item, idx, found := state.Find(a.ID)
	if !found {
		return state
	}

	next := withItems(state.Items, state.TotalCents+item.UnitPriceCents)
	next.Items[idx].Quantity++
	return next
}

func applyDecrementQuantity(state State, action reducer.Action) State {
	a, ok := reducer.As[DecrementQuantity](action)
	if !ok {
		return state
	}

	item, idx, found := state.Find(a.ID)
	if !found || item.Quantity <= MinQuantity {
		return state
	}

	next := withItems(state.Items, state.TotalCents-item.UnitPriceCents)
	next.Items[idx].Quantity--
	return next
}
