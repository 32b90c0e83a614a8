// Package cart implements the shopping-cart state machine: an immutable
// cart value and a pure reducer over four actions.
package cart

import (
	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

var cartReducer = reducer.New[State]().
	On(TypeAddItem, applyAddItem).
	On(TypeRemoveItem, applyRemoveItem).
	On(TypeIncrementQuantity, applyIncrementQuantity).
	On(TypeDecrementQuantity, applyDecrementQuantity)

// Reduce returns the state that results from applying action to state.
//
// Reduce never mutates state. Unknown actions, and actions naming an id
// that is not in the cart, return state unchanged.
func Reduce(state State, action reducer.Action) State {
	return cartReducer.Reduce(state, action)
}

// Types lists the action types Reduce understands.
func Types() []string {
	return cartReducer.Types()
}
