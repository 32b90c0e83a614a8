package cart

import (
	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

// ValidateItem checks that item is well formed for an AddItem payload.
func ValidateItem(item Item) error {
	return reducer.FirstError(
		reducer.RequirePositive(item.ID, ErrMsgItemIDRequired),
		reducer.RequireNotEmpty(item.Name, ErrMsgItemNameRequired),
		reducer.RequirePositive(int64(item.Quantity), ErrMsgQuantityPositive),
		reducer.RequireNonNegative(item.UnitPriceCents, ErrMsgPriceNonNegative),
	)
}

// Validate checks an action before dispatch. Only AddItem carries a
// payload worth checking; id-only actions naming a missing item are
// no-ops, not errors.
func Validate(action reducer.Action) error {
	if a, ok := reducer.As[AddItem](action); ok {
		return ValidateItem(a.Item)
	}
	return nil
}
