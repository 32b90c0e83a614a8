package cart

import "fmt"

// Action type strings.
const (
	TypeAddItem           = "ADD_ITEM"
	TypeRemoveItem        = "REMOVE_ITEM"
	TypeIncrementQuantity = "INCREMENT_QUANTITY"
	TypeDecrementQuantity = "DECREMENT_QUANTITY"
)

// AddItem adds Item, or bumps the quantity of an item with the same ID.
type AddItem struct {
	Item Item
}

func (AddItem) Type() string { return TypeAddItem }

func (a AddItem) String() string {
	return fmt.Sprintf("%s(id=%d name=%q)", TypeAddItem, a.Item.ID, a.Item.Name)
}

// RemoveItem drops the item with ID.
type RemoveItem struct {
	ID int64
}

func (RemoveItem) Type() string { return TypeRemoveItem }

func (a RemoveItem) String() string {
	return fmt.Sprintf("%s(id=%d)", TypeRemoveItem, a.ID)
}

// IncrementQuantity adds one unit of the item with ID.
type IncrementQuantity struct {
	ID int64
}

func (IncrementQuantity) Type() string { return TypeIncrementQuantity }

func (a IncrementQuantity) String() string {
	return fmt.Sprintf("%s(id=%d)", TypeIncrementQuantity, a.ID)
}

// DecrementQuantity removes one unit of the item with ID, never going
// below one.
type DecrementQuantity struct {
	ID int64
}

func (DecrementQuantity) Type() string { return TypeDecrementQuantity }

func (a DecrementQuantity) String() string {
	return fmt.Sprintf("%s(id=%d)", TypeDecrementQuantity, a.ID)
}
