package cart

// Item is a single line in the cart.
type Item struct {
	ID             int64
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// LineTotal returns UnitPriceCents * Quantity.
func (i Item) LineTotal() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// State is an immutable cart value. Items keep insertion order.
//
// TotalCents is a running total maintained by Reduce. It tracks Subtotal
// on every transition except a first AddItem whose payload quantity is
// above one; see applyAddItem.
type State struct {
	Items      []Item
	TotalCents int64
}

// Empty returns a cart with no items and a zero total.
func Empty() State {
	return State{Items: []Item{}}
}

// Len returns the number of distinct items.
func (s State) Len() int {
	return len(s.Items)
}

// Find returns the item with id and its index, or false.
func (s State) Find(id int64) (Item, int, bool) {
	for i, item := range s.Items {
		if item.ID == id {
			return item, i, true
		}
	}
	return Item{}, -1, false
}

// Subtotal recomputes the sum of line totals from Items.
func (s State) Subtotal() int64 {
	var subtotal int64
	for _, item := range s.Items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// Consistent reports whether TotalCents equals Subtotal.
func (s State) Consistent() bool {
	return s.TotalCents == s.Subtotal()
}

// withItems copies items into a new State carrying total.
func withItems(items []Item, total int64) State {
	out := make([]Item, len(items))
	copy(out, items)
	return State{Items: out, TotalCents: total}
}
