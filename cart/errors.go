package cart

// Error message constants for the cart domain.
const (
	ErrMsgItemIDRequired     = "Item ID must be positive"
	ErrMsgItemNameRequired   = "Item name is required"
	ErrMsgQuantityPositive   = "Quantity must be positive"
	ErrMsgPriceNonNegative   = "Unit price cannot be negative"
	ErrMsgPriceRangeInverted = "Minimum price exceeds maximum price"
	ErrMsgPriceRangeEmpty    = "Price range contains no whole currency unit"
)
