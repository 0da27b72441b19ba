package bag

import "errors"

var (
	// ErrNotFound covers missing, inactive, and not-owned listings alike.
	ErrNotFound = errors.New("surprise bag not found")

	// ErrInvalidPricing is returned when discount_price is not below original_price.
	ErrInvalidPricing = errors.New("discount price must be less than original price")

	// ErrInvalidPickupWindow is returned when pickup_end is not after pickup_start.
	ErrInvalidPickupWindow = errors.New("pickup end time must be after pickup start time")

	// ErrInvalidQuantity is returned for a negative quantity_available.
	ErrInvalidQuantity = errors.New("quantity_available must not be negative")

	// ErrActiveOrders blocks deactivation while pending or confirmed orders exist.
	ErrActiveOrders = errors.New("cannot delete surprise bag with active orders")
)
