package order

import "errors"

var (
	// ErrNotFound covers missing and not-owned orders alike, so existence is
	// not leaked to non-owners.
	ErrNotFound = errors.New("order not found")

	// ErrBagNotFound is returned when the listing is missing or inactive.
	ErrBagNotFound = errors.New("surprise bag not found or not available")

	// ErrSoldOut is returned when the listing has no remaining capacity.
	ErrSoldOut = errors.New("surprise bag is sold out")

	// ErrPriceMismatch is returned when the declared total diverges from the
	// listing's current discount price.
	ErrPriceMismatch = errors.New("total price does not match the current bag price")

	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition is returned when the status state machine forbids
	// the requested transition.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrNotPending is returned when cancelling an order that is not pending.
	ErrNotPending = errors.New("can only cancel pending orders")

	// ErrNotCompleted is returned when rating an order that is not completed.
	ErrNotCompleted = errors.New("can only rate completed orders")

	// ErrInvalidRating is returned for a rating outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrPickupCodeTaken is the repository-level signal that the generated
	// pickup code collided with an existing one.
	ErrPickupCodeTaken = errors.New("pickup code already in use")

	// ErrPickupCodeExhausted is returned when code generation keeps colliding
	// past the retry budget.
	ErrPickupCodeExhausted = errors.New("could not generate a unique pickup code")
)
