package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines data access for orders.
type Repository interface {
	// GetBagSummary fetches the listing's title, current discount price, and
	// active flag. Missing or inactive listings report ErrBagNotFound.
	GetBagSummary(ctx context.Context, bagID uuid.UUID) (*BagSummary, error)

	// CreateOrder atomically reserves one unit: it locks the bag row, checks
	// capacity, increments quantity_sold, and inserts the order. It returns
	// ErrBagNotFound, ErrSoldOut, or ErrPickupCodeTaken as appropriate.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderForCustomer returns the order only if it belongs to the
	// customer; otherwise ErrNotFound.
	GetOrderForCustomer(ctx context.Context, orderID string, customerID uuid.UUID) (*Order, error)

	// UpdateStatus sets the status and updated_at, guarded by the status the
	// caller validated against. If the order moved out of `from` concurrently
	// the write misses and ErrInvalidTransition is returned.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to OrderStatus, updatedAt time.Time) error

	// Cancel atomically sets a pending order to cancelled and restores one
	// unit of bag capacity. A non-pending order reports ErrNotPending.
	Cancel(ctx context.Context, orderID, customerID uuid.UUID) error

	// SetRating stores the rating and feedback.
	SetRating(ctx context.Context, orderID uuid.UUID, rating int, feedback string) error
}
