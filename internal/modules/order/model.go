package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
	StatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Order is a customer's reservation of one unit of a surprise bag.
// The pickup code is globally unique and presented at collection.
type Order struct {
	OrderID    uuid.UUID   `json:"order_id"`
	CustomerID uuid.UUID   `json:"customer_id"`
	BagID      uuid.UUID   `json:"bag_id"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `json:"status"`
	PickupCode string      `json:"pickup_code"`
	Rating     *int        `json:"rating,omitempty"`
	Feedback   *string     `json:"feedback,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// PlaceOrderRequest is the payload for reserving a bag. The total price is
// advisory: the server recomputes it from the listing and rejects divergence.
type PlaceOrderRequest struct {
	BagID      string  `json:"bag_id"`
	TotalPrice float64 `json:"total_price,omitempty"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RateOrderRequest is the payload for rating a completed order.
type RateOrderRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
}

// BagSummary is the slice of listing state the workflow needs: the current
// price for recomputation and the title for the confirmation message.
type BagSummary struct {
	Title         string
	DiscountPrice float64
	Active        bool
}
