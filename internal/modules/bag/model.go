package bag

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SurpriseBag is a discounted listing of surplus goods offered by a business.
// quantity_sold is written only by the order workflow and never exceeds
// quantity_available.
type SurpriseBag struct {
	ID                uuid.UUID       `json:"id"`
	BusinessID        uuid.UUID       `json:"business_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Contents          json.RawMessage `json:"contents,omitempty"`
	OriginalPrice     float64         `json:"original_price"`
	DiscountPrice     float64         `json:"discount_price"`
	QuantityAvailable int             `json:"quantity_available"`
	QuantitySold      int             `json:"quantity_sold"`
	PickupStart       time.Time       `json:"pickup_start"`
	PickupEnd         time.Time       `json:"pickup_end"`
	ImageURLs         json.RawMessage `json:"image_urls,omitempty"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CreateBagRequest is the payload for creating or updating a listing.
type CreateBagRequest struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Contents          json.RawMessage `json:"contents,omitempty"`
	OriginalPrice     float64         `json:"original_price"`
	DiscountPrice     float64         `json:"discount_price"`
	QuantityAvailable int             `json:"quantity_available"`
	PickupStart       time.Time       `json:"pickup_start"`
	PickupEnd         time.Time       `json:"pickup_end"`
	ImageURLs         json.RawMessage `json:"image_urls,omitempty"`
}
