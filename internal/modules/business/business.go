package business

import (
	"time"

	"github.com/google/uuid"
)

// Owner is a business profile linked one-to-one with a user account.
// @Description Business owner profile
// @Description with owner_id, business_name, address, verification state, and timestamps
type Owner struct {
	OwnerID          uuid.UUID `json:"owner_id"`
	BusinessName     string    `json:"business_name"`
	Description      string    `json:"business_description,omitempty"`
	Address          string    `json:"address"`
	LogoURL          string    `json:"logo_url,omitempty"`
	BusinessHours    string    `json:"business_hours,omitempty"`
	IsVerified       bool      `json:"is_verified"`
	RegistrationDate time.Time `json:"registration_date"`
	CreatedAt        time.Time `json:"created_at"`
}
