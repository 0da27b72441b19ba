package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies what a notification is about.
type Type string

const (
	TypeOrderConfirmation Type = "order_confirmation"
	TypePickupReminder    Type = "pickup_reminder"
	TypeNewBag            Type = "new_bag"
	TypeOrderUpdate       Type = "order_update"
)

// RelatedEntityType tags the polymorphic back-reference.
type RelatedEntityType string

const (
	EntityOrder RelatedEntityType = "order"
	EntityBag   RelatedEntityType = "bag"
)

// RelatedEntity points at the order or bag a notification is about. It is a
// tagged reference with no foreign-key integrity; the target may have been
// deleted.
type RelatedEntity struct {
	Type RelatedEntityType `json:"related_entity_type"`
	ID   string            `json:"related_entity_id"`
}

// OrderRef builds a reference to an order.
func OrderRef(orderID string) RelatedEntity {
	return RelatedEntity{Type: EntityOrder, ID: orderID}
}

// BagRef builds a reference to a surprise bag.
func BagRef(bagID string) RelatedEntity {
	return RelatedEntity{Type: EntityBag, ID: bagID}
}

// Notification is a persisted message for a user. Delivery is in-app only;
// records are created by workflows and read, marked, or deleted by the owner.
type Notification struct {
	NotificationID uuid.UUID `json:"notification_id"`
	UserID         uuid.UUID `json:"user_id"`
	Type           Type      `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RelatedEntity
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
