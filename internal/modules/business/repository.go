package business

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for business owner data storage.
type Repository interface {
	CreateOwner(ctx context.Context, o *Owner) error
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Owner, error)

	// DeactivateCascade un-verifies the profile and deactivates the linked
	// user account in a single transaction.
	DeactivateCascade(ctx context.Context, ownerID uuid.UUID) error
}
