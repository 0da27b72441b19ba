package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user data storage.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// Deactivate soft-deletes the account by clearing is_active.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// ListCustomerIDs returns the IDs of all active customer accounts.
	ListCustomerIDs(ctx context.Context) ([]uuid.UUID, error)
}
