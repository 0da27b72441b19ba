package bag

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for surprise bag data storage.
type Repository interface {
	Create(ctx context.Context, b *SurpriseBag) error
	GetByID(ctx context.Context, id string) (*SurpriseBag, error)

	// GetByIDForBusiness scopes the lookup to the owning business; a bag
	// owned by someone else reports ErrNotFound.
	GetByIDForBusiness(ctx context.Context, id string, businessID uuid.UUID) (*SurpriseBag, error)

	// List returns active listings, newest first.
	List(ctx context.Context, skip, limit int) ([]*SurpriseBag, error)

	Update(ctx context.Context, b *SurpriseBag) error

	// Deactivate soft-deletes the listing in one transaction: the bag row is
	// locked, pending/confirmed orders are counted under the lock, and
	// is_active is cleared only when none exist. A missing or foreign bag
	// reports ErrNotFound; blocking orders report ErrActiveOrders.
	Deactivate(ctx context.Context, id string, businessID uuid.UUID) error
}
