package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for notification data storage.
type Repository interface {
	Create(ctx context.Context, n *Notification) error

	// CreateBatch inserts all notifications in one transaction; used for the
	// new-bag broadcast.
	CreateBatch(ctx context.Context, ns []*Notification) error

	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*Notification, error)

	// MarkRead and Delete are scoped to the owning user; a mismatch reports
	// ErrNotFound.
	MarkRead(ctx context.Context, id string, userID uuid.UUID) error
	Delete(ctx context.Context, id string, userID uuid.UUID) error
}
