package notification

import (
	"context"

	"github.com/google/uuid"
)

// Service is the only component allowed to create notification records.
// Workflows call Notify or Broadcast rather than writing rows themselves.
type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, typ Type, title, message string, related RelatedEntity) (*Notification, error)
	Broadcast(ctx context.Context, userIDs []uuid.UUID, typ Type, title, message string, related RelatedEntity) error
	List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*Notification, error)
	MarkRead(ctx context.Context, id string, userID uuid.UUID) error
	Delete(ctx context.Context, id string, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new notification service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID uuid.UUID, typ Type, title, message string, related RelatedEntity) (*Notification, error) {
	if typ == "" || title == "" || message == "" {
		return nil, ErrMissingFields
	}
	n := &Notification{
		NotificationID: uuid.New(),
		UserID:         userID,
		Type:           typ,
		Title:          title,
		Message:        message,
		RelatedEntity:  related,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) Broadcast(ctx context.Context, userIDs []uuid.UUID, typ Type, title, message string, related RelatedEntity) error {
	if typ == "" || title == "" || message == "" {
		return ErrMissingFields
	}
	if len(userIDs) == 0 {
		return nil
	}
	ns := make([]*Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		ns = append(ns, &Notification{
			NotificationID: uuid.New(),
			UserID:         uid,
			Type:           typ,
			Title:          title,
			Message:        message,
			RelatedEntity:  related,
		})
	}
	return s.repo.CreateBatch(ctx, ns)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*Notification, error) {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.ListByUser(ctx, userID, skip, limit)
}

func (s *service) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) Delete(ctx context.Context, id string, userID uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
