package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

// Service defines business owner profile logic.
type Service interface {
	Onboard(ctx context.Context, ownerID uuid.UUID, req OnboardRequest) (*Owner, error)
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*Owner, error)
	Deactivate(ctx context.Context, ownerID uuid.UUID) error
}

// OnboardRequest holds the data for creating a business profile.
type OnboardRequest struct {
	BusinessName  string `json:"business_name"`
	Description   string `json:"business_description,omitempty"`
	Address       string `json:"address"`
	LogoURL       string `json:"logo_url,omitempty"`
	BusinessHours string `json:"business_hours,omitempty"`
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

// NewService creates a new business service.
func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) Onboard(ctx context.Context, ownerID uuid.UUID, req OnboardRequest) (*Owner, error) {
	if req.BusinessName == "" || req.Address == "" {
		return nil, ErrMissingFields
	}

	u, err := s.userRepo.GetUserByID(ctx, ownerID.String())
	if err != nil {
		return nil, err
	}
	if u.Role != user.RoleBusinessOwner {
		return nil, ErrNotBusinessOwner
	}

	o := &Owner{
		OwnerID:       ownerID,
		BusinessName:  req.BusinessName,
		Description:   req.Description,
		Address:       req.Address,
		LogoURL:       req.LogoURL,
		BusinessHours: req.BusinessHours,
	}

	if err := s.repo.CreateOwner(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetProfile(ctx context.Context, ownerID uuid.UUID) (*Owner, error) {
	return s.repo.GetByOwnerID(ctx, ownerID)
}

func (s *service) Deactivate(ctx context.Context, ownerID uuid.UUID) error {
	return s.repo.DeactivateCascade(ctx, ownerID)
}
