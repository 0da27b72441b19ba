package bag

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mwaledev/lastbite-backend/internal/modules/business"
	"github.com/mwaledev/lastbite-backend/internal/modules/notification"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

// Service defines surprise bag listing logic.
type Service interface {
	Create(ctx context.Context, businessID uuid.UUID, req CreateBagRequest) (*SurpriseBag, error)
	Get(ctx context.Context, id string) (*SurpriseBag, error)
	List(ctx context.Context, skip, limit int) ([]*SurpriseBag, error)
	Update(ctx context.Context, bagID string, businessID uuid.UUID, req CreateBagRequest) (*SurpriseBag, error)
	Deactivate(ctx context.Context, bagID string, businessID uuid.UUID) error
}

type service struct {
	repo         Repository
	businessRepo business.Repository
	userRepo     user.Repository
	notifier     notification.Service
}

// NewService creates a new bag service.
func NewService(repo Repository, businessRepo business.Repository, userRepo user.Repository, notifier notification.Service) Service {
	return &service{repo: repo, businessRepo: businessRepo, userRepo: userRepo, notifier: notifier}
}

func validate(req CreateBagRequest) error {
	if req.OriginalPrice <= 0 || req.DiscountPrice <= 0 {
		return ErrInvalidPricing
	}
	if req.DiscountPrice >= req.OriginalPrice {
		return ErrInvalidPricing
	}
	if !req.PickupEnd.After(req.PickupStart) {
		return ErrInvalidPickupWindow
	}
	if req.QuantityAvailable < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func (s *service) Create(ctx context.Context, businessID uuid.UUID, req CreateBagRequest) (*SurpriseBag, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	owner, err := s.businessRepo.GetByOwnerID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	b := &SurpriseBag{
		ID:                uuid.New(),
		BusinessID:        businessID,
		Title:             req.Title,
		Description:       req.Description,
		Contents:          req.Contents,
		OriginalPrice:     req.OriginalPrice,
		DiscountPrice:     req.DiscountPrice,
		QuantityAvailable: req.QuantityAvailable,
		ImageURLs:         req.ImageURLs,
		PickupStart:       req.PickupStart,
		PickupEnd:         req.PickupEnd,
		IsActive:          true,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Broadcast to every active customer. Best-effort: the listing is already
	// committed and must not be rolled back by a notification failure.
	s.broadcastNewBag(ctx, b, owner.BusinessName)

	return b, nil
}

func (s *service) broadcastNewBag(ctx context.Context, b *SurpriseBag, businessName string) {
	customerIDs, err := s.userRepo.ListCustomerIDs(ctx)
	if err != nil {
		log.Printf("bag %s: listing customers for broadcast failed: %v", b.ID, err)
		return
	}
	err = s.notifier.Broadcast(ctx, customerIDs,
		notification.TypeNewBag,
		"New Surprise Bag Available!",
		fmt.Sprintf("A new surprise bag '%s' is available at %s!", b.Title, businessName),
		notification.BagRef(b.ID.String()))
	if err != nil {
		log.Printf("bag %s: new-bag broadcast failed: %v", b.ID, err)
	}
}

func (s *service) Get(ctx context.Context, id string) (*SurpriseBag, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) List(ctx context.Context, skip, limit int) ([]*SurpriseBag, error) {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *service) Update(ctx context.Context, bagID string, businessID uuid.UUID, req CreateBagRequest) (*SurpriseBag, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByIDForBusiness(ctx, bagID, businessID)
	if err != nil {
		return nil, err
	}

	b.Title = req.Title
	b.Description = req.Description
	b.Contents = req.Contents
	b.OriginalPrice = req.OriginalPrice
	b.DiscountPrice = req.DiscountPrice
	b.QuantityAvailable = req.QuantityAvailable
	b.PickupStart = req.PickupStart
	b.PickupEnd = req.PickupEnd
	b.ImageURLs = req.ImageURLs

	if b.QuantityAvailable < b.QuantitySold {
		return nil, ErrInvalidQuantity
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Deactivate(ctx context.Context, bagID string, businessID uuid.UUID) error {
	return s.repo.Deactivate(ctx, bagID, businessID)
}
