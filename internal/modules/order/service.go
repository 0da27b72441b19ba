package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwaledev/lastbite-backend/internal/modules/notification"
)

// Service defines the order workflow business logic.
type Service interface {
	// PlaceOrder reserves one unit of a bag, issues a unique pickup code, and
	// notifies the customer.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, req PlaceOrderRequest) (*Order, error)

	// GetOrder returns the order only to its owning customer.
	GetOrder(ctx context.Context, orderID string, customerID uuid.UUID) (*Order, error)

	// UpdateStatus advances an order through the status state machine.
	UpdateStatus(ctx context.Context, orderID string, customerID uuid.UUID, req UpdateStatusRequest) (*Order, error)

	// CancelOrder cancels a pending order and restores one unit of capacity.
	CancelOrder(ctx context.Context, orderID string, customerID uuid.UUID) error

	// RateOrder records rating and feedback for a completed order.
	RateOrder(ctx context.Context, orderID string, customerID uuid.UUID, req RateOrderRequest) (*Order, error)
}

type service struct {
	repo     Repository
	notifier notification.Service
}

// NewService creates a new order service.
func NewService(repo Repository, notifier notification.Service) Service {
	return &service{repo: repo, notifier: notifier}
}

// validTransitions is the allowed status state machine. cancelled and
// completed are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// maxPickupCodeAttempts bounds the collision retry loop. Collisions on an
// 8-hex-char code are vanishingly rare; the bound keeps the loop finite.
const maxPickupCodeAttempts = 5

func (s *service) PlaceOrder(ctx context.Context, customerID uuid.UUID, req PlaceOrderRequest) (*Order, error) {
	bagID, err := uuid.Parse(req.BagID)
	if err != nil {
		return nil, ErrBagNotFound
	}

	summary, err := s.repo.GetBagSummary(ctx, bagID)
	if err != nil {
		return nil, err
	}

	// The price is authoritative on the server side. A client-declared total
	// is accepted only when it matches the listing's current discount price.
	total := summary.DiscountPrice
	if req.TotalPrice != 0 && math.Abs(req.TotalPrice-total) > 0.005 {
		return nil, ErrPriceMismatch
	}

	o := &Order{
		OrderID:    uuid.New(),
		CustomerID: customerID,
		BagID:      bagID,
		TotalPrice: total,
		Status:     StatusPending,
	}

	for attempt := 0; ; attempt++ {
		o.PickupCode = generatePickupCode()
		err = s.repo.CreateOrder(ctx, o)
		if err == nil {
			break
		}
		if errors.Is(err, ErrPickupCodeTaken) && attempt < maxPickupCodeAttempts-1 {
			continue
		}
		if errors.Is(err, ErrPickupCodeTaken) {
			return nil, ErrPickupCodeExhausted
		}
		return nil, err
	}

	s.notify(ctx, customerID, notification.TypeOrderConfirmation,
		"Order Confirmed!",
		fmt.Sprintf("Your order for '%s' has been placed. Pickup code: %s", summary.Title, o.PickupCode),
		o.OrderID)

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, orderID string, customerID uuid.UUID) (*Order, error) {
	return s.repo.GetOrderForCustomer(ctx, orderID, customerID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, customerID uuid.UUID, req UpdateStatusRequest) (*Order, error) {
	newStatus := OrderStatus(strings.ToLower(req.Status))
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.GetOrderForCustomer(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range validTransitions[o.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.Status, newStatus)
	}

	// Cancellation always goes through the cancel path so the reserved unit
	// is returned to the listing exactly once.
	if newStatus == StatusCancelled {
		if err := s.repo.Cancel(ctx, o.OrderID, customerID); err != nil {
			return nil, err
		}
		o.Status = StatusCancelled
		o.UpdatedAt = time.Now()
		s.notify(ctx, customerID, notification.TypeOrderUpdate,
			"Order Cancelled", "Your order has been cancelled.", o.OrderID)
		return o, nil
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, o.OrderID, o.Status, newStatus, now); err != nil {
		return nil, err
	}
	o.Status = newStatus
	o.UpdatedAt = now

	s.notify(ctx, customerID, notification.TypeOrderUpdate,
		"Order Status Updated",
		fmt.Sprintf("Your order status has been updated to '%s'.", newStatus),
		o.OrderID)

	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, orderID string, customerID uuid.UUID) error {
	o, err := s.repo.GetOrderForCustomer(ctx, orderID, customerID)
	if err != nil {
		return err
	}
	if o.Status != StatusPending {
		return ErrNotPending
	}

	if err := s.repo.Cancel(ctx, o.OrderID, customerID); err != nil {
		return err
	}

	s.notify(ctx, customerID, notification.TypeOrderUpdate,
		"Order Cancelled", "Your order has been cancelled.", o.OrderID)

	return nil
}

func (s *service) RateOrder(ctx context.Context, orderID string, customerID uuid.UUID, req RateOrderRequest) (*Order, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	o, err := s.repo.GetOrderForCustomer(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusCompleted {
		return nil, ErrNotCompleted
	}

	if err := s.repo.SetRating(ctx, o.OrderID, req.Rating, req.Feedback); err != nil {
		return nil, err
	}
	o.Rating = &req.Rating
	if req.Feedback != "" {
		o.Feedback = &req.Feedback
	}
	return o, nil
}

// notify emits a notification after the primary mutation has committed.
// Best-effort: a failure here must never roll back the order write.
func (s *service) notify(ctx context.Context, userID uuid.UUID, typ notification.Type, title, message string, orderID uuid.UUID) {
	_, err := s.notifier.Notify(ctx, userID, typ, title, message, notification.OrderRef(orderID.String()))
	if err != nil {
		log.Printf("order %s: %s notification failed: %v", orderID, typ, err)
	}
}

// generatePickupCode creates a short human-readable code: 8 uppercase hex chars.
func generatePickupCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
