package order_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mwaledev/lastbite-backend/internal/modules/order"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

type mockService struct {
	placeOrderFunc   func(ctx context.Context, customerID uuid.UUID, req order.PlaceOrderRequest) (*order.Order, error)
	getOrderFunc     func(ctx context.Context, orderID string, customerID uuid.UUID) (*order.Order, error)
	updateStatusFunc func(ctx context.Context, orderID string, customerID uuid.UUID, req order.UpdateStatusRequest) (*order.Order, error)
	cancelOrderFunc  func(ctx context.Context, orderID string, customerID uuid.UUID) error
	rateOrderFunc    func(ctx context.Context, orderID string, customerID uuid.UUID, req order.RateOrderRequest) (*order.Order, error)
}

func (m *mockService) PlaceOrder(ctx context.Context, customerID uuid.UUID, req order.PlaceOrderRequest) (*order.Order, error) {
	return m.placeOrderFunc(ctx, customerID, req)
}

func (m *mockService) GetOrder(ctx context.Context, orderID string, customerID uuid.UUID) (*order.Order, error) {
	return m.getOrderFunc(ctx, orderID, customerID)
}

func (m *mockService) UpdateStatus(ctx context.Context, orderID string, customerID uuid.UUID, req order.UpdateStatusRequest) (*order.Order, error) {
	return m.updateStatusFunc(ctx, orderID, customerID, req)
}

func (m *mockService) CancelOrder(ctx context.Context, orderID string, customerID uuid.UUID) error {
	return m.cancelOrderFunc(ctx, orderID, customerID)
}

func (m *mockService) RateOrder(ctx context.Context, orderID string, customerID uuid.UUID, req order.RateOrderRequest) (*order.Order, error) {
	return m.rateOrderFunc(ctx, orderID, customerID, req)
}

// newTestRouter mounts the order routes behind a stub auth middleware that
// injects a fixed customer into the request context.
func newTestRouter(svc order.Service) *chi.Mux {
	injectUser := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := &user.User{ID: uuid.New(), Role: user.RoleCustomer, IsActive: true}
			next.ServeHTTP(w, r.WithContext(user.NewContext(r.Context(), u)))
		})
	}
	passthrough := func(next http.Handler) http.Handler { return next }

	router := chi.NewRouter()
	order.NewHandler(svc).RegisterRoutes(router, injectUser, passthrough)
	return router
}

func TestPlaceOrderStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "bag_not_found", serviceErr: order.ErrBagNotFound, wantStatus: http.StatusNotFound},
		{name: "sold_out", serviceErr: order.ErrSoldOut, wantStatus: http.StatusConflict},
		{name: "price_mismatch", serviceErr: order.ErrPriceMismatch, wantStatus: http.StatusBadRequest},
		{name: "pickup_code_exhausted", serviceErr: order.ErrPickupCodeExhausted, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				placeOrderFunc: func(ctx context.Context, customerID uuid.UUID, req order.PlaceOrderRequest) (*order.Order, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &order.Order{OrderID: uuid.New(), CustomerID: customerID, Status: order.StatusPending}, nil
				},
			}
			router := newTestRouter(svc)

			body := strings.NewReader(`{"bag_id":"` + uuid.New().String() + `"}`)
			req := httptest.NewRequest(http.MethodPost, "/orders", body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	svc := &mockService{
		placeOrderFunc: func(ctx context.Context, customerID uuid.UUID, req order.PlaceOrderRequest) (*order.Order, error) {
			t.Fatal("service should not be called for malformed JSON")
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "unknown_order", serviceErr: order.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid_status", serviceErr: order.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "invalid_transition", serviceErr: order.ErrInvalidTransition, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				updateStatusFunc: func(ctx context.Context, orderID string, customerID uuid.UUID, req order.UpdateStatusRequest) (*order.Order, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &order.Order{Status: order.StatusConfirmed}, nil
				},
			}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPut, "/orders/"+uuid.New().String()+"/status",
				strings.NewReader(`{"status":"confirmed"}`))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCancelOrderStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "cancelled", wantStatus: http.StatusOK},
		{name: "not_pending", serviceErr: order.ErrNotPending, wantStatus: http.StatusConflict},
		{name: "unknown_order", serviceErr: order.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				cancelOrderFunc: func(ctx context.Context, orderID string, customerID uuid.UUID) error {
					return tt.serviceErr
				},
			}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodDelete, "/orders/"+uuid.New().String(), nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRateOrderStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "rated", wantStatus: http.StatusOK},
		{name: "not_completed", serviceErr: order.ErrNotCompleted, wantStatus: http.StatusConflict},
		{name: "rating_out_of_range", serviceErr: order.ErrInvalidRating, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				rateOrderFunc: func(ctx context.Context, orderID string, customerID uuid.UUID, req order.RateOrderRequest) (*order.Order, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					rating := req.Rating
					return &order.Order{Status: order.StatusCompleted, Rating: &rating}, nil
				},
			}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders/"+uuid.New().String()+"/rating",
				strings.NewReader(`{"rating":5,"feedback":"great"}`))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
