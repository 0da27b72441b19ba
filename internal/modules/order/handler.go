package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, authenticate func(http.Handler) http.Handler, requireCustomer func(http.Handler) http.Handler) {
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/orders/{id}", h.getOrder)           // GET /orders/{id}
		r.Put("/orders/{id}/status", h.updateStatus) // PUT /orders/{id}/status

		r.Group(func(r chi.Router) {
			r.Use(requireCustomer)
			r.Post("/orders", h.placeOrder)            // POST   /orders
			r.Delete("/orders/{id}", h.cancelOrder)    // DELETE /orders/{id}
			r.Post("/orders/{id}/rating", h.rateOrder) // POST   /orders/{id}/rating
		})
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	o, err := h.service.PlaceOrder(r.Context(), u.ID, req)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	o, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"), u.ID)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), u.ID, req)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	if err := h.service.CancelOrder(r.Context(), chi.URLParam(r, "id"), u.ID); err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "order cancelled"})
}

func (h *Handler) rateOrder(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	var req RateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	o, err := h.service.RateOrder(r.Context(), chi.URLParam(r, "id"), u.ID, req)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrBagNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSoldOut), errors.Is(err, ErrNotPending),
		errors.Is(err, ErrNotCompleted), errors.Is(err, ErrPickupCodeExhausted):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrPriceMismatch), errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidRating):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
