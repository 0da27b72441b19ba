package bag

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mwaledev/lastbite-backend/internal/modules/business"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

// Handler exposes surprise bag HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, authenticate func(http.Handler) http.Handler, requireOwner func(http.Handler) http.Handler) {
	router.Get("/surprise-bags", h.list)        // GET /surprise-bags?skip&limit (public, active-only)
	router.Get("/surprise-bags/{id}", h.get)    // GET /surprise-bags/{id} (public, active-only)

	router.Group(func(r chi.Router) {
		r.Use(authenticate, requireOwner)
		r.Post("/surprise-bags", h.create)          // POST   /surprise-bags
		r.Put("/surprise-bags/{id}", h.update)      // PUT    /surprise-bags/{id}
		r.Delete("/surprise-bags/{id}", h.delete)   // DELETE /surprise-bags/{id}
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	var req CreateBagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	b, err := h.service.Create(r.Context(), u.ID, req)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, b)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, b)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	bags, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if bags == nil {
		bags = []*SurpriseBag{}
	}
	respond(w, http.StatusOK, bags)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	var req CreateBagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	b, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), u.ID, req)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, b)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	if err := h.service.Deactivate(r.Context(), chi.URLParam(r, "id"), u.ID); err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "surprise bag deactivated"})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, business.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidPricing), errors.Is(err, ErrInvalidPickupWindow), errors.Is(err, ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, ErrActiveOrders):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
