package business

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux, authenticate func(http.Handler) http.Handler, requireOwner func(http.Handler) http.Handler) {
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/business-owners", h.onboard)
		r.Group(func(r chi.Router) {
			r.Use(requireOwner)
			r.Get("/business-owners/me", h.profile)
			r.Delete("/business-owners", h.deactivate)
		})
	})
}

func (h *Handler) onboard(w http.ResponseWriter, r *http.Request) {
	u, ok := user.FromContext(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	o, err := h.service.Onboard(r.Context(), u.ID, req)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	o, err := h.service.GetProfile(r.Context(), u.ID)
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	if err := h.service.Deactivate(r.Context(), u.ID); err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "business owner and associated user deactivated"})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotBusinessOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyOnboarded):
		return http.StatusConflict
	case errors.Is(err, ErrMissingFields):
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
