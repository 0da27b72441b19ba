package notification

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

// Handler exposes notification HTTP endpoints. All routes are owner-scoped.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, authenticate func(http.Handler) http.Handler) {
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/notifications", h.list)                 // GET    /notifications?skip&limit
		r.Put("/notifications/{id}/read", h.markRead)   // PUT    /notifications/{id}/read
		r.Delete("/notifications/{id}", h.delete)       // DELETE /notifications/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	ns, err := h.service.List(r.Context(), u.ID, skip, limit)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if ns == nil {
		ns = []*Notification{}
	}
	respond(w, http.StatusOK, ns)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.MarkRead(r.Context(), id, u.ID); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "notification marked as read"})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	u, _ := user.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id, u.ID); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "notification deleted"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
