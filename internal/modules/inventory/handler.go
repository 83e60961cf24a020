package inventory

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Post("/distributions", h.distribute)                    // POST /api/v1/inventory/distributions
		r.Get("/distributions", h.listDistributions)              // GET  /api/v1/inventory/distributions?rider_id=
		r.Get("/riders/{rider_id}", h.listRiderInventory)         // GET  /api/v1/inventory/riders/{rider_id}
	})
}

func (h *Handler) distribute(w http.ResponseWriter, r *http.Request) {
	var req DistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	d, err := h.service.Distribute(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "must be") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, d)
}

func (h *Handler) listDistributions(w http.ResponseWriter, r *http.Request) {
	dists, err := h.service.ListDistributions(r.Context(), r.URL.Query().Get("rider_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, dists)
}

func (h *Handler) listRiderInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListRiderInventory(r.Context(), chi.URLParam(r, "rider_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, items)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
