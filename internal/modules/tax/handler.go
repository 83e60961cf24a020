package tax

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes tax policy HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/tax", func(r chi.Router) {
		r.Post("/policies", h.createPolicy)             // POST /api/v1/tax/policies
		r.Get("/policies", h.listPolicies)              // GET  /api/v1/tax/policies
		r.Get("/policies/active", h.getActivePolicy)    // GET  /api/v1/tax/policies/active
		r.Post("/policies/{id}/activate", h.activate)   // POST /api/v1/tax/policies/{id}/activate
	})
}

func (h *Handler) createPolicy(w http.ResponseWriter, r *http.Request) {
	var req CreatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p, err := h.service.CreatePolicy(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidTaxPolicy) {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) listPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.service.ListPolicies(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, policies)
}

func (h *Handler) getActivePolicy(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetActivePolicy(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if p == nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "no active tax policy"})
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ActivatePolicy(r.Context(), chi.URLParam(r, "id")); err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "invalid") {
			code = http.StatusBadRequest
		} else if strings.Contains(msg, "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
