package warehouse

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes warehouse HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/warehouse", func(r chi.Router) {
		r.Put("/stock", h.upsertStock)                  // PUT  /api/v1/warehouse/stock
		r.Get("/stock", h.listStock)                    // GET  /api/v1/warehouse/stock
		r.Get("/stock/low", h.listLowStock)             // GET  /api/v1/warehouse/stock/low
		r.Get("/stock/{product_id}", h.getStock)        // GET  /api/v1/warehouse/stock/{product_id}
	})
}

func (h *Handler) upsertStock(w http.ResponseWriter, r *http.Request) {
	var req UpsertStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	stock, err := h.service.UpsertStock(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "must not") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stock)
}

func (h *Handler) getStock(w http.ResponseWriter, r *http.Request) {
	stock, err := h.service.GetStock(r.Context(), chi.URLParam(r, "product_id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stock)
}

func (h *Handler) listStock(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.service.ListStock(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stocks)
}

func (h *Handler) listLowStock(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.service.ListLowStock(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, stocks)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
