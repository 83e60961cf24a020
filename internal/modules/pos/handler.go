package pos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes POS HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/pos", func(r chi.Router) {
		r.Post("/checkout", h.checkout)                                   // POST /api/v1/pos/checkout
		r.Get("/transactions/{id}", h.getTransaction)                     // GET  /api/v1/pos/transactions/{id}
		r.Get("/transactions/number/{number}", h.getByNumber)             // GET  /api/v1/pos/transactions/number/{number}
		r.Get("/riders/{rider_id}/transactions", h.listRiderTransactions) // GET  /api/v1/pos/riders/{id}/transactions
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	t, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		respond(w, checkoutStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, t)
}

func checkoutStatus(err error) int {
	msg := err.Error()
	switch {
	case errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, ErrDuplicateRequest):
		return http.StatusConflict
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "must be"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) getByNumber(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTransactionByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, t)
}

func (h *Handler) listRiderTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.service.ListRiderTransactions(r.Context(), chi.URLParam(r, "rider_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, txs)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
