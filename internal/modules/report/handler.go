package report

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes reporting HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/sales", h.salesReport) // GET /api/v1/reports/sales?from=&to=&rider_id=
	})
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	from, err := parseTime(r.URL.Query().Get("from"), false)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid from: " + err.Error()})
		return
	}
	to, err := parseTime(r.URL.Query().Get("to"), true)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid to: " + err.Error()})
		return
	}

	rep, err := h.service.GenerateSalesReport(r.Context(), from, to, r.URL.Query().Get("rider_id"))
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid date range") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rep)
}

// parseTime accepts RFC3339 or a bare date. A bare date used as the range end
// covers the whole day.
func parseTime(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
