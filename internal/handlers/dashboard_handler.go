package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sales-backend/internal/middleware"
	"sales-backend/internal/models"
	"sales-backend/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// Summary returns earned/pending totals plus the leaderboard for a window.
// Query params: window=day|week|month|all, metric=amount|pax.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("window")
	metric := r.URL.Query().Get("metric")

	summary, err := h.Service.Summary(r.Context(), window, metric)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// History returns one page of the filtered sales history. Sellers only see
// their own records; admins and owners see everything.
// Query params: window, status, search, page.
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))

	sellerID := ""
	if role, _ := middleware.GetRoleFromContext(r.Context()); role == models.RoleSeller {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		sellerID = strconv.Itoa(userID)
	}

	history, err := h.Service.History(r.Context(), sellerID, q.Get("window"), q.Get("status"), q.Get("search"), page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}
