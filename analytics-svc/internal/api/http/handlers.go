package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"speedyy-pricing/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-restaurants", h.getTopRestaurants).Methods("GET")
	r.HandleFunc("/api/analytics/restaurants/{restaurantId}/invoice-totals", h.getInvoiceTotals).Methods("GET")
}

func writeAnalyticsError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidDate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("Analytics query failed: %v", err)
	http.Error(w, "Failed to load analytics", http.StatusInternalServerError)
}

func (h *Handler) getInvoiceTotals(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	totals, err := h.Analytics.DailyTotals(restaurantID, r.URL.Query().Get("date"))
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(totals)
}

func (h *Handler) getTopRestaurants(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	data, err := h.Analytics.TopRestaurants(r.URL.Query().Get("date"), limit)
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
