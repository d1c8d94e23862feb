package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"speedyy-pricing/cart-svc/internal/domain"
	"speedyy-pricing/cart-svc/internal/pricing"
	"speedyy-pricing/cart-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Carts service.CartServiceInterface
}

func NewHandler(carts service.CartServiceInterface) *Handler {
	return &Handler{Carts: carts}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/carts/quote", h.createQuote).Methods("POST")
	r.HandleFunc("/api/carts/{id}", h.getQuote).Methods("GET")
	r.HandleFunc("/api/carts/{id}/payment-qr", h.getPaymentQR).Methods("GET")
	r.HandleFunc("/api/carts/{id}/refund-settlement", h.settleRefund).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	var req domain.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.Carts.Quote(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.Carts.GetQuote(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func (h *Handler) getPaymentQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Carts.PaymentQR(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) settleRefund(w http.ResponseWriter, r *http.Request) {
	var req domain.RefundSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoice, err := h.Carts.SettleRefund(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *pricing.ValidationError
	switch {
	case errors.As(err, &vErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    vErr.Code,
			"message": vErr.Error(),
		})
	case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrQuoteNotPayable):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrCouponNotFound),
		errors.Is(err, service.ErrQuoteNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
